package selftest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_AllPass(t *testing.T) {
	var out bytes.Buffer

	report, err := Run(&out, nil)
	require.NoError(t, err, out.String())

	assert.Zero(t, report.Failed)
	assert.Equal(t, 21, report.Passed)
	assert.NotContains(t, out.String(), "FAIL")
	assert.Contains(t, out.String(), "PASS ./STYLE.CSS")
	assert.Contains(t, out.String(), "PASS consolidate temporary tree")
	assert.Contains(t, out.String(), "=== 21 passed, 0 failed ===")
}

func TestCheck_CountsFailures(t *testing.T) {
	var out bytes.Buffer
	s := &suite{w: &out}

	s.check("good", nil)
	s.check("bad", assert.AnError)

	assert.Equal(t, Report{Passed: 1, Failed: 1}, s.report)
	assert.Contains(t, out.String(), "  PASS good\n")
	assert.Contains(t, out.String(), "  FAIL bad: "+assert.AnError.Error())
}
