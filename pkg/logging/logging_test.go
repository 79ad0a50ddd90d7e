package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSetup(t *testing.T) {
	t.Cleanup(func() { Logger = zap.NewNop() })

	require.NoError(t, Setup(false, "prompt-get", "test"))
	assert.False(t, Logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, Logger.Core().Enabled(zapcore.WarnLevel))
	assert.Same(t, Logger, zap.L())

	require.NoError(t, Setup(true, "prompt-get", "test"))
	assert.True(t, Logger.Core().Enabled(zapcore.DebugLevel))
}
