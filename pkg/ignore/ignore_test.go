package ignore

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Rules_ZeroValueMatchesNothing(t *testing.T) {
	var r *Rules
	assert.True(t, r.Empty())
	assert.False(t, r.MatchesPath("anything.go", false))

	assert.True(t, New(nil).Empty())
}

func Test_Rules_IgnoreFile(t *testing.T) {
	fsys := fstest.MapFS{
		DefaultFile: &fstest.MapFile{Data: []byte("# generated code\n*.generated.go\nsecret/\n!keep.generated.go\n")},
	}

	r, err := Load(fsys, DefaultFile, nil, nil)
	require.NoError(t, err)
	require.False(t, r.Empty())

	tests := []struct {
		path    string
		isDir   bool
		ignored bool
	}{
		{"models.generated.go", false, true},
		{"pkg/api.generated.go", false, true},
		{"keep.generated.go", false, false},
		{"secret", true, true},
		{"main.go", false, false},
		{"secretary.go", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.ignored, r.MatchesPath(tt.path, tt.isDir))
		})
	}
}

func Test_Rules_MissingIgnoreFile(t *testing.T) {
	r, err := Load(fstest.MapFS{}, DefaultFile, nil, nil)
	require.NoError(t, err)
	assert.True(t, r.Empty())
}

func Test_Rules_NoIgnoreFileName(t *testing.T) {
	r, err := Load(fstest.MapFS{}, "", []string{"docs/**"}, nil)
	require.NoError(t, err)
	assert.False(t, r.Empty())
}

func Test_Rules_Globs(t *testing.T) {
	r := New(nil)
	require.NoError(t, r.AddGlobs("docs/**", "**/*.min.js", "*.lock"))

	tests := []struct {
		path    string
		ignored bool
	}{
		{"docs/guide/intro.md", true},
		{"web/vendor/jquery.min.js", true},
		{"app.min.js", true},
		{"yarn.lock", true},
		{"sub/yarn.lock", false},
		{"src/app.js", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.ignored, r.MatchesPath(tt.path, false))
		})
	}
}

func Test_Rules_InvalidGlob(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "", []string{"src/[unclosed"}, nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "src/[unclosed"))
}

func Test_Rules_CompileReaderAccumulates(t *testing.T) {
	r := New(nil)
	r.CompileReader(strings.NewReader("*.log\n"), "first")
	r.CompileReader(strings.NewReader("tmp/\n"), "second")

	assert.True(t, r.MatchesPath("debug.log", false))
	assert.True(t, r.MatchesPath("tmp", true))
	assert.False(t, r.MatchesPath("main.go", false))
}
