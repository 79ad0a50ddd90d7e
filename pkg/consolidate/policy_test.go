package consolidate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicy_Excluded(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		path     string
		excluded bool
	}{
		{".gitignore", true},
		{".DS_Store", true},
		{"normal.py", false},
		{"prompt.txt", true},
		{"docs/prompt.txt", true},
		{"package.json", true},
		{"package-lock.json", true},
		{"web/package.json", true},
		{"node_modules/package.json", true},
		{"node_modules/left-pad/index.js", true},
		{"src/__pycache__/module.pyc", true},
		{"venv/bin/python", true},
		{"a/b/venv/lib/site.py", true},
		{".git/config", true},
		{"src/.cache/data.txt", true},
		{"src/components/App.jsx", false},
		{"./src/app.py", false},
		{"./.env", true},
		{"venvs/tool.py", false},
		{"my.venv/tool.py", false},
		{".", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.excluded, policy.Excluded(tt.path))
		})
	}
}

func TestPolicy_OutputName(t *testing.T) {
	policy := NewPolicy(PolicyOptions{Output: "dump.txt"})

	assert.Equal(t, "dump.txt", policy.Output())
	assert.True(t, policy.Excluded("dump.txt"))
	assert.False(t, policy.Excluded("prompt.txt"), "only the configured output is excluded")
	assert.True(t, policy.Excluded("package.json"), "defaults still apply")
}

func TestPolicy_ExtraNames(t *testing.T) {
	policy := NewPolicy(PolicyOptions{
		ExcludeDirs:  []string{"dist"},
		ExcludeFiles: []string{"go.sum"},
	})

	assert.True(t, policy.Excluded("dist/app.js"))
	assert.True(t, policy.Excluded("go.sum"))
	assert.True(t, policy.Excluded("node_modules/x.js"))
	assert.False(t, policy.Excluded("src/dist.go"))
}

func TestPolicy_DefaultsAreNotMutated(t *testing.T) {
	NewPolicy(PolicyOptions{ExcludeDirs: []string{"build"}, ExcludeFiles: []string{"x"}})

	assert.Equal(t, []string{".git", "node_modules", "__pycache__", "venv"}, DefaultExcludedDirs)
	assert.Equal(t, []string{"package.json", "package-lock.json"}, DefaultExcludedFiles)
}

type prefixMatcher struct {
	prefix string
	calls  []string
}

func (m *prefixMatcher) MatchesPath(path string, isDir bool) bool {
	kind := "file"
	if isDir {
		kind = "dir"
	}
	m.calls = append(m.calls, kind+":"+path)
	return strings.HasPrefix(path, m.prefix)
}

func TestPolicy_Matcher(t *testing.T) {
	m := &prefixMatcher{prefix: "generated"}
	policy := NewPolicy(PolicyOptions{Matcher: m})

	assert.True(t, policy.Excluded("./generated/api.go"))
	assert.Equal(t, []string{"dir:generated"}, m.calls, "directories are checked before their files")

	m.calls = nil
	assert.False(t, policy.Excluded("src/api.go"))
	assert.Equal(t, []string{"dir:src", "file:src/api.go"}, m.calls)
}
