// File: pkg/consolidate/policy.go
package consolidate

import (
	"path"
	"strings"
)

// DefaultOutput is the name of the consolidated file written into the root.
const DefaultOutput = "prompt.txt"

// Directory and file names excluded at any depth.
var (
	DefaultExcludedDirs  = []string{".git", "node_modules", "__pycache__", "venv"}
	DefaultExcludedFiles = []string{"package.json", "package-lock.json"}
)

// Matcher is an additional, optional exclusion rule set. Paths are slash-separated,
// relative to the root and carry no "./" prefix.
type Matcher interface {
	MatchesPath(path string, isDir bool) bool
}

// PolicyOptions configures NewPolicy. Extra names are added to the defaults, never replace them.
type PolicyOptions struct {
	Output       string   // Output filename; DefaultOutput when empty.
	ExcludeDirs  []string // Extra directory names pruned at any depth.
	ExcludeFiles []string // Extra file names skipped at any depth.
	Matcher      Matcher  // Optional rules such as .promptignore or --exclude globs.
}

// Policy decides which directories are pruned and which files are skipped.
// A Policy is immutable once built.
type Policy struct {
	output  string
	dirs    map[string]struct{}
	files   map[string]struct{}
	matcher Matcher
}

// NewPolicy builds a Policy from the defaults plus opts.
func NewPolicy(opts PolicyOptions) *Policy {
	output := opts.Output
	if output == "" {
		output = DefaultOutput
	}

	p := &Policy{
		output:  output,
		dirs:    make(map[string]struct{}),
		files:   make(map[string]struct{}),
		matcher: opts.Matcher,
	}
	for _, name := range append(append([]string{}, DefaultExcludedDirs...), opts.ExcludeDirs...) {
		p.dirs[name] = struct{}{}
	}
	for _, name := range append(append([]string{}, DefaultExcludedFiles...), opts.ExcludeFiles...) {
		p.files[name] = struct{}{}
	}
	p.files[output] = struct{}{}
	return p
}

// DefaultPolicy returns the policy used when nothing is configured.
func DefaultPolicy() *Policy {
	return NewPolicy(PolicyOptions{})
}

// Output returns the output filename the policy excludes.
func (p *Policy) Output() string {
	return p.output
}

// SkipDir reports whether a directory with this base name is pruned.
func (p *Policy) SkipDir(name string) bool {
	if isHidden(name) {
		return true
	}
	_, ok := p.dirs[name]
	return ok
}

// SkipFile reports whether a file with this base name is skipped.
func (p *Policy) SkipFile(name string) bool {
	if isHidden(name) {
		return true
	}
	_, ok := p.files[name]
	return ok
}

// Excluded reports whether the file at rel would be left out of a walk.
// rel is slash-separated and may start with "./". Every directory component is
// checked, so no filesystem access is needed.
func (p *Policy) Excluded(rel string) bool {
	rel = strings.TrimPrefix(path.Clean(strings.TrimPrefix(rel, "./")), "./")
	if rel == "." || rel == "" {
		return false
	}

	parts := strings.Split(rel, "/")
	for i, dir := range parts[:len(parts)-1] {
		if p.skipDirEntry(strings.Join(parts[:i+1], "/"), dir) {
			return true
		}
	}
	return p.skipFileEntry(rel, parts[len(parts)-1])
}

func (p *Policy) skipDirEntry(rel, name string) bool {
	if p.SkipDir(name) {
		return true
	}
	return p.matcher != nil && p.matcher.MatchesPath(rel, true)
}

func (p *Policy) skipFileEntry(rel, name string) bool {
	if p.SkipFile(name) {
		return true
	}
	return p.matcher != nil && p.matcher.MatchesPath(rel, false)
}

// isHidden reports whether name is a dotfile. The root marker "." is not hidden.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "."
}
