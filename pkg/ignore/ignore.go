// Package ignore holds the optional, user-supplied exclusion rules: a gitignore-style
// .promptignore file and doublestar globs passed with --exclude.
package ignore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/denormal/go-gitignore"
	"go.uber.org/zap"
)

// DefaultFile is the ignore file looked up in the root directory.
const DefaultFile = ".promptignore"

// Rules matches slash-separated paths, relative to the root and without a "./" prefix.
// The zero value matches nothing.
type Rules struct {
	files  []gitignore.GitIgnore
	globs  []string
	logger *zap.Logger
}

// New returns empty Rules.
func New(logger *zap.Logger) *Rules {
	if logger == nil {
		logger = zap.NewNop() // Use no-op logger if none is provided
	}
	return &Rules{logger: logger}
}

// Load reads the ignore file name from fsys, if present, and adds globs.
// A missing ignore file is not an error.
func Load(fsys fs.FS, name string, globs []string, logger *zap.Logger) (*Rules, error) {
	r := New(logger)

	if name != "" {
		f, err := fsys.Open(name)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			r.logger.Debug("Ignore file does not exist and will be skipped", zap.String("file", name))
		case err != nil:
			r.logger.Error("Failed to open ignore file", zap.String("file", name), zap.Error(err))
			return nil, fmt.Errorf("failed to open ignore file %s: %w", name, err)
		default:
			defer f.Close()
			r.CompileReader(f, name)
		}
	}

	if err := r.AddGlobs(globs...); err != nil {
		return nil, err
	}
	return r, nil
}

// CompileReader parses gitignore-style rules from rd. Invalid lines are logged and skipped.
func (r *Rules) CompileReader(rd io.Reader, source string) {
	gi := gitignore.New(rd, ".", func(e gitignore.Error) bool {
		r.logger.Warn("Skipping invalid ignore pattern",
			zap.String("file", source),
			zap.String("position", e.Position().String()),
			zap.Error(e.Underlying()))
		return true
	})
	if gi == nil {
		return
	}
	r.files = append(r.files, gi)
	r.logger.Debug("Compiled ignore file", zap.String("file", source))
}

// AddGlobs adds doublestar patterns such as "docs/**" or "**/*.min.js".
func (r *Rules) AddGlobs(globs ...string) error {
	for _, glob := range globs {
		if !doublestar.ValidatePattern(glob) {
			return fmt.Errorf("invalid exclude pattern %q", glob)
		}
		r.globs = append(r.globs, glob)
		r.logger.Debug("Added exclude pattern", zap.String("pattern", glob))
	}
	return nil
}

// Empty reports whether r has no rules at all.
func (r *Rules) Empty() bool {
	return r == nil || (len(r.files) == 0 && len(r.globs) == 0)
}

// MatchesPath reports whether path is excluded by an ignore file or a glob.
func (r *Rules) MatchesPath(path string, isDir bool) bool {
	if r.Empty() {
		return false
	}

	for _, glob := range r.globs {
		if matched, _ := doublestar.Match(glob, path); matched {
			r.logger.Debug("Path matches exclude pattern", zap.String("path", path), zap.String("pattern", glob))
			return true
		}
	}

	// The gitignore matcher splits on the host separator.
	native := filepath.FromSlash(path)
	for _, gi := range r.files {
		if match := gi.Relative(native, isDir); match != nil && match.Ignore() {
			r.logger.Debug("Path matches ignore file", zap.String("path", path), zap.Bool("isDir", isDir))
			return true
		}
	}
	return false
}
