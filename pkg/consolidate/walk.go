// File: pkg/consolidate/walk.go
package consolidate

import (
	"io/fs"
	"path"

	"go.uber.org/zap"
)

// WalkFunc is called for every admitted file. name is the fs.FS path (no "./" prefix).
type WalkFunc func(name string, d fs.DirEntry) error

// Walk visits the files under fsys that policy admits, in lexical order per directory.
// Excluded directories are pruned without being read. A directory that cannot be listed
// aborts the walk with a *TraversalError; an error returned by fn aborts it as-is.
func Walk(fsys fs.FS, policy *Policy, logger *zap.Logger, fn WalkFunc) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if policy == nil {
		policy = DefaultPolicy()
	}

	return fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Error("Failed to list directory", zap.String("path", DisplayPath(name)), zap.Error(err))
			return &TraversalError{Path: DisplayPath(name), Err: err}
		}
		if name == "." {
			return nil
		}

		if d.IsDir() {
			if policy.skipDirEntry(name, d.Name()) {
				logger.Debug("Skipping excluded directory", zap.String("directory", DisplayPath(name)))
				return fs.SkipDir
			}
			logger.Debug("Scanning directory", zap.String("directory", DisplayPath(name)))
			return nil
		}

		if policy.skipFileEntry(name, d.Name()) {
			logger.Debug("Skipping excluded file", zap.String("file", DisplayPath(name)))
			return nil
		}
		if !isRegular(fsys, name, d, logger) {
			return nil
		}
		return fn(name, d)
	})
}

// Collect returns the display paths of every file Walk admits.
func Collect(fsys fs.FS, policy *Policy, logger *zap.Logger) ([]string, error) {
	var files []string
	err := Walk(fsys, policy, logger, func(name string, _ fs.DirEntry) error {
		files = append(files, DisplayPath(name))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// DisplayPath turns an fs.FS path into the "./"-rooted form used in headers.
func DisplayPath(name string) string {
	if name == "." || name == "" {
		return "."
	}
	return "./" + path.Clean(name)
}

// isRegular admits regular files and symlinks to regular files. Symlinked directories
// are not followed. A broken symlink is admitted so that reading it reports the problem.
func isRegular(fsys fs.FS, name string, d fs.DirEntry, logger *zap.Logger) bool {
	mode := d.Type()
	if mode.IsRegular() {
		return true
	}
	if mode&fs.ModeSymlink != 0 {
		info, err := fs.Stat(fsys, name)
		if err != nil {
			return true
		}
		if info.IsDir() {
			logger.Debug("Skipping symlinked directory", zap.String("path", DisplayPath(name)))
			return false
		}
		mode = info.Mode()
		if mode.IsRegular() {
			return true
		}
	}
	logger.Warn("Skipping non-regular file", zap.String("file", DisplayPath(name)), zap.String("mode", mode.String()))
	return false
}
