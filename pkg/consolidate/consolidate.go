package consolidate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/moby/sys/atomicwriter"
	"go.uber.org/zap"
)

// Options holds the parameters of a consolidation run.
type Options struct {
	Root   string  // Directory to consolidate. The output file is written here.
	Policy *Policy // Exclusion policy; DefaultPolicy when nil.
}

// Run consolidates opts.Root into a single file named after the policy's output,
// written into opts.Root. Nothing is written if the walk fails.
func Run(opts Options, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Root == "" {
		return nil, errors.New("root directory is required")
	}
	if opts.Policy == nil {
		opts.Policy = DefaultPolicy()
	}

	startTime := time.Now()
	logger.Info("Starting consolidation", zap.String("directory", opts.Root))

	doc, res, err := Build(os.DirFS(opts.Root), opts.Policy, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to collect files: %w", err)
	}

	res.OutputPath = filepath.Join(opts.Root, opts.Policy.Output())
	if err := writeOutput(res.OutputPath, doc.Bytes(), logger); err != nil {
		return nil, err
	}

	logger.Info("Consolidation completed",
		zap.String("outputFile", res.OutputPath),
		zap.Int("totalFiles", len(res.Files)),
		zap.Int("skippedFiles", len(res.Skipped)),
		zap.Int("bytes", res.Bytes),
		zap.Duration("elapsed", time.Since(startTime)))
	return res, nil
}

// Build walks fsys and assembles the document in memory. Files that cannot be read or
// are not text are skipped with a warning and listed in Result.Skipped.
func Build(fsys fs.FS, policy *Policy, logger *zap.Logger) (*Document, *Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	doc := &Document{}
	res := &Result{}
	err := Walk(fsys, policy, logger, func(name string, _ fs.DirEntry) error {
		rel := DisplayPath(name)
		content, err := readText(fsys, name)
		if err != nil {
			reason := ReasonUnreadable
			if errors.Is(err, ErrNotText) {
				reason = ReasonNotText
			}
			logger.Warn("Skipping file", zap.String("file", rel), zap.String("reason", string(reason)), zap.Error(err))
			res.Skipped = append(res.Skipped, Skipped{Path: rel, Reason: reason, Err: err})
			return nil
		}

		doc.Append(FileEntry{Path: rel, Content: content})
		res.Files = append(res.Files, rel)
		logger.Debug("Added file", zap.String("file", rel), zap.String("header", Header(rel)), zap.Int("contentSizeBytes", len(content)))
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	res.Bytes = doc.Len()
	return doc, res, nil
}

// writeOutput replaces path with data through a temporary file and a rename.
func writeOutput(path string, data []byte, logger *zap.Logger) error {
	logger.Debug("Writing output file", zap.String("file", path), zap.Int("bytes", len(data)))
	if err := atomicwriter.WriteFile(path, data, 0o644); err != nil {
		logger.Error("Failed to write output file", zap.String("file", path), zap.Error(err))
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
