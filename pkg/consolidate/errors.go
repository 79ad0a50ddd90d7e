// File: pkg/consolidate/errors.go
package consolidate

import (
	"errors"
	"fmt"
)

// ErrNotText is returned for content that is not UTF-8 text.
var ErrNotText = errors.New("content is not UTF-8 text")

// TraversalError reports a directory that could not be listed. It aborts the run.
type TraversalError struct {
	Path string
	Err  error
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("cannot list directory %s: %v", e.Path, e.Err)
}

func (e *TraversalError) Unwrap() error { return e.Err }

// ReadError reports a file that could not be read or decoded. The file is skipped.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports an output file that could not be written. It aborts the run.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
