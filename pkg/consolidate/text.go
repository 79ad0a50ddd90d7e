// File: pkg/consolidate/text.go
package consolidate

import (
	"bytes"
	"io/fs"
	"unicode/utf8"
)

// IsText reports whether data can be embedded in the document: valid UTF-8 with no NUL bytes.
// Empty content is text.
func IsText(data []byte) bool {
	if bytes.IndexByte(data, 0) >= 0 {
		return false
	}
	return utf8.Valid(data)
}

// readText reads name from fsys and rejects anything that is not text.
func readText(fsys fs.FS, name string) ([]byte, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, &ReadError{Path: DisplayPath(name), Err: err}
	}
	if !IsText(data) {
		return nil, &ReadError{Path: DisplayPath(name), Err: ErrNotText}
	}
	return data, nil
}
