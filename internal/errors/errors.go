package errors

import (
	"fmt"
)

// FileReadError indicates the dogs file could not be opened or read.
// Open-ended over the underlying cause (missing file, permissions, any I/O fault).
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read file %s: %v", e.Path, e.Err)
}
func (e *FileReadError) Unwrap() error { return e.Err }

// ParseError indicates file content could not be decoded as JSON of the
// expected shape. Covers syntax errors and type mismatches alike, so the
// taxonomy stays two-way at the call site.
type ParseError struct {
	Source string // e.g. file path
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse JSON from %s: %v", e.Source, e.Err)
}
func (e *ParseError) Unwrap() error { return e.Err }
