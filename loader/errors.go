package loader

import (
	"fmt"
)

// IOError reports a failure to read a file needed by the import: the
// document itself, a referenced buffer, or a referenced image. It names the
// path and wraps the underlying OS error.
type IOError struct {
	// Path is the file that could not be read.
	Path string

	// Err is the underlying OS error.
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read %q: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// FormatError reports a malformed document: invalid JSON, a missing required
// field, an out-of-range cross-reference, an unrecognized enumerated code, or
// mismatched attribute counts within a primitive. A FormatError aborts the
// whole import; no partial scene is returned.
type FormatError struct {
	// Detail describes the violation, naming the offending field and the
	// containing entity's index where one exists.
	Detail string

	// Err is the underlying decode error, if any.
	Err error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		if e.Detail == "" {
			return fmt.Sprintf("invalid glTF document: %v", e.Err)
		}
		return fmt.Sprintf("invalid glTF document: %s: %v", e.Detail, e.Err)
	}
	return fmt.Sprintf("invalid glTF document: %s", e.Detail)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// UnsupportedError reports input that is recognized but deliberately not
// implemented (GLB containers, data-URI payloads, sparse accessors, and so
// on). It is a distinct type so hosts can present "not yet supported" rather
// than "corrupt file".
type UnsupportedError struct {
	// Feature names the unsupported input.
	Feature string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported feature: %s", e.Feature)
}

// formatErrf builds a FormatError from a format string.
func formatErrf(format string, args ...any) *FormatError {
	return &FormatError{Detail: fmt.Sprintf(format, args...)}
}

// unsupportedf builds an UnsupportedError from a format string.
func unsupportedf(format string, args ...any) *UnsupportedError {
	return &UnsupportedError{Feature: fmt.Sprintf(format, args...)}
}
