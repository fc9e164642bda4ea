package receiptpdf

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the library. Every error produced by a
// pipeline stage wraps exactly one of them.
var (
	// ErrClosed is returned when attempting to use a closed [Converter].
	ErrClosed = errors.New("receiptpdf: converter is closed")

	// ErrInputNotFound is returned when the tabular source does not exist.
	ErrInputNotFound = errors.New("receiptpdf: input not found")

	// ErrMalformedRow is returned when a row cannot be turned into a LineItem.
	ErrMalformedRow = errors.New("receiptpdf: malformed row")

	// ErrTemplate is returned when the markup template is missing, invalid or
	// lacks a required substitution point.
	ErrTemplate = errors.New("receiptpdf: template error")

	// ErrRender is returned when a rendering backend fails to produce output.
	ErrRender = errors.New("receiptpdf: render failed")

	// ErrWrite is returned when the output cannot be created or written.
	ErrWrite = errors.New("receiptpdf: write failed")

	// ErrViewerLaunch is returned by a [Viewer] that could not open a file.
	ErrViewerLaunch = errors.New("receiptpdf: viewer launch failed")

	// ErrUnknownStrategy is returned by [ParseStrategy].
	ErrUnknownStrategy = errors.New("receiptpdf: unknown renderer strategy")
)

// RowError describes a malformed input row. It matches [ErrMalformedRow]
// with errors.Is.
type RowError struct {
	Line   int    // 1-based line in the source, header included
	Column string // offending column, empty for row-level problems
	Value  string // raw field value
	Err    error  // underlying cause
}

func (e *RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%v: line %d: %v", ErrMalformedRow, e.Line, e.Err)
	}
	return fmt.Sprintf("%v: line %d: column %q value %q: %v",
		ErrMalformedRow, e.Line, e.Column, e.Value, e.Err)
}

func (e *RowError) Unwrap() []error {
	return []error{ErrMalformedRow, e.Err}
}
