// Package errs defines the error values returned by the friproof codecs.
//
// All failures are reported through these sentinels so callers can match them
// with errors.Is regardless of how much context was wrapped around them.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrElementOverflow is returned when a field element needs more bytes than its configured width.
	ErrElementOverflow = errors.New("field element exceeds configured width")
	// ErrNegativeElement is returned when a negative value is passed as a field element.
	ErrNegativeElement = errors.New("field element is negative")
	// ErrNilElement is returned when a nil value is passed as a field element.
	ErrNilElement = errors.New("field element is nil")
	// ErrInvalidElementWidth is returned when an element width is zero or negative.
	ErrInvalidElementWidth = errors.New("invalid field element width")

	// ErrShortBuffer is returned when a decoder reaches the end of its input before a field is complete.
	ErrShortBuffer = errors.New("buffer too short")
	// ErrInvalidCount is returned when a declared count implies a read past the end of the input.
	ErrInvalidCount = errors.New("declared count exceeds remaining data")
	// ErrTrailingData is returned when bytes remain after a complete proof was parsed.
	ErrTrailingData = errors.New("trailing data after proof")

	// ErrRecordWidth is returned when a record does not have the declared record width.
	ErrRecordWidth = errors.New("record width mismatch")
	// ErrCountOverflow is returned when a count does not fit its prefix width.
	ErrCountOverflow = errors.New("count exceeds prefix capacity")

	// ErrInvalidConfig is returned when a codec configuration option is rejected.
	ErrInvalidConfig = errors.New("invalid codec configuration")
	// ErrRowShape is returned when register arrays do not match the configured row layout.
	ErrRowShape = errors.New("register arrays do not match row layout")

	// ErrUnknownAlgorithm is returned for an unsupported hash algorithm name.
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")
)

// DecodeError reports which field a decoder was reading when it failed.
type DecodeError struct {
	Field  string // name of the field being read, e.g. "degree.components[2].columnRoot"
	Offset int    // byte offset where the field starts
	Need   int    // bytes required to complete the field
	Have   int    // bytes remaining at Offset
	Err    error  // ErrShortBuffer or ErrInvalidCount
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s at offset %d: %v (need %d bytes, have %d)", e.Field, e.Offset, e.Err, e.Need, e.Have)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
