package mazefile

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is the parent of every maze file validation error.
	ErrFormat = errors.New("invalid maze format")
	// ErrFile is returned when a maze file cannot be opened or written.
	ErrFile = errors.New("maze file error")

	ErrSize            = fmt.Errorf("%w: dimension out of range", ErrFormat)
	ErrRowLength       = fmt.Errorf("%w: row length mismatch", ErrFormat)
	ErrInvalidChar     = fmt.Errorf("%w: invalid character", ErrFormat)
	ErrDuplicateMarker = fmt.Errorf("%w: duplicate marker", ErrFormat)
	ErrMissingMarker   = fmt.Errorf("%w: missing marker", ErrFormat)
)

// FormatError describes where a maze file failed validation.
// Kind is one of ErrSize, ErrRowLength, ErrInvalidChar, ErrDuplicateMarker
// or ErrMissingMarker.
type FormatError struct {
	Kind   error
	Line   int // 1-based; 0 when the error is not tied to a line
	Column int // 1-based; 0 when the error is not tied to a column
	Detail string
}

func (e *FormatError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("%v at line %d, column %d: %s", e.Kind, e.Line, e.Column, e.Detail)
	case e.Line > 0:
		return fmt.Sprintf("%v at line %d: %s", e.Kind, e.Line, e.Detail)
	default:
		return fmt.Sprintf("%v: %s", e.Kind, e.Detail)
	}
}

func (e *FormatError) Unwrap() error {
	return e.Kind
}
