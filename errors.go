package jpegdim

import (
	"errors"
	"fmt"

	"github.com/vearutop/jpegdim/internal/jpegx"
)

// Parse error kinds. Use errors.Is to branch on them.
var (
	// ErrInvalidSignature means the input does not start with the SOI marker.
	ErrInvalidSignature = errors.New("not a valid JPEG file")
	// ErrUnexpectedEndOfInput means a segment extends past the end of the input.
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
	// ErrSOFNotFound means the input was exhausted before a SOF0 marker.
	ErrSOFNotFound = errors.New("SOF0 marker not found")
)

// ParseError describes where in the input a segment turned out to be truncated.
type ParseError struct {
	Kind   error // One of the Err* kinds.
	Offset int   // Offset of the 0xFF byte of the marker.
	Marker byte
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %s marker at offset %d", e.Kind, jpegx.Name(e.Marker), e.Offset)
}

// Unwrap returns the error kind.
func (e *ParseError) Unwrap() error {
	return e.Kind
}
