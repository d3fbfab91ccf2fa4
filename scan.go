package jpegdim

import (
	"encoding/binary"

	"github.com/vearutop/jpegdim/internal/jpegx"
)

// sof0Size is the number of bytes after the marker code that Decode needs:
// segment length, precision, height and width.
const sof0Size = 7

// Decode scans data for the first SOF0 segment and returns the frame size.
//
// Bytes between segments that are not 0xFF are skipped one at a time. Any
// marker other than SOF0 is skipped by its length field, which must fit in
// data. The returned error is ErrInvalidSignature, ErrSOFNotFound or a
// *ParseError wrapping ErrUnexpectedEndOfInput.
func Decode(data []byte) (Dimensions, error) {
	if len(data) < 2 || data[0] != jpegx.MarkerStart || data[1] != jpegx.SOI {
		return Dimensions{}, ErrInvalidSignature
	}

	pos := 2
	for pos+1 < len(data) {
		if data[pos] != jpegx.MarkerStart {
			pos++
			continue
		}
		marker := data[pos+1]

		if marker == jpegx.SOF0 {
			if pos+1+sof0Size >= len(data) {
				return Dimensions{}, &ParseError{Kind: ErrUnexpectedEndOfInput, Offset: pos, Marker: marker}
			}
			return Dimensions{
				Height: binary.BigEndian.Uint16(data[pos+5:]),
				Width:  binary.BigEndian.Uint16(data[pos+7:]),
			}, nil
		}

		if pos+3 >= len(data) {
			return Dimensions{}, &ParseError{Kind: ErrUnexpectedEndOfInput, Offset: pos, Marker: marker}
		}
		segLen := int(binary.BigEndian.Uint16(data[pos+2:]))
		if pos+2+segLen > len(data) {
			return Dimensions{}, &ParseError{Kind: ErrUnexpectedEndOfInput, Offset: pos, Marker: marker}
		}
		pos += segLen + 2
	}

	return Dimensions{}, ErrSOFNotFound
}
