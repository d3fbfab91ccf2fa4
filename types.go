package jpegdim

import "strconv"

// Dimensions holds the frame size read from a SOF0 segment.
type Dimensions struct {
	Width  uint16
	Height uint16
}

// String renders dimensions as WxH.
func (d Dimensions) String() string {
	return strconv.Itoa(int(d.Width)) + "x" + strconv.Itoa(int(d.Height))
}
