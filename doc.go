// Package jpegdim reads the pixel dimensions of a JPEG image from its
// baseline Start-Of-Frame (SOF0) segment without decoding any image data.
//
// The scanner walks marker segments over an in-memory buffer, skipping each
// by its declared length, and never reads past the end of the input.
package jpegdim
