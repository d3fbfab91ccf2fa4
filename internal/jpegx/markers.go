// Package jpegx holds JPEG marker codes shared by the scanner and its tests.
package jpegx

import "fmt"

// Marker codes, the byte that follows 0xFF.
const (
	MarkerStart = 0xFF
	SOF0        = 0xC0 // Start Of Frame (Baseline Sequential).
	DHT         = 0xC4 // Define Huffman Table.
	RST0        = 0xD0
	SOI         = 0xD8
	EOI         = 0xD9
	SOS         = 0xDA
	DQT         = 0xDB
	DRI         = 0xDD
	APP0        = 0xE0
	COM         = 0xFE
)

// Name returns a short mnemonic for a marker code, e.g. "SOF0" or "APP1".
func Name(code byte) string {
	switch code {
	case SOI:
		return "SOI"
	case EOI:
		return "EOI"
	case SOS:
		return "SOS"
	case DHT:
		return "DHT"
	case DQT:
		return "DQT"
	case DRI:
		return "DRI"
	case COM:
		return "COM"
	case 0x01:
		return "TEM"
	case MarkerStart:
		return "FILL"
	}
	switch {
	case code >= SOF0 && code <= SOF0+0xF:
		// C8 and CC are JPG and DAC, the rest are SOFn.
		if code == 0xC8 {
			return "JPG"
		}
		if code == 0xCC {
			return "DAC"
		}
		return fmt.Sprintf("SOF%d", code-SOF0)
	case code >= RST0 && code <= RST0+7:
		return fmt.Sprintf("RST%d", code-RST0)
	case code >= APP0 && code <= APP0+0xF:
		return fmt.Sprintf("APP%d", code-APP0)
	}
	return fmt.Sprintf("0x%02X", code)
}
