package jpegdim_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vearutop/jpegdim"
)

func ExampleDecode() {
	data := []byte{
		0xFF, 0xD8, // SOI
		0xFF, 0xFE, 0x00, 0x05, 'h', 'i', '!', // COM
		0xFF, 0xC0, 0x00, 0x11, 0x08, 0x01, 0x2C, 0x02, 0x58, // SOF0
	}
	dim, err := jpegdim.Decode(data)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(dim)

	_, err = jpegdim.Decode(data[:12])
	fmt.Println(errors.Is(err, jpegdim.ErrUnexpectedEndOfInput))

	// Output:
	// 600x300
	// true
}

func ExampleDecodeFile() {
	dim, err := jpegdim.DecodeFile(filepath.FromSlash("testdata/photo.jpg"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println("Image dimensions:", dim)
}
