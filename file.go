package jpegdim

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DecodeReader reads r to the end and decodes the dimensions of its contents.
// Read errors are returned wrapped and are never one of the parse error kinds.
func DecodeReader(r io.Reader) (Dimensions, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Dimensions{}, fmt.Errorf("read jpeg: %w", err)
	}
	return Decode(data)
}

// DecodeFile reads the file at path and decodes its dimensions.
func DecodeFile(path string) (Dimensions, error) {
	path = filepath.Clean(path)
	f, err := os.Open(path)
	if err != nil {
		return Dimensions{}, fmt.Errorf("open file %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return Dimensions{}, fmt.Errorf("read file %s: %w", path, err)
	}
	return Decode(data)
}
