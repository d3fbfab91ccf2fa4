package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/vearutop/jpegdim"
)

func main() {
	err := run(os.Args[1:], os.Stdout)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	case errors.Is(err, errUsage):
		usage()
		os.Exit(2)
	default:
		fail(err)
	}
}

var errUsage = errors.New("missing required arguments")

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: jpegdim -file input.jpg [-verbose]")
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("jpegdim", flag.ContinueOnError)
	var (
		path    string
		verbose bool
	)
	fs.StringVar(&path, "file", "", "input JPEG")
	fs.StringVar(&path, "f", "", "input JPEG (shorthand)")
	fs.BoolVar(&verbose, "verbose", false, "print the file path")
	fs.BoolVar(&verbose, "v", false, "print the file path (shorthand)")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if path == "" {
		return errUsage
	}

	dim, err := jpegdim.DecodeFile(path)
	if err != nil {
		return fmt.Errorf("decode jpeg: %w", err)
	}

	fmt.Fprintf(out, "Image dimensions: %dx%d\n", dim.Width, dim.Height)
	if verbose {
		fmt.Fprintln(out, "File path", path)
	}
	return nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
