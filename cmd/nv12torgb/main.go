// nv12torgb converts a raw NV12 frame dump to a PNG or BMP image.
//
// The input file holds a single NV12 frame: height rows of luma at the
// source pitch, followed by height/2 rows of interleaved Cb/Cr byte pairs at
// the same pitch. Frame dumps compressed with gzip (.gz) or zstandard (.zst)
// are decompressed transparently based on the file extension.
//
// Usage:
//
//	nv12torgb [options] infile outfile
//
// Options:
//
//	-width <n>    frame width in pixels (required)
//	-height <n>   frame height in pixels (required)
//	-pitch <n>    source row pitch in bytes (default: width)
//	-version      show version information
//
// The output format is chosen by the outfile extension: .png or .bmp.
//
// Exit codes:
//
//	0: success
//	2: error (bad arguments, unreadable input, malformed frame)
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/image/bmp"

	"github.com/mrjoshuak/go-nv12/nv12"
)

const version = "1.0.0"

func main() {
	width := flag.Int("width", 0, "frame width in pixels")
	height := flag.Int("height", 0, "frame height in pixels")
	pitch := flag.Int("pitch", 0, "source row pitch in bytes (default: width)")
	showVersion := flag.Bool("version", false, "show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: nv12torgb [options] infile outfile\n\n")
		fmt.Fprintf(os.Stderr, "Convert a raw NV12 frame dump to a PNG or BMP image.\n\n")
		fmt.Fprintf(os.Stderr, "The input holds one NV12 frame: height rows of luma at the source\n")
		fmt.Fprintf(os.Stderr, "pitch, then height/2 rows of interleaved Cb/Cr pairs. Inputs ending\n")
		fmt.Fprintf(os.Stderr, "in .gz or .zst are decompressed transparently.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("nv12torgb version %s\n", version)
		os.Exit(0)
	}

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	if *width <= 0 || *height <= 0 {
		fmt.Fprintln(os.Stderr, "nv12torgb: -width and -height are required and must be positive")
		os.Exit(2)
	}
	if *pitch == 0 {
		*pitch = *width
	}

	infile := flag.Arg(0)
	outfile := flag.Arg(1)

	frame, err := readFrame(infile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nv12torgb: %v\n", err)
		os.Exit(2)
	}

	img, err := nv12.ToRGBA(frame, *pitch, *width, *height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nv12torgb: %v\n", err)
		os.Exit(2)
	}

	if err := writeImage(outfile, img); err != nil {
		fmt.Fprintf(os.Stderr, "nv12torgb: %v\n", err)
		os.Exit(2)
	}
}

// readFrame reads the raw frame, decompressing .gz and .zst inputs.
func readFrame(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// writeImage encodes the image based on the output extension.
func writeImage(path string, img *image.RGBA) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		err = bmp.Encode(out, img)
	case ".png", "":
		err = png.Encode(out, img)
	default:
		err = fmt.Errorf("unsupported output format %q (use .png or .bmp)", filepath.Ext(path))
	}
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
