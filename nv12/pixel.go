package nv12

import (
	"encoding/binary"
	"math"
)

// PixelFormat selects the destination pixel layout. The conversion math is
// shared; only the channel count and element representation differ.
type PixelFormat int

const (
	// RGB8 packs each pixel as three uint8 channels (R, G, B).
	RGB8 PixelFormat = iota
	// RGBA8 packs each pixel as four uint8 channels (R, G, B, A), A = 255.
	RGBA8
	// RGBFloat32 packs each pixel as three little-endian float32 channels,
	// each in [0, 255].
	RGBFloat32
	// RGBAFloat32 packs each pixel as four little-endian float32 channels,
	// each in [0, 255], A = 255.
	RGBAFloat32
)

// Channels returns the number of channels per pixel.
func (f PixelFormat) Channels() int {
	switch f {
	case RGB8, RGBFloat32:
		return 3
	default:
		return 4
	}
}

// ElementSize returns the size in bytes of one channel element.
func (f PixelFormat) ElementSize() int {
	switch f {
	case RGB8, RGBA8:
		return 1
	default:
		return 4
	}
}

// PixelSize returns the size in bytes of one packed pixel.
func (f PixelFormat) PixelSize() int {
	return f.Channels() * f.ElementSize()
}

func (f PixelFormat) String() string {
	switch f {
	case RGB8:
		return "rgb8"
	case RGBA8:
		return "rgba8"
	case RGBFloat32:
		return "rgb-float32"
	case RGBAFloat32:
		return "rgba-float32"
	default:
		return "unknown"
	}
}

func (f PixelFormat) valid() bool {
	return f >= RGB8 && f <= RGBAFloat32
}

// destImage is a pitch-aware view of the packed output buffer.
type destImage struct {
	data   []byte
	pitch  int
	format PixelFormat
}

// packPixel writes one packed pixel at (x, y) from four scalar channel
// values. Byte formats truncate, matching a float-to-integer cast; float
// formats store the clamped value as-is.
func (d *destImage) packPixel(x, y int, r, g, b, a float32) {
	off := y*d.pitch + x*d.format.PixelSize()
	switch d.format {
	case RGB8:
		d.data[off+0] = uint8(r)
		d.data[off+1] = uint8(g)
		d.data[off+2] = uint8(b)
	case RGBA8:
		d.data[off+0] = uint8(r)
		d.data[off+1] = uint8(g)
		d.data[off+2] = uint8(b)
		d.data[off+3] = uint8(a)
	case RGBFloat32:
		putFloat32(d.data[off+0:], r)
		putFloat32(d.data[off+4:], g)
		putFloat32(d.data[off+8:], b)
	case RGBAFloat32:
		putFloat32(d.data[off+0:], r)
		putFloat32(d.data[off+4:], g)
		putFloat32(d.data[off+8:], b)
		putFloat32(d.data[off+12:], a)
	}
}

// putFloat32 stores a little-endian float32. Destination pitches are byte
// counts, so element offsets are not guaranteed to be 4-byte aligned.
func putFloat32(p []byte, v float32) {
	binary.LittleEndian.PutUint32(p, math.Float32bits(v))
}

// getFloat32 reads back a little-endian float32.
func getFloat32(p []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(p))
}
