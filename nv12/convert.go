package nv12

import (
	"fmt"
	"image"
	"sync"
)

// Convert converts an NV12 frame to packed RGB(A) pixels.
//
// src holds the luma plane (height rows at srcPitch bytes each) followed at
// byte offset srcPitch*height by the interleaved Cb/Cr plane (height/2 rows
// at the same pitch). dst receives width*height packed pixels of the given
// format, rows dstPitch bytes apart. Both pitches may exceed the tight row
// width; padding bytes are never touched.
//
// Arguments are validated before any work is dispatched: on a validation
// error the destination is untouched. The conversion itself runs
// concurrently across execution blocks and has completed when Convert
// returns.
func Convert(src []byte, srcPitch int, dst []byte, dstPitch int, width, height int, format PixelFormat) error {
	if err := validate(src, srcPitch, dst, dstPitch, width, height, format); err != nil {
		return err
	}

	planes := newSourcePlanes(src, srcPitch, height)
	out := &destImage{data: dst, pitch: dstPitch, format: format}

	g := launchGrid(width, height)
	return dispatch(g.blocks(), func(i int) {
		bx, by := g.origin(i)
		processBlock(&planes, out, width, height, bx, by)
	})
}

// ConvertPacked is Convert with tight default pitches: srcPitch = width and
// dstPitch = width * format.PixelSize().
func ConvertPacked(src, dst []byte, width, height int, format PixelFormat) error {
	return Convert(src, width, dst, width*format.PixelSize(), width, height, format)
}

// ToRGBA converts an NV12 frame into a freshly allocated image.RGBA.
func ToRGBA(src []byte, srcPitch, width, height int) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if err := Convert(src, srcPitch, img.Pix, img.Stride, width, height, RGBA8); err != nil {
		return nil, err
	}
	return img, nil
}

func validate(src []byte, srcPitch int, dst []byte, dstPitch int, width, height int, format PixelFormat) error {
	if src == nil {
		return ErrNilSource
	}
	if dst == nil {
		return ErrNilDestination
	}
	if width <= 0 || height <= 0 {
		return ErrInvalidSize
	}
	if width%2 != 0 || height%2 != 0 {
		return ErrOddDimensions
	}
	if !format.valid() {
		return ErrInvalidFormat
	}
	if srcPitch < width {
		return ErrInvalidPitch
	}
	if dstPitch < width*format.PixelSize() {
		return ErrInvalidPitch
	}

	// The last row of each plane only needs to reach its final addressed
	// byte, not a full pitch, so tight width*height*3/2 frames are accepted.
	minSrc := srcPitch*height + srcPitch*(height/2-1) + width
	if len(src) < minSrc {
		return ErrShortSource
	}
	minDst := dstPitch*(height-1) + width*format.PixelSize()
	if len(dst) < minDst {
		return ErrShortDestination
	}
	return nil
}

// dispatch fans n blocks out across the worker goroutines. A panic escaping
// any unit of work is recovered and surfaced as ErrDevice; the remaining
// blocks still run, and the destination contents are undefined on failure.
func dispatch(n int, fn func(i int)) error {
	var (
		panicOnce  sync.Once
		panicValue any
	)

	parallelFor(n, func(i int) {
		defer func() {
			if r := recover(); r != nil {
				panicOnce.Do(func() {
					panicValue = r
				})
			}
		}()
		fn(i)
	})

	if panicValue != nil {
		return fmt.Errorf("%w: %v", ErrDevice, panicValue)
	}
	return nil
}
