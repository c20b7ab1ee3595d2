package nv12

import "errors"

// Conversion errors. Validation errors are returned before any parallel work
// is dispatched; on a validation error the destination buffer is untouched.
var (
	ErrNilSource        = errors.New("nv12: nil source buffer")
	ErrNilDestination   = errors.New("nv12: nil destination buffer")
	ErrInvalidPitch     = errors.New("nv12: row pitch must cover the image width")
	ErrInvalidSize      = errors.New("nv12: width and height must be positive")
	ErrOddDimensions    = errors.New("nv12: width and height must be even")
	ErrInvalidFormat    = errors.New("nv12: unknown pixel format")
	ErrShortSource      = errors.New("nv12: source buffer too small for geometry")
	ErrShortDestination = errors.New("nv12: destination buffer too small for geometry")

	// ErrDevice reports a failure inside the parallel stage. The destination
	// buffer's contents are undefined when this is returned.
	ErrDevice = errors.New("nv12: parallel execution failed")
)
