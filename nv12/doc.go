// Package nv12 converts biplanar NV12 frames to packed RGB and RGBA pixels.
//
// NV12 is the 4:2:0 chroma-subsampled layout produced by hardware video
// decoders and cameras: a full-resolution luma plane followed immediately by
// a half-height plane of interleaved Cb/Cr byte pairs, each pair shared by a
// 2x2 block of luma samples. Both planes use the same row pitch, which may
// exceed the image width due to alignment padding.
//
// The conversion is a stateless, single-pass pixel transform. Work is tiled
// into fixed-size execution blocks and fanned out across goroutines; each
// unit of work produces two horizontally adjacent output pixels that share
// one chroma sample pair. Odd luma rows fall between two chroma rows and
// reconstruct their chroma by averaging, except at the bottom of the plane
// where the last chroma row is reused.
//
// The caller owns both buffers. Convert neither allocates nor retains them,
// and the destination is written only after all arguments validate.
package nv12
