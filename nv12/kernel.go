package nv12

// ITU-R BT.601-family coefficients for YCbCr to RGB conversion, applied in a
// 10-bit-scaled intermediate domain:
//
//	R = (Y + 1.140*Cr) * 255/1024
//	G = (Y - 0.395*Cb - 0.581*Cr) * 255/1024
//	B = (Y + 2.032*Cb) * 255/1024
//
// where Y is the luma sample shifted to 10 bits and Cb/Cr are 10-bit chroma
// samples recentered around zero.
const (
	redCr   = 1.140
	greenCb = 0.395
	greenCr = 0.581
	blueCb  = 2.032

	// chromaMid is the zero-chroma point in the 10-bit scale.
	chromaMid = 512

	// outputScale maps the 10-bit intermediate back to [0, 255].
	outputScale = 255.0 / 1024.0

	// opaqueAlpha is the alpha written for 4-channel formats, in the same
	// [0, 255] scale as the color channels.
	opaqueAlpha = 255.0
)

// yuvToRGB converts one 10-bit-scaled YUV sample to RGB channel values in
// [0, 255], saturating rather than wrapping.
func yuvToRGB(y, cb, cr int32) (r, g, b float32) {
	luma := float32(y)
	fcb := float32(cb - chromaMid)
	fcr := float32(cr - chromaMid)
	r = clamp255((luma + redCr*fcr) * outputScale)
	g = clamp255((luma - greenCb*fcb - greenCr*fcr) * outputScale)
	b = clamp255((luma + blueCb*fcb) * outputScale)
	return r, g, b
}

func clamp255(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// processBlock runs every unit of work in one execution block whose top-left
// pixel is (bx, by). Each unit covers the pixel pair (x, y) and (x+1, y),
// which share one chroma sample pair. Units that fall past the image bound
// read and write nothing; pixels past the bound are never produced.
func processBlock(src *sourcePlanes, dst *destImage, width, height, bx, by int) {
	for ty := 0; ty < blockHeight; ty++ {
		y := by + ty
		if y >= height {
			return
		}
		for tx := 0; tx < blockWidth; tx++ {
			x := bx + 2*tx
			if x >= width {
				break
			}
			cb, cr := src.chromaPair(x, y)
			cb, cr = cb<<2, cr<<2

			r, g, b := yuvToRGB(src.luma(x, y)<<2, cb, cr)
			dst.packPixel(x, y, r, g, b, opaqueAlpha)

			if x+1 < width {
				r, g, b = yuvToRGB(src.luma(x+1, y)<<2, cb, cr)
				dst.packPixel(x+1, y, r, g, b, opaqueAlpha)
			}
		}
	}
}
