package nv12

// sourcePlanes resolves luma and chroma addressing within a single NV12
// buffer. The chroma plane begins at pitch*height and shares the luma pitch.
type sourcePlanes struct {
	data          []byte
	pitch         int
	chromaBase    int
	lastChromaRow int
}

func newSourcePlanes(data []byte, pitch, height int) sourcePlanes {
	return sourcePlanes{
		data:          data,
		pitch:         pitch,
		chromaBase:    pitch * height,
		lastChromaRow: height/2 - 1,
	}
}

// luma returns the raw 8-bit luma sample at (x, y).
func (p *sourcePlanes) luma(x, y int) int32 {
	return int32(p.data[y*p.pitch+x])
}

// chromaPair returns the raw 8-bit Cb/Cr pair shared by luma columns x and
// x+1 on luma row y. x must be even. Even rows read chroma row y>>1
// directly. Odd rows lie between two chroma rows and average them with
// half-up rounding, unless y>>1 is the last chroma row, whose value is
// reused unmodified.
func (p *sourcePlanes) chromaPair(x, y int) (cb, cr int32) {
	row := p.chromaBase + (y>>1)*p.pitch
	cb = int32(p.data[row+x])
	cr = int32(p.data[row+x+1])
	if y&1 != 0 && y>>1 < p.lastChromaRow {
		next := row + p.pitch
		cb = (cb + int32(p.data[next+x]) + 1) >> 1
		cr = (cr + int32(p.data[next+x+1]) + 1) >> 1
	}
	return cb, cr
}
