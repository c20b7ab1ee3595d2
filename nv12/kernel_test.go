package nv12

import "testing"

func TestYuvToRGBMidGray(t *testing.T) {
	// Cb = Cr = 512 is the zero-chroma point: all three channels collapse
	// to scaled luma.
	r, g, b := yuvToRGB(64, chromaMid, chromaMid)

	want := float32(64) * outputScale
	if r != want || g != want || b != want {
		t.Errorf("yuvToRGB(64, mid, mid) = (%v, %v, %v), want all %v", r, g, b, want)
	}
}

func TestYuvToRGBSaturation(t *testing.T) {
	tests := []struct {
		name      string
		y, cb, cr int32
		wantR     float32
		wantB     float32
	}{
		{
			name: "max luma and chroma saturates high",
			y:    1020, cb: 1023, cr: 1023,
			wantR: 255, wantB: 255,
		},
		{
			name: "negative excursions saturate to zero",
			y:    0, cb: 0, cr: 0,
			wantR: 0, wantB: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := yuvToRGB(tt.y, tt.cb, tt.cr)
			if r != tt.wantR {
				t.Errorf("R = %v, want %v", r, tt.wantR)
			}
			if b != tt.wantB {
				t.Errorf("B = %v, want %v", b, tt.wantB)
			}
			if g < 0 || g > 255 {
				t.Errorf("G = %v out of [0, 255]", g)
			}
		})
	}
}

func TestYuvToRGBNeverWraps(t *testing.T) {
	// Sweep the corners of the input cube; every channel must stay inside
	// [0, 255] rather than wrapping.
	corners := []int32{0, 511, 512, 513, 1023}
	for _, y := range []int32{0, 64, 1020} {
		for _, cb := range corners {
			for _, cr := range corners {
				r, g, b := yuvToRGB(y, cb, cr)
				for name, v := range map[string]float32{"R": r, "G": g, "B": b} {
					if v < 0 || v > 255 {
						t.Fatalf("yuvToRGB(%d, %d, %d): %s = %v out of range", y, cb, cr, name, v)
					}
				}
			}
		}
	}
}

func TestClamp255(t *testing.T) {
	tests := []struct {
		in   float32
		want float32
	}{
		{-1000, 0},
		{-0.001, 0},
		{0, 0},
		{127.5, 127.5},
		{255, 255},
		{255.001, 255},
		{1e9, 255},
	}
	for _, tt := range tests {
		if got := clamp255(tt.in); got != tt.want {
			t.Errorf("clamp255(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// buildSource assembles an NV12 buffer from explicit luma rows and chroma
// rows, all at the given pitch.
func buildSource(pitch int, lumaRows, chromaRows [][]byte) []byte {
	buf := make([]byte, pitch*(len(lumaRows)+len(chromaRows)))
	for i, row := range lumaRows {
		copy(buf[i*pitch:], row)
	}
	base := pitch * len(lumaRows)
	for i, row := range chromaRows {
		copy(buf[base+i*pitch:], row)
	}
	return buf
}

func TestChromaPairEvenRowDirect(t *testing.T) {
	src := buildSource(4,
		[][]byte{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
		[][]byte{{10, 20, 30, 40}, {50, 60, 70, 80}},
	)
	p := newSourcePlanes(src, 4, 4)

	// Even rows read chroma row y>>1 with no averaging.
	for _, tt := range []struct {
		x, y   int
		cb, cr int32
	}{
		{0, 0, 10, 20},
		{2, 0, 30, 40},
		{0, 2, 50, 60},
		{2, 2, 70, 80},
	} {
		cb, cr := p.chromaPair(tt.x, tt.y)
		if cb != tt.cb || cr != tt.cr {
			t.Errorf("chromaPair(%d, %d) = (%d, %d), want (%d, %d)",
				tt.x, tt.y, cb, cr, tt.cb, tt.cr)
		}
	}
}

func TestChromaPairOddRowRounding(t *testing.T) {
	// (a + b + 1) >> 1 rounds half up: 10 and 11 average to 11, not 10.
	src := buildSource(4,
		[][]byte{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
		[][]byte{{10, 200, 10, 11}, {11, 201, 11, 10}},
	)
	p := newSourcePlanes(src, 4, 4)

	cb, cr := p.chromaPair(0, 1)
	if cb != 11 {
		t.Errorf("Cb = %d, want 11 (half-up rounding of 10 and 11)", cb)
	}
	if cr != 201 {
		t.Errorf("Cr = %d, want 201 (half-up rounding of 200 and 201)", cr)
	}

	cb, cr = p.chromaPair(2, 1)
	if cb != 11 || cr != 11 {
		t.Errorf("chromaPair(2, 1) = (%d, %d), want (11, 11)", cb, cr)
	}
}

func TestChromaPairLastRowReuse(t *testing.T) {
	// Odd luma row 3 maps to chroma row 1, the last one: no next row exists,
	// so its value is reused without interpolation.
	src := buildSource(2,
		[][]byte{{0, 0}, {0, 0}, {0, 0}, {0, 0}},
		[][]byte{{10, 20}, {90, 100}},
	)
	p := newSourcePlanes(src, 2, 4)

	cb, cr := p.chromaPair(0, 3)
	if cb != 90 || cr != 100 {
		t.Errorf("chromaPair(0, 3) = (%d, %d), want raw last row (90, 100)", cb, cr)
	}
}

func TestChromaPairLastRowNoOverrun(t *testing.T) {
	// A buffer sized exactly to the declared extents must not be read past.
	// The chroma plane's last row holds only width bytes here.
	pitch, width, height := 8, 4, 2
	src := make([]byte, pitch*height+width)
	p := newSourcePlanes(src, pitch, height)

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("chromaPair read past declared extents: %v", r)
		}
	}()
	p.chromaPair(width-2, height-1)
}
