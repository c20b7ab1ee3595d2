package nv12

// Execution block dimensions, in units of work. Each unit of work covers two
// horizontally adjacent pixels, so a block spans 2*blockWidth pixels across
// and blockHeight pixels down.
const (
	blockWidth  = 32
	blockHeight = 8
)

// grid describes the set of execution blocks covering one image. The
// rightmost and bottommost blocks may extend past the image bound; units of
// work inside them bound-check before touching memory. No block starts
// beyond the bound, so every block contains at least one valid unit.
type grid struct {
	cols int
	rows int
}

func launchGrid(width, height int) grid {
	span := 2 * blockWidth
	return grid{
		cols: (width + span - 1) / span,
		rows: (height + blockHeight - 1) / blockHeight,
	}
}

// blocks returns the total number of execution blocks.
func (g grid) blocks() int {
	return g.cols * g.rows
}

// origin returns the top-left pixel coordinate of block i, for i in
// [0, blocks()). Blocks are numbered row-major.
func (g grid) origin(i int) (x, y int) {
	return (i % g.cols) * 2 * blockWidth, (i / g.cols) * blockHeight
}
