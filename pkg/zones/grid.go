package zones

import (
	"math"

	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/geo"
)

// CellState classifies one occupancy grid cell.
type CellState uint8

const (
	CellOpen CellState = iota
	CellWall
	CellForbidden
	CellEntrance
)

// Grid is a raster occupancy view of the floor at a fixed resolution.
// It is built once per detection run and discarded after zone extraction.
type Grid struct {
	Origin     geo.Point
	Resolution float64 // meters per cell
	Cols, Rows int

	cells []CellState
}

// NewGrid allocates an all-open grid covering the given bounds. A degenerate
// bounds yields a zero-size grid.
func NewGrid(bounds geo.Rect, resolution float64) *Grid {
	g := &Grid{
		Origin:     geo.Pt(bounds.MinX, bounds.MinY),
		Resolution: resolution,
	}
	if bounds.IsDegenerate() || resolution <= 0 {
		return g
	}
	g.Cols = int(math.Ceil(bounds.Width() / resolution))
	g.Rows = int(math.Ceil(bounds.Height() / resolution))
	g.cells = make([]CellState, g.Cols*g.Rows)
	return g
}

// At returns the state of cell (c, r). Out-of-range cells read as walls so
// flood fill never escapes the grid.
func (g *Grid) At(c, r int) CellState {
	if c < 0 || r < 0 || c >= g.Cols || r >= g.Rows {
		return CellWall
	}
	return g.cells[r*g.Cols+c]
}

// mark sets cell (c, r) to state. When onlyOpen is true an already marked
// cell is left untouched.
func (g *Grid) mark(c, r int, state CellState, onlyOpen bool) {
	if c < 0 || r < 0 || c >= g.Cols || r >= g.Rows {
		return
	}
	i := r*g.Cols + c
	if onlyOpen && g.cells[i] != CellOpen {
		return
	}
	g.cells[i] = state
}

// cellOf maps a world point to its cell coordinates.
func (g *Grid) cellOf(p geo.Point) (int, int) {
	return int(math.Floor((p.X - g.Origin.X) / g.Resolution)),
		int(math.Floor((p.Y - g.Origin.Y) / g.Resolution))
}

// cellCenter maps cell coordinates back to the world-space cell center.
func (g *Grid) cellCenter(c, r int) geo.Point {
	return geo.Pt(
		g.Origin.X+(float64(c)+0.5)*g.Resolution,
		g.Origin.Y+(float64(r)+0.5)*g.Resolution,
	)
}

// RasterizeWall marks the cells traversed by the segment, plus a buffer
// radius around each, as walls. Uses integer-error line stepping so thin
// diagonal walls stay contiguous. Already marked non-open cells keep their
// state.
func (g *Grid) RasterizeWall(s geo.Segment, buffer float64) {
	if g.Cols == 0 || g.Rows == 0 {
		return
	}
	c0, r0 := g.cellOf(s.A)
	c1, r1 := g.cellOf(s.B)
	radius := int(math.Ceil(buffer / g.Resolution))

	dc := abs(c1 - c0)
	dr := abs(r1 - r0)
	sc, sr := 1, 1
	if c0 > c1 {
		sc = -1
	}
	if r0 > r1 {
		sr = -1
	}
	e := dc - dr

	c, r := c0, r0
	for {
		g.markDisk(c, r, radius, CellWall)
		if c == c1 && r == r1 {
			break
		}
		e2 := 2 * e
		if e2 > -dr {
			e -= dr
			c += sc
		}
		if e2 < dc {
			e += dc
			r += sr
		}
	}
}

// markDisk marks the square neighborhood of (c, r) within radius cells.
func (g *Grid) markDisk(c, r, radius int, state CellState) {
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			g.mark(c+dc, r+dr, state, true)
		}
	}
}

// MarkRect marks every open cell whose center lies within the rectangle.
func (g *Grid) MarkRect(rect geo.Rect, state CellState) {
	if g.Cols == 0 || g.Rows == 0 || rect.IsDegenerate() {
		return
	}
	c0, r0 := g.cellOf(geo.Pt(rect.MinX, rect.MinY))
	c1, r1 := g.cellOf(geo.Pt(rect.MaxX, rect.MaxY))
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			if rect.Contains(g.cellCenter(c, r)) {
				g.mark(c, r, state, true)
			}
		}
	}
}

// OpenCount returns the number of open cells, mainly for tests.
func (g *Grid) OpenCount() int {
	n := 0
	for _, s := range g.cells {
		if s == CellOpen {
			n++
		}
	}
	return n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
