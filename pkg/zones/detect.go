package zones

import (
	"fmt"
	"sort"

	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/geo"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/plan"
)

// Zone is a detected open, placeable region of the floor. The polygon is the
// region's axis-aligned bounding rectangle; the raw cell list is retained so
// placement heuristics can reuse the finer-grained occupancy.
type Zone struct {
	ID      string      `json:"id"`
	Polygon geo.Polygon `json:"-"`
	Bounds  geo.Rect    `json:"bounds"`
	Area    float64     `json:"area"`
	Cells   [][2]int    `json:"-"`
}

// Options configures zone detection. Zero values select the defaults.
type Options struct {
	Resolution        float64 // grid resolution in meters per cell (0.5)
	WallBuffer        float64 // buffer marked around wall cells (0.3)
	ForbiddenBuffer   float64 // expansion of forbidden zone boxes (2.0)
	EntranceClearance float64 // expansion of entrance boxes (3.0)
	MinZoneArea       float64 // minimum component area in m2 (20)
}

func (o Options) withDefaults() Options {
	if o.Resolution <= 0 {
		o.Resolution = 0.5
	}
	if o.WallBuffer <= 0 {
		o.WallBuffer = 0.3
	}
	if o.ForbiddenBuffer <= 0 {
		o.ForbiddenBuffer = 2.0
	}
	if o.EntranceClearance <= 0 {
		o.EntranceClearance = 3.0
	}
	if o.MinZoneArea <= 0 {
		o.MinZoneArea = 20.0
	}
	return o
}

// Detect rasterizes the floor plan into an occupancy grid, extracts the
// connected open regions above the minimum area, and returns them sorted by
// area descending (stable on discovery order). A degenerate bounds yields no
// zones; missing walls, forbidden zones, or entrances are treated as empty.
func Detect(fp *plan.FloorPlan, opts Options) []Zone {
	if fp == nil {
		return nil
	}
	opts = opts.withDefaults()

	g := NewGrid(fp.Bounds.Rect(), opts.Resolution)
	if g.Cols == 0 || g.Rows == 0 {
		return nil
	}

	for _, w := range fp.Walls {
		if w.Start == w.End {
			continue
		}
		g.RasterizeWall(w.Segment(), opts.WallBuffer)
	}
	for _, fz := range fp.ForbiddenZones {
		if len(fz.Polygon) == 0 && fz.Bounds == nil {
			continue
		}
		g.MarkRect(fz.Rect().Expand(opts.ForbiddenBuffer), CellForbidden)
	}
	for _, e := range fp.Entrances {
		g.MarkRect(e.Rect().Expand(opts.EntranceClearance), CellEntrance)
	}

	return extract(g, opts)
}

// extract flood-fills the open cells into components and converts those
// above the minimum area into zones.
func extract(g *Grid, opts Options) []Zone {
	cellArea := g.Resolution * g.Resolution
	visited := make([]bool, g.Cols*g.Rows)

	type component struct {
		cells [][2]int
		order int
	}
	var comps []component

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if visited[r*g.Cols+c] || g.At(c, r) != CellOpen {
				continue
			}

			// Iterative 4-connected flood fill. The explicit stack keeps
			// the depth bounded on large grids.
			var cells [][2]int
			stack := [][2]int{{c, r}}
			visited[r*g.Cols+c] = true
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				cells = append(cells, cur)

				for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
					nc, nr := cur[0]+d[0], cur[1]+d[1]
					if nc < 0 || nr < 0 || nc >= g.Cols || nr >= g.Rows {
						continue
					}
					if visited[nr*g.Cols+nc] || g.At(nc, nr) != CellOpen {
						continue
					}
					visited[nr*g.Cols+nc] = true
					stack = append(stack, [2]int{nc, nr})
				}
			}

			if float64(len(cells))*cellArea >= opts.MinZoneArea {
				comps = append(comps, component{cells: cells, order: len(comps)})
			}
		}
	}

	// Largest first; ties keep discovery order.
	sort.SliceStable(comps, func(i, j int) bool {
		return len(comps[i].cells) > len(comps[j].cells)
	})

	zones := make([]Zone, 0, len(comps))
	for i, comp := range comps {
		bounds := cellBounds(g, comp.cells)
		zones = append(zones, Zone{
			ID:      fmt.Sprintf("zone_%02d", i),
			Polygon: bounds.Polygon(),
			Bounds:  bounds,
			Area:    float64(len(comp.cells)) * cellArea,
			Cells:   comp.cells,
		})
	}
	return zones
}

// cellBounds returns the world-space bounding rectangle of a cell set.
func cellBounds(g *Grid, cells [][2]int) geo.Rect {
	minC, minR := cells[0][0], cells[0][1]
	maxC, maxR := minC, minR
	for _, cl := range cells[1:] {
		if cl[0] < minC {
			minC = cl[0]
		}
		if cl[1] < minR {
			minR = cl[1]
		}
		if cl[0] > maxC {
			maxC = cl[0]
		}
		if cl[1] > maxR {
			maxR = cl[1]
		}
	}
	return geo.Rect{
		MinX: g.Origin.X + float64(minC)*g.Resolution,
		MinY: g.Origin.Y + float64(minR)*g.Resolution,
		MaxX: g.Origin.X + float64(maxC+1)*g.Resolution,
		MaxY: g.Origin.Y + float64(maxR+1)*g.Resolution,
	}
}
