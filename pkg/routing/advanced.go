package routing

import (
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/geo"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/layout"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/plan"
)

// minCorridorArea drops fragments the network optimizer considers noise.
const minCorridorArea = 2.0 // m2

// advancedCorridors extends the row-gap network with perimeter corridors
// along floor edges that no unit intrudes on, then drops sub-scale
// fragments.
func advancedCorridors(ilots []layout.Ilot, fp *plan.FloorPlan, opts Options) []Corridor {
	out := rowGapCorridors(ilots, opts)

	if fp != nil {
		bounds := fp.Bounds.Rect()
		if !bounds.IsDegenerate() {
			out = append(out, perimeterCorridors(ilots, bounds, opts)...)
		}
	}

	kept := out[:0]
	for _, c := range out {
		if c.Area < minCorridorArea {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// perimeterCorridors emits one corridor along each floor edge whose
// clearance band is free of units.
func perimeterCorridors(ilots []layout.Ilot, bounds geo.Rect, opts Options) []Corridor {
	clear := opts.Margin + opts.CorridorWidth + 0.5
	w := opts.CorridorWidth
	m := opts.Margin

	edges := []struct {
		band geo.Rect // intrusion test region
		strip geo.Rect // emitted corridor
	}{
		{ // left
			band:  geo.Rect{MinX: bounds.MinX, MinY: bounds.MinY, MaxX: bounds.MinX + clear, MaxY: bounds.MaxY},
			strip: geo.Rect{MinX: bounds.MinX + m, MinY: bounds.MinY + m, MaxX: bounds.MinX + m + w, MaxY: bounds.MaxY - m},
		},
		{ // right
			band:  geo.Rect{MinX: bounds.MaxX - clear, MinY: bounds.MinY, MaxX: bounds.MaxX, MaxY: bounds.MaxY},
			strip: geo.Rect{MinX: bounds.MaxX - m - w, MinY: bounds.MinY + m, MaxX: bounds.MaxX - m, MaxY: bounds.MaxY - m},
		},
		{ // top
			band:  geo.Rect{MinX: bounds.MinX, MinY: bounds.MinY, MaxX: bounds.MaxX, MaxY: bounds.MinY + clear},
			strip: geo.Rect{MinX: bounds.MinX + m, MinY: bounds.MinY + m, MaxX: bounds.MaxX - m, MaxY: bounds.MinY + m + w},
		},
		{ // bottom
			band:  geo.Rect{MinX: bounds.MinX, MinY: bounds.MaxY - clear, MaxX: bounds.MaxX, MaxY: bounds.MaxY},
			strip: geo.Rect{MinX: bounds.MinX + m, MinY: bounds.MaxY - m - w, MaxX: bounds.MaxX - m, MaxY: bounds.MaxY - m},
		},
	}

	var out []Corridor
	for _, e := range edges {
		if overlapsAnyIlot(e.band, ilots) {
			continue
		}
		if e.strip.IsDegenerate() {
			continue
		}
		out = append(out, newCorridor(CorridorPerimeter, e.strip))
	}
	return out
}
