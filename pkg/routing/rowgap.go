package routing

import (
	"math"
	"sort"

	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/geo"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/layout"
)

// rowGapCorridors emits corridors in the gaps between adjacent units within
// rows (vertical corridors) and between adjacent units within columns
// (horizontal corridors). A gap qualifies when it exceeds margin plus the
// corridor width; the corridor then sits flush against the later unit,
// inset by the margin.
func rowGapCorridors(ilots []layout.Ilot, opts Options) []Corridor {
	var out []Corridor
	out = append(out, gapPass(ilots, opts, false)...)
	out = append(out, gapPass(ilots, opts, true)...)
	return out
}

// gapPass runs one orientation of the row-gap scan. With transposed=false
// units are grouped into rows by y and scanned left to right; with
// transposed=true they are grouped into columns by x and scanned top to
// bottom.
func gapPass(ilots []layout.Ilot, opts Options, transposed bool) []Corridor {
	groups := map[int][]layout.Ilot{}
	for _, il := range ilots {
		key := groupKey(il, opts.RowTolerance, transposed)
		groups[key] = append(groups[key], il)
	}

	keys := make([]int, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	var out []Corridor
	for _, k := range keys {
		group := groups[k]
		sort.Slice(group, func(i, j int) bool {
			if transposed {
				return group[i].Y < group[j].Y
			}
			return group[i].X < group[j].X
		})

		for i := 0; i+1 < len(group); i++ {
			a, b := group[i], group[i+1]
			c, ok := gapCorridor(a.Rect(), b.Rect(), opts, transposed)
			if !ok {
				continue
			}
			out = append(out, c)
		}
	}
	return out
}

func groupKey(il layout.Ilot, tolerance float64, transposed bool) int {
	v := il.Y
	if transposed {
		v = il.X
	}
	return int(math.Round(v / tolerance))
}

// gapCorridor builds the corridor between two adjacent unit rectangles, or
// reports false when the gap is too narrow or the result too short.
func gapCorridor(a, b geo.Rect, opts Options, transposed bool) (Corridor, bool) {
	if transposed {
		gap := b.MinY - a.MaxY
		if gap <= opts.Margin+opts.CorridorWidth {
			return Corridor{}, false
		}
		span := geo.Rect{
			MinX: minf(a.MinX, b.MinX),
			MaxX: maxf(a.MaxX, b.MaxX),
			MinY: b.MinY - opts.Margin - opts.CorridorWidth,
			MaxY: b.MinY - opts.Margin,
		}
		if span.Width() < opts.MinLength {
			return Corridor{}, false
		}
		return newCorridor(CorridorHorizontal, span), true
	}

	gap := b.MinX - a.MaxX
	if gap <= opts.Margin+opts.CorridorWidth {
		return Corridor{}, false
	}
	span := geo.Rect{
		MinY: minf(a.MinY, b.MinY),
		MaxY: maxf(a.MaxY, b.MaxY),
		MinX: b.MinX - opts.Margin - opts.CorridorWidth,
		MaxX: b.MinX - opts.Margin,
	}
	if span.Height() < opts.MinLength {
		return Corridor{}, false
	}
	return newCorridor(CorridorVertical, span), true
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
