// Package routing synthesizes the corridor network connecting placed units.
// Three interchangeable strategies share the same output contract: flat
// corridor rectangles that never overlap a placed unit.
package routing

import (
	"fmt"

	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/geo"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/layout"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/plan"
)

// CorridorType labels a corridor's role in the network.
type CorridorType string

const (
	CorridorHorizontal CorridorType = "horizontal"
	CorridorVertical   CorridorType = "vertical"
	CorridorSpine      CorridorType = "spine"
	CorridorRib        CorridorType = "rib"
	CorridorPerimeter  CorridorType = "perimeter"
)

// Corridor is one rectangular circulation path. The polygon holds the four
// rectangle corners explicitly for downstream rendering; adjacent segments
// are never merged into polylines.
type Corridor struct {
	ID      string        `json:"id"`
	Type    CorridorType  `json:"type"`
	X       float64       `json:"x"`
	Y       float64       `json:"y"`
	Width   float64       `json:"width"`
	Height  float64       `json:"height"`
	Polygon [4][2]float64 `json:"polygon"`
	Area    float64       `json:"area"`
}

// Rect returns the corridor's footprint rectangle.
func (c Corridor) Rect() geo.Rect {
	return geo.RectAt(c.X, c.Y, c.Width, c.Height)
}

// EffectiveWidth returns the circulation width: the smaller footprint
// dimension, falling back to the first polygon edge for degenerate records.
func (c Corridor) EffectiveWidth() float64 {
	if c.Width > 0 && c.Height > 0 {
		if c.Width < c.Height {
			return c.Width
		}
		return c.Height
	}
	a := geo.Pt(c.Polygon[0][0], c.Polygon[0][1])
	b := geo.Pt(c.Polygon[1][0], c.Polygon[1][1])
	return a.Distance(b)
}

// Strategy selects the corridor synthesis algorithm.
type Strategy string

const (
	StrategyRowGap   Strategy = "rowgap"
	StrategyAdvanced Strategy = "advanced"
	StrategySpineRib Strategy = "spine"
)

// Options configures corridor synthesis. Zero values select the defaults.
type Options struct {
	Strategy      Strategy
	CorridorWidth float64 // row/column corridor width (1.2)
	Margin        float64 // clearance kept to units (0.5)
	RowTolerance  float64 // y rounding bucket for row grouping (3.0)
	MinLength     float64 // corridors shorter than this are dropped (2.0)
	SpineWidth    float64 // spine strategy primary width (2.0)
	RibWidth      float64 // spine strategy rib width (1.2)
	MaxRibSpacing float64 // spacing between rib stations (8.0)
	WallBuffer    float64 // rib inset from the floor boundary (0.3)
}

func (o Options) withDefaults() Options {
	if o.Strategy == "" {
		o.Strategy = StrategyRowGap
	}
	if o.CorridorWidth <= 0 {
		o.CorridorWidth = 1.2
	}
	if o.Margin <= 0 {
		o.Margin = 0.5
	}
	if o.RowTolerance <= 0 {
		o.RowTolerance = 3.0
	}
	if o.MinLength <= 0 {
		o.MinLength = 2.0
	}
	if o.SpineWidth <= 0 {
		o.SpineWidth = 2.0
	}
	if o.RibWidth <= 0 {
		o.RibWidth = 1.2
	}
	if o.MaxRibSpacing <= 0 {
		o.MaxRibSpacing = 8.0
	}
	if o.WallBuffer <= 0 {
		o.WallBuffer = 0.3
	}
	return o
}

// Generate runs the selected strategy over the placed units. Corridors that
// would overlap a unit are discarded regardless of strategy.
func Generate(ilots []layout.Ilot, fp *plan.FloorPlan, opts Options) []Corridor {
	opts = opts.withDefaults()

	var raw []Corridor
	switch opts.Strategy {
	case StrategyAdvanced:
		raw = advancedCorridors(ilots, fp, opts)
	case StrategySpineRib:
		raw = spineCorridors(fp, opts)
	default:
		raw = rowGapCorridors(ilots, opts)
	}

	out := make([]Corridor, 0, len(raw))
	for _, c := range raw {
		if overlapsAnyIlot(c.Rect(), ilots) {
			continue
		}
		c.ID = fmt.Sprintf("corridor_%02d", len(out))
		out = append(out, c)
	}
	return out
}

// newCorridor builds a corridor record from a rectangle.
func newCorridor(typ CorridorType, r geo.Rect) Corridor {
	corners := r.Corners()
	var poly [4][2]float64
	for i, p := range corners {
		poly[i] = [2]float64{p.X, p.Y}
	}
	return Corridor{
		Type:    typ,
		X:       r.MinX,
		Y:       r.MinY,
		Width:   r.Width(),
		Height:  r.Height(),
		Polygon: poly,
		Area:    r.Area(),
	}
}

func overlapsAnyIlot(r geo.Rect, ilots []layout.Ilot) bool {
	for _, il := range ilots {
		if r.Overlaps(il.Rect()) {
			return true
		}
	}
	return false
}
