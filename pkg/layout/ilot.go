// Package layout places storage units (ilots) into detected zones using
// row-scan greedy packing, and reports fulfillment against the requested
// unit mix.
package layout

import "github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/geo"

// Ilot is one placed storage unit. Once placed it never overlaps another
// ilot, a forbidden zone, or an entrance clearance region.
type Ilot struct {
	ID       string  `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Area     float64 `json:"area"`
	Category string  `json:"category"` // template id (size class)
	Zone     string  `json:"zone,omitempty"`
	Row      int     `json:"row"`
}

// Rect returns the ilot's footprint rectangle.
func (il Ilot) Rect() geo.Rect {
	return geo.RectAt(il.X, il.Y, il.Width, il.Height)
}

// Center returns the footprint center.
func (il Ilot) Center() geo.Point {
	return il.Rect().Center()
}
