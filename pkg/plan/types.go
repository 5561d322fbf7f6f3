package plan

import "github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/geo"

// FloorPlan is the parsed architectural floor plan handed in by the CAD
// import collaborator. All coordinates are meters. The plan is owned by the
// caller and treated as read-only by every stage of the pipeline.
type FloorPlan struct {
	Name           string     `yaml:"name" json:"name"`
	Bounds         Bounds     `yaml:"bounds" json:"bounds"`
	Walls          []Wall     `yaml:"walls" json:"walls"`
	ForbiddenZones []Area     `yaml:"forbidden_zones" json:"forbidden_zones"`
	Entrances      []Entrance `yaml:"entrances" json:"entrances"`
	Rooms          []Room     `yaml:"rooms,omitempty" json:"rooms,omitempty"`
	FireDoors      []Marker   `yaml:"fire_doors,omitempty" json:"fire_doors,omitempty"`
	Exits          []Marker   `yaml:"exits,omitempty" json:"exits,omitempty"`
}

// Bounds is the floor's axis-aligned extent.
type Bounds struct {
	MinX float64 `yaml:"min_x" json:"min_x"`
	MinY float64 `yaml:"min_y" json:"min_y"`
	MaxX float64 `yaml:"max_x" json:"max_x"`
	MaxY float64 `yaml:"max_y" json:"max_y"`
}

// Rect returns the bounds as a geo.Rect.
func (b Bounds) Rect() geo.Rect {
	return geo.Rect{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY}
}

// Wall is a single wall segment.
type Wall struct {
	Start [2]float64 `yaml:"start" json:"start"`
	End   [2]float64 `yaml:"end" json:"end"`
}

// Segment returns the wall as a geo.Segment.
func (w Wall) Segment() geo.Segment {
	return geo.Segment{A: geo.Pt(w.Start[0], w.Start[1]), B: geo.Pt(w.End[0], w.End[1])}
}

// Area is a polygonal or box region, used for forbidden zones. When the
// polygon is absent the explicit bounds define the region.
type Area struct {
	ID      string       `yaml:"id,omitempty" json:"id,omitempty"`
	Polygon [][2]float64 `yaml:"polygon,omitempty" json:"polygon,omitempty"`
	Bounds  *Bounds      `yaml:"bounds,omitempty" json:"bounds,omitempty"`
}

// Rect returns the region's bounding rectangle, from the explicit bounds or
// derived from the polygon.
func (a Area) Rect() geo.Rect {
	if a.Bounds != nil {
		return a.Bounds.Rect()
	}
	return geo.PolygonFromPairs(a.Polygon).BoundingRect()
}

// PolygonGeo returns the region outline. A bounds-only region yields its
// rectangle corners.
func (a Area) PolygonGeo() geo.Polygon {
	if len(a.Polygon) >= 3 {
		return geo.PolygonFromPairs(a.Polygon)
	}
	if a.Bounds != nil {
		return a.Bounds.Rect().Polygon()
	}
	return geo.Polygon{}
}

// Entrance is a door or opening along the perimeter, given as a segment.
type Entrance struct {
	ID    string     `yaml:"id,omitempty" json:"id,omitempty"`
	Start [2]float64 `yaml:"start" json:"start"`
	End   [2]float64 `yaml:"end" json:"end"`
}

// Segment returns the entrance as a geo.Segment.
func (e Entrance) Segment() geo.Segment {
	return geo.Segment{A: geo.Pt(e.Start[0], e.Start[1]), B: geo.Pt(e.End[0], e.End[1])}
}

// Rect returns the entrance's bounding rectangle.
func (e Entrance) Rect() geo.Rect {
	return e.Segment().BoundingRect()
}

// Center returns the entrance midpoint.
func (e Entrance) Center() geo.Point {
	return e.Segment().Midpoint()
}

// Room is an optional named room polygon from the source drawing.
type Room struct {
	ID      string       `yaml:"id,omitempty" json:"id,omitempty"`
	Type    string       `yaml:"type,omitempty" json:"type,omitempty"`
	Polygon [][2]float64 `yaml:"polygon" json:"polygon"`
	Bounds  *Bounds      `yaml:"bounds,omitempty" json:"bounds,omitempty"`
}

// PolygonGeo returns the room outline as a geo.Polygon.
func (r Room) PolygonGeo() geo.Polygon {
	return geo.PolygonFromPairs(r.Polygon)
}

// Marker is a point feature such as a fire door or an emergency exit.
type Marker struct {
	ID string  `yaml:"id,omitempty" json:"id,omitempty"`
	X  float64 `yaml:"x" json:"x"`
	Y  float64 `yaml:"y" json:"y"`
}

// Point returns the marker position.
func (m Marker) Point() geo.Point {
	return geo.Pt(m.X, m.Y)
}
