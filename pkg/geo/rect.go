package geo

// Rect is an axis-aligned rectangle given by its min and max corners.
type Rect struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// RectAt builds a rectangle from a top-left corner and dimensions.
func RectAt(x, y, w, h float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// RectFromPoints builds the bounding rectangle of two arbitrary corners.
func RectFromPoints(a, b Point) Rect {
	r := Rect{MinX: a.X, MinY: a.Y, MaxX: a.X, MaxY: a.Y}
	return r.Include(b)
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Area returns width * height, or 0 for an inverted rectangle.
func (r Rect) Area() float64 {
	if r.IsDegenerate() {
		return 0
	}
	return r.Width() * r.Height()
}

// IsDegenerate reports whether the rectangle has non-positive extent.
func (r Rect) IsDegenerate() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{(r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2}
}

// Corners returns the four corners in clockwise order from the min corner.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{r.MinX, r.MinY},
		{r.MaxX, r.MinY},
		{r.MaxX, r.MaxY},
		{r.MinX, r.MaxY},
	}
}

// Contains reports whether the point lies inside or on the boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Overlaps reports whether r and o share interior area. Touching edges do
// not count as overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX < o.MaxX && r.MaxX > o.MinX && r.MinY < o.MaxY && r.MaxY > o.MinY
}

// Expand grows the rectangle by d on every side. Negative d shrinks it.
func (r Rect) Expand(d float64) Rect {
	return Rect{MinX: r.MinX - d, MinY: r.MinY - d, MaxX: r.MaxX + d, MaxY: r.MaxY + d}
}

// Include returns the smallest rectangle covering r and the point.
func (r Rect) Include(p Point) Rect {
	if p.X < r.MinX {
		r.MinX = p.X
	}
	if p.Y < r.MinY {
		r.MinY = p.Y
	}
	if p.X > r.MaxX {
		r.MaxX = p.X
	}
	if p.Y > r.MaxY {
		r.MaxY = p.Y
	}
	return r
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	return r.Include(Point{o.MinX, o.MinY}).Include(Point{o.MaxX, o.MaxY})
}

// IntersectsSegment reports whether the segment crosses or touches the
// rectangle. Either endpoint inside counts as an intersection.
func (r Rect) IntersectsSegment(s Segment) bool {
	if r.Contains(s.A) || r.Contains(s.B) {
		return true
	}
	c := r.Corners()
	for i := 0; i < 4; i++ {
		edge := Segment{A: c[i], B: c[(i+1)%4]}
		if s.Intersects(edge) {
			return true
		}
	}
	return false
}

// Polygon returns the rectangle as a 4-vertex polygon.
func (r Rect) Polygon() Polygon {
	c := r.Corners()
	return NewPolygon(c[0], c[1], c[2], c[3])
}
