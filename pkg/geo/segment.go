package geo

// Segment is a directed line segment from A to B.
type Segment struct {
	A Point `json:"a"`
	B Point `json:"b"`
}

// Seg is a shorthand constructor for Segment.
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{A: Pt(x1, y1), B: Pt(x2, y2)}
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// Midpoint returns the segment midpoint.
func (s Segment) Midpoint() Point {
	return MidPoint(s.A, s.B)
}

// BoundingRect returns the axis-aligned bounding box of the segment.
func (s Segment) BoundingRect() Rect {
	return RectFromPoints(s.A, s.B)
}

// Intersects reports whether s and t intersect, including endpoint touches
// and collinear overlap.
func (s Segment) Intersects(t Segment) bool {
	d1 := orientation(t.A, t.B, s.A)
	d2 := orientation(t.A, t.B, s.B)
	d3 := orientation(s.A, s.B, t.A)
	d4 := orientation(s.A, s.B, t.B)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Collinear or endpoint cases.
	if d1 == 0 && onSegment(t.A, t.B, s.A) {
		return true
	}
	if d2 == 0 && onSegment(t.A, t.B, s.B) {
		return true
	}
	if d3 == 0 && onSegment(s.A, s.B, t.A) {
		return true
	}
	if d4 == 0 && onSegment(s.A, s.B, t.B) {
		return true
	}
	return false
}

// DistanceToPoint returns the minimum distance from the point to the segment.
func (s Segment) DistanceToPoint(p Point) float64 {
	ab := s.B.Sub(s.A)
	lenSq := ab.Dot(ab)
	if lenSq < 1e-12 {
		return p.Distance(s.A)
	}
	t := p.Sub(s.A).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Distance(s.A.Add(ab.Scale(t)))
}

// orientation returns the sign of the cross product (b-a) x (c-a):
// positive for counterclockwise, negative for clockwise, 0 for collinear.
func orientation(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// onSegment reports whether collinear point p lies within the bounding box
// of segment ab.
func onSegment(a, b, p Point) bool {
	return p.X >= minf(a.X, b.X) && p.X <= maxf(a.X, b.X) &&
		p.Y >= minf(a.Y, b.Y) && p.Y <= maxf(a.Y, b.Y)
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
