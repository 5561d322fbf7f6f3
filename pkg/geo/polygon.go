package geo

import "math"

// Polygon is a closed polygon defined by its vertices in order.
type Polygon struct {
	Vertices []Point
}

// NewPolygon creates a polygon from a list of vertices.
func NewPolygon(pts ...Point) Polygon {
	return Polygon{Vertices: pts}
}

// PolygonFromPairs builds a polygon from [x, y] coordinate pairs.
func PolygonFromPairs(pairs [][2]float64) Polygon {
	pts := make([]Point, len(pairs))
	for i, pr := range pairs {
		pts[i] = Pt(pr[0], pr[1])
	}
	return Polygon{Vertices: pts}
}

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p.Vertices)
}

// IsEmpty returns true if the polygon has fewer than 3 vertices.
func (p Polygon) IsEmpty() bool {
	return len(p.Vertices) < 3
}

// Edge returns the i-th edge as a segment. Wraps around.
func (p Polygon) Edge(i int) Segment {
	n := len(p.Vertices)
	return Segment{A: p.Vertices[i%n], B: p.Vertices[(i+1)%n]}
}

// SignedArea returns the signed area using the shoelace formula.
func (p Polygon) SignedArea() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p.Vertices[i].X * p.Vertices[j].Y
		area -= p.Vertices[j].X * p.Vertices[i].Y
	}
	return area / 2
}

// Area returns the unsigned area of the polygon.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Centroid returns the centroid of the polygon. Degenerate polygons fall
// back to the vertex average.
func (p Polygon) Centroid() Point {
	n := len(p.Vertices)
	if n == 0 {
		return Point{}
	}
	a := p.SignedArea()
	if n < 3 || math.Abs(a) < 1e-12 {
		sum := Point{}
		for _, v := range p.Vertices {
			sum = sum.Add(v)
		}
		return sum.Scale(1.0 / float64(n))
	}
	cx, cy := 0.0, 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := p.Vertices[i].X*p.Vertices[j].Y - p.Vertices[j].X*p.Vertices[i].Y
		cx += (p.Vertices[i].X + p.Vertices[j].X) * cross
		cy += (p.Vertices[i].Y + p.Vertices[j].Y) * cross
	}
	f := 1.0 / (6.0 * a)
	return Point{cx * f, cy * f}
}

// BoundingRect returns the axis-aligned bounding box of the polygon.
func (p Polygon) BoundingRect() Rect {
	if len(p.Vertices) == 0 {
		return Rect{}
	}
	r := Rect{
		MinX: p.Vertices[0].X, MinY: p.Vertices[0].Y,
		MaxX: p.Vertices[0].X, MaxY: p.Vertices[0].Y,
	}
	for _, v := range p.Vertices[1:] {
		r = r.Include(v)
	}
	return r
}

// Contains returns true if the point is inside the polygon using ray casting.
func (p Polygon) Contains(pt Point) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi := p.Vertices[i]
		vj := p.Vertices[j]
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) &&
			pt.X < (vj.X-vi.X)*(pt.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// Perimeter returns the total perimeter length.
func (p Polygon) Perimeter() float64 {
	n := len(p.Vertices)
	if n < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i < n; i++ {
		total += p.Vertices[i].Distance(p.Vertices[(i+1)%n])
	}
	return total
}

// DistanceToPoint returns the minimum distance from the point to the polygon
// outline, walking consecutive vertex pairs.
func (p Polygon) DistanceToPoint(pt Point) float64 {
	n := len(p.Vertices)
	if n == 0 {
		return math.Inf(1)
	}
	if n == 1 {
		return pt.Distance(p.Vertices[0])
	}
	best := math.Inf(1)
	for i := 0; i < n; i++ {
		d := p.Edge(i).DistanceToPoint(pt)
		if d < best {
			best = d
		}
	}
	return best
}
