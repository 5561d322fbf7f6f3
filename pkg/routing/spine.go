package routing

import (
	"math"

	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/geo"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/plan"
)

const (
	spineNudgeStep  = 1.0 // meters per collision retry
	spineNudgeTries = 8
	minRibLength    = 2.0 // meters
)

// spineCorridors builds one primary spine plus perpendicular ribs at evenly
// spaced stations. The spine connects the first two entrances when at least
// two exist, otherwise it runs centered along the floor's longer axis. A
// spine colliding with walls gets nudged off them in bounded 1 m steps,
// alternating sides.
func spineCorridors(fp *plan.FloorPlan, opts Options) []Corridor {
	if fp == nil {
		return nil
	}
	bounds := fp.Bounds.Rect()
	if bounds.IsDegenerate() {
		return nil
	}

	spine := chooseSpine(fp, bounds)
	spine = nudgeOffWalls(spine, fp.Walls)

	var out []Corridor
	out = append(out, newCorridor(CorridorSpine, segmentRect(spine, opts.SpineWidth)))
	out = append(out, ribCorridors(spine, bounds, fp, opts)...)
	return out
}

// chooseSpine picks the primary circulation axis.
func chooseSpine(fp *plan.FloorPlan, bounds geo.Rect) geo.Segment {
	if len(fp.Entrances) >= 2 {
		return geo.Segment{
			A: fp.Entrances[0].Center(),
			B: fp.Entrances[1].Center(),
		}
	}
	c := bounds.Center()
	if bounds.Width() >= bounds.Height() {
		return geo.Segment{A: geo.Pt(bounds.MinX, c.Y), B: geo.Pt(bounds.MaxX, c.Y)}
	}
	return geo.Segment{A: geo.Pt(c.X, bounds.MinY), B: geo.Pt(c.X, bounds.MaxY)}
}

// nudgeOffWalls shifts the spine perpendicular to itself while it crosses
// any wall, alternating direction with growing offset. Gives up after a
// bounded number of tries and returns the last candidate.
func nudgeOffWalls(s geo.Segment, walls []plan.Wall) geo.Segment {
	collides := func(seg geo.Segment) bool {
		for _, w := range walls {
			if w.Start == w.End {
				continue
			}
			if seg.Intersects(w.Segment()) {
				return true
			}
		}
		return false
	}

	if !collides(s) {
		return s
	}
	perp := s.B.Sub(s.A).Normalize().Perp()
	for i := 1; i <= spineNudgeTries; i++ {
		offset := perp.Scale(float64((i+1)/2) * spineNudgeStep)
		if i%2 == 0 {
			offset = offset.Scale(-1)
		}
		cand := geo.Segment{A: s.A.Add(offset), B: s.B.Add(offset)}
		if !collides(cand) {
			return cand
		}
	}
	return s
}

// ribCorridors emits perpendicular ribs at evenly spaced stations along the
// spine, reaching from the spine to the floor boundary minus the wall
// buffer on both sides. Ribs that end up too short or cross a forbidden
// zone box are discarded.
func ribCorridors(spine geo.Segment, bounds geo.Rect, fp *plan.FloorPlan, opts Options) []Corridor {
	length := spine.Length()
	if length < 1e-9 {
		return nil
	}
	stations := int(length/opts.MaxRibSpacing) + 1

	horizontalSpine := math.Abs(spine.B.X-spine.A.X) >= math.Abs(spine.B.Y-spine.A.Y)

	var out []Corridor
	for i := 0; i <= stations; i++ {
		t := float64(i) / float64(stations)
		at := spine.A.Lerp(spine.B, t)

		var rib geo.Segment
		if horizontalSpine {
			rib = geo.Segment{
				A: geo.Pt(at.X, bounds.MinY+opts.WallBuffer),
				B: geo.Pt(at.X, bounds.MaxY-opts.WallBuffer),
			}
		} else {
			rib = geo.Segment{
				A: geo.Pt(bounds.MinX+opts.WallBuffer, at.Y),
				B: geo.Pt(bounds.MaxX-opts.WallBuffer, at.Y),
			}
		}
		if rib.Length() < minRibLength {
			continue
		}
		if ribBlocked(rib, fp) {
			continue
		}
		out = append(out, newCorridor(CorridorRib, segmentRect(rib, opts.RibWidth)))
	}
	return out
}

func ribBlocked(rib geo.Segment, fp *plan.FloorPlan) bool {
	for _, fz := range fp.ForbiddenZones {
		if len(fz.Polygon) == 0 && fz.Bounds == nil {
			continue
		}
		if fz.Rect().IntersectsSegment(rib) {
			return true
		}
	}
	return false
}

// segmentRect widens a segment into its corridor rectangle along the
// dominant axis.
func segmentRect(s geo.Segment, width float64) geo.Rect {
	half := width / 2
	if math.Abs(s.B.X-s.A.X) >= math.Abs(s.B.Y-s.A.Y) {
		midY := (s.A.Y + s.B.Y) / 2
		return geo.Rect{
			MinX: minf(s.A.X, s.B.X),
			MaxX: maxf(s.A.X, s.B.X),
			MinY: midY - half,
			MaxY: midY + half,
		}
	}
	midX := (s.A.X + s.B.X) / 2
	return geo.Rect{
		MinX: midX - half,
		MaxX: midX + half,
		MinY: minf(s.A.Y, s.B.Y),
		MaxY: maxf(s.A.Y, s.B.Y),
	}
}
