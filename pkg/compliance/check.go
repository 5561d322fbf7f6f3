package compliance

import (
	"fmt"
	"math"

	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/geo"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/layout"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/plan"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/routing"
)

// Violation type identifiers.
const (
	TypeCorridorWidth     = "corridor_width"
	TypeDeadEnd           = "dead_end"
	TypeExitAccess        = "exit_access"
	TypeForbiddenZone     = "forbidden_zone"
	TypeFireDoorClearance = "fire_door_clearance"
	TypeMaxExitDistance   = "max_exit_distance"
	TypeBoxConstraints    = "box_constraints"
)

// Rules holds the configurable thresholds. Zero values select the defaults.
type Rules struct {
	MainCorridorWidth      float64 // minimum main corridor width (1.5)
	SecondaryCorridorWidth float64 // minimum secondary corridor width (1.2)
	AdjacencyTolerance     float64 // corridor adjacency tolerance for dead ends (0.5)
	ExitAccessDistance     float64 // unit-to-corridor reach (5.0)
	FireDoorClearance      float64 // keep-out radius around fire doors (1.5)
	MaxExitDistance        float64 // straight-line unit-to-exit limit (30.0)
	MinBoxDimension        float64 // smallest legal unit edge (0.5)
	MinBoxArea             float64 // smallest legal unit area (0.5)
}

func (r Rules) withDefaults() Rules {
	if r.MainCorridorWidth <= 0 {
		r.MainCorridorWidth = 1.5
	}
	if r.SecondaryCorridorWidth <= 0 {
		r.SecondaryCorridorWidth = 1.2
	}
	if r.AdjacencyTolerance <= 0 {
		r.AdjacencyTolerance = 0.5
	}
	if r.ExitAccessDistance <= 0 {
		r.ExitAccessDistance = 5.0
	}
	if r.FireDoorClearance <= 0 {
		r.FireDoorClearance = 1.5
	}
	if r.MaxExitDistance <= 0 {
		r.MaxExitDistance = 30.0
	}
	if r.MinBoxDimension <= 0 {
		r.MinBoxDimension = 0.5
	}
	if r.MinBoxArea <= 0 {
		r.MinBoxArea = 0.5
	}
	return r
}

// Check validates a completed layout against the circulation and life-safety
// rules. Checks run in a fixed order and only append violations; the same
// solution always yields the same report. The floor plan supplies forbidden
// zones, fire doors, and exits; a nil plan skips the checks that need them.
func Check(ilots []layout.Ilot, corridors []routing.Corridor, fp *plan.FloorPlan, rules Rules) *Report {
	rules = rules.withDefaults()
	r := NewReport()

	checkCirculation(corridors, rules, r)
	checkExitAccess(ilots, corridors, fp, rules, r)
	checkForbiddenZones(ilots, fp, r)
	checkFireDoors(ilots, fp, rules, r)
	checkExitDistance(ilots, fp, rules, r)
	checkBoxConstraints(ilots, rules, r)

	return r
}

// checkCirculation enforces minimum corridor widths and flags possible dead
// ends when the network is large enough to have any.
func checkCirculation(corridors []routing.Corridor, rules Rules, r *Report) {
	for _, c := range corridors {
		min := rules.SecondaryCorridorWidth
		if isMain(c.Type) {
			min = rules.MainCorridorWidth
		}
		if w := c.EffectiveWidth(); w < min {
			r.AddError(Violation{
				Type:    TypeCorridorWidth,
				Message: fmt.Sprintf("corridor %s width %.2f m is below the %.2f m minimum", c.ID, w, min),
				Element: c.ID,
			})
		}
	}

	if len(corridors) < 3 {
		return
	}
	adj := routing.Adjacency(corridors, rules.AdjacencyTolerance)
	for _, c := range corridors {
		if len(adj[c.ID]) <= 1 {
			r.AddWarning(Violation{
				Type:    TypeDeadEnd,
				Message: fmt.Sprintf("corridor %s has %d connection(s); possible dead end", c.ID, len(adj[c.ID])),
				Element: c.ID,
			})
		}
	}
}

func isMain(t routing.CorridorType) bool {
	return t == routing.CorridorSpine || t == routing.CorridorPerimeter
}

// checkExitAccess warns when a unit's center is out of reach of the corridor
// network. Skipped entirely when the plan defines no exits.
func checkExitAccess(ilots []layout.Ilot, corridors []routing.Corridor, fp *plan.FloorPlan, rules Rules, r *Report) {
	if fp == nil || len(fp.Exits) == 0 {
		return
	}
	for _, il := range ilots {
		center := il.Center()
		best := math.Inf(1)
		for _, c := range corridors {
			if d := corridorDistance(c, center); d < best {
				best = d
			}
		}
		if best > rules.ExitAccessDistance {
			r.AddWarning(Violation{
				Type:    TypeExitAccess,
				Message: fmt.Sprintf("unit %s is %.1f m from the nearest corridor (limit %.1f m)", il.ID, best, rules.ExitAccessDistance),
				Element: il.ID,
			})
		}
	}
}

// corridorDistance measures point-to-polyline distance over the corridor's
// corner pairs.
func corridorDistance(c routing.Corridor, p geo.Point) float64 {
	best := math.Inf(1)
	for i := 0; i < len(c.Polygon); i++ {
		a := geo.Pt(c.Polygon[i][0], c.Polygon[i][1])
		b := geo.Pt(c.Polygon[(i+1)%len(c.Polygon)][0], c.Polygon[(i+1)%len(c.Polygon)][1])
		if d := (geo.Segment{A: a, B: b}).DistanceToPoint(p); d < best {
			best = d
		}
	}
	return best
}

// checkForbiddenZones reports units whose corners or center fall inside a
// forbidden zone polygon.
func checkForbiddenZones(ilots []layout.Ilot, fp *plan.FloorPlan, r *Report) {
	if fp == nil {
		return
	}
	for _, fz := range fp.ForbiddenZones {
		poly := fz.PolygonGeo()
		if poly.IsEmpty() {
			continue
		}
		for _, il := range ilots {
			if rectTouchesPolygon(il.Rect(), poly) {
				r.AddError(Violation{
					Type:    TypeForbiddenZone,
					Message: fmt.Sprintf("unit %s intersects a forbidden zone", il.ID),
					Element: il.ID,
				})
			}
		}
	}
}

func rectTouchesPolygon(rect geo.Rect, poly geo.Polygon) bool {
	if poly.Contains(rect.Center()) {
		return true
	}
	for _, corner := range rect.Corners() {
		if poly.Contains(corner) {
			return true
		}
	}
	return false
}

// checkFireDoors reports units placed inside a fire door's clearance radius.
func checkFireDoors(ilots []layout.Ilot, fp *plan.FloorPlan, rules Rules, r *Report) {
	if fp == nil {
		return
	}
	for _, fd := range fp.FireDoors {
		for _, il := range ilots {
			if d := il.Center().Distance(fd.Point()); d < rules.FireDoorClearance {
				r.AddError(Violation{
					Type:    TypeFireDoorClearance,
					Message: fmt.Sprintf("unit %s is %.1f m from fire door %s (clearance %.1f m)", il.ID, d, markerName(fd), rules.FireDoorClearance),
					Element: il.ID,
				})
			}
		}
	}
}

// checkExitDistance warns about units beyond the straight-line exit limit.
func checkExitDistance(ilots []layout.Ilot, fp *plan.FloorPlan, rules Rules, r *Report) {
	if fp == nil || len(fp.Exits) == 0 {
		return
	}
	for _, il := range ilots {
		center := il.Center()
		best := math.Inf(1)
		for _, ex := range fp.Exits {
			if d := center.Distance(ex.Point()); d < best {
				best = d
			}
		}
		if best > rules.MaxExitDistance {
			r.AddWarning(Violation{
				Type:    TypeMaxExitDistance,
				Message: fmt.Sprintf("unit %s is %.1f m from the nearest exit (limit %.1f m)", il.ID, best, rules.MaxExitDistance),
				Element: il.ID,
			})
		}
	}
}

// checkBoxConstraints enforces minimum unit dimensions.
func checkBoxConstraints(ilots []layout.Ilot, rules Rules, r *Report) {
	for _, il := range ilots {
		if il.Width < rules.MinBoxDimension || il.Height < rules.MinBoxDimension || il.Area < rules.MinBoxArea {
			r.AddError(Violation{
				Type:    TypeBoxConstraints,
				Message: fmt.Sprintf("unit %s (%.2fx%.2f m) is below the minimum box size", il.ID, il.Width, il.Height),
				Element: il.ID,
			})
		}
	}
}

func markerName(m plan.Marker) string {
	if m.ID != "" {
		return m.ID
	}
	return fmt.Sprintf("(%.1f, %.1f)", m.X, m.Y)
}
