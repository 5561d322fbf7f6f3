package compliance

import (
	"fmt"
	"math"

	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/plan"
)

// ValidateSchema performs structural validation on a loaded floor plan
// before any computation. Missing optional collections are not findings;
// malformed individual entities are, so the caller can decide whether to
// proceed with them skipped.
func ValidateSchema(fp *plan.FloorPlan) *Report {
	r := NewReport()

	if fp == nil {
		r.AddError(Violation{
			Type:    "schema",
			Message: "floor plan is nil",
		})
		return r
	}

	validateBounds(fp, r)
	validateWalls(fp, r)
	validateAreas(fp, r)
	validateEntrances(fp, r)
	validateRooms(fp, r)

	return r
}

func validateBounds(fp *plan.FloorPlan, r *Report) {
	b := fp.Bounds
	for name, v := range map[string]float64{
		"min_x": b.MinX, "min_y": b.MinY, "max_x": b.MaxX, "max_y": b.MaxY,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			r.AddError(Violation{
				Type:    "schema",
				Message: fmt.Sprintf("bounds.%s is not finite", name),
				Element: "bounds",
			})
		}
	}
	if b.MaxX <= b.MinX || b.MaxY <= b.MinY {
		r.AddWarning(Violation{
			Type:    "schema",
			Message: "bounds have non-positive extent; zone detection will yield no zones",
			Element: "bounds",
		})
	}
}

func validateWalls(fp *plan.FloorPlan, r *Report) {
	for i, w := range fp.Walls {
		if w.Start == w.End {
			r.AddWarning(Violation{
				Type:    "schema",
				Message: fmt.Sprintf("wall %d has zero length and will be skipped", i),
				Element: fmt.Sprintf("walls[%d]", i),
			})
		}
	}
}

func validateAreas(fp *plan.FloorPlan, r *Report) {
	for i, a := range fp.ForbiddenZones {
		if len(a.Polygon) == 0 && a.Bounds == nil {
			r.AddWarning(Violation{
				Type:    "schema",
				Message: fmt.Sprintf("forbidden zone %d has neither polygon nor bounds and will be skipped", i),
				Element: fmt.Sprintf("forbidden_zones[%d]", i),
			})
			continue
		}
		if len(a.Polygon) > 0 && len(a.Polygon) < 3 {
			r.AddWarning(Violation{
				Type:    "schema",
				Message: fmt.Sprintf("forbidden zone %d polygon has fewer than 3 vertices", i),
				Element: fmt.Sprintf("forbidden_zones[%d]", i),
			})
		}
	}
}

func validateEntrances(fp *plan.FloorPlan, r *Report) {
	for i, e := range fp.Entrances {
		if e.Start == e.End {
			r.AddWarning(Violation{
				Type:    "schema",
				Message: fmt.Sprintf("entrance %d has zero length", i),
				Element: fmt.Sprintf("entrances[%d]", i),
			})
		}
	}
}

func validateRooms(fp *plan.FloorPlan, r *Report) {
	for i, room := range fp.Rooms {
		if len(room.Polygon) < 3 {
			r.AddWarning(Violation{
				Type:    "schema",
				Message: fmt.Sprintf("room %d polygon has fewer than 3 vertices and will be ignored", i),
				Element: fmt.Sprintf("rooms[%d]", i),
			})
		}
	}
}
