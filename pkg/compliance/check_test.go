package compliance

import (
	"reflect"
	"testing"

	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/geo"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/layout"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/plan"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/routing"
)

func unit(id string, x, y, w, h float64) layout.Ilot {
	return layout.Ilot{ID: id, X: x, Y: y, Width: w, Height: h, Area: w * h}
}

func corridor(id string, t routing.CorridorType, x, y, w, h float64) routing.Corridor {
	r := geo.RectAt(x, y, w, h)
	corners := r.Corners()
	var poly [4][2]float64
	for i, p := range corners {
		poly[i] = [2]float64{p.X, p.Y}
	}
	return routing.Corridor{
		ID: id, Type: t,
		X: x, Y: y, Width: w, Height: h,
		Polygon: poly, Area: r.Area(),
	}
}

func TestCheckCleanSolutionPasses(t *testing.T) {
	ilots := []layout.Ilot{unit("u1", 0, 0, 2, 3)}
	cs := []routing.Corridor{corridor("c1", routing.CorridorHorizontal, 0, 4, 10, 1.2)}
	r := Check(ilots, cs, &plan.FloorPlan{}, Rules{})
	if !r.Passed {
		t.Errorf("expected clean solution to pass, got %s", r.Summary.Text)
	}
	if len(r.Violations) != 0 {
		t.Errorf("expected no violations, got %v", r.Violations)
	}
}

func TestCheckCorridorWidth(t *testing.T) {
	cs := []routing.Corridor{
		corridor("narrow", routing.CorridorHorizontal, 0, 0, 10, 0.9),
		corridor("spine", routing.CorridorSpine, 0, 5, 10, 1.3),
	}
	r := Check(nil, cs, nil, Rules{})
	// The secondary corridor misses 1.2 and the main spine misses 1.5.
	if got := r.Summary.ByType[TypeCorridorWidth]; got != 2 {
		t.Errorf("expected 2 corridor_width violations, got %d", got)
	}
	if r.Errors() != 2 {
		t.Errorf("expected errors, got %d errors %d warnings", r.Errors(), r.Warnings())
	}
}

func TestCheckDeadEnds(t *testing.T) {
	// Three corridors: two touching, one isolated. The isolated one and the
	// chain ends have at most one adjacency each.
	cs := []routing.Corridor{
		corridor("c0", routing.CorridorHorizontal, 0, 0, 10, 1.2),
		corridor("c1", routing.CorridorVertical, 0, 1.3, 1.2, 10),
		corridor("c2", routing.CorridorHorizontal, 40, 40, 10, 1.2),
	}
	r := Check(nil, cs, nil, Rules{})
	if got := r.Summary.ByType[TypeDeadEnd]; got != 3 {
		t.Errorf("expected 3 dead_end warnings, got %d", got)
	}
	if r.Summary.BySeverity[string(SeverityWarning)] != 3 {
		t.Errorf("dead ends must be warnings, got %+v", r.Summary.BySeverity)
	}

	// Fewer than three corridors: the dead-end check does not run.
	r2 := Check(nil, cs[:2], nil, Rules{})
	if got := r2.Summary.ByType[TypeDeadEnd]; got != 0 {
		t.Errorf("expected no dead_end warnings for 2 corridors, got %d", got)
	}
}

func TestCheckExitAccess(t *testing.T) {
	fp := &plan.FloorPlan{Exits: []plan.Marker{{ID: "exit1", X: 0, Y: 0}}}
	ilots := []layout.Ilot{unit("far", 20, 20, 2, 2)}
	cs := []routing.Corridor{corridor("c1", routing.CorridorHorizontal, 0, 0, 4, 1.2)}

	r := Check(ilots, cs, fp, Rules{})
	if got := r.Summary.ByType[TypeExitAccess]; got != 1 {
		t.Errorf("expected 1 exit_access warning, got %d", got)
	}

	// No exits defined: the check is skipped entirely.
	r2 := Check(ilots, cs, &plan.FloorPlan{}, Rules{})
	if got := r2.Summary.ByType[TypeExitAccess]; got != 0 {
		t.Errorf("expected exit_access skipped without exits, got %d", got)
	}
}

func TestCheckForbiddenZone(t *testing.T) {
	fp := &plan.FloorPlan{
		ForbiddenZones: []plan.Area{
			{Polygon: [][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}}},
		},
	}
	ilots := []layout.Ilot{
		unit("inside", 4, 4, 2, 2),
		unit("outside", 20, 20, 2, 2),
	}
	r := Check(ilots, nil, fp, Rules{})
	if got := r.Summary.ByType[TypeForbiddenZone]; got != 1 {
		t.Errorf("expected 1 forbidden_zone violation, got %d", got)
	}
	for _, v := range r.Violations {
		if v.Type == TypeForbiddenZone && v.Element != "inside" {
			t.Errorf("wrong element flagged: %s", v.Element)
		}
	}
}

func TestCheckFireDoorClearance(t *testing.T) {
	// Unit center 1.0 m from the fire door with a 1.5 m clearance: exactly
	// one error.
	fp := &plan.FloorPlan{FireDoors: []plan.Marker{{ID: "fd1", X: 2, Y: 1}}}
	ilots := []layout.Ilot{unit("u1", 0, 0, 2, 2)} // center (1,1)

	r := Check(ilots, nil, fp, Rules{})
	if got := r.Summary.ByType[TypeFireDoorClearance]; got != 1 {
		t.Errorf("expected 1 fire_door_clearance violation, got %d", got)
	}
	if r.Errors() != 1 {
		t.Errorf("expected 1 error, got %d", r.Errors())
	}
}

func TestCheckMaxExitDistance(t *testing.T) {
	fp := &plan.FloorPlan{Exits: []plan.Marker{{X: 0, Y: 0}}}
	ilots := []layout.Ilot{unit("far", 40, 40, 2, 2)}
	// Corridor near the unit so exit_access stays quiet.
	cs := []routing.Corridor{corridor("c1", routing.CorridorHorizontal, 38, 43, 6, 1.2)}

	r := Check(ilots, cs, fp, Rules{})
	if got := r.Summary.ByType[TypeMaxExitDistance]; got != 1 {
		t.Errorf("expected 1 max_exit_distance warning, got %d", got)
	}
}

func TestCheckBoxConstraints(t *testing.T) {
	ilots := []layout.Ilot{
		unit("sliver", 0, 0, 0.3, 4),
		unit("tiny", 5, 5, 0.6, 0.6),
		unit("fine", 10, 10, 1, 1),
	}
	r := Check(ilots, nil, nil, Rules{})
	if got := r.Summary.ByType[TypeBoxConstraints]; got != 2 {
		t.Errorf("expected 2 box_constraints violations, got %d", got)
	}
}

func TestCheckIdempotent(t *testing.T) {
	fp := &plan.FloorPlan{
		FireDoors: []plan.Marker{{X: 2, Y: 1}},
		Exits:     []plan.Marker{{X: 0, Y: 0}},
	}
	ilots := []layout.Ilot{unit("u1", 0, 0, 2, 2), unit("far", 40, 40, 2, 2)}
	cs := []routing.Corridor{corridor("c1", routing.CorridorHorizontal, 0, 4, 10, 1.2)}

	a := Check(ilots, cs, fp, Rules{})
	b := Check(ilots, cs, fp, Rules{})
	if !reflect.DeepEqual(a, b) {
		t.Error("repeated Check produced different reports")
	}
}

func TestReportMerge(t *testing.T) {
	a := NewReport()
	a.AddError(Violation{Type: "x", Message: "one"})
	b := NewReport()
	b.AddWarning(Violation{Type: "y", Message: "two"})

	a.Merge(b)
	if a.Passed {
		t.Error("merged report with violations must not pass")
	}
	if a.Summary.Total != 2 || a.Summary.ByType["y"] != 1 {
		t.Errorf("unexpected merged summary: %+v", a.Summary)
	}
}
