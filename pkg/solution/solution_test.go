package solution

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/layout"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/plan"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/routing"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/zones"
)

const tolerance = 0.01

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func testInputs() (*plan.FloorPlan, []zones.Zone, *layout.Result, []routing.Corridor) {
	fp := &plan.FloorPlan{
		Name:   "demo",
		Bounds: plan.Bounds{MaxX: 20, MaxY: 10},
	}
	zs := []zones.Zone{{ID: "zone_00", Area: 180}}
	placed := &layout.Result{
		Ilots: []layout.Ilot{
			{ID: "ilot_000", X: 1, Y: 1, Width: 2, Height: 2, Area: 4, Category: "M"},
			{ID: "ilot_001", X: 4, Y: 1, Width: 2, Height: 3, Area: 6, Category: "M"},
			{ID: "ilot_002", X: 7, Y: 1, Width: 3, Height: 4, Area: 12, Category: "L"},
		},
		Report: &layout.DeviationReport{},
	}
	corridors := []routing.Corridor{
		{ID: "corridor_00", Type: routing.CorridorHorizontal, X: 0, Y: 5.5, Width: 12, Height: 1.2, Area: 14.4},
	}
	return fp, zs, placed, corridors
}

func TestAssembleStats(t *testing.T) {
	fp, zs, placed, corridors := testInputs()
	s := Assemble(fp, zs, placed, corridors, nil, routing.StrategyRowGap, 42)

	if s.ID == "" {
		t.Error("solution id should be set")
	}
	if s.PlanName != "demo" || s.Seed != 42 {
		t.Errorf("metadata = (%q, %d), want (demo, 42)", s.PlanName, s.Seed)
	}
	if s.Stats.IlotCount != 3 || s.Stats.CorridorCount != 1 || s.Stats.ZoneCount != 1 {
		t.Errorf("counts = (%d ilots, %d corridors, %d zones), want (3, 1, 1)",
			s.Stats.IlotCount, s.Stats.CorridorCount, s.Stats.ZoneCount)
	}
	if !approxEqual(s.Stats.IlotArea, 22) {
		t.Errorf("ilot area = %.2f, want 22", s.Stats.IlotArea)
	}
	if !approxEqual(s.Stats.CorridorArea, 14.4) {
		t.Errorf("corridor area = %.2f, want 14.4", s.Stats.CorridorArea)
	}
	if !approxEqual(s.Stats.Coverage, 0.11) {
		t.Errorf("coverage = %.3f, want 0.11", s.Stats.Coverage)
	}
	if !approxEqual(s.Stats.CirculationRatio, 0.072) {
		t.Errorf("circulation ratio = %.3f, want 0.072", s.Stats.CirculationRatio)
	}
	if s.Stats.CountByCategory["M"] != 2 || s.Stats.CountByCategory["L"] != 1 {
		t.Errorf("category counts = %v, want M:2 L:1", s.Stats.CountByCategory)
	}
}

func TestAssembleBounds(t *testing.T) {
	fp, zs, placed, corridors := testInputs()
	s := Assemble(fp, zs, placed, corridors, nil, routing.StrategyRowGap, 1)

	bb := s.Stats.Bounds
	if !approxEqual(bb.MinX, 0) || !approxEqual(bb.MinY, 1) {
		t.Errorf("bounds min = (%.2f, %.2f), want (0, 1)", bb.MinX, bb.MinY)
	}
	if !approxEqual(bb.MaxX, 12) || !approxEqual(bb.MaxY, 6.7) {
		t.Errorf("bounds max = (%.2f, %.2f), want (12, 6.7)", bb.MaxX, bb.MaxY)
	}
}

func TestAssembleEmpty(t *testing.T) {
	s := Assemble(nil, nil, nil, nil, nil, "", 0)
	if s.Ilots == nil || s.Corridors == nil {
		t.Error("slices should be non-nil for JSON output")
	}
	if s.Stats.Coverage != 0 {
		t.Errorf("coverage = %.3f, want 0", s.Stats.Coverage)
	}
	if s.Stats.Bounds != (BoundingBox{}) {
		t.Errorf("bounds = %+v, want zero", s.Stats.Bounds)
	}
}

func TestSolutionJSONRoundTrip(t *testing.T) {
	fp, zs, placed, corridors := testInputs()
	s := Assemble(fp, zs, placed, corridors, nil, routing.StrategyRowGap, 7)

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Solution
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.ID != s.ID || back.Stats.IlotCount != 3 {
		t.Error("round trip lost data")
	}
}
