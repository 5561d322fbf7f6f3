package zones

import (
	"math"
	"testing"

	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/plan"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func emptyPlan(w, h float64) *plan.FloorPlan {
	return &plan.FloorPlan{
		Bounds: plan.Bounds{MinX: 0, MinY: 0, MaxX: w, MaxY: h},
	}
}

func TestDetectEmptyFloor(t *testing.T) {
	// 10x10 empty floor at 0.5 m resolution: one region, 400 cells, 100 m2.
	zs := Detect(emptyPlan(10, 10), Options{})
	if len(zs) != 1 {
		t.Fatalf("expected 1 zone, got %d", len(zs))
	}
	if !approxEqual(zs[0].Area, 100, 1e-9) {
		t.Errorf("expected area 100, got %f", zs[0].Area)
	}
	if len(zs[0].Cells) != 400 {
		t.Errorf("expected 400 cells, got %d", len(zs[0].Cells))
	}
	if zs[0].ID != "zone_00" {
		t.Errorf("expected zone_00, got %s", zs[0].ID)
	}
}

func TestDetectNilPlan(t *testing.T) {
	if zs := Detect(nil, Options{}); zs != nil {
		t.Errorf("expected nil zones for nil plan, got %d", len(zs))
	}
}

func TestDetectDegenerateBounds(t *testing.T) {
	fp := &plan.FloorPlan{Bounds: plan.Bounds{MinX: 5, MinY: 5, MaxX: 5, MaxY: 5}}
	if zs := Detect(fp, Options{}); len(zs) != 0 {
		t.Errorf("expected 0 zones for degenerate bounds, got %d", len(zs))
	}
}

func TestDetectWallSplitsFloor(t *testing.T) {
	// Vertical wall through the middle of a 20x20 floor splits it into two
	// regions of similar size.
	fp := emptyPlan(20, 20)
	fp.Walls = []plan.Wall{{Start: [2]float64{10, 0}, End: [2]float64{10, 20}}}

	zs := Detect(fp, Options{})
	if len(zs) != 2 {
		t.Fatalf("expected 2 zones, got %d", len(zs))
	}
	// Sorted by area descending.
	if zs[0].Area < zs[1].Area {
		t.Error("zones not sorted by area descending")
	}
	for _, z := range zs {
		if z.Area < 20 {
			t.Errorf("zone %s below minimum area: %f", z.ID, z.Area)
		}
	}
}

func TestDetectMinAreaFiltersSmallRegions(t *testing.T) {
	// Wall carves off a narrow 2 m strip. The strip plus the wall buffer is
	// well under the 20 m2 default and must be dropped.
	fp := emptyPlan(20, 10)
	fp.Walls = []plan.Wall{{Start: [2]float64{18, 0}, End: [2]float64{18, 10}}}

	zs := Detect(fp, Options{})
	if len(zs) != 1 {
		t.Fatalf("expected 1 zone, got %d", len(zs))
	}

	// Lowering the threshold never decreases the zone count.
	more := Detect(fp, Options{MinZoneArea: 1})
	if len(more) < len(zs) {
		t.Errorf("shrinking min area reduced zones: %d -> %d", len(zs), len(more))
	}
}

func TestDetectForbiddenZoneBlocksCells(t *testing.T) {
	fp := emptyPlan(30, 30)
	fp.ForbiddenZones = []plan.Area{
		{Bounds: &plan.Bounds{MinX: 12, MinY: 12, MaxX: 18, MaxY: 18}},
	}

	full := Detect(emptyPlan(30, 30), Options{})
	blocked := Detect(fp, Options{})
	if len(blocked) == 0 {
		t.Fatal("expected at least one zone")
	}
	if blocked[0].Area >= full[0].Area {
		t.Errorf("forbidden zone did not reduce open area: %f >= %f",
			blocked[0].Area, full[0].Area)
	}
}

func TestDetectEntranceClearance(t *testing.T) {
	fp := emptyPlan(30, 30)
	fp.Entrances = []plan.Entrance{
		{Start: [2]float64{14, 0}, End: [2]float64{16, 0}},
	}

	full := Detect(emptyPlan(30, 30), Options{})
	withEntrance := Detect(fp, Options{})
	if len(withEntrance) == 0 {
		t.Fatal("expected at least one zone")
	}
	if withEntrance[0].Area >= full[0].Area {
		t.Error("entrance clearance did not reduce open area")
	}
}

func TestDetectZeroLengthWallSkipped(t *testing.T) {
	fp := emptyPlan(10, 10)
	fp.Walls = []plan.Wall{{Start: [2]float64{5, 5}, End: [2]float64{5, 5}}}
	zs := Detect(fp, Options{})
	if len(zs) != 1 || !approxEqual(zs[0].Area, 100, 1e-9) {
		t.Error("zero-length wall should not mark any cells")
	}
}

func TestGridRasterizeDiagonal(t *testing.T) {
	g := NewGrid(plan.Bounds{MaxX: 10, MaxY: 10}.Rect(), 0.5)
	open := g.OpenCount()
	g.RasterizeWall(plan.Wall{Start: [2]float64{0, 0}, End: [2]float64{10, 10}}.Segment(), 0.3)
	if g.OpenCount() >= open {
		t.Error("rasterized wall marked no cells")
	}
	// The diagonal passes through the grid center.
	c, r := 10, 10
	if g.At(c, r) != CellWall {
		t.Errorf("expected wall at center cell, got %v", g.At(c, r))
	}
}
