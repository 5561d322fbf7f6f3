package analytics

import (
	"math"
	"testing"

	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/plan"
)

const tolerance = 0.01

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func testPlan() *plan.FloorPlan {
	return &plan.FloorPlan{
		Name:   "test",
		Bounds: plan.Bounds{MaxX: 20, MaxY: 10},
		Walls: []plan.Wall{
			{Start: [2]float64{0, 0}, End: [2]float64{20, 0}},
			{Start: [2]float64{20, 0}, End: [2]float64{20, 10}},
		},
		Entrances: []plan.Entrance{
			{ID: "e1", Start: [2]float64{9, 0}, End: [2]float64{11, 0}},
		},
		Rooms: []plan.Room{
			{ID: "storage", Type: "storage", Polygon: [][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}}},
			{ID: "wc", Type: "bathroom", Polygon: [][2]float64{{10, 0}, {14, 0}, {14, 10}, {10, 10}}},
			{ID: "closet", Type: "storage", Polygon: [][2]float64{{14, 0}, {16, 0}, {16, 2}, {14, 2}}},
		},
	}
}

func TestAnalyzeMetrics(t *testing.T) {
	a := Analyze(testPlan())

	if !approxEqual(a.Metrics.FloorArea, 200) {
		t.Errorf("floor area = %.2f, want 200", a.Metrics.FloorArea)
	}
	// 100 + 40 + 4
	if !approxEqual(a.Metrics.RoomArea, 144) {
		t.Errorf("room area = %.2f, want 144", a.Metrics.RoomArea)
	}
	if !approxEqual(a.Metrics.AvailableSpace, 56) {
		t.Errorf("available space = %.2f, want 56", a.Metrics.AvailableSpace)
	}
	if !approxEqual(a.Metrics.SpaceEfficiency, 0.72) {
		t.Errorf("efficiency = %.3f, want 0.72", a.Metrics.SpaceEfficiency)
	}
	if a.Metrics.RoomCount != 3 {
		t.Errorf("room count = %d, want 3", a.Metrics.RoomCount)
	}
	if a.Metrics.WallCount != 2 || a.Metrics.EntranceCount != 1 {
		t.Errorf("feature counts = (%d walls, %d entrances), want (2, 1)",
			a.Metrics.WallCount, a.Metrics.EntranceCount)
	}
}

func TestAnalyzeSuitability(t *testing.T) {
	a := Analyze(testPlan())

	if a.Metrics.SuitableRooms != 1 {
		t.Fatalf("suitable rooms = %d, want 1", a.Metrics.SuitableRooms)
	}

	byID := map[string]RoomMetrics{}
	for _, r := range a.Rooms {
		byID[r.ID] = r
	}

	if !byID["storage"].Suitable {
		t.Errorf("large storage room should be suitable: %s", byID["storage"].Reason)
	}
	if byID["wc"].Suitable {
		t.Error("bathroom should be excluded by type")
	}
	if byID["closet"].Suitable {
		t.Error("4 m2 closet should be below the area minimum")
	}
	if byID["closet"].Reason == "" {
		t.Error("unsuitable room should carry a reason")
	}
}

func TestAnalyzeCentroid(t *testing.T) {
	a := Analyze(testPlan())
	c := a.Rooms[0].Centroid
	if !approxEqual(c[0], 5) || !approxEqual(c[1], 5) {
		t.Errorf("centroid = (%.2f, %.2f), want (5, 5)", c[0], c[1])
	}
}

func TestAnalyzeNilPlan(t *testing.T) {
	a := Analyze(nil)
	if a == nil {
		t.Fatal("Analyze(nil) returned nil")
	}
	if len(a.Rooms) != 0 || a.Metrics.RoomCount != 0 {
		t.Error("nil plan should yield empty analysis")
	}
}

func TestAnalyzeDegenerateRoom(t *testing.T) {
	fp := &plan.FloorPlan{
		Bounds: plan.Bounds{MaxX: 10, MaxY: 10},
		Rooms: []plan.Room{
			{Type: "storage", Polygon: [][2]float64{{0, 0}, {1, 1}}},
		},
	}
	a := Analyze(fp)
	if len(a.Rooms) != 1 {
		t.Fatalf("rooms = %d, want 1", len(a.Rooms))
	}
	r := a.Rooms[0]
	if r.Suitable {
		t.Error("degenerate room should be unsuitable")
	}
	if r.ID != "room_00" {
		t.Errorf("generated id = %q, want room_00", r.ID)
	}
}
