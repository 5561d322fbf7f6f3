package routing

import (
	"math"
	"testing"

	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/geo"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/layout"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/plan"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func unit(id string, x, y, w, h float64) layout.Ilot {
	return layout.Ilot{ID: id, X: x, Y: y, Width: w, Height: h, Area: w * h}
}

func boundsPlan(w, h float64) *plan.FloorPlan {
	return &plan.FloorPlan{Bounds: plan.Bounds{MinX: 0, MinY: 0, MaxX: w, MaxY: h}}
}

func TestRowGapColumnCorridor(t *testing.T) {
	// Two units stacked in one column with a 2 m vertical gap produce one
	// horizontal corridor of height 1.2 centered at y=3.9 spanning x in [0,2].
	ilots := []layout.Ilot{
		unit("a", 0, 0, 2, 3),
		unit("b", 0, 5, 2, 3),
	}
	cs := Generate(ilots, boundsPlan(2, 8), Options{CorridorWidth: 1.2, Margin: 0.5})

	if len(cs) != 1 {
		t.Fatalf("expected exactly 1 corridor, got %d", len(cs))
	}
	c := cs[0]
	if c.Type != CorridorHorizontal {
		t.Errorf("expected horizontal corridor, got %s", c.Type)
	}
	if !approxEqual(c.Height, 1.2, 1e-9) {
		t.Errorf("expected height 1.2, got %f", c.Height)
	}
	centerY := c.Y + c.Height/2
	if !approxEqual(centerY, 3.9, 1e-9) {
		t.Errorf("expected center y=3.9, got %f", centerY)
	}
	if !approxEqual(c.X, 0, 1e-9) || !approxEqual(c.X+c.Width, 2, 1e-9) {
		t.Errorf("expected span x in [0,2], got [%f,%f]", c.X, c.X+c.Width)
	}
}

func TestRowGapNarrowGapIgnored(t *testing.T) {
	// Gap of 1.5 m does not exceed margin+width (1.7): no corridor.
	ilots := []layout.Ilot{
		unit("a", 0, 0, 2, 3),
		unit("b", 0, 4.5, 2, 3),
	}
	cs := Generate(ilots, boundsPlan(2, 8), Options{CorridorWidth: 1.2, Margin: 0.5})
	if len(cs) != 0 {
		t.Errorf("expected no corridors, got %d", len(cs))
	}
}

func TestRowGapShortCorridorDiscarded(t *testing.T) {
	// Span of 1.5 m is below the 2.0 m minimum corridor length.
	ilots := []layout.Ilot{
		unit("a", 0, 0, 1.5, 3),
		unit("b", 0, 6, 1.5, 3),
	}
	cs := Generate(ilots, boundsPlan(2, 10), Options{CorridorWidth: 1.2, Margin: 0.5})
	if len(cs) != 0 {
		t.Errorf("expected short corridor discarded, got %d", len(cs))
	}
}

func TestRowGapWithinRowCorridor(t *testing.T) {
	// Two units side by side with a 3 m horizontal gap produce a vertical
	// corridor flush against the right unit.
	ilots := []layout.Ilot{
		unit("a", 0, 0, 2, 3),
		unit("b", 5, 0, 2, 3),
	}
	cs := Generate(ilots, boundsPlan(8, 3), Options{CorridorWidth: 1.2, Margin: 0.5})

	if len(cs) != 1 {
		t.Fatalf("expected 1 corridor, got %d", len(cs))
	}
	c := cs[0]
	if c.Type != CorridorVertical {
		t.Errorf("expected vertical corridor, got %s", c.Type)
	}
	if !approxEqual(c.X+c.Width, 4.5, 1e-9) {
		t.Errorf("expected corridor flush at x=4.5, got %f", c.X+c.Width)
	}
	if !approxEqual(c.Width, 1.2, 1e-9) {
		t.Errorf("expected width 1.2, got %f", c.Width)
	}
}

func TestCorridorIlotDisjointness(t *testing.T) {
	ilots := []layout.Ilot{
		unit("a", 0, 0, 2, 3), unit("b", 6, 0, 2, 3),
		unit("c", 0, 8, 2, 3), unit("d", 6, 8, 2, 3),
	}
	for _, strat := range []Strategy{StrategyRowGap, StrategyAdvanced, StrategySpineRib} {
		cs := Generate(ilots, boundsPlan(20, 20), Options{Strategy: strat})
		for _, c := range cs {
			for _, il := range ilots {
				if c.Rect().Overlaps(il.Rect()) {
					t.Errorf("%s: corridor %s overlaps ilot %s", strat, c.ID, il.ID)
				}
			}
		}
	}
}

func TestCorridorPolygonCorners(t *testing.T) {
	ilots := []layout.Ilot{
		unit("a", 0, 0, 2, 3),
		unit("b", 0, 5, 2, 3),
	}
	cs := Generate(ilots, boundsPlan(2, 8), Options{})
	if len(cs) != 1 {
		t.Fatalf("expected 1 corridor, got %d", len(cs))
	}
	p := cs[0].Polygon
	if p[0][0] != cs[0].X || p[0][1] != cs[0].Y {
		t.Errorf("polygon corner 0 mismatch: %v", p[0])
	}
	if p[2][0] != cs[0].X+cs[0].Width || p[2][1] != cs[0].Y+cs[0].Height {
		t.Errorf("polygon corner 2 mismatch: %v", p[2])
	}
}

func TestAdvancedPerimeterCorridors(t *testing.T) {
	// One unit in the middle of a large floor leaves all four edges clear.
	ilots := []layout.Ilot{unit("a", 9, 9, 2, 2)}
	cs := Generate(ilots, boundsPlan(20, 20), Options{Strategy: StrategyAdvanced})

	perims := 0
	for _, c := range cs {
		if c.Type == CorridorPerimeter {
			perims++
		}
	}
	if perims != 4 {
		t.Errorf("expected 4 perimeter corridors, got %d", perims)
	}
}

func TestAdvancedPerimeterSuppressedByIntrusion(t *testing.T) {
	// A unit hugging the left edge suppresses that edge's corridor.
	ilots := []layout.Ilot{unit("a", 0.6, 9, 2, 2)}
	cs := Generate(ilots, boundsPlan(20, 20), Options{Strategy: StrategyAdvanced})

	for _, c := range cs {
		if c.Type == CorridorPerimeter && c.X < 1 && c.Height > c.Width {
			t.Error("left perimeter corridor should be suppressed")
		}
	}
}

func TestSpineRibNetwork(t *testing.T) {
	fp := boundsPlan(30, 20)
	cs := Generate(nil, fp, Options{Strategy: StrategySpineRib})

	var spines, ribs int
	for _, c := range cs {
		switch c.Type {
		case CorridorSpine:
			spines++
			if !approxEqual(c.Height, 2.0, 1e-9) {
				t.Errorf("expected spine width 2.0, got %f", c.Height)
			}
		case CorridorRib:
			ribs++
			if !approxEqual(c.Width, 1.2, 1e-9) {
				t.Errorf("expected rib width 1.2, got %f", c.Width)
			}
		}
	}
	if spines != 1 {
		t.Errorf("expected 1 spine, got %d", spines)
	}
	// 30 m spine at 8 m spacing: floor(30/8)+1 = 4 stations plus the end.
	if ribs < 3 {
		t.Errorf("expected at least 3 ribs, got %d", ribs)
	}
}

func TestSpineConnectsEntrances(t *testing.T) {
	fp := boundsPlan(30, 20)
	fp.Entrances = []plan.Entrance{
		{Start: [2]float64{0, 9}, End: [2]float64{0, 11}},
		{Start: [2]float64{30, 9}, End: [2]float64{30, 11}},
	}
	cs := Generate(nil, fp, Options{Strategy: StrategySpineRib})

	found := false
	for _, c := range cs {
		if c.Type == CorridorSpine {
			found = true
			if !approxEqual(c.Y+c.Height/2, 10, 1e-9) {
				t.Errorf("expected spine at entrance height y=10, got %f", c.Y+c.Height/2)
			}
		}
	}
	if !found {
		t.Error("expected a spine corridor")
	}
}

func TestRibAvoidsForbiddenZone(t *testing.T) {
	fp := boundsPlan(30, 20)
	// Forbidden strip across the floor at x around 15 kills the rib there.
	fp.ForbiddenZones = []plan.Area{
		{Bounds: &plan.Bounds{MinX: 14, MinY: 0, MaxX: 16, MaxY: 20}},
	}
	cs := Generate(nil, fp, Options{Strategy: StrategySpineRib})
	for _, c := range cs {
		if c.Type == CorridorRib && c.X < 16 && c.X+c.Width > 14 {
			t.Errorf("rib %s crosses the forbidden strip", c.ID)
		}
	}
}

func TestAdjacencyGraph(t *testing.T) {
	cs := []Corridor{
		newCorridor(CorridorHorizontal, geo.RectAt(0, 0, 10, 1.2)),
		newCorridor(CorridorVertical, geo.RectAt(0, 1.4, 1.2, 10)),
		newCorridor(CorridorHorizontal, geo.RectAt(50, 50, 10, 1.2)),
	}
	for i := range cs {
		cs[i].ID = []string{"c0", "c1", "c2"}[i]
	}

	adj := Adjacency(cs, 0.5)
	if len(adj["c0"]) != 1 || adj["c0"][0] != "c1" {
		t.Errorf("expected c0 adjacent to c1, got %v", adj["c0"])
	}
	if len(adj["c2"]) != 0 {
		t.Errorf("expected c2 isolated, got %v", adj["c2"])
	}
	if Connected(cs, 0.5) {
		t.Error("expected network with isolated corridor to be disconnected")
	}
	if !Connected(cs[:2], 0.5) {
		t.Error("expected touching corridors to be connected")
	}
}

func TestGenerateNoUnits(t *testing.T) {
	cs := Generate(nil, boundsPlan(10, 10), Options{})
	if len(cs) != 0 {
		t.Errorf("expected no row-gap corridors without units, got %d", len(cs))
	}
}
