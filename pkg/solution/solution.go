// Package solution assembles the outputs of the placement, routing, and
// compliance stages into one serializable result.
package solution

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/compliance"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/layout"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/plan"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/routing"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/zones"
)

// BoundingBox is the AABB of all placed geometry.
type BoundingBox struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Stats summarizes how the floor area is used.
type Stats struct {
	FloorArea        float64        `json:"floor_area"`
	ZoneCount        int            `json:"zone_count"`
	IlotCount        int            `json:"ilot_count"`
	IlotArea         float64        `json:"ilot_area"`
	CorridorCount    int            `json:"corridor_count"`
	CorridorArea     float64        `json:"corridor_area"`
	Coverage         float64        `json:"coverage"`
	CirculationRatio float64        `json:"circulation_ratio"`
	CountByCategory  map[string]int `json:"count_by_category"`
	Bounds           BoundingBox    `json:"bounds"`
}

// Solution is the complete layout result for one solver run.
type Solution struct {
	ID          string                  `json:"id"`
	PlanName    string                  `json:"plan_name,omitempty"`
	Strategy    routing.Strategy        `json:"strategy,omitempty"`
	Seed        int64                   `json:"seed"`
	GeneratedAt string                  `json:"generated_at"`
	Ilots       []layout.Ilot           `json:"ilots"`
	Corridors   []routing.Corridor      `json:"corridors"`
	Deviation   *layout.DeviationReport `json:"deviation,omitempty"`
	Compliance  *compliance.Report      `json:"compliance,omitempty"`
	Stats       Stats                   `json:"stats"`
}

// Assemble builds a Solution from the stage outputs. Any of the report
// arguments may be nil when the corresponding stage was skipped.
func Assemble(
	fp *plan.FloorPlan,
	zs []zones.Zone,
	placed *layout.Result,
	corridors []routing.Corridor,
	report *compliance.Report,
	strategy routing.Strategy,
	seed int64,
) *Solution {
	s := &Solution{
		ID:          uuid.NewString(),
		Strategy:    strategy,
		Seed:        seed,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Ilots:       []layout.Ilot{},
		Corridors:   corridors,
		Compliance:  report,
	}
	if fp != nil {
		s.PlanName = fp.Name
		s.Stats.FloorArea = fp.Bounds.Rect().Area()
	}
	if placed != nil {
		s.Ilots = placed.Ilots
		s.Deviation = placed.Report
	}
	if s.Corridors == nil {
		s.Corridors = []routing.Corridor{}
	}

	s.Stats.ZoneCount = len(zs)
	s.Stats.IlotCount = len(s.Ilots)
	s.Stats.CorridorCount = len(s.Corridors)
	s.Stats.CountByCategory = map[string]int{}

	for _, il := range s.Ilots {
		s.Stats.IlotArea += il.Area
		s.Stats.CountByCategory[il.Category]++
	}
	for _, c := range s.Corridors {
		s.Stats.CorridorArea += c.Area
	}
	if s.Stats.FloorArea > 0 {
		s.Stats.Coverage = s.Stats.IlotArea / s.Stats.FloorArea
		s.Stats.CirculationRatio = s.Stats.CorridorArea / s.Stats.FloorArea
	}
	s.Stats.Bounds = computeBounds(s.Ilots, s.Corridors)

	return s
}

// computeBounds calculates the AABB of all ilots and corridors.
func computeBounds(ilots []layout.Ilot, corridors []routing.Corridor) BoundingBox {
	if len(ilots) == 0 && len(corridors) == 0 {
		return BoundingBox{}
	}
	bb := BoundingBox{
		MinX: math.MaxFloat64, MinY: math.MaxFloat64,
		MaxX: -math.MaxFloat64, MaxY: -math.MaxFloat64,
	}
	include := func(minX, minY, maxX, maxY float64) {
		if minX < bb.MinX {
			bb.MinX = minX
		}
		if minY < bb.MinY {
			bb.MinY = minY
		}
		if maxX > bb.MaxX {
			bb.MaxX = maxX
		}
		if maxY > bb.MaxY {
			bb.MaxY = maxY
		}
	}
	for _, il := range ilots {
		include(il.X, il.Y, il.X+il.Width, il.Y+il.Height)
	}
	for _, c := range corridors {
		include(c.X, c.Y, c.X+c.Width, c.Y+c.Height)
	}
	return bb
}
