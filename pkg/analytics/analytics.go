// Package analytics computes the empty-plan analysis that precedes
// placement: per-room metrics, floor totals, and room suitability for
// holding storage units.
package analytics

import (
	"fmt"

	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/plan"
)

// Room types that never receive units.
var unsuitableRoomTypes = map[string]bool{
	"corridor":  true,
	"stairwell": true,
	"elevator":  true,
	"bathroom":  true,
	"technical": true,
}

// minSuitableRoomArea is the smallest room worth placing units in.
const minSuitableRoomArea = 8.0 // m2

// RoomMetrics holds the analysis of one room.
type RoomMetrics struct {
	ID       string     `json:"id"`
	Type     string     `json:"type"`
	Area     float64    `json:"area"`
	Centroid [2]float64 `json:"centroid"`
	Suitable bool       `json:"suitable"`
	Reason   string     `json:"reason,omitempty"`
}

// FloorMetrics aggregates the whole floor.
type FloorMetrics struct {
	FloorArea       float64 `json:"floor_area"`
	RoomArea        float64 `json:"room_area"`
	AvailableSpace  float64 `json:"available_space"`
	SpaceEfficiency float64 `json:"space_efficiency"`
	RoomCount       int     `json:"room_count"`
	SuitableRooms   int     `json:"suitable_rooms"`
	WallCount       int     `json:"wall_count"`
	EntranceCount   int     `json:"entrance_count"`
	ForbiddenCount  int     `json:"forbidden_count"`
}

// Analysis is the complete empty-plan analysis result.
type Analysis struct {
	Rooms   []RoomMetrics `json:"rooms"`
	Metrics FloorMetrics  `json:"metrics"`
}

// Analyze runs the empty-plan analysis. A nil plan yields an empty analysis;
// rooms with degenerate polygons are reported as unsuitable rather than
// skipped, so the room count stays faithful to the input.
func Analyze(fp *plan.FloorPlan) *Analysis {
	a := &Analysis{Rooms: []RoomMetrics{}}
	if fp == nil {
		return a
	}

	bounds := fp.Bounds.Rect()
	a.Metrics.FloorArea = bounds.Area()
	a.Metrics.WallCount = len(fp.Walls)
	a.Metrics.EntranceCount = len(fp.Entrances)
	a.Metrics.ForbiddenCount = len(fp.ForbiddenZones)

	for i, room := range fp.Rooms {
		m := analyzeRoom(room, i)
		a.Rooms = append(a.Rooms, m)
		a.Metrics.RoomArea += m.Area
		if m.Suitable {
			a.Metrics.SuitableRooms++
		}
	}
	a.Metrics.RoomCount = len(a.Rooms)

	a.Metrics.AvailableSpace = a.Metrics.FloorArea - a.Metrics.RoomArea
	if a.Metrics.FloorArea > 0 {
		a.Metrics.SpaceEfficiency = a.Metrics.RoomArea / a.Metrics.FloorArea
	}
	return a
}

func analyzeRoom(room plan.Room, index int) RoomMetrics {
	id := room.ID
	if id == "" {
		id = fmt.Sprintf("room_%02d", index)
	}
	m := RoomMetrics{ID: id, Type: room.Type}

	poly := room.PolygonGeo()
	if poly.IsEmpty() {
		m.Reason = "degenerate polygon"
		return m
	}
	m.Area = poly.Area()
	c := poly.Centroid()
	m.Centroid = [2]float64{c.X, c.Y}

	switch {
	case unsuitableRoomTypes[room.Type]:
		m.Reason = fmt.Sprintf("room type %q excluded", room.Type)
	case m.Area < minSuitableRoomArea:
		m.Reason = fmt.Sprintf("area %.1f m2 below %.1f m2 minimum", m.Area, minSuitableRoomArea)
	default:
		m.Suitable = true
	}
	return m
}
