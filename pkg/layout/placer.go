package layout

import (
	"fmt"
	"math/rand"

	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/catalog"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/geo"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/plan"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/zones"
)

const maxStoredReasons = 20

// Options configures a placement run. Zero values select the defaults.
type Options struct {
	Catalog           catalog.Catalog
	CorridorWidth     float64 // spacing between rows and units (1.2)
	WallMargin        float64 // inset from region boundary (0.5)
	NudgeStep         float64 // cursor advance on rejection (0.5)
	EntranceClearance float64 // entrance box expansion during rejection (1.5)
	Seed              int64   // pseudorandom seed; same seed replays the layout
	MaxAttemptsZone   int     // consecutive rejections per zone (500)
	MaxAttemptsFull   int     // consecutive rejections for full-bounds (1000)
	TolerancePercent  float64 // shortfall tolerance for the report (10)
}

func (o Options) withDefaults() Options {
	if len(o.Catalog.Templates) == 0 {
		o.Catalog = catalog.Default()
	}
	if o.CorridorWidth <= 0 {
		o.CorridorWidth = 1.2
	}
	if o.WallMargin <= 0 {
		o.WallMargin = 0.5
	}
	if o.NudgeStep <= 0 {
		o.NudgeStep = 0.5
	}
	if o.EntranceClearance <= 0 {
		o.EntranceClearance = 1.5
	}
	if o.MaxAttemptsZone <= 0 {
		o.MaxAttemptsZone = 500
	}
	if o.MaxAttemptsFull <= 0 {
		o.MaxAttemptsFull = 1000
	}
	if o.TolerancePercent <= 0 {
		o.TolerancePercent = 10
	}
	return o
}

// Result bundles the placed ilots with the fulfillment report.
type Result struct {
	Ilots  []Ilot           `json:"ilots"`
	Report *DeviationReport `json:"deviation_report"`
}

// run carries the per-run working state threaded through region scans:
// obstacle geometry, the fulfillment accumulators, and the seeded generator.
type run struct {
	opts      Options
	rng       *rand.Rand
	mix       bool // priority mode
	fills     []*fulfillment
	weights   map[string]float64
	forbidden []geo.Rect
	entrances []geo.Rect
	rooms     []geo.Polygon
	placed    []geo.Rect
	ilots     []Ilot
	reasons   []string
	exhausted bool
	nextID    int
}

// Generate places units into the given zones, or over the full plan bounds
// when no zones exist. The size spec drives template selection; the seed in
// opts makes the run reproducible. Infeasible targets never fail the run:
// placement degrades to partial fulfillment recorded in the report.
func Generate(fp *plan.FloorPlan, zs []zones.Zone, spec SizeSpec, opts Options) Result {
	opts = opts.withDefaults()

	r := &run{
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
	}
	r.resolveSpec(spec)
	r.collectObstacles(fp)

	if len(zs) > 0 {
		for _, z := range zs {
			if z.Bounds.IsDegenerate() {
				r.addReason(fmt.Sprintf("zone %s skipped: missing bounds", z.ID))
				continue
			}
			r.scanRegion(z.Bounds, z.Polygon, z.ID, opts.MaxAttemptsZone)
			if r.mix && r.allMet() {
				break
			}
		}
	} else if fp != nil && !fp.Bounds.Rect().IsDegenerate() {
		// Fallback: no usable zones, pack over the full floor bounds.
		r.scanRegion(fp.Bounds.Rect(), geo.Polygon{}, "", opts.MaxAttemptsFull)
	} else {
		r.addReason("no zones and no usable bounds; nothing placed")
	}

	spaceExhausted := false
	if r.mix {
		spaceExhausted = r.exhausted && !r.allMet()
	}
	return Result{
		Ilots:  r.ilots,
		Report: buildReport(r.fills, r.reasons, spaceExhausted, opts.TolerancePercent),
	}
}

// resolveSpec expands the size spec into per-template accumulators once, so
// the scan loop never branches on the spec variant.
func (r *run) resolveSpec(spec SizeSpec) {
	byID := make(map[string]*fulfillment)
	for _, t := range r.opts.Catalog.Templates {
		f := &fulfillment{templateID: t.ID}
		byID[t.ID] = f
		r.fills = append(r.fills, f)
	}

	switch s := spec.(type) {
	case UnitMix:
		r.mix = true
		for _, tgt := range s.Targets {
			if f, ok := byID[tgt.Type]; ok {
				f.target = tgt.Count
				f.areaTarget = tgt.Area
			} else {
				r.addReason(fmt.Sprintf("unit mix requests unknown template %q", tgt.Type))
			}
		}
	case Distribution:
		r.weights = map[string]float64{}
		for id, w := range s {
			if _, ok := byID[id]; ok && w > 0 {
				r.weights[id] = w
			}
		}
	default:
		// Nil or unknown spec: uniform distribution across the catalog.
		r.weights = map[string]float64{}
		for _, t := range r.opts.Catalog.Templates {
			r.weights[t.ID] = 1
		}
	}
}

func (r *run) collectObstacles(fp *plan.FloorPlan) {
	if fp == nil {
		return
	}
	for _, fz := range fp.ForbiddenZones {
		if len(fz.Polygon) == 0 && fz.Bounds == nil {
			continue
		}
		r.forbidden = append(r.forbidden, fz.Rect())
	}
	for _, e := range fp.Entrances {
		r.entrances = append(r.entrances, e.Rect().Expand(r.opts.EntranceClearance))
	}
	for _, room := range fp.Rooms {
		if len(room.Polygon) >= 3 {
			r.rooms = append(r.rooms, room.PolygonGeo())
		}
	}
}

// scanRegion runs the row-scan cursor over one region.
func (r *run) scanRegion(bounds geo.Rect, boundary geo.Polygon, zoneID string, maxAttempts int) {
	margin := r.opts.WallMargin
	x := bounds.MinX + margin
	y := bounds.MinY + margin
	rowMax := 0.0
	row := 0
	attempts := 0

	for {
		if r.mix && r.allMet() {
			return
		}
		if attempts >= maxAttempts {
			r.exhausted = true
			r.addReason(fmt.Sprintf("region %s: stopped after %d consecutive rejections", regionName(zoneID), maxAttempts))
			return
		}

		tpl := r.chooseTemplate()
		if tpl == nil {
			return
		}
		dim := tpl.Dimensions[r.rng.Intn(len(tpl.Dimensions))]
		w, d := dim[0], dim[1]

		// Horizontal overflow wraps to a new row without consuming an attempt.
		if x+w > bounds.MaxX-margin {
			if x <= bounds.MinX+margin {
				// Candidate wider than the region itself.
				attempts++
				continue
			}
			x = bounds.MinX + margin
			y += rowMax + r.opts.CorridorWidth
			rowMax = 0
			row++
			continue
		}
		// Vertical overflow ends the region.
		if y+d > bounds.MaxY-margin {
			r.exhausted = true
			r.addReason(fmt.Sprintf("region %s: space exhausted at row %d", regionName(zoneID), row))
			return
		}

		cand := geo.RectAt(x, y, w, d)
		if !r.admissible(cand) {
			x += r.opts.NudgeStep
			attempts++
			continue
		}

		r.place(cand, tpl.ID, zoneID, row)
		x += w + r.opts.CorridorWidth
		if d > rowMax {
			rowMax = d
		}
		attempts = 0
	}
}

// admissible applies the rejection tests from the placement contract.
func (r *run) admissible(cand geo.Rect) bool {
	center := cand.Center()

	// Room boundary: when rooms are known the candidate center must fall
	// inside one of them.
	if len(r.rooms) > 0 {
		inside := false
		for _, room := range r.rooms {
			if room.Contains(center) {
				inside = true
				break
			}
		}
		if !inside {
			return false
		}
	}
	for _, fz := range r.forbidden {
		if cand.Overlaps(fz) {
			return false
		}
	}
	for _, e := range r.entrances {
		if cand.Overlaps(e) {
			return false
		}
	}
	for _, p := range r.placed {
		if cand.Overlaps(p) {
			return false
		}
	}
	return true
}

func (r *run) place(rect geo.Rect, templateID, zoneID string, row int) {
	il := Ilot{
		ID:       fmt.Sprintf("ilot_%03d", r.nextID),
		X:        rect.MinX,
		Y:        rect.MinY,
		Width:    rect.Width(),
		Height:   rect.Height(),
		Area:     rect.Area(),
		Category: templateID,
		Zone:     zoneID,
		Row:      row,
	}
	r.nextID++
	r.ilots = append(r.ilots, il)
	r.placed = append(r.placed, rect)

	for _, f := range r.fills {
		if f.templateID == templateID {
			f.placed++
			f.areaPlaced += il.Area
			break
		}
	}
}

// chooseTemplate picks the next template: in priority mode the first unmet
// template in catalog order wins; otherwise a weighted random draw.
func (r *run) chooseTemplate() *catalog.Template {
	if r.mix {
		for _, f := range r.fills {
			if !f.met() {
				return r.opts.Catalog.ByID(f.templateID)
			}
		}
		return nil
	}

	total := 0.0
	for _, t := range r.opts.Catalog.Templates {
		total += r.weights[t.ID]
	}
	if total <= 0 {
		return nil
	}
	draw := r.rng.Float64() * total
	for i := range r.opts.Catalog.Templates {
		t := &r.opts.Catalog.Templates[i]
		draw -= r.weights[t.ID]
		if draw <= 0 {
			return t
		}
	}
	return &r.opts.Catalog.Templates[len(r.opts.Catalog.Templates)-1]
}

func (r *run) allMet() bool {
	for _, f := range r.fills {
		if !f.met() {
			return false
		}
	}
	return true
}

func (r *run) addReason(msg string) {
	if len(r.reasons) < maxStoredReasons {
		r.reasons = append(r.reasons, msg)
	}
}

func regionName(zoneID string) string {
	if zoneID == "" {
		return "full-bounds"
	}
	return zoneID
}
