package layout

import "math"

// Fulfillment status values.
const (
	StatusFulfilled = "FULFILLED"
	StatusShortfall = "SHORTFALL"
)

// fulfillment accumulates per-template counters while placing. It is passed
// through each region scan explicitly; there is no shared state between runs.
type fulfillment struct {
	templateID string
	target     int
	areaTarget float64
	placed     int
	areaPlaced float64
}

// met reports whether this template's target is satisfied.
func (f *fulfillment) met() bool {
	if f.target > 0 {
		return f.placed >= f.target
	}
	if f.areaTarget > 0 {
		return f.areaPlaced >= f.areaTarget
	}
	return true
}

// Deviation compares one template's requested and achieved placement.
type Deviation struct {
	Type             string  `json:"type"`
	Target           int     `json:"target"`
	Placed           int     `json:"placed"`
	AreaTarget       float64 `json:"area_target,omitempty"`
	AreaPlaced       float64 `json:"area_placed"`
	Deviation        int     `json:"deviation"`
	DeviationPercent float64 `json:"deviation_percent"`
	WithinTolerance  bool    `json:"within_tolerance"`
	Status           string  `json:"status"`
}

// DeviationSummary aggregates a placement run.
type DeviationSummary struct {
	TotalTarget       int     `json:"total_target"`
	TotalPlaced       int     `json:"total_placed"`
	TotalAreaPlaced   float64 `json:"total_area_placed"`
	OverallCompliance float64 `json:"overall_compliance"` // percent
}

// DeviationReport is the structured fulfillment output of one placement run.
// It is read-only after generation.
type DeviationReport struct {
	Summary        DeviationSummary `json:"summary"`
	Deviations     []Deviation      `json:"deviations"`
	Reasons        []string         `json:"reasons"`
	SpaceExhausted bool             `json:"space_exhausted"`
}

// buildReport folds the fulfillment accumulators into a deviation report.
// tolerancePercent is the allowed shortfall as a percentage of the target.
func buildReport(fs []*fulfillment, reasons []string, spaceExhausted bool, tolerancePercent float64) *DeviationReport {
	report := &DeviationReport{
		Deviations:     []Deviation{},
		Reasons:        reasons,
		SpaceExhausted: spaceExhausted,
	}

	for _, f := range fs {
		report.Summary.TotalPlaced += f.placed
		report.Summary.TotalAreaPlaced += f.areaPlaced

		target := f.target
		if target == 0 && f.areaTarget == 0 {
			// Distribution mode: nothing requested, nothing to deviate from.
			continue
		}
		report.Summary.TotalTarget += target

		dev := f.placed - target
		var devPct float64
		var within bool
		if target > 0 {
			devPct = float64(dev) / float64(target) * 100
			within = dev >= 0 || math.Abs(devPct) <= tolerancePercent
		} else {
			devPct = (f.areaPlaced - f.areaTarget) / f.areaTarget * 100
			within = f.areaPlaced >= f.areaTarget || math.Abs(devPct) <= tolerancePercent
		}
		status := StatusFulfilled
		if !within {
			status = StatusShortfall
		}

		report.Deviations = append(report.Deviations, Deviation{
			Type:             f.templateID,
			Target:           target,
			Placed:           f.placed,
			AreaTarget:       f.areaTarget,
			AreaPlaced:       f.areaPlaced,
			Deviation:        dev,
			DeviationPercent: devPct,
			WithinTolerance:  within,
			Status:           status,
		})
	}

	if report.Summary.TotalTarget > 0 {
		report.Summary.OverallCompliance =
			float64(report.Summary.TotalPlaced) / float64(report.Summary.TotalTarget) * 100
	} else if report.Summary.TotalPlaced > 0 {
		report.Summary.OverallCompliance = 100
	}
	return report
}
