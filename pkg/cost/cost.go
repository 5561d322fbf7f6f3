// Package cost turns a placed layout into a rentable-area and revenue
// estimate per size category.
package cost

import (
	"math"
	"sort"

	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/layout"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/routing"
)

// Options tunes the financial assumptions.
type Options struct {
	OccupancyRate float64 `json:"occupancy_rate"`
	InterestRate  float64 `json:"interest_rate"`
	TermYears     int     `json:"term_years"`
}

func (o Options) withDefaults() Options {
	if o.OccupancyRate <= 0 || o.OccupancyRate > 1 {
		o.OccupancyRate = DefaultOccupancyRate
	}
	if o.InterestRate < 0 {
		o.InterestRate = DefaultInterestRate
	}
	if o.TermYears <= 0 {
		o.TermYears = DefaultTermYears
	}
	return o
}

// CategoryRevenue itemizes one size category.
type CategoryRevenue struct {
	Category       string  `json:"category"`
	Count          int     `json:"count"`
	Area           float64 `json:"area"`
	MeanRatePerM2  float64 `json:"mean_rate_per_m2"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
}

// Report is the complete revenue output.
type Report struct {
	Categories []CategoryRevenue `json:"categories"`

	Summary struct {
		RentableArea       float64 `json:"rentable_area"`
		CirculationArea    float64 `json:"circulation_area"`
		FitOutCost         float64 `json:"fit_out_cost"`
		MonthlyRevenue     float64 `json:"monthly_revenue"`
		AnnualRevenue      float64 `json:"annual_revenue"`
		AnnualDebtService  float64 `json:"annual_debt_service"`
		BreakEvenOccupancy float64 `json:"break_even_occupancy"`
	} `json:"summary"`
}

// Estimate computes the revenue report for a placed layout. Monthly revenue
// assumes the configured occupancy rate; break-even occupancy is the fraction
// of full-occupancy revenue needed to cover debt service on the fit-out.
func Estimate(ilots []layout.Ilot, corridors []routing.Corridor, opts Options) *Report {
	opts = opts.withDefaults()
	report := &Report{Categories: []CategoryRevenue{}}

	byCategory := map[string]*CategoryRevenue{}
	fullRevenue := 0.0

	for _, il := range ilots {
		c := byCategory[il.Category]
		if c == nil {
			c = &CategoryRevenue{Category: il.Category}
			byCategory[il.Category] = c
		}
		c.Count++
		c.Area += il.Area
		c.MonthlyRevenue += il.Area * rateForArea(il.Area)

		report.Summary.RentableArea += il.Area
		fullRevenue += il.Area * rateForArea(il.Area)
	}

	for _, c := range byCategory {
		if c.Area > 0 {
			c.MeanRatePerM2 = c.MonthlyRevenue / c.Area
		}
		c.MonthlyRevenue *= opts.OccupancyRate
		report.Categories = append(report.Categories, *c)
	}
	sort.Slice(report.Categories, func(i, j int) bool {
		return report.Categories[i].Category < report.Categories[j].Category
	})

	for _, cor := range corridors {
		report.Summary.CirculationArea += cor.Area
	}

	report.Summary.FitOutCost = report.Summary.RentableArea*FitOutCostPerM2 +
		report.Summary.CirculationArea*CorridorCostPerM2
	report.Summary.MonthlyRevenue = fullRevenue * opts.OccupancyRate
	report.Summary.AnnualRevenue = report.Summary.MonthlyRevenue * 12
	report.Summary.AnnualDebtService = annualDebtService(
		report.Summary.FitOutCost, opts.InterestRate, opts.TermYears)

	if fullRevenue > 0 {
		report.Summary.BreakEvenOccupancy = report.Summary.AnnualDebtService / (fullRevenue * 12)
	}

	return report
}

// annualDebtService uses the standard annuity formula.
// P * r(1+r)^n / ((1+r)^n - 1)
// At 0% interest, returns principal / term.
func annualDebtService(principal, rate float64, termYears int) float64 {
	if termYears <= 0 {
		return 0
	}
	if rate <= 0 {
		return principal / float64(termYears)
	}
	n := float64(termYears)
	factor := math.Pow(1+rate, n)
	return principal * rate * factor / (factor - 1)
}
