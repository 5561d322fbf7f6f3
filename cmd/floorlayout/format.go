package main

import (
	"fmt"
	"sort"

	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/analytics"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/compliance"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/cost"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/layout"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/solution"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/zones"
)

func printComplianceReport(r *compliance.Report) {
	var errors, warnings []compliance.Violation
	for _, v := range r.Violations {
		if v.Severity == compliance.SeverityError {
			errors = append(errors, v)
		} else {
			warnings = append(warnings, v)
		}
	}

	if len(errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(errors))
		for _, v := range errors {
			fmt.Printf("  [%s] %s\n", v.Type, v.Message)
			if v.Element != "" {
				fmt.Printf("    -> %s\n", v.Element)
			}
		}
		fmt.Println()
	}

	if len(warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(warnings))
		for _, v := range warnings {
			fmt.Printf("  [%s] %s\n", v.Type, v.Message)
			if v.Element != "" {
				fmt.Printf("    -> %s\n", v.Element)
			}
		}
		fmt.Println()
	}

	if r.Passed {
		fmt.Printf("Result: PASS (%s)\n", r.Summary.Text)
	} else {
		fmt.Printf("Result: FAIL (%s)\n", r.Summary.Text)
	}
}

func printDeviationReport(r *layout.DeviationReport) {
	fmt.Println("Deviation Report")
	fmt.Println("================")
	fmt.Printf("%-8s %8s %8s %12s %10s %8s  %s\n",
		"Type", "Target", "Placed", "Area (m2)", "Dev %", "OK", "Status")
	for _, d := range r.Deviations {
		ok := "no"
		if d.WithinTolerance {
			ok = "yes"
		}
		fmt.Printf("%-8s %8d %8d %12.1f %10.1f %8s  %s\n",
			d.Type, d.Target, d.Placed, d.AreaPlaced, d.DeviationPercent, ok, d.Status)
	}
	fmt.Println()
	fmt.Printf("  Placed %d of %d units, %.1f m2, %.1f%% overall compliance\n",
		r.Summary.TotalPlaced, r.Summary.TotalTarget,
		r.Summary.TotalAreaPlaced, r.Summary.OverallCompliance)
	if r.SpaceExhausted {
		fmt.Println("  Placement stopped: usable space exhausted")
	}
	for _, reason := range r.Reasons {
		fmt.Printf("  * %s\n", reason)
	}
}

func printZones(zs []zones.Zone) {
	fmt.Printf("Zones (%d):\n", len(zs))
	for _, z := range zs {
		fmt.Printf("  %-10s %8.1f m2   [%.1f, %.1f] - [%.1f, %.1f]\n",
			z.ID, z.Area, z.Bounds.MinX, z.Bounds.MinY, z.Bounds.MaxX, z.Bounds.MaxY)
	}
}

func printAnalysis(a *analytics.Analysis) {
	fmt.Println("Plan Analysis")
	fmt.Println("=============")
	fmt.Printf("  Floor area:       %.1f m2\n", a.Metrics.FloorArea)
	fmt.Printf("  Room area:        %.1f m2 (%d rooms, %d suitable)\n",
		a.Metrics.RoomArea, a.Metrics.RoomCount, a.Metrics.SuitableRooms)
	fmt.Printf("  Available space:  %.1f m2\n", a.Metrics.AvailableSpace)
	fmt.Printf("  Space efficiency: %.1f%%\n", a.Metrics.SpaceEfficiency*100)
	for _, r := range a.Rooms {
		if r.Suitable {
			continue
		}
		fmt.Printf("  skipped %s: %s\n", r.ID, r.Reason)
	}
}

func printSolution(s *solution.Solution) {
	fmt.Printf("Solution %s (%s, seed %d)\n", s.ID, s.Strategy, s.Seed)
	fmt.Printf("  Units:      %d (%.1f m2, %.1f%% coverage)\n",
		s.Stats.IlotCount, s.Stats.IlotArea, s.Stats.Coverage*100)
	fmt.Printf("  Corridors:  %d (%.1f m2, %.1f%% circulation)\n",
		s.Stats.CorridorCount, s.Stats.CorridorArea, s.Stats.CirculationRatio*100)

	categories := make([]string, 0, len(s.Stats.CountByCategory))
	for c := range s.Stats.CountByCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		fmt.Printf("    %-4s %d\n", c, s.Stats.CountByCategory[c])
	}
}

func printCostReport(r *cost.Report) {
	fmt.Println("Revenue Estimate")
	fmt.Println("================")
	fmt.Printf("%-10s %8s %12s %14s %16s\n",
		"Category", "Units", "Area (m2)", "Rate ($/m2)", "Monthly ($)")
	for _, c := range r.Categories {
		fmt.Printf("%-10s %8d %12.1f %14.2f %16s\n",
			c.Category, c.Count, c.Area, c.MeanRatePerM2, formatMoney(c.MonthlyRevenue))
	}
	fmt.Println()
	fmt.Println("Summary")
	fmt.Println("-------")
	fmt.Printf("  Rentable area:        %.1f m2\n", r.Summary.RentableArea)
	fmt.Printf("  Circulation area:     %.1f m2\n", r.Summary.CirculationArea)
	fmt.Printf("  Fit-out cost:         $%s\n", formatMoney(r.Summary.FitOutCost))
	fmt.Printf("  Monthly revenue:      $%s\n", formatMoney(r.Summary.MonthlyRevenue))
	fmt.Printf("  Annual revenue:       $%s\n", formatMoney(r.Summary.AnnualRevenue))
	fmt.Printf("  Annual debt service:  $%s\n", formatMoney(r.Summary.AnnualDebtService))
	fmt.Printf("  Break-even occupancy: %.1f%%\n", r.Summary.BreakEvenOccupancy*100)
}

func formatMoney(v float64) string {
	if v >= 1_000_000_000 {
		return fmt.Sprintf("%.2fB", v/1_000_000_000)
	}
	if v >= 1_000_000 {
		return fmt.Sprintf("%.2fM", v/1_000_000)
	}
	if v >= 1_000 {
		return fmt.Sprintf("%.0fK", v/1_000)
	}
	return fmt.Sprintf("%.0f", v)
}
