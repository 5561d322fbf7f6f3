package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/internal/server"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/analytics"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/compliance"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/cost"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/layout"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/plan"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/routing"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/solution"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/zones"
)

// loadAndValidate loads the plan file and runs schema validation.
func loadAndValidate(planPath string) (*plan.FloorPlan, *compliance.Report, error) {
	fp, err := loadPlan(planPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading plan: %w", err)
	}
	return fp, compliance.ValidateSchema(fp), nil
}

// loadPlan accepts either a plan file or a project directory.
func loadPlan(path string) (*plan.FloorPlan, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return plan.LoadProject(path)
	}
	return plan.Load(path)
}

func runSolve(planPath string, opts *EngineOptions, strategy, mix string, seed int64, asJSON bool) error {
	fp, schemaReport, err := loadAndValidate(planPath)
	if err != nil {
		return err
	}
	if schemaReport.Errors() > 0 {
		printComplianceReport(schemaReport)
		return fmt.Errorf("plan has schema errors")
	}

	cat, err := opts.loadCatalog()
	if err != nil {
		return err
	}
	spec, err := opts.sizeSpec(mix)
	if err != nil {
		return err
	}

	zs := zones.Detect(fp, opts.zoneOptions())
	logger.Info("zones detected", "count", len(zs))

	placeOpts := opts.placementOptions(cat, seed)
	placed := layout.Generate(fp, zs, spec, placeOpts)
	logger.Info("units placed", "count", len(placed.Ilots),
		"compliance", fmt.Sprintf("%.1f%%", placed.Report.Summary.OverallCompliance))

	routeOpts := opts.routingOptions(strategy)
	corridors := routing.Generate(placed.Ilots, fp, routeOpts)
	logger.Info("corridors generated", "count", len(corridors), "strategy", routeOpts.Strategy)

	checkReport := compliance.Check(placed.Ilots, corridors, fp, opts.rules())
	checkReport.Merge(schemaReport)

	sol := solution.Assemble(fp, zs, &placed, corridors, checkReport, routeOpts.Strategy, placeOpts.Seed)
	logger.Info("solution assembled", "id", sol.ID,
		"coverage", fmt.Sprintf("%.1f%%", sol.Stats.Coverage*100))

	if asJSON {
		output := map[string]any{
			"solution": sol,
			"analysis": analytics.Analyze(fp),
			"revenue":  cost.Estimate(placed.Ilots, corridors, opts.costOptions()),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}

	printSolution(sol)
	fmt.Println()
	printDeviationReport(placed.Report)
	fmt.Println()
	printComplianceReport(checkReport)
	fmt.Println()
	printCostReport(cost.Estimate(placed.Ilots, corridors, opts.costOptions()))
	return nil
}

func runZones(planPath string, opts *EngineOptions, asJSON bool) error {
	fp, schemaReport, err := loadAndValidate(planPath)
	if err != nil {
		return err
	}

	zs := zones.Detect(fp, opts.zoneOptions())
	analysis := analytics.Analyze(fp)

	if asJSON {
		output := map[string]any{
			"zones":    zs,
			"analysis": analysis,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}

	printAnalysis(analysis)
	fmt.Println()
	printZones(zs)
	if schemaReport.Summary.Total > 0 {
		fmt.Println()
		printComplianceReport(schemaReport)
	}
	return nil
}

func runCheck(planPath string, opts *EngineOptions, strategy, mix string, seed int64) error {
	fp, schemaReport, err := loadAndValidate(planPath)
	if err != nil {
		return err
	}
	if schemaReport.Errors() > 0 {
		printComplianceReport(schemaReport)
		os.Exit(1)
	}

	cat, err := opts.loadCatalog()
	if err != nil {
		return err
	}
	spec, err := opts.sizeSpec(mix)
	if err != nil {
		return err
	}

	zs := zones.Detect(fp, opts.zoneOptions())
	placed := layout.Generate(fp, zs, spec, opts.placementOptions(cat, seed))
	corridors := routing.Generate(placed.Ilots, fp, opts.routingOptions(strategy))

	report := compliance.Check(placed.Ilots, corridors, fp, opts.rules())
	printComplianceReport(report)

	if !report.Passed {
		os.Exit(1)
	}
	return nil
}

func runMix(planPath string, opts *EngineOptions, mix string, seed int64) error {
	fp, schemaReport, err := loadAndValidate(planPath)
	if err != nil {
		return err
	}
	if schemaReport.Errors() > 0 {
		printComplianceReport(schemaReport)
		return fmt.Errorf("plan has schema errors")
	}

	cat, err := opts.loadCatalog()
	if err != nil {
		return err
	}
	spec, err := opts.sizeSpec(mix)
	if err != nil {
		return err
	}

	zs := zones.Detect(fp, opts.zoneOptions())
	placed := layout.Generate(fp, zs, spec, opts.placementOptions(cat, seed))

	printDeviationReport(placed.Report)
	return nil
}

// serverEngine bundles the resolved engine configuration for the API server.
func serverEngine(opts *EngineOptions) (server.Engine, error) {
	cat, err := opts.loadCatalog()
	if err != nil {
		return server.Engine{}, err
	}
	spec, err := opts.sizeSpec("")
	if err != nil {
		return server.Engine{}, err
	}
	return server.Engine{
		Zones:     opts.zoneOptions(),
		Placement: opts.placementOptions(cat, 0),
		Routing:   opts.routingOptions(""),
		Rules:     opts.rules(),
		Cost:      opts.costOptions(),
		Spec:      spec,
	}, nil
}
