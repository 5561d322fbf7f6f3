package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/catalog"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/compliance"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/cost"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/layout"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/routing"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/zones"
)

// EngineOptions is the TOML options file accepted by every subcommand.
// Every field is optional; zero values fall back to the package defaults.
type EngineOptions struct {
	CatalogPath string `toml:"catalog"`

	Zones struct {
		Resolution        float64 `toml:"resolution"`
		WallBuffer        float64 `toml:"wall_buffer"`
		ForbiddenBuffer   float64 `toml:"forbidden_buffer"`
		EntranceClearance float64 `toml:"entrance_clearance"`
		MinZoneArea       float64 `toml:"min_zone_area"`
	} `toml:"zones"`

	Placement struct {
		CorridorWidth     float64 `toml:"corridor_width"`
		WallMargin        float64 `toml:"wall_margin"`
		EntranceClearance float64 `toml:"entrance_clearance"`
		Seed              int64   `toml:"seed"`
		TolerancePercent  float64 `toml:"tolerance_percent"`
	} `toml:"placement"`

	Corridors struct {
		Strategy      string  `toml:"strategy"`
		CorridorWidth float64 `toml:"corridor_width"`
		Margin        float64 `toml:"margin"`
		SpineWidth    float64 `toml:"spine_width"`
		RibWidth      float64 `toml:"rib_width"`
		MaxRibSpacing float64 `toml:"max_rib_spacing"`
	} `toml:"corridors"`

	Compliance struct {
		MainCorridorWidth      float64 `toml:"main_corridor_width"`
		SecondaryCorridorWidth float64 `toml:"secondary_corridor_width"`
		FireDoorClearance      float64 `toml:"fire_door_clearance"`
		MaxExitDistance        float64 `toml:"max_exit_distance"`
	} `toml:"compliance"`

	Cost struct {
		OccupancyRate float64 `toml:"occupancy_rate"`
		InterestRate  float64 `toml:"interest_rate"`
		TermYears     int     `toml:"term_years"`
	} `toml:"cost"`

	Targets []struct {
		Type  string  `toml:"type"`
		Count int     `toml:"count"`
		Area  float64 `toml:"area"`
	} `toml:"targets"`

	Distribution map[string]float64 `toml:"distribution"`
}

// loadEngineOptions reads the TOML options file. An empty path yields the
// all-defaults options.
func loadEngineOptions(path string) (*EngineOptions, error) {
	opts := &EngineOptions{}
	if path == "" {
		return opts, nil
	}
	if _, err := toml.DecodeFile(path, opts); err != nil {
		return nil, fmt.Errorf("loading options %s: %w", path, err)
	}
	return opts, nil
}

func (o *EngineOptions) loadCatalog() (catalog.Catalog, error) {
	if o.CatalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(o.CatalogPath)
}

func (o *EngineOptions) zoneOptions() zones.Options {
	return zones.Options{
		Resolution:        o.Zones.Resolution,
		WallBuffer:        o.Zones.WallBuffer,
		ForbiddenBuffer:   o.Zones.ForbiddenBuffer,
		EntranceClearance: o.Zones.EntranceClearance,
		MinZoneArea:       o.Zones.MinZoneArea,
	}
}

func (o *EngineOptions) placementOptions(cat catalog.Catalog, seed int64) layout.Options {
	if seed == 0 {
		seed = o.Placement.Seed
	}
	return layout.Options{
		Catalog:           cat,
		CorridorWidth:     o.Placement.CorridorWidth,
		WallMargin:        o.Placement.WallMargin,
		EntranceClearance: o.Placement.EntranceClearance,
		Seed:              seed,
		TolerancePercent:  o.Placement.TolerancePercent,
	}
}

func (o *EngineOptions) routingOptions(strategy string) routing.Options {
	if strategy == "" {
		strategy = o.Corridors.Strategy
	}
	return routing.Options{
		Strategy:      routing.Strategy(strategy),
		CorridorWidth: o.Corridors.CorridorWidth,
		Margin:        o.Corridors.Margin,
		SpineWidth:    o.Corridors.SpineWidth,
		RibWidth:      o.Corridors.RibWidth,
		MaxRibSpacing: o.Corridors.MaxRibSpacing,
	}
}

func (o *EngineOptions) rules() compliance.Rules {
	return compliance.Rules{
		MainCorridorWidth:      o.Compliance.MainCorridorWidth,
		SecondaryCorridorWidth: o.Compliance.SecondaryCorridorWidth,
		FireDoorClearance:      o.Compliance.FireDoorClearance,
		MaxExitDistance:        o.Compliance.MaxExitDistance,
	}
}

func (o *EngineOptions) costOptions() cost.Options {
	return cost.Options{
		OccupancyRate: o.Cost.OccupancyRate,
		InterestRate:  o.Cost.InterestRate,
		TermYears:     o.Cost.TermYears,
	}
}

// defaultDistribution drives placement when no targets or distribution are
// configured.
var defaultDistribution = layout.Distribution{
	"S": 0.10, "M": 0.25, "L": 0.30, "XL": 0.35,
}

// sizeSpec resolves the configured size specification. An explicit --mix flag
// wins over the options file; targets win over a distribution.
func (o *EngineOptions) sizeSpec(mixFlag string) (layout.SizeSpec, error) {
	if mixFlag != "" {
		return parseMixFlag(mixFlag)
	}
	if len(o.Targets) > 0 {
		mix := layout.UnitMix{}
		for _, t := range o.Targets {
			mix.Targets = append(mix.Targets, layout.Target{Type: t.Type, Count: t.Count, Area: t.Area})
		}
		return mix, nil
	}
	if len(o.Distribution) > 0 {
		return layout.Distribution(o.Distribution), nil
	}
	return defaultDistribution, nil
}

// parseMixFlag parses "S=10,M=25" into a unit mix.
func parseMixFlag(s string) (layout.SizeSpec, error) {
	mix := layout.UnitMix{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, val, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("invalid mix entry %q, want TYPE=COUNT", part)
		}
		count, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil || count < 0 {
			return nil, fmt.Errorf("invalid count in mix entry %q", part)
		}
		mix.Targets = append(mix.Targets, layout.Target{Type: strings.TrimSpace(key), Count: count})
	}
	if len(mix.Targets) == 0 {
		return nil, fmt.Errorf("empty mix %q", s)
	}
	return mix, nil
}
