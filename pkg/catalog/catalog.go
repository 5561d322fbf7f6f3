// Package catalog holds the static registry of storage unit templates.
package catalog

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Template describes one unit size class.
type Template struct {
	ID         string       `toml:"id" json:"id"`
	MinArea    float64      `toml:"min_area" json:"min_area"`
	MaxArea    float64      `toml:"max_area" json:"max_area"`
	Dimensions [][2]float64 `toml:"dimensions" json:"dimensions"` // width x depth candidates
	DoorWidth  float64      `toml:"door_width" json:"door_width"`
}

// MeanArea returns the average area over the template's dimension candidates.
func (t Template) MeanArea() float64 {
	if len(t.Dimensions) == 0 {
		return (t.MinArea + t.MaxArea) / 2
	}
	sum := 0.0
	for _, d := range t.Dimensions {
		sum += d[0] * d[1]
	}
	return sum / float64(len(t.Dimensions))
}

// Catalog is an ordered list of templates. Order matters: priority-mode
// placement picks the first unmet template in catalog order.
type Catalog struct {
	Templates []Template `toml:"templates" json:"templates"`
}

// Default returns the built-in four-class catalog. Area bands are
// 0-2 / 2-5 / 5-10 / 10-20 m2 with a 0.9 m door on every class.
func Default() Catalog {
	return Catalog{Templates: []Template{
		{
			ID: "S", MinArea: 0, MaxArea: 2, DoorWidth: 0.9,
			Dimensions: [][2]float64{{1.0, 1.5}, {1.0, 2.0}, {1.5, 1.0}},
		},
		{
			ID: "M", MinArea: 2, MaxArea: 5, DoorWidth: 0.9,
			Dimensions: [][2]float64{{1.5, 2.0}, {2.0, 2.0}, {2.0, 2.5}},
		},
		{
			ID: "L", MinArea: 5, MaxArea: 10, DoorWidth: 0.9,
			Dimensions: [][2]float64{{2.0, 3.0}, {2.5, 3.0}, {3.0, 3.0}},
		},
		{
			ID: "XL", MinArea: 10, MaxArea: 20, DoorWidth: 0.9,
			Dimensions: [][2]float64{{3.0, 4.0}, {4.0, 4.0}, {4.0, 5.0}},
		},
	}}
}

// ByID returns the template with the given id, or nil if not found.
func (c Catalog) ByID(id string) *Template {
	for i := range c.Templates {
		if c.Templates[i].ID == id {
			return &c.Templates[i]
		}
	}
	return nil
}

// Load reads a custom catalog from a TOML file and validates it.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog file: %w", err)
	}

	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parsing catalog TOML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}

// Validate checks the catalog for structural defects.
func (c Catalog) Validate() error {
	if len(c.Templates) == 0 {
		return fmt.Errorf("catalog has no templates")
	}
	seen := make(map[string]bool, len(c.Templates))
	for i, t := range c.Templates {
		if t.ID == "" {
			return fmt.Errorf("template %d has empty id", i)
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate template id %q", t.ID)
		}
		seen[t.ID] = true
		if t.MaxArea <= t.MinArea {
			return fmt.Errorf("template %q: max_area %.2f <= min_area %.2f", t.ID, t.MaxArea, t.MinArea)
		}
		if len(t.Dimensions) == 0 {
			return fmt.Errorf("template %q has no dimension candidates", t.ID)
		}
		for j, d := range t.Dimensions {
			if d[0] <= 0 || d[1] <= 0 {
				return fmt.Errorf("template %q dimension %d is non-positive", t.ID, j)
			}
		}
	}
	return nil
}
