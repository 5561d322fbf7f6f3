package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a floor plan from a YAML or JSON file, chosen by extension.
func Load(path string) (*FloorPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}

	var fp FloorPlan
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &fp); err != nil {
			return nil, fmt.Errorf("parsing plan JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &fp); err != nil {
			return nil, fmt.Errorf("parsing plan YAML: %w", err)
		}
	}

	return &fp, nil
}

// LoadProject loads a floor plan from a project directory. It looks for
// plan.yaml, then plan.json, in the given directory.
func LoadProject(projectDir string) (*FloorPlan, error) {
	for _, name := range []string{"plan.yaml", "plan.yml", "plan.json"} {
		p := filepath.Join(projectDir, name)
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return nil, fmt.Errorf("no plan.yaml or plan.json in %s", projectDir)
}
