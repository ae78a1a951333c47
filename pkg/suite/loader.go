// Package suite loads and runs YAML-defined puzzle suites: named grids
// with optional expected outcomes.
package suite

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Case is one puzzle in a suite. Grid holds a full puzzle document:
// the "width,height" header line followed by the rows.
type Case struct {
	Name   string `yaml:"name"`
	Grid   string `yaml:"grid"`
	Expect string `yaml:"expect,omitempty"` // a number, "impossible", or empty
}

// Suite is a named collection of puzzle cases.
type Suite struct {
	Puzzles []Case `yaml:"puzzles"`
}

// Load parses a suite from YAML bytes.
func Load(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(s.Puzzles) == 0 {
		return nil, fmt.Errorf("no puzzles found in suite")
	}
	for i, c := range s.Puzzles {
		if strings.TrimSpace(c.Grid) == "" {
			return nil, fmt.Errorf("puzzle %d (%s): empty grid", i, c.Name)
		}
	}
	return &s, nil
}

// LoadFile parses a suite from a YAML file path.
func LoadFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return Load(data)
}
