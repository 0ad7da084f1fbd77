// Package formats provides pluggable board file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/astrobots/internal/puzzle"
)

// YAMLBoard represents the YAML structure for a board file.
type YAMLBoard struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Board is a parsed board ready for use.
type Board struct {
	ID       string
	Name     string
	Rows     []string
	Metadata map[string]string
}

// ParseYAML parses a YAML board file. Layout validity (single astronaut,
// single goal, known tile characters) is checked here so broken files are
// rejected at load time rather than at play time.
func ParseYAML(data []byte) (Board, error) {
	var yb YAMLBoard
	if err := yaml.Unmarshal(data, &yb); err != nil {
		return Board{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if len(yb.Rows) == 0 {
		return Board{}, fmt.Errorf("board %q has no rows", yb.ID)
	}
	if _, err := puzzle.ParseLayout(yb.Rows); err != nil {
		return Board{}, fmt.Errorf("board %q: %w", yb.ID, err)
	}

	return Board{
		ID:       yb.ID,
		Name:     yb.Name,
		Rows:     yb.Rows,
		Metadata: yb.Metadata,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
