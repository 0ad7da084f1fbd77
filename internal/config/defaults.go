package config

import (
	_ "embed"
)

//go:embed defaults/astrobots.yaml
var defaultYAML []byte

// Default returns the default astrobots configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Rows: 5,
			Cols: 5,
		},
		Generator: GeneratorConfig{
			MaxAttempts:       5000,
			MinSolutionStates: 5,
		},
	}
}
