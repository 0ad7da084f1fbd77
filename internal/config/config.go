// Package config provides YAML-based configuration loading and difficulty
// management for astrobots.
package config

// Config contains all tunable settings for puzzle generation and play.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Generator GeneratorConfig `yaml:"generator"`
}

// BoardConfig defines default board dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// GeneratorConfig defines the generation sampling loop parameters.
type GeneratorConfig struct {
	// MaxAttempts bounds the sample-and-validate loop.
	MaxAttempts int `yaml:"max_attempts"`

	// MinSolutionStates is the non-triviality threshold: generated
	// puzzles must need at least this many states (moves + 1) to solve.
	MinSolutionStates int `yaml:"min_solution_states"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// MinStatesForPreset returns the minimum solution length for a preset.
func MinStatesForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 4
	case DifficultyHard:
		return 7
	default:
		return 5
	}
}

// ApplyPreset adjusts the generator settings for a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Generator.MinSolutionStates = MinStatesForPreset(preset)
}
