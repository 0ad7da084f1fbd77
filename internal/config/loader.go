package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the astrobots configuration.
// Search order: customPath -> ~/.astrobots/configs/astrobots.yaml ->
// ./configs/astrobots.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return withFallbacks(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("astrobots.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return withFallbacks(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/astrobots.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return withFallbacks(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return withFallbacks(cfg), nil
}

// userConfigPath returns the path to user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".astrobots", "configs", filename)
}

// withFallbacks fills zero values with defaults so a partial config file
// still yields a usable configuration.
func withFallbacks(cfg Config) Config {
	def := Default()
	if cfg.Board.Rows == 0 {
		cfg.Board.Rows = def.Board.Rows
	}
	if cfg.Board.Cols == 0 {
		cfg.Board.Cols = def.Board.Cols
	}
	if cfg.Generator.MaxAttempts == 0 {
		cfg.Generator.MaxAttempts = def.Generator.MaxAttempts
	}
	if cfg.Generator.MinSolutionStates == 0 {
		cfg.Generator.MinSolutionStates = def.Generator.MinSolutionStates
	}
	return cfg
}
