package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Board.Rows != 5 || cfg.Board.Cols != 5 {
		t.Errorf("Expected 5x5 default board, got %dx%d", cfg.Board.Rows, cfg.Board.Cols)
	}
	if cfg.Generator.MaxAttempts != 5000 {
		t.Errorf("Expected 5000 max attempts, got %d", cfg.Generator.MaxAttempts)
	}
	if cfg.Generator.MinSolutionStates != 5 {
		t.Errorf("Expected 5 min solution states, got %d", cfg.Generator.MinSolutionStates)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `
board:
  rows: 7
  cols: 6
generator:
  max_attempts: 100
  min_solution_states: 8
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Board.Rows != 7 || cfg.Board.Cols != 6 {
		t.Errorf("Expected 7x6 board, got %dx%d", cfg.Board.Rows, cfg.Board.Cols)
	}
	if cfg.Generator.MaxAttempts != 100 {
		t.Errorf("Expected 100 max attempts, got %d", cfg.Generator.MaxAttempts)
	}
	if cfg.Generator.MinSolutionStates != 8 {
		t.Errorf("Expected 8 min solution states, got %d", cfg.Generator.MinSolutionStates)
	}
}

func TestLoadPartialConfigGetsFallbacks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	content := "board:\n  rows: 8\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Board.Rows != 8 {
		t.Errorf("Expected 8 rows from file, got %d", cfg.Board.Rows)
	}
	if cfg.Board.Cols != 5 {
		t.Errorf("Expected default 5 cols, got %d", cfg.Board.Cols)
	}
	if cfg.Generator.MaxAttempts != 5000 {
		t.Errorf("Expected default max attempts, got %d", cfg.Generator.MaxAttempts)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected an error for a missing custom config path")
	}
}

func TestMinStatesForPreset(t *testing.T) {
	cases := []struct {
		preset DifficultyPreset
		want   int
	}{
		{DifficultyEasy, 4},
		{DifficultyNormal, 5},
		{DifficultyHard, 7},
		{"unknown", 5},
	}
	for _, tc := range cases {
		if got := MinStatesForPreset(tc.preset); got != tc.want {
			t.Errorf("MinStatesForPreset(%q) = %d, want %d", tc.preset, got, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Generator.MinSolutionStates != 7 {
		t.Errorf("Expected 7 min solution states for hard, got %d", cfg.Generator.MinSolutionStates)
	}

	// Empty preset leaves the config alone
	cfg = Default()
	ApplyPreset(&cfg, "")
	if cfg.Generator.MinSolutionStates != 5 {
		t.Errorf("Empty preset should not change the config, got %d", cfg.Generator.MinSolutionStates)
	}
}
