package puzzle

import (
	"math/rand"
	"testing"
)

func TestGenerateProducesValidPuzzle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	params := DefaultGenParams(5, 5)

	s, err := Generate(params, rng)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	rows, cols := s.Dims()
	if rows != 5 || cols != 5 {
		t.Errorf("Expected 5x5 board, got %dx%d", rows, cols)
	}

	if !s.InBounds(s.Astro) {
		t.Errorf("Astronaut out of bounds at %s", s.Astro)
	}
	if !s.InBounds(s.Goal()) {
		t.Errorf("Goal out of bounds at %s", s.Goal())
	}

	// All occupied cells must be distinct
	seen := map[Pos]bool{s.Astro: true, s.Goal(): true}
	if len(seen) != 2 {
		t.Error("Astronaut and goal share a cell")
	}
	for _, r := range s.Robots {
		if !s.InBounds(r) {
			t.Errorf("Robot out of bounds at %s", r)
		}
		if seen[r] {
			t.Errorf("Robot at %s overlaps another piece", r)
		}
		seen[r] = true
	}

	if s.NumRobots() >= 5 {
		t.Errorf("Robot count %d exceeds max(rows, cols)-1", s.NumRobots())
	}
}

func TestGenerateIsSolvableAndNonTrivial(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	params := DefaultGenParams(5, 5)

	s, err := Generate(params, rng)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	solution := Solve(s)
	if solution == nil {
		t.Fatal("Generated puzzle should be solvable")
	}
	if len(solution) < params.MinSolutionStates {
		t.Errorf("Solution has %d states, want at least %d", len(solution), params.MinSolutionStates)
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	params := DefaultGenParams(6, 4)

	s1, err := Generate(params, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	s2, err := Generate(params, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !s1.Equal(s2) {
		t.Error("Same seed should generate the same puzzle")
	}
}

func TestGenerateExhaustsAttempts(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	params := GenParams{
		Rows:              4,
		Cols:              4,
		MinSolutionStates: 1000, // Impossible on a 4x4 board
		MaxAttempts:       10,
	}

	if _, err := Generate(params, rng); err == nil {
		t.Error("Expected an error when no candidate passes validation")
	}
}

func TestGenerateRejectsTinyBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	params := DefaultGenParams(1, 5)

	if _, err := Generate(params, rng); err == nil {
		t.Error("Expected an error for a 1-row board")
	}
}
