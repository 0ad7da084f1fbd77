package puzzle

import (
	"errors"
	"testing"
)

func TestDiffAstronautMove(t *testing.T) {
	s := mustParse(t, []string{
		".....",
		".A...",
		".....",
		".X...",
		".....",
	})

	moved, err := s.WithPos(Astro(), P(1, 3))
	if err != nil {
		t.Fatalf("WithPos failed: %v", err)
	}

	c, err := Diff(s, moved)
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}
	if c.From != P(1, 1) || c.To != P(1, 3) {
		t.Errorf("Expected (1, 1) => (1, 3), got %s", c)
	}
	if c.String() != "(1, 1) => (1, 3)" {
		t.Errorf("Unexpected change format: %q", c.String())
	}
}

func TestDiffRobotMove(t *testing.T) {
	s := mustParse(t, []string{
		"A.R",
		"..R",
		".X.",
	})

	moved, err := s.WithPos(Robot(1), P(2, 2))
	if err != nil {
		t.Fatalf("WithPos failed: %v", err)
	}

	c, err := Diff(s, moved)
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}
	if c.From != P(2, 1) || c.To != P(2, 2) {
		t.Errorf("Expected (2, 1) => (2, 2), got %s", c)
	}
}

func TestDiffErrors(t *testing.T) {
	a := mustParse(t, []string{"A.R", "...", ".X."})
	b := mustParse(t, []string{"A..", "...", ".X."})
	c := mustParse(t, []string{"A.R", ".X.", "..."})

	if _, err := Diff(a, a); !errors.Is(err, ErrStatesEqual) {
		t.Errorf("Expected ErrStatesEqual, got %v", err)
	}
	if _, err := Diff(a, b); !errors.Is(err, ErrRobotCountDiffer) {
		t.Errorf("Expected ErrRobotCountDiffer, got %v", err)
	}
	if _, err := Diff(b, c); !errors.Is(err, ErrInvariantsDiffer) {
		t.Errorf("Expected ErrInvariantsDiffer, got %v", err)
	}
}

func TestPosChangesAlongSolution(t *testing.T) {
	s := mustParse(t, []string{
		"A.R",
		"...",
		".X.",
	})

	path := Solve(s)
	if path == nil {
		t.Fatal("Expected a solution")
	}

	changes, err := PosChanges(path)
	if err != nil {
		t.Fatalf("PosChanges failed: %v", err)
	}
	if len(changes) != len(path)-1 {
		t.Errorf("Expected %d changes, got %d", len(path)-1, len(changes))
	}
}

func TestPosChangesShortPaths(t *testing.T) {
	s := mustParse(t, []string{"A.R", "...", ".X."})

	if changes, err := PosChanges(nil); err != nil || changes != nil {
		t.Errorf("Empty path should yield no changes, got %v, %v", changes, err)
	}
	if changes, err := PosChanges([]State{s}); err != nil || changes != nil {
		t.Errorf("Single-state path should yield no changes, got %v, %v", changes, err)
	}
}
