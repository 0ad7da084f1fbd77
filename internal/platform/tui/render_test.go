package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/astrobots/internal/puzzle"
)

func TestBoardViewRender(t *testing.T) {
	s, err := puzzle.ParseLayout([]string{
		"A.R",
		"...",
		".X.",
	})
	if err != nil {
		t.Fatalf("ParseLayout failed: %v", err)
	}

	out := BoardView{State: s}.Render()

	for _, r := range []string{"A", "R", "X"} {
		if !strings.Contains(out, r) {
			t.Errorf("Rendered board should contain %q", r)
		}
	}

	// One line per board row plus the frame
	if lines := strings.Count(out, "\n") + 1; lines < 3 {
		t.Errorf("Expected at least 3 output lines, got %d", lines)
	}
}

func TestBoardViewRenderWon(t *testing.T) {
	s, err := puzzle.ParseLayout([]string{
		"A.R",
		"...",
		".X.",
	})
	if err != nil {
		t.Fatalf("ParseLayout failed: %v", err)
	}

	// Won rendering must not panic or drop tiles
	out := BoardView{State: s, Won: true}.Render()
	if !strings.Contains(out, "A") {
		t.Error("Won board should still show the astronaut")
	}
}
