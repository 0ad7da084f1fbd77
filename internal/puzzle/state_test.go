package puzzle

import "testing"

func TestTileAtPriority(t *testing.T) {
	s := mustParse(t, []string{
		"A.R",
		"...",
		".X.",
	})

	if s.TileAt(P(0, 0)) != TileAstro {
		t.Error("Expected astronaut tile at (0, 0)")
	}
	if s.TileAt(P(2, 0)) != TileRobot {
		t.Error("Expected robot tile at (2, 0)")
	}
	if s.TileAt(P(1, 2)) != TileGoal {
		t.Error("Expected goal tile at (1, 2)")
	}
	if s.TileAt(P(1, 1)) != Empty {
		t.Error("Expected empty tile at (1, 1)")
	}

	// An actor standing on the goal draws over it
	onGoal, err := s.WithPos(Astro(), s.Goal())
	if err != nil {
		t.Fatalf("WithPos failed: %v", err)
	}
	if onGoal.TileAt(s.Goal()) != TileAstro {
		t.Error("Astronaut on the goal should draw over it")
	}
}

func TestPosOf(t *testing.T) {
	s := mustParse(t, []string{
		"A.R",
		"..R",
		".X.",
	})

	p, err := s.PosOf(Astro())
	if err != nil {
		t.Fatalf("PosOf(Astro) failed: %v", err)
	}
	if p != P(0, 0) {
		t.Errorf("Expected astronaut at (0, 0), got %s", p)
	}

	p, err = s.PosOf(Robot(1))
	if err != nil {
		t.Fatalf("PosOf(Robot 1) failed: %v", err)
	}
	if p != P(2, 1) {
		t.Errorf("Expected robot 1 at (2, 1), got %s", p)
	}

	if _, err := s.PosOf(Robot(2)); err == nil {
		t.Error("Expected an error for out-of-range robot index")
	}
}

func TestWithPosClones(t *testing.T) {
	s := mustParse(t, []string{
		"A.R",
		"...",
		".X.",
	})

	moved, err := s.WithPos(Robot(0), P(2, 2))
	if err != nil {
		t.Fatalf("WithPos failed: %v", err)
	}

	if s.Robots[0] != P(2, 0) {
		t.Error("WithPos modified the original state")
	}
	if moved.Robots[0] != P(2, 2) {
		t.Errorf("Expected moved robot at (2, 2), got %s", moved.Robots[0])
	}

	if _, err := s.WithPos(Robot(5), P(0, 0)); err == nil {
		t.Error("Expected an error for out-of-range robot index")
	}
}

func TestStateEqual(t *testing.T) {
	a := mustParse(t, []string{"A.R", "...", ".X."})
	b := mustParse(t, []string{"A.R", "...", ".X."})

	if !a.Equal(b) {
		t.Error("Identical layouts should produce equal states")
	}

	moved, err := a.WithPos(Astro(), P(1, 0))
	if err != nil {
		t.Fatalf("WithPos failed: %v", err)
	}
	if a.Equal(moved) {
		t.Error("States with different astronaut positions should differ")
	}

	// Same cells but different board dims are never equal
	c := mustParse(t, []string{"A.R.", "....", ".X.."})
	if a.Equal(c) {
		t.Error("States with different invariants should differ")
	}
}

func TestStateStringRoundTrip(t *testing.T) {
	layout := []string{
		"R.R.R",
		".....",
		"..X..",
		"....R",
		".A...",
	}
	s := mustParse(t, layout)

	want := "R.R.R\n.....\n..X..\n....R\n.A..."
	if s.String() != want {
		t.Errorf("Board rendering mismatch:\ngot:\n%s\nwant:\n%s", s.String(), want)
	}
}

func TestSelection(t *testing.T) {
	var zero Selection
	if !zero.IsAstro() {
		t.Error("Zero-value selection should be the astronaut")
	}

	if !Astro().IsAstro() {
		t.Error("Astro() should select the astronaut")
	}
	if Astro().String() != "astronaut" {
		t.Errorf("Unexpected selection label %q", Astro().String())
	}

	sel := Robot(2)
	if sel.IsAstro() {
		t.Error("Robot selection should not be the astronaut")
	}
	n, ok := sel.RobotIndex()
	if !ok || n != 2 {
		t.Errorf("Expected robot index 2, got %d (ok=%v)", n, ok)
	}
	if sel.String() != "robot 2" {
		t.Errorf("Unexpected selection label %q", sel.String())
	}
}
