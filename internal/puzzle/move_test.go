package puzzle

import "testing"

func mustParse(t *testing.T, rows []string) State {
	t.Helper()
	s, err := ParseLayout(rows)
	if err != nil {
		t.Fatalf("ParseLayout failed: %v", err)
	}
	return s
}

func TestMoveSlidesToEdge(t *testing.T) {
	s := mustParse(t, []string{
		"A...",
		"....",
		"....",
		"...X",
	})

	landing, ok := s.MoveToward(s.Astro, Right)
	if !ok {
		t.Fatal("Move toward an open edge should succeed")
	}
	if landing != P(3, 0) {
		t.Errorf("Expected landing at (3, 0), got %s", landing)
	}

	landing, ok = s.MoveToward(s.Astro, Down)
	if !ok {
		t.Fatal("Move toward an open edge should succeed")
	}
	if landing != P(0, 3) {
		t.Errorf("Expected landing at (0, 3), got %s", landing)
	}
}

func TestMoveAtEdgeFails(t *testing.T) {
	s := mustParse(t, []string{
		"A...",
		"....",
		"....",
		"...X",
	})

	if _, ok := s.MoveToward(s.Astro, Left); ok {
		t.Error("Move off the left edge should fail")
	}
	if _, ok := s.MoveToward(s.Astro, Up); ok {
		t.Error("Move off the top edge should fail")
	}
}

func TestMoveBlockedByAdjacentActor(t *testing.T) {
	s := mustParse(t, []string{
		"AR..",
		"....",
		"....",
		"...X",
	})

	if _, ok := s.MoveToward(s.Astro, Right); ok {
		t.Error("Move into an adjacent robot should fail")
	}
}

func TestMoveStopsBeforeActor(t *testing.T) {
	s := mustParse(t, []string{
		"A..R",
		"....",
		"....",
		"...X",
	})

	landing, ok := s.MoveToward(s.Astro, Right)
	if !ok {
		t.Fatal("Move with room before the robot should succeed")
	}
	if landing != P(2, 0) {
		t.Errorf("Expected landing adjacent to robot at (2, 0), got %s", landing)
	}
}

func TestMoveSlidesOverGoal(t *testing.T) {
	// The goal does not stop motion; overshooting it is the whole puzzle.
	s := mustParse(t, []string{
		"A.X.",
		"....",
		"....",
		"....",
	})

	landing, ok := s.MoveToward(s.Astro, Right)
	if !ok {
		t.Fatal("Move across the goal should succeed")
	}
	if landing != P(3, 0) {
		t.Errorf("Expected slide past the goal to (3, 0), got %s", landing)
	}
}

func TestMoveStopsOnGoalBeforeActor(t *testing.T) {
	s := mustParse(t, []string{
		"A.XR",
		"....",
		"....",
		"....",
	})

	landing, ok := s.MoveToward(s.Astro, Right)
	if !ok {
		t.Fatal("Move should succeed")
	}
	if landing != P(2, 0) {
		t.Errorf("Expected stop on the goal cell (2, 0), got %s", landing)
	}
}

func TestRobotsSlideLikeTheAstronaut(t *testing.T) {
	s := mustParse(t, []string{
		"....",
		"R..A",
		"....",
		"...X",
	})

	landing, ok := s.MoveToward(s.Robots[0], Right)
	if !ok {
		t.Fatal("Robot move should succeed")
	}
	// Stops adjacent to the astronaut at (3, 1).
	if landing != P(2, 1) {
		t.Errorf("Expected robot landing at (2, 1), got %s", landing)
	}

	if _, ok := s.MoveToward(s.Robots[0], Left); ok {
		t.Error("Robot move off the left edge should fail")
	}
}

func TestMoveDoesNotMutateState(t *testing.T) {
	s := mustParse(t, []string{
		"A..R",
		"....",
		"....",
		"...X",
	})
	before := s.Clone()

	s.MoveToward(s.Astro, Right)
	s.MoveToward(s.Robots[0], Down)

	if !s.Equal(before) {
		t.Error("MoveToward modified the state it was called on")
	}
}
