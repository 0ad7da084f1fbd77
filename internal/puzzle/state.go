package puzzle

import (
	"fmt"
	"strings"
)

// Invariants are the per-puzzle parameters shared by every state belonging
// to one puzzle instance. Each state carries its own copy: value semantics
// keep state equality self-contained, which the solver's visited set relies
// on. Two states from different puzzles never compare equal.
type Invariants struct {
	Goal Pos
	Rows int
	Cols int
}

// State is one snapshot of the puzzle: the astronaut, the robots in index
// order, and the board invariants. States are treated as immutable once
// published into a move history or solution path; every transition clones
// the predecessor and replaces the single moved actor's position.
type State struct {
	Astro  Pos
	Robots []Pos
	inv    Invariants
}

// NewState builds a state from explicit positions and invariants. Callers
// normally go through ParseLayout or Generate instead.
func NewState(astro Pos, robots []Pos, inv Invariants) State {
	rs := make([]Pos, len(robots))
	copy(rs, robots)
	return State{Astro: astro, Robots: rs, inv: inv}
}

// Invariants returns the board invariants of this state.
func (s State) Invariants() Invariants {
	return s.inv
}

// Dims returns the board dimensions as (rows, cols).
func (s State) Dims() (int, int) {
	return s.inv.Rows, s.inv.Cols
}

// Goal returns the goal position.
func (s State) Goal() Pos {
	return s.inv.Goal
}

// NumRobots returns the number of robots on the board.
func (s State) NumRobots() int {
	return len(s.Robots)
}

// IsAtGoal reports whether the astronaut stands on the goal cell. Robot
// positions are irrelevant.
func (s State) IsAtGoal() bool {
	return s.Astro == s.inv.Goal
}

// InBounds reports whether the position lies on the board.
func (s State) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < s.inv.Cols && p.Y >= 0 && p.Y < s.inv.Rows
}

// TileAt classifies the cell at p. The astronaut and robots draw over the
// goal, so a goal cell with an actor on it reports the actor.
func (s State) TileAt(p Pos) Tile {
	if s.Astro == p {
		return TileAstro
	}
	for _, r := range s.Robots {
		if r == p {
			return TileRobot
		}
	}
	if s.inv.Goal == p {
		return TileGoal
	}
	return Empty
}

// PosOf returns the position of the selected actor. Selecting a robot
// index outside [0, NumRobots) is reported as an error rather than left as
// an unchecked precondition.
func (s State) PosOf(sel Selection) (Pos, error) {
	n, ok := sel.RobotIndex()
	if !ok {
		return s.Astro, nil
	}
	if n < 0 || n >= len(s.Robots) {
		return Pos{}, fmt.Errorf("robot index %d out of range (have %d robots)", n, len(s.Robots))
	}
	return s.Robots[n], nil
}

// WithPos returns a clone of s with the selected actor moved to p. The
// receiver is left untouched. Selecting a missing robot is an error.
func (s State) WithPos(sel Selection, p Pos) (State, error) {
	n, ok := sel.RobotIndex()
	if ok && (n < 0 || n >= len(s.Robots)) {
		return State{}, fmt.Errorf("robot index %d out of range (have %d robots)", n, len(s.Robots))
	}

	next := s.Clone()
	if ok {
		next.Robots[n] = p
	} else {
		next.Astro = p
	}
	return next, nil
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	rs := make([]Pos, len(s.Robots))
	copy(rs, s.Robots)
	return State{Astro: s.Astro, Robots: rs, inv: s.inv}
}

// Equal reports value equality: astronaut, robot list (order-sensitive),
// and invariants must all match.
func (s State) Equal(t State) bool {
	if s.inv != t.inv || s.Astro != t.Astro || len(s.Robots) != len(t.Robots) {
		return false
	}
	for i, r := range s.Robots {
		if r != t.Robots[i] {
			return false
		}
	}
	return true
}

// key returns a compact string encoding of the state, usable as a visited
// map key. Two states have the same key iff they are Equal.
func (s State) key() string {
	var b strings.Builder
	b.Grow(8 + 8*len(s.Robots))
	fmt.Fprintf(&b, "%d,%d;%d,%d;%dx%d", s.Astro.X, s.Astro.Y, s.inv.Goal.X, s.inv.Goal.Y, s.inv.Rows, s.inv.Cols)
	for _, r := range s.Robots {
		fmt.Fprintf(&b, ";%d,%d", r.X, r.Y)
	}
	return b.String()
}

// String renders the board as rows of tile runes, one row per line.
func (s State) String() string {
	var b strings.Builder
	for y := 0; y < s.inv.Rows; y++ {
		if y > 0 {
			b.WriteRune('\n')
		}
		for x := 0; x < s.inv.Cols; x++ {
			b.WriteRune(s.TileAt(P(x, y)).Rune())
		}
	}
	return b.String()
}
