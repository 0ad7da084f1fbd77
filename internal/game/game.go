// Package game wraps the puzzle core into a playable session: a linear
// move history with undo, actor selection cycling, and a walkthrough over
// the precomputed solution. The platform layer drives it with directions
// and reads states back for rendering.
package game

import (
	"errors"

	"github.com/vovakirdan/astrobots/internal/puzzle"
)

// ErrUnsolvable is returned when a session is constructed from a state
// the solver proves cannot reach the goal.
var ErrUnsolvable = errors.New("puzzle cannot be solved from this state")

// Mode is the current session mode.
type Mode int

const (
	ModePlayable Mode = iota
	ModeWalkthrough
	ModeGameOver
)

// Game is one play session over a solvable puzzle.
type Game struct {
	moves       []puzzle.State
	selected    puzzle.Selection
	mode        Mode
	walkthrough *Walkthrough
}

// New starts a session from the given initial state. The state is solved
// up front: an unsolvable puzzle is rejected with ErrUnsolvable so it can
// never be presented as playable, and the solution feeds the walkthrough.
func New(initial puzzle.State) (*Game, error) {
	solution := puzzle.Solve(initial)
	if solution == nil {
		return nil, ErrUnsolvable
	}

	return &Game{
		moves:       []puzzle.State{initial},
		selected:    puzzle.Astro(),
		walkthrough: NewWalkthrough(solution),
	}, nil
}

// State returns the current (latest) board state.
func (g *Game) State() puzzle.State {
	return g.moves[len(g.moves)-1]
}

// Mode returns the current session mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Selected returns the currently selected actor.
func (g *Game) Selected() puzzle.Selection {
	return g.selected
}

// SelectedPos returns the selected actor's position.
func (g *Game) SelectedPos() puzzle.Pos {
	// The selection is only ever cycled through valid actors, so the
	// checked accessor cannot fail here.
	p, _ := g.State().PosOf(g.selected)
	return p
}

// Walkthrough returns the solution navigator.
func (g *Game) Walkthrough() *Walkthrough {
	return g.walkthrough
}

// MovesTaken returns the number of committed moves.
func (g *Game) MovesTaken() int {
	return len(g.moves) - 1
}

// OptimalMoves returns the solver's shortest move count from the initial
// state.
func (g *Game) OptimalMoves() int {
	return g.walkthrough.Len() - 1
}

// SelectNext cycles the selection forward: astronaut, robot 0, robot 1,
// ..., back to the astronaut.
func (g *Game) SelectNext() {
	num := g.State().NumRobots()
	if num == 0 {
		return
	}
	if n, ok := g.selected.RobotIndex(); ok {
		if n+1 == num {
			g.selected = puzzle.Astro()
		} else {
			g.selected = puzzle.Robot(n + 1)
		}
		return
	}
	g.selected = puzzle.Robot(0)
}

// SelectPrev cycles the selection backward.
func (g *Game) SelectPrev() {
	num := g.State().NumRobots()
	if num == 0 {
		return
	}
	if n, ok := g.selected.RobotIndex(); ok {
		if n == 0 {
			g.selected = puzzle.Astro()
		} else {
			g.selected = puzzle.Robot(n - 1)
		}
		return
	}
	g.selected = puzzle.Robot(num - 1)
}

// MoveToward resolves a slide of the selected actor without committing
// it. The caller decides whether to Commit the landing position.
func (g *Game) MoveToward(dir puzzle.Direction) (puzzle.Pos, bool) {
	return g.State().MoveToward(g.SelectedPos(), dir)
}

// Commit appends a new state with the selected actor at p. Reaching the
// goal flips the session into game-over mode.
func (g *Game) Commit(p puzzle.Pos) {
	next, err := g.State().WithPos(g.selected, p)
	if err != nil {
		return
	}
	g.moves = append(g.moves, next)

	if g.State().IsAtGoal() {
		g.mode = ModeGameOver
	}
}

// Slide resolves and commits a move in one call. It reports whether a
// move happened.
func (g *Game) Slide(dir puzzle.Direction) bool {
	landing, ok := g.MoveToward(dir)
	if !ok {
		return false
	}
	g.Commit(landing)
	return true
}

// Undo removes the latest move. The initial state is never removed.
func (g *Game) Undo() {
	if len(g.moves) > 1 {
		g.moves = g.moves[:len(g.moves)-1]
	}
}

// Restart truncates the history to the initial state, rewinds the
// walkthrough, and returns to playable mode.
func (g *Game) Restart() {
	g.moves = g.moves[:1]
	g.selected = puzzle.Astro()
	g.walkthrough.Rewind()
	g.mode = ModePlayable
}

// ToggleWalkthrough switches between playable and walkthrough modes. A
// finished game stays finished.
func (g *Game) ToggleWalkthrough() {
	switch g.mode {
	case ModePlayable:
		g.mode = ModeWalkthrough
	case ModeWalkthrough:
		g.mode = ModePlayable
	}
}
