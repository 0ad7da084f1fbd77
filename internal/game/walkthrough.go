package game

import "github.com/vovakirdan/astrobots/internal/puzzle"

// Walkthrough is a cursor over a precomputed solution path. The cursor
// saturates at both ends; it never leaves [0, Len()-1].
type Walkthrough struct {
	solution []puzzle.State
	step     int
}

// NewWalkthrough wraps a solution path of length >= 1.
func NewWalkthrough(solution []puzzle.State) *Walkthrough {
	return &Walkthrough{solution: solution}
}

// Len returns the number of states in the solution.
func (w *Walkthrough) Len() int {
	return len(w.solution)
}

// Step returns the current cursor position.
func (w *Walkthrough) Step() int {
	return w.step
}

// State returns the solution state under the cursor.
func (w *Walkthrough) State() puzzle.State {
	return w.solution[w.step]
}

// Next advances the cursor, stopping at the final state.
func (w *Walkthrough) Next() {
	if w.step < len(w.solution)-1 {
		w.step++
	}
}

// Prev moves the cursor back, stopping at the initial state.
func (w *Walkthrough) Prev() {
	if w.step > 0 {
		w.step--
	}
}

// Rewind resets the cursor to the initial state.
func (w *Walkthrough) Rewind() {
	w.step = 0
}

// Changes returns the per-step position diffs for display. An error here
// means the path was not produced by the solver and is a defect.
func (w *Walkthrough) Changes() ([]puzzle.PosChange, error) {
	return puzzle.PosChanges(w.solution)
}
