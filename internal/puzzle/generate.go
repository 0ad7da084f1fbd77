package puzzle

import (
	"fmt"
	"math/rand"
)

// GenParams configures randomized puzzle generation.
type GenParams struct {
	Rows int
	Cols int

	// MinSolutionStates is the non-triviality threshold: a candidate is
	// accepted only if its shortest solution has at least this many
	// states (N states = N-1 moves).
	MinSolutionStates int

	// MaxAttempts bounds the sample-and-validate loop.
	MaxAttempts int
}

// DefaultGenParams returns generation defaults for the given board size:
// at least 4 moves to win, up to 5000 candidates.
func DefaultGenParams(rows, cols int) GenParams {
	return GenParams{
		Rows:              rows,
		Cols:              cols,
		MinSolutionStates: 5,
		MaxAttempts:       5000,
	}
}

// Generate samples random states and filters them through the solver
// until one is both solvable and non-trivial, returning that candidate's
// initial state. The rng is injected so a fixed seed reproduces the same
// puzzle.
//
// Each candidate draws a robot count uniformly from [0, max(rows, cols))
// and deals the astronaut, goal, and robots from a shuffled list of all
// cells, so positions are always distinct. Exhausting the attempt budget
// is an explicit error; an unsolvable or trivial puzzle is never
// returned.
func Generate(p GenParams, rng *rand.Rand) (State, error) {
	if p.Rows < 2 || p.Cols < 2 {
		return State{}, fmt.Errorf("board %dx%d too small to generate", p.Rows, p.Cols)
	}

	cells := make([]Pos, 0, p.Rows*p.Cols)
	for y := 0; y < p.Rows; y++ {
		for x := 0; x < p.Cols; x++ {
			cells = append(cells, P(x, y))
		}
	}

	maxRobots := p.Rows
	if p.Cols > maxRobots {
		maxRobots = p.Cols
	}

	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		numRobots := rng.Intn(maxRobots)
		if numRobots > len(cells)-2 {
			numRobots = len(cells) - 2
		}

		rng.Shuffle(len(cells), func(i, j int) {
			cells[i], cells[j] = cells[j], cells[i]
		})

		robots := make([]Pos, numRobots)
		copy(robots, cells[2:2+numRobots])

		candidate := State{
			Astro:  cells[0],
			Robots: robots,
			inv:    Invariants{Goal: cells[1], Rows: p.Rows, Cols: p.Cols},
		}

		solution := Solve(candidate)
		if solution == nil || len(solution) < p.MinSolutionStates {
			continue
		}
		return candidate, nil
	}

	return State{}, fmt.Errorf("no solvable non-trivial %dx%d puzzle found in %d attempts", p.Rows, p.Cols, p.MaxAttempts)
}
