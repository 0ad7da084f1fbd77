package puzzle

import (
	"errors"
	"fmt"
)

// Diff errors. These indicate a defect in the caller: solver-produced
// paths never trigger them.
var (
	ErrInvariantsDiffer = errors.New("state invariants differ")
	ErrRobotCountDiffer = errors.New("number of robots differs")
	ErrStatesEqual      = errors.New("start and end states are equal")
)

// PosChange is the minimal diff between two consecutive states: the single
// moved actor's position before and after.
type PosChange struct {
	From Pos
	To   Pos
}

func (c PosChange) String() string {
	return fmt.Sprintf("%s => %s", c.From, c.To)
}

// Diff computes the position change between two adjacent states. The
// states must share invariants and robot count and must not be identical.
// The astronaut is checked first, then robots in index order; the first
// difference wins.
func Diff(s, t State) (PosChange, error) {
	if s.inv != t.inv {
		return PosChange{}, ErrInvariantsDiffer
	}
	if len(s.Robots) != len(t.Robots) {
		return PosChange{}, ErrRobotCountDiffer
	}

	if s.Astro != t.Astro {
		return PosChange{From: s.Astro, To: t.Astro}, nil
	}
	for i, r := range s.Robots {
		if r != t.Robots[i] {
			return PosChange{From: r, To: t.Robots[i]}, nil
		}
	}
	return PosChange{}, ErrStatesEqual
}

// PosChanges computes the per-step diffs along a path of states. For a
// path of length L it returns L-1 changes, in order.
func PosChanges(states []State) ([]PosChange, error) {
	if len(states) < 2 {
		return nil, nil
	}

	changes := make([]PosChange, 0, len(states)-1)
	for i := 1; i < len(states); i++ {
		c, err := Diff(states[i-1], states[i])
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		changes = append(changes, c)
	}
	return changes, nil
}
