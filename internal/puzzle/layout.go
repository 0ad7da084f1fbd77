package puzzle

import (
	"errors"
	"fmt"
)

// Construction errors for malformed board layouts.
var (
	ErrNoPlayer       = errors.New("no player")
	ErrMultiplePlayer = errors.New("more than one player")
	ErrNoGoal         = errors.New("no goal")
	ErrMultipleGoal   = errors.New("more than one goal")
)

// ParseTile maps a layout character to a tile. Unknown characters are an
// error so typos in board files surface instead of silently becoming
// empty cells.
func ParseTile(c rune) (Tile, error) {
	switch c {
	case '.':
		return Empty, nil
	case 'A':
		return TileAstro, nil
	case 'R':
		return TileRobot, nil
	case 'X':
		return TileGoal, nil
	default:
		return Empty, fmt.Errorf("unknown tile character %q", c)
	}
}

// FromTiles builds the initial state from a rectangular grid of tiles,
// indexed grid[row][col]. Exactly one astronaut and exactly one goal are
// required; zero or more robots are allowed. No partial state is produced
// on failure.
func FromTiles(grid [][]Tile) (State, error) {
	rows := len(grid)
	cols := 0
	if rows > 0 {
		cols = len(grid[0])
	}

	var astro, goal *Pos
	var robots []Pos

	for y, row := range grid {
		if len(row) != cols {
			return State{}, fmt.Errorf("row %d has %d cells, want %d", y, len(row), cols)
		}
		for x, t := range row {
			p := P(x, y)
			switch t {
			case TileAstro:
				if astro != nil {
					return State{}, ErrMultiplePlayer
				}
				astro = &p
			case TileRobot:
				robots = append(robots, p)
			case TileGoal:
				if goal != nil {
					return State{}, ErrMultipleGoal
				}
				goal = &p
			}
		}
	}

	if astro == nil {
		return State{}, ErrNoPlayer
	}
	if goal == nil {
		return State{}, ErrNoGoal
	}

	return State{
		Astro:  *astro,
		Robots: robots,
		inv:    Invariants{Goal: *goal, Rows: rows, Cols: cols},
	}, nil
}

// ParseLayout builds the initial state from text rows, one character per
// cell: '.' empty, 'A' astronaut, 'R' robot, 'X' goal.
func ParseLayout(rows []string) (State, error) {
	grid := make([][]Tile, len(rows))
	for y, row := range rows {
		cells := []rune(row)
		grid[y] = make([]Tile, len(cells))
		for x, c := range cells {
			t, err := ParseTile(c)
			if err != nil {
				return State{}, fmt.Errorf("row %d, column %d: %w", y, x, err)
			}
			grid[y][x] = t
		}
	}
	return FromTiles(grid)
}
