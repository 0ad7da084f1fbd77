// Package puzzle implements the sliding-block puzzle core: board state,
// movement resolution, solving, and randomized generation. It contains no
// I/O and no TUI dependencies to keep the logic pure and testable.
package puzzle

import "fmt"

// Pos is a board coordinate. X grows rightward, Y grows downward.
type Pos struct {
	X, Y int
}

// P is a shorthand constructor for Pos.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Direction is one of the four slide directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all directions in the fixed expansion order used by the
// solver. Changing this order changes which of several equally short
// solutions the solver returns.
var Directions = [4]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Selection identifies an actor on the board: the astronaut or a robot by
// index. The zero value selects the astronaut.
type Selection struct {
	robot int // 0 = astronaut, n > 0 = robot n-1
}

// Astro selects the astronaut.
func Astro() Selection {
	return Selection{}
}

// Robot selects the robot at the given index. Index validity is checked
// when the selection is applied to a state, not here.
func Robot(n int) Selection {
	return Selection{robot: n + 1}
}

// IsAstro reports whether the selection refers to the astronaut.
func (s Selection) IsAstro() bool {
	return s.robot == 0
}

// RobotIndex returns the robot index and whether the selection refers to a
// robot at all.
func (s Selection) RobotIndex() (int, bool) {
	if s.robot == 0 {
		return 0, false
	}
	return s.robot - 1, true
}

func (s Selection) String() string {
	if n, ok := s.RobotIndex(); ok {
		return fmt.Sprintf("robot %d", n)
	}
	return "astronaut"
}
