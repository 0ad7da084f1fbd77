package puzzle

// Tile is a derived, read-only view of one board cell.
type Tile int

const (
	Empty Tile = iota
	TileAstro
	TileRobot
	TileGoal
)

// Rune returns the display character for a tile.
func (t Tile) Rune() rune {
	switch t {
	case TileAstro:
		return 'A'
	case TileRobot:
		return 'R'
	case TileGoal:
		return 'X'
	default:
		return '.'
	}
}

func (t Tile) String() string {
	return string(t.Rune())
}

// IsActor reports whether the tile holds something a slide cannot pass
// through or land on.
func (t Tile) IsActor() bool {
	return t == TileAstro || t == TileRobot
}
