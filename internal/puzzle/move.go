package puzzle

// MoveToward resolves a slide: the actor at from moves in dir until the
// next cell would be off-board or occupied by another actor, and lands on
// the last free cell before that obstruction. The goal cell does not stop
// motion; it slides over like an empty cell.
//
// The returned bool is false when no legal move exists: the actor is
// already flush against the board edge in dir, or the adjacent cell holds
// another actor.
//
// Pure function of the state and inputs; the state is not modified.
func (s State) MoveToward(from Pos, dir Direction) (Pos, bool) {
	path := s.pathFrom(from, dir)

	for i, p := range path {
		if s.TileAt(p).IsActor() {
			// Blocked with no stoppable cell behind us. Can only happen
			// on the first scanned cell; later cells are handled by the
			// lookahead below.
			return Pos{}, false
		}

		// Candidate landing cell. Stop here if the path ends or the next
		// cell holds an actor.
		if i+1 == len(path) || s.TileAt(path[i+1]).IsActor() {
			return p, true
		}
	}

	// Empty path: already at the edge in dir.
	return Pos{}, false
}

// pathFrom returns the cells strictly beyond start toward the board edge
// in dir, nearest first. One concrete loop per direction; the slices are
// bounded by the board side length.
func (s State) pathFrom(start Pos, dir Direction) []Pos {
	var path []Pos

	switch dir {
	case Up:
		for y := start.Y - 1; y >= 0; y-- {
			path = append(path, P(start.X, y))
		}
	case Down:
		for y := start.Y + 1; y < s.inv.Rows; y++ {
			path = append(path, P(start.X, y))
		}
	case Left:
		for x := start.X - 1; x >= 0; x-- {
			path = append(path, P(x, start.Y))
		}
	case Right:
		for x := start.X + 1; x < s.inv.Cols; x++ {
			path = append(path, P(x, start.Y))
		}
	}

	return path
}
