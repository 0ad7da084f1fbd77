package puzzle

// Solve runs a breadth-first search from s over the graph of single-actor
// slides and returns a shortest path to any state where the astronaut is
// at the goal, inclusive of both endpoints. It returns nil when the goal
// is unreachable.
//
// Expansion order is fixed: astronaut first, then robots by index, each
// trying Up, Down, Left, Right. Several distinct terminal states may tie
// for the shortest depth (robot positions don't matter for the goal
// test); FIFO expansion makes the returned one deterministic.
func Solve(s State) []State {
	if s.IsAtGoal() {
		return []State{s}
	}

	states := []State{s}
	prev := []int{-1}
	visited := map[string]bool{s.key(): true}

	for head := 0; head < len(states); head++ {
		cur := states[head]

		for _, next := range successors(cur) {
			k := next.key()
			if visited[k] {
				continue
			}
			visited[k] = true
			states = append(states, next)
			prev = append(prev, head)

			if next.IsAtGoal() {
				return rebuildPath(states, prev, len(states)-1)
			}
		}
	}

	return nil
}

// successors generates every state reachable from s by one successful
// slide, in the fixed expansion order.
func successors(s State) []State {
	out := make([]State, 0, 4*(s.NumRobots()+1))

	for actor := 0; actor <= s.NumRobots(); actor++ {
		sel := Astro()
		if actor > 0 {
			sel = Robot(actor - 1)
		}

		// Selection indices are generated in range here, so the checked
		// accessors cannot fail.
		from, err := s.PosOf(sel)
		if err != nil {
			continue
		}

		for _, dir := range Directions {
			landing, ok := s.MoveToward(from, dir)
			if !ok {
				continue
			}
			next, err := s.WithPos(sel, landing)
			if err != nil {
				continue
			}
			out = append(out, next)
		}
	}

	return out
}

// rebuildPath walks predecessor links back from the goal state and
// reverses them into start-to-goal order.
func rebuildPath(states []State, prev []int, goal int) []State {
	var path []State
	for i := goal; i >= 0; i = prev[i] {
		path = append(path, states[i])
		if prev[i] < 0 {
			break
		}
	}

	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}
