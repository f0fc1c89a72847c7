package movement

import "github.com/lixenwraith/maze-master/maze"

// Stops is a set of cells where corridor resolution halts
type Stops map[maze.Point]struct{}

// NewStops builds a stop set, nil when empty
func NewStops(points ...maze.Point) Stops {
	if len(points) == 0 {
		return nil
	}
	s := make(Stops, len(points))
	for _, p := range points {
		s[p] = struct{}{}
	}
	return s
}

// Contains reports whether p is a stop cell. Safe on a nil set.
func (s Stops) Contains(p maze.Point) bool {
	_, ok := s[p]
	return ok
}

// IsJunction reports whether p offers a turn relative to travel direction dir,
// i.e. at least one side perpendicular to dir is open
func IsJunction(g *maze.Grid, p maze.Point, dir maze.Direction) bool {
	a, b := dir.Perpendicular()
	return g.Open(p, a) || g.Open(p, b)
}

// ResolveTarget runs from pos in direction dir to the next decision point:
// the first junction entered, or the cell where the corridor ends.
// Returns pos unchanged when the first step is walled.
func ResolveTarget(g *maze.Grid, pos maze.Point, dir maze.Direction) maze.Point {
	return resolve(g, pos, dir, nil)
}

// ResolveTargetStopping is ResolveTarget that also halts on any cell in stops
func ResolveTargetStopping(g *maze.Grid, pos maze.Point, dir maze.Direction, stops Stops) maze.Point {
	return resolve(g, pos, dir, stops)
}

func resolve(g *maze.Grid, pos maze.Point, dir maze.Direction, stops Stops) maze.Point {
	curr := pos
	for g.Open(curr, dir) {
		next, ok := g.Adjacent(curr, dir)
		if !ok {
			break
		}
		curr = next
		if IsJunction(g, curr, dir) || stops.Contains(curr) {
			break
		}
	}
	return curr
}
