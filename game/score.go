package game

import (
	"time"

	"github.com/lixenwraith/maze-master/maze"
	"github.com/lixenwraith/maze-master/movement"
)

// ParMoves replays a start->goal reference path with corridor resolution and
// counts the traversals a perfect player needs. Stops must match the agent's.
func ParMoves(g *maze.Grid, path []maze.Point, stops movement.Stops) int {
	if len(path) < 2 {
		return 0
	}

	index := make(map[maze.Point]int, len(path))
	for i, p := range path {
		index[p] = i
	}

	moves := 0
	for i := 0; i < len(path)-1; {
		dir, ok := maze.DirectionBetween(path[i], path[i+1])
		if !ok {
			break
		}
		target := movement.ResolveTargetStopping(g, path[i], dir, stops)
		j, onPath := index[target]
		if !onPath || j <= i {
			break
		}
		i = j
		moves++
	}
	return moves
}

// ParTime is the time allowance for a reference path
func ParTime(pathLen int, secondsPerCell float64) time.Duration {
	return time.Duration(float64(pathLen) * secondsPerCell * float64(time.Second))
}

// Stars rates a finished level from 1 to 3.
// 3: within par moves and par time. 2: within 1.5x par moves or 2x par time.
func Stars(moves, parMoves int, elapsed, parTime time.Duration) int {
	switch {
	case moves <= parMoves && elapsed <= parTime:
		return 3
	case 2*moves <= 3*parMoves || elapsed <= 2*parTime:
		return 2
	default:
		return 1
	}
}
