package maze

import (
	"fmt"
	"math/rand"
	"time"
)

// Generate creates a perfect maze (a spanning tree of the grid graph)
// using a randomized depth-first backtracker rooted at (0,0).
// Seed 0 picks a time-based seed; the chosen seed is available via Grid.Seed.
func Generate(width, height int, seed int64) (*Grid, error) {
	g, err := New(width, height)
	if err != nil {
		return nil, err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.seed = seed
	rng := rand.New(rand.NewSource(seed))

	if err := recursiveBacktracker(g, rng); err != nil {
		return nil, err
	}
	return g, nil
}

// recursiveBacktracker carves passages with an explicit stack.
// Every cell is pushed exactly once, so the result has width*height-1 passages.
func recursiveBacktracker(g *Grid, rng *rand.Rand) error {
	start := Point{0, 0}
	stack := make([]Point, 0, g.Size())
	stack = append(stack, start)
	g.cells[g.Index(start)].visited = true

	candidates := make([]Point, 0, 4)

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates = candidates[:0]

		for _, d := range Directions {
			n, ok := g.Adjacent(curr, d)
			if ok && !g.cells[g.Index(n)].visited {
				candidates = append(candidates, n)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		if err := g.removeWallBetween(curr, next); err != nil {
			return fmt.Errorf("carve: %w", err)
		}
		g.cells[g.Index(next)].visited = true
		stack = append(stack, next)
	}
	return nil
}
