package navigation

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/maze-master/maze"
)

// ErrUnreachable is returned when the open set drains before the goal is settled
var ErrUnreachable = errors.New("goal unreachable")

const distInfinite = 1<<31 - 1

// --- Min-heap for Dijkstra ---

// heapEntry orders by distance, then by push sequence so equal-distance
// cells leave the open set in insertion order
type heapEntry struct {
	idx  int // Flat grid index (y*width + x)
	dist int
	seq  int
}

type minHeap []heapEntry

func (h minHeap) less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return h[i].seq < h[j].seq
}

func (h *minHeap) push(e heapEntry) {
	*h = append(*h, e)
	// Sift up
	i := len(*h) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			break
		}
		(*h)[parent], (*h)[i] = (*h)[i], (*h)[parent]
		i = parent
	}
}

func (h *minHeap) pop() heapEntry {
	old := *h
	n := len(old)
	e := old[0]
	old[0] = old[n-1]
	*h = old[:n-1]

	// Sift down
	i := 0
	for {
		left := 2*i + 1
		if left >= len(*h) {
			break
		}
		smallest := left
		if right := left + 1; right < len(*h) && h.less(right, left) {
			smallest = right
		}
		if !h.less(smallest, i) {
			break
		}
		(*h)[i], (*h)[smallest] = (*h)[smallest], (*h)[i]
		i = smallest
	}
	return e
}

// searchNode holds the per-search transient state of one cell
type searchNode struct {
	visited bool
	dist    int
	prev    int // Flat index of predecessor, -1 for none
}

// Finder runs unit-weight Dijkstra searches over a maze grid.
// Scratch buffers are reused across calls; returned paths are always fresh.
// A Finder is not safe for concurrent use.
type Finder struct {
	nodes []searchNode
	heap  minHeap
	seq   int
}

// NewFinder creates a finder with empty scratch buffers
func NewFinder() *Finder {
	return &Finder{}
}

// FindPath returns the shortest path from start to goal in goal->start order.
// Use Reverse for start->goal order.
func FindPath(g *maze.Grid, start, goal maze.Point) ([]maze.Point, error) {
	return NewFinder().Find(g, start, goal)
}

// Find runs a search from start, stopping as soon as goal is settled
func (f *Finder) Find(g *maze.Grid, start, goal maze.Point) ([]maze.Point, error) {
	if !g.InBounds(start) {
		return nil, fmt.Errorf("start %v: %w", start, maze.ErrInvalidArgument)
	}
	if !g.InBounds(goal) {
		return nil, fmt.Errorf("goal %v: %w", goal, maze.ErrInvalidArgument)
	}

	f.reset(g.Size())
	startIdx, goalIdx := g.Index(start), g.Index(goal)
	f.nodes[startIdx].dist = 0
	f.pushEntry(startIdx, 0)

	for len(f.heap) > 0 {
		entry := f.heap.pop()
		curr := &f.nodes[entry.idx]
		if curr.visited || entry.dist > curr.dist {
			continue // Stale entry
		}
		curr.visited = true

		if entry.idx == goalIdx {
			return f.reconstruct(g, goalIdx), nil
		}

		p := g.PointAt(entry.idx)
		for _, d := range maze.Directions {
			if !g.Open(p, d) {
				continue
			}
			n, ok := g.Adjacent(p, d)
			if !ok {
				continue
			}
			nIdx := g.Index(n)
			next := &f.nodes[nIdx]
			if next.visited {
				continue
			}
			candidate := curr.dist + 1
			if candidate < next.dist {
				next.dist = candidate
				next.prev = entry.idx
				f.pushEntry(nIdx, candidate)
			}
		}
	}

	return nil, fmt.Errorf("path %v->%v: %w", start, goal, ErrUnreachable)
}

// Distance returns the number of steps between start and goal
func (f *Finder) Distance(g *maze.Grid, start, goal maze.Point) (int, error) {
	path, err := f.Find(g, start, goal)
	if err != nil {
		return 0, err
	}
	return len(path) - 1, nil
}

func (f *Finder) reset(size int) {
	if cap(f.nodes) < size {
		f.nodes = make([]searchNode, size)
	} else {
		f.nodes = f.nodes[:size]
	}
	for i := range f.nodes {
		f.nodes[i] = searchNode{dist: distInfinite, prev: -1}
	}
	f.heap = f.heap[:0]
	f.seq = 0
}

func (f *Finder) pushEntry(idx, dist int) {
	f.heap.push(heapEntry{idx: idx, dist: dist, seq: f.seq})
	f.seq++
}

// reconstruct follows predecessor links from goal back to the search root
func (f *Finder) reconstruct(g *maze.Grid, goalIdx int) []maze.Point {
	path := make([]maze.Point, 0, f.nodes[goalIdx].dist+1)
	for idx := goalIdx; idx != -1; idx = f.nodes[idx].prev {
		path = append(path, g.PointAt(idx))
	}
	return path
}

// Reverse returns a reversed copy of path
func Reverse(path []maze.Point) []maze.Point {
	out := make([]maze.Point, len(path))
	for i, p := range path {
		out[len(path)-1-i] = p
	}
	return out
}
