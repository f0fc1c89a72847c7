package maze

import (
	"errors"
	"fmt"
)

// MaxDimension bounds grid width and height
const MaxDimension = 64

var (
	// ErrInvalidArgument reports bad dimensions or coordinates supplied by a caller
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidOperation reports an internal invariant violation, e.g. carving between non-adjacent cells
	ErrInvalidOperation = errors.New("invalid operation")
)

// Point is a cell coordinate
type Point struct {
	X, Y int
}

// Add returns p stepped once in d
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{p.X + dx, p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cell is a single maze cell. Walls is indexed by Direction, true = wall present.
type Cell struct {
	X, Y  int
	Walls [4]bool

	visited bool // Generation bookkeeping
}

// Grid owns all cells of a maze. Walls are mutated only by the generator;
// the exported API is read-only.
type Grid struct {
	width, height int
	cells         []Cell // Row-major: cells[y*width + x]
	seed          int64
}

// New creates a width x height grid with every wall present
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("grid %dx%d: %w", width, height, ErrInvalidArgument)
	}
	if width > MaxDimension || height > MaxDimension {
		return nil, fmt.Errorf("grid %dx%d exceeds %d: %w", width, height, MaxDimension, ErrInvalidArgument)
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[y*width+x] = Cell{
				X:     x,
				Y:     y,
				Walls: [4]bool{true, true, true, true},
			}
		}
	}
	return g, nil
}

// FromPassages builds a grid with only the listed passages open.
// Each passage is a pair of adjacent cells.
func FromPassages(width, height int, passages [][2]Point) (*Grid, error) {
	g, err := New(width, height)
	if err != nil {
		return nil, err
	}
	for _, p := range passages {
		if !g.InBounds(p[0]) || !g.InBounds(p[1]) {
			return nil, fmt.Errorf("passage %v-%v: %w", p[0], p[1], ErrInvalidArgument)
		}
		if err := g.removeWallBetween(p[0], p[1]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Seed returns the seed the grid was generated with, 0 for hand-built grids
func (g *Grid) Seed() int64 { return g.seed }

// Size returns the number of cells
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether p lies inside [0,width)x[0,height)
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

// Index returns the flat cell index of p. p must be in bounds.
func (g *Grid) Index(p Point) int {
	return p.Y*g.width + p.X
}

// PointAt is the inverse of Index
func (g *Grid) PointAt(idx int) Point {
	return Point{idx % g.width, idx / g.width}
}

// Cell returns a copy of the cell at p
func (g *Grid) Cell(p Point) (Cell, bool) {
	if !g.InBounds(p) {
		return Cell{}, false
	}
	return g.cells[g.Index(p)], true
}

// Adjacent returns the in-bounds neighbour of p in direction d
func (g *Grid) Adjacent(p Point, d Direction) (Point, bool) {
	if !d.Valid() {
		return p, false
	}
	n := p.Add(d)
	if !g.InBounds(n) {
		return p, false
	}
	return n, true
}

// Wall reports whether the side d of p is walled. Out-of-bounds cells read as solid.
func (g *Grid) Wall(p Point, d Direction) bool {
	if !g.InBounds(p) || !d.Valid() {
		return true
	}
	return g.cells[g.Index(p)].Walls[d]
}

// Open reports whether p can be left through side d
func (g *Grid) Open(p Point, d Direction) bool {
	return !g.Wall(p, d)
}

// OpenCount returns the number of open sides of p
func (g *Grid) OpenCount(p Point) int {
	n := 0
	for _, d := range Directions {
		if g.Open(p, d) {
			n++
		}
	}
	return n
}

// Edges returns every open passage once, as (cell, east-or-south neighbour) pairs
func (g *Grid) Edges() [][2]Point {
	edges := make([][2]Point, 0, len(g.cells))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := Point{x, y}
			for _, d := range [2]Direction{East, South} {
				if g.Open(p, d) {
					edges = append(edges, [2]Point{p, p.Add(d)})
				}
			}
		}
	}
	return edges
}

// removeWallBetween opens the passage between two adjacent cells, both sides at once
func (g *Grid) removeWallBetween(a, b Point) error {
	d, ok := DirectionBetween(a, b)
	if !ok || !g.InBounds(a) || !g.InBounds(b) {
		return fmt.Errorf("remove wall %v-%v: %w", a, b, ErrInvalidOperation)
	}
	g.cells[g.Index(a)].Walls[d] = false
	g.cells[g.Index(b)].Walls[d.Opposite()] = false
	return nil
}
