package maze

import "strings"

// Glyphs used by Render
const (
	GlyphWall  = '#'
	GlyphOpen  = ' '
	GlyphPath  = '.'
	GlyphStart = 'S'
	GlyphGoal  = 'G'
)

// Layout returns the (2w+1)x(2h+1) block map of the maze: true = wall.
// Cell (x,y) maps to block (2x+1, 2y+1); the block between two cells is open
// when the passage between them is.
func (g *Grid) Layout() [][]bool {
	rows, cols := 2*g.height+1, 2*g.width+1
	blocks := make([][]bool, rows)
	for i := range blocks {
		blocks[i] = make([]bool, cols)
		for j := range blocks[i] {
			blocks[i][j] = true
		}
	}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := Point{x, y}
			bx, by := 2*x+1, 2*y+1
			blocks[by][bx] = false
			if g.Open(p, East) {
				blocks[by][bx+1] = false
			}
			if g.Open(p, South) {
				blocks[by+1][bx] = false
			}
		}
	}
	return blocks
}

// Render draws the maze as ASCII blocks, marking path cells (and the
// passages between consecutive path cells), start and goal
func (g *Grid) Render(path []Point, start, goal Point) string {
	blocks := g.Layout()
	marks := make(map[Point]rune, 2*len(path)+2)

	for i, p := range path {
		marks[Point{2*p.X + 1, 2*p.Y + 1}] = GlyphPath
		if i > 0 {
			q := path[i-1]
			marks[Point{p.X + q.X + 1, p.Y + q.Y + 1}] = GlyphPath
		}
	}
	if g.InBounds(start) {
		marks[Point{2*start.X + 1, 2*start.Y + 1}] = GlyphStart
	}
	if g.InBounds(goal) {
		marks[Point{2*goal.X + 1, 2*goal.Y + 1}] = GlyphGoal
	}

	var sb strings.Builder
	sb.Grow(len(blocks) * (len(blocks[0]) + 1))
	for y, row := range blocks {
		for x, wall := range row {
			switch {
			case wall:
				sb.WriteRune(GlyphWall)
			default:
				if r, ok := marks[Point{x, y}]; ok {
					sb.WriteRune(r)
				} else {
					sb.WriteRune(GlyphOpen)
				}
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String renders the bare maze
func (g *Grid) String() string {
	return g.Render(nil, Point{-1, -1}, Point{-1, -1})
}
