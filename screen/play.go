package screen

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze-master/game"
	"github.com/lixenwraith/maze-master/input"
	"github.com/lixenwraith/maze-master/maze"
	"github.com/lixenwraith/maze-master/movement"
)

// play runs a session in classic or endless mode
type play struct {
	shared  *Shared
	kind    Kind
	pending maze.Direction // Latest direction since the last tick
}

func newPlay(shared *Shared, kind Kind) *play {
	return &play{shared: shared, kind: kind, pending: maze.None}
}

func (p *play) Kind() Kind { return p.kind }

func (p *play) mode() game.Mode {
	if p.kind == KindEndless {
		return game.ModeEndless
	}
	return game.ModeClassic
}

// Enter starts a fresh session when coming from the menu; the result screen
// prepares the next level itself
func (p *play) Enter(from Kind) error {
	p.pending = maze.None
	if from == KindResult && p.shared.Session != nil {
		return nil
	}
	c, err := game.NewSession(p.shared.Level, p.mode())
	if err != nil {
		return err
	}
	p.shared.Session = c
	return nil
}

func (p *play) Update(dt time.Duration) Kind {
	c := p.shared.Session
	ev := c.Tick(p.pending, dt)
	p.pending = maze.None

	switch {
	case c.Won:
		p.shared.Sounds.PlayGoal()
		return KindResult
	case ev.Has(movement.EventBlocked):
		p.shared.Sounds.PlayBump()
	case ev.Has(movement.EventDepart):
		p.shared.Sounds.PlayStep()
	}
	return p.kind
}

func (p *play) HandleAction(a input.Action) Kind {
	if d := a.Direction(); d != maze.None {
		p.pending = d
		return p.kind
	}
	switch a {
	case input.ActionRestart:
		if err := p.shared.Session.Restart(); err != nil {
			return KindTitle
		}
		p.pending = maze.None
	case input.ActionBack:
		return KindTitle
	case input.ActionQuit:
		return KindQuit
	}
	return p.kind
}

func (p *play) HandleClick(int, int) Kind { return p.kind }

func (p *play) Draw(s tcell.Screen) {
	c := p.shared.Session
	sw, sh := s.Size()
	ox, oy := mazeOrigin(sw, sh, c.Grid)

	drawMaze(s, ox, oy, c.Grid)
	drawTrail(s, ox, oy, c.Agent.Trail())
	drawBlock(s, ox, oy, cellBlock(c.Goal), runeGoal, styleGoal)

	fx, fy := c.Agent.Presentation()
	bx := int(math.Round(1 + 2*fx))
	by := int(math.Round(1 + 2*fy))
	drawBlock(s, ox, oy, maze.Point{X: bx, Y: by}, runeAgent, styleAgent)

	hudY := min(oy+2*c.Grid.Height()+2, sh-1)
	drawText(s, max(ox, 0), hudY, styleHUD, hudLine(c))
}

// hudLine formats the status line
func hudLine(c *game.Context) string {
	return fmt.Sprintf("%s  level %d  moves %d  par %d  time %.1fs/%.0fs  left %d",
		c.Mode, c.Level, c.Agent.Moves(), c.ParMoves,
		c.Elapsed.Seconds(), c.ParTime.Seconds(), c.Remaining())
}

// mazeOrigin centers the block layout of g, leaving two rows for the HUD
func mazeOrigin(sw, sh int, g *maze.Grid) (ox, oy int) {
	cols := (2*g.Width() + 1) * blockWidth
	rows := 2*g.Height() + 1
	return max((sw-cols)/2, 0), max((sh-2-rows)/2, 0)
}

// cellBlock maps a cell to its block coordinate
func cellBlock(p maze.Point) maze.Point {
	return maze.Point{X: 2*p.X + 1, Y: 2*p.Y + 1}
}

// drawBlock writes a glyph into the block at b
func drawBlock(s tcell.Screen, ox, oy int, b maze.Point, r rune, style tcell.Style) {
	s.SetContent(ox+b.X*blockWidth, oy+b.Y, r, nil, style)
}

func drawMaze(s tcell.Screen, ox, oy int, g *maze.Grid) {
	for y, row := range g.Layout() {
		for x, wall := range row {
			if wall {
				fill(s, ox+x*blockWidth, oy+y, blockWidth, 1, ' ', styleWall)
			}
		}
	}
}

// drawTrail marks every block between consecutive trail entries. Entries are
// corridor endpoints, so consecutive ones share a row or a column.
func drawTrail(s tcell.Screen, ox, oy int, trail []maze.Point) {
	for i, p := range trail {
		b := cellBlock(p)
		drawBlock(s, ox, oy, b, runeTrail, styleTrail)
		if i == 0 {
			continue
		}
		a := cellBlock(trail[i-1])
		if a.X != b.X && a.Y != b.Y {
			continue
		}
		dx, dy := sign(b.X-a.X), sign(b.Y-a.Y)
		for q := a; q != b; q = (maze.Point{X: q.X + dx, Y: q.Y + dy}) {
			drawBlock(s, ox, oy, q, runeTrail, styleTrail)
		}
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
