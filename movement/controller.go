package movement

import (
	"fmt"

	"github.com/lixenwraith/maze-master/constants"
	"github.com/lixenwraith/maze-master/maze"
)

// Event flags reported by Tick
type Event uint8

const (
	EventDepart    Event = 1 << iota // Started a corridor traversal
	EventArrive                      // Settled on the resolved target
	EventBlocked                     // Input hit a wall while idle
	EventQueued                      // Input stored while moving
	EventBacktrack                   // Trail collapsed by retracing the previous step
)

// Has reports whether all bits of f are set
func (e Event) Has(f Event) bool {
	return e&f == f
}

// Options configures agent motion
type Options struct {
	CellSize int          // Presentation units per cell
	Speed    int          // Presentation units advanced per tick
	Stops    []maze.Point // Cells that end a corridor run, e.g. the goal
}

// DefaultOptions returns the standard cell size and speed with no stop cells
func DefaultOptions() Options {
	return Options{
		CellSize: constants.CellUnits,
		Speed:    constants.AgentSpeed,
	}
}

// State is a snapshot of an agent for presentation and tests
type State struct {
	Position  maze.Point
	Direction maze.Direction // maze.None when idle
	Queued    maze.Direction // maze.None when nothing is pending
	Target    maze.Point     // Meaningful only when Moving
	Moving    bool
	Trail     []maze.Point
	Moves     int
	PixelX    int
	PixelY    int
}

// Agent moves through a maze one corridor segment at a time.
// Direction is None exactly when there is no target; the agent is either
// idle on a cell or traversing toward a resolved target.
type Agent struct {
	position  maze.Point
	direction maze.Direction
	queued    maze.Direction
	target    maze.Point

	trail []maze.Point
	moves int

	// Presentation position in units, cellSize units per cell
	pixelX, pixelY int
	cellSize       int
	speed          int

	stops Stops
}

// NewAgent places an idle agent on start
func NewAgent(g *maze.Grid, start maze.Point, opts Options) (*Agent, error) {
	if !g.InBounds(start) {
		return nil, fmt.Errorf("agent start %v: %w", start, maze.ErrInvalidArgument)
	}
	if opts.CellSize < 1 || opts.Speed < 1 {
		return nil, fmt.Errorf("cell size %d speed %d: %w", opts.CellSize, opts.Speed, maze.ErrInvalidArgument)
	}

	return &Agent{
		position:  start,
		direction: maze.None,
		queued:    maze.None,
		trail:     []maze.Point{start},
		pixelX:    start.X * opts.CellSize,
		pixelY:    start.Y * opts.CellSize,
		cellSize:  opts.CellSize,
		speed:     opts.Speed,
		stops:     NewStops(opts.Stops...),
	}, nil
}

// Position returns the logical cell, updated only on arrival
func (a *Agent) Position() maze.Point { return a.position }

// Moving reports whether a traversal is in progress
func (a *Agent) Moving() bool { return a.direction != maze.None }

// Direction returns the active travel direction, None when idle
func (a *Agent) Direction() maze.Direction { return a.direction }

// Queued returns the pending input, None when nothing is pending
func (a *Agent) Queued() maze.Direction { return a.queued }

// Target returns the resolved destination of the active traversal
func (a *Agent) Target() (maze.Point, bool) {
	if !a.Moving() {
		return maze.Point{}, false
	}
	return a.target, true
}

// Moves returns the number of completed corridor traversals
func (a *Agent) Moves() int { return a.moves }

// Trail returns a copy of the collapsed visit trail
func (a *Agent) Trail() []maze.Point {
	out := make([]maze.Point, len(a.trail))
	copy(out, a.trail)
	return out
}

// Pixel returns the presentation position in units
func (a *Agent) Pixel() (x, y int) { return a.pixelX, a.pixelY }

// CellSize returns the presentation units per cell
func (a *Agent) CellSize() int { return a.cellSize }

// Presentation returns the interpolated position in cell coordinates
func (a *Agent) Presentation() (x, y float64) {
	cs := float64(a.cellSize)
	return float64(a.pixelX) / cs, float64(a.pixelY) / cs
}

// State returns a snapshot of the agent
func (a *Agent) State() State {
	return State{
		Position:  a.position,
		Direction: a.direction,
		Queued:    a.queued,
		Target:    a.target,
		Moving:    a.Moving(),
		Trail:     a.Trail(),
		Moves:     a.moves,
		PixelX:    a.pixelX,
		PixelY:    a.pixelY,
	}
}

// Tick applies at most one directional input (maze.None for no input) and
// advances the agent by one step of its speed.
// Idle: open side starts a traversal, walled side is ignored.
// Moving: input replaces any pending direction.
func (a *Agent) Tick(g *maze.Grid, input maze.Direction) Event {
	var ev Event

	if input.Valid() {
		if a.Moving() {
			a.queued = input
			ev |= EventQueued
		} else {
			ev |= a.depart(g, input)
		}
	}

	if a.Moving() {
		ev |= a.advance(g)
	}
	return ev
}

// depart starts a traversal from the current cell if side dir is open
func (a *Agent) depart(g *maze.Grid, dir maze.Direction) Event {
	if !g.Open(a.position, dir) {
		return EventBlocked
	}

	a.direction = dir
	a.target = resolve(g, a.position, dir, a.stops)

	ev := EventDepart
	if n := len(a.trail); n >= 2 && a.trail[n-2] == a.target {
		a.trail = a.trail[:n-1]
		ev |= EventBacktrack
	}
	return ev
}

// advance moves the presentation position toward the target along the active axis
func (a *Agent) advance(g *maze.Grid) Event {
	dx, dy := a.direction.Delta()
	tx, ty := a.target.X*a.cellSize, a.target.Y*a.cellSize

	a.pixelX += dx * a.speed
	a.pixelY += dy * a.speed

	// Remaining distance projected on the travel axis; <= 0 means reached or passed
	remaining := (tx-a.pixelX)*dx + (ty-a.pixelY)*dy
	if remaining > 0 {
		return 0
	}

	a.pixelX, a.pixelY = tx, ty
	return a.arrive(g)
}

// arrive settles on the target, records the trail and consumes the queued input
func (a *Agent) arrive(g *maze.Grid) Event {
	a.position = a.target
	a.direction = maze.None
	a.moves++

	ev := EventArrive | a.record(a.position)

	if a.queued != maze.None {
		next := a.queued
		a.queued = maze.None
		ev |= a.depart(g, next)
	}
	return ev
}

// record extends the trail with p, or collapses it when p retraces the previous step
func (a *Agent) record(p maze.Point) Event {
	n := len(a.trail)
	if a.trail[n-1] == p {
		return 0
	}
	if n >= 2 && a.trail[n-2] == p {
		a.trail = a.trail[:n-1]
		return EventBacktrack
	}
	a.trail = append(a.trail, p)
	return 0
}
