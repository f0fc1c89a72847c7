package game

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/maze-master/constants"
	"github.com/lixenwraith/maze-master/maze"
	"github.com/lixenwraith/maze-master/movement"
	"github.com/lixenwraith/maze-master/navigation"
)

// Mode selects level progression
type Mode uint8

const (
	ModeClassic Mode = iota // Same size, fresh seed per level
	ModeEndless             // Grid grows every level
)

func (m Mode) String() string {
	if m == ModeEndless {
		return "endless"
	}
	return "classic"
}

// LevelConfig describes how levels are built
type LevelConfig struct {
	Width, Height  int
	Seed           int64 // 0 = time based
	CellSize       int
	Speed          int
	SecondsPerCell float64
}

// DefaultLevelConfig returns the standard level parameters
func DefaultLevelConfig() LevelConfig {
	return LevelConfig{
		Width:          constants.DefaultWidth,
		Height:         constants.DefaultHeight,
		CellSize:       constants.CellUnits,
		Speed:          constants.AgentSpeed,
		SecondsPerCell: constants.SecondsPerCell,
	}
}

// Context holds all state of a play session. It is passed explicitly to
// every tick instead of living in globals; it is owned by a single goroutine.
type Context struct {
	SessionID uuid.UUID
	Mode      Mode
	Level     int

	Grid        *maze.Grid
	Agent       *movement.Agent
	Start, Goal maze.Point

	Path     []maze.Point // Reference path, start->goal
	ParMoves int
	ParTime  time.Duration

	Elapsed    time.Duration
	Won        bool
	Stars      int // Rating of the current level once won
	TotalStars int

	cfg    LevelConfig
	finder *navigation.Finder
}

// NewSession builds the first level of a session
func NewSession(cfg LevelConfig, mode Mode) (*Context, error) {
	c := &Context{
		SessionID: uuid.New(),
		Mode:      mode,
		Level:     1,
		cfg:       cfg,
		finder:    navigation.NewFinder(),
	}
	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

// Config returns the parameters of the current level
func (c *Context) Config() LevelConfig { return c.cfg }

// load generates the current level's maze and resets per-level state
func (c *Context) load() error {
	g, err := maze.Generate(c.cfg.Width, c.cfg.Height, c.cfg.Seed)
	if err != nil {
		return fmt.Errorf("level %d: %w", c.Level, err)
	}
	// Pin the seed so Restart replays the same maze
	c.cfg.Seed = g.Seed()

	start := maze.Point{X: 0, Y: 0}
	goal := maze.Point{X: g.Width() - 1, Y: g.Height() - 1}

	rev, err := c.finder.Find(g, start, goal)
	if err != nil {
		return fmt.Errorf("level %d reference path: %w", c.Level, err)
	}

	c.Grid = g
	c.Start, c.Goal = start, goal
	c.Path = navigation.Reverse(rev)
	c.ParMoves = ParMoves(g, c.Path, movement.NewStops(goal))
	c.ParTime = ParTime(len(c.Path), c.cfg.SecondsPerCell)

	if err := c.resetAgent(); err != nil {
		return err
	}

	log.Printf("[game] session %s level %d (%s) %dx%d seed %d path %d par %d",
		c.SessionID, c.Level, c.Mode, g.Width(), g.Height(), g.Seed(), len(c.Path), c.ParMoves)
	return nil
}

func (c *Context) resetAgent() error {
	agent, err := movement.NewAgent(c.Grid, c.Start, movement.Options{
		CellSize: c.cfg.CellSize,
		Speed:    c.cfg.Speed,
		Stops:    []maze.Point{c.Goal},
	})
	if err != nil {
		return fmt.Errorf("level %d agent: %w", c.Level, err)
	}
	c.Agent = agent
	c.Elapsed = 0
	c.Won = false
	c.Stars = 0
	return nil
}

// Tick advances the session by one logic step. Input is maze.None when no
// direction was pressed. No-op once the level is won.
func (c *Context) Tick(input maze.Direction, dt time.Duration) movement.Event {
	if c.Won {
		return 0
	}
	c.Elapsed += dt

	ev := c.Agent.Tick(c.Grid, input)
	if ev.Has(movement.EventArrive) && c.Agent.Position() == c.Goal {
		c.finish()
	}
	return ev
}

func (c *Context) finish() {
	c.Won = true
	c.Stars = Stars(c.Agent.Moves(), c.ParMoves, c.Elapsed, c.ParTime)
	c.TotalStars += c.Stars
	log.Printf("[game] session %s level %d won: moves %d/%d time %s/%s stars %d",
		c.SessionID, c.Level, c.Agent.Moves(), c.ParMoves,
		c.Elapsed.Round(time.Millisecond), c.ParTime.Round(time.Millisecond), c.Stars)
}

// Restart replays the current maze from the start cell
func (c *Context) Restart() error {
	if c.Won {
		c.TotalStars -= c.Stars
	}
	return c.resetAgent()
}

// NextLevel advances to a new maze. Endless mode grows the grid up to
// maze.MaxDimension; classic keeps the size. Seeds are derived from the
// previous level so a session replays deterministically from its first seed.
func (c *Context) NextLevel() error {
	c.Level++
	c.cfg.Seed = c.cfg.Seed + int64(c.Level)
	if c.Mode == ModeEndless {
		c.cfg.Width = min(c.cfg.Width+constants.EndlessGrowth, maze.MaxDimension)
		c.cfg.Height = min(c.cfg.Height+constants.EndlessGrowth, maze.MaxDimension)
	}
	return c.load()
}

// Remaining returns the number of cells between the agent's settled cell and the goal
func (c *Context) Remaining() int {
	d, err := c.finder.Distance(c.Grid, c.Agent.Position(), c.Goal)
	if err != nil {
		return -1
	}
	return d
}
