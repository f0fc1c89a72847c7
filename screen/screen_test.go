package screen

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/maze-master/game"
	"github.com/lixenwraith/maze-master/maze"
)

type countingSounds struct {
	steps, bumps, goals int
}

func (c *countingSounds) PlayStep() { c.steps++ }
func (c *countingSounds) PlayBump() { c.bumps++ }
func (c *countingSounds) PlayGoal() { c.goals++ }

func testLevel() game.LevelConfig {
	return game.LevelConfig{Width: 4, Height: 3, Seed: 7, CellSize: 2, Speed: 1, SecondsPerCell: 1}
}

func newTestManager(t *testing.T) (*Manager, *countingSounds) {
	t.Helper()
	sounds := &countingSounds{}
	m := NewManager(&Shared{Level: testLevel(), Sounds: sounds})
	require.Equal(t, KindTitle, m.Current())
	return m, sounds
}

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 24)
	t.Cleanup(s.Fini)
	return s
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

var arrowFor = map[maze.Direction]tcell.Key{
	maze.North: tcell.KeyUp,
	maze.East:  tcell.KeyRight,
	maze.South: tcell.KeyDown,
	maze.West:  tcell.KeyLeft,
}

// playToGoal presses the arrow along the reference path whenever the agent is
// idle and ticks until the result screen shows
func playToGoal(t *testing.T, m *Manager) {
	t.Helper()
	c := m.Shared().Session
	for i := 0; i < 10000 && m.Current() != KindResult; i++ {
		if !c.Agent.Moving() {
			pos := c.Agent.Position()
			for j := 0; j+1 < len(c.Path); j++ {
				if c.Path[j] == pos {
					d, ok := maze.DirectionBetween(pos, c.Path[j+1])
					require.True(t, ok)
					require.True(t, m.HandleKey(key(arrowFor[d])))
					break
				}
			}
		}
		require.True(t, m.Update(16*time.Millisecond))
	}
	require.Equal(t, KindResult, m.Current(), "goal not reached")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "title", KindTitle.String())
	assert.Equal(t, "endless", KindEndless.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestTitleKeyboardNavigation(t *testing.T) {
	m, _ := newTestManager(t)

	assert.True(t, m.HandleKey(key(tcell.KeyDown)))
	assert.True(t, m.HandleKey(key(tcell.KeyEnter)))
	assert.Equal(t, KindEndless, m.Current())
	require.NotNil(t, m.Shared().Session)
	assert.Equal(t, game.ModeEndless, m.Shared().Session.Mode)

	assert.True(t, m.HandleKey(key(tcell.KeyEscape)))
	assert.Equal(t, KindTitle, m.Current())

	// Focus resets on re-entry; Up wraps to Quit
	assert.True(t, m.HandleKey(key(tcell.KeyUp)))
	assert.False(t, m.HandleKey(key(tcell.KeyEnter)))
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestManager(t)
	assert.True(t, m.HandleKey(runeKey('x')), "unbound key is ignored")
	assert.False(t, m.HandleKey(runeKey('q')))
}

func TestTitleClick(t *testing.T) {
	m, _ := newTestManager(t)
	s := newTestScreen(t)
	m.Draw(s)

	ti := m.screens[KindTitle].(*title)
	btn := ti.buttons[0].area
	require.Positive(t, btn.w)

	// Non-primary buttons and misses are ignored
	assert.True(t, m.HandleMouse(tcell.NewEventMouse(btn.x, btn.y, tcell.Button2, tcell.ModNone)))
	assert.True(t, m.HandleMouse(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone)))
	assert.Equal(t, KindTitle, m.Current())

	assert.True(t, m.HandleMouse(tcell.NewEventMouse(btn.x+1, btn.y, tcell.Button1, tcell.ModNone)))
	assert.Equal(t, KindPlay, m.Current())
	assert.Equal(t, game.ModeClassic, m.Shared().Session.Mode)
}

func TestPlayDraw(t *testing.T) {
	m, _ := newTestManager(t)
	require.True(t, m.HandleKey(key(tcell.KeyEnter)))
	s := newTestScreen(t)
	m.Draw(s)

	c := m.Shared().Session
	ox, oy := mazeOrigin(80, 24, c.Grid)

	_, _, style, _ := s.GetContent(ox, oy)
	assert.Equal(t, styleWall, style, "corner block is wall")

	mainc, _, _, _ := s.GetContent(ox+blockWidth, oy+1)
	assert.Equal(t, runeAgent, mainc)

	gb := cellBlock(c.Goal)
	mainc, _, _, _ = s.GetContent(ox+gb.X*blockWidth, oy+gb.Y)
	assert.Equal(t, runeGoal, mainc)
}

func TestPlayBlockedPlaysBump(t *testing.T) {
	m, sounds := newTestManager(t)
	require.True(t, m.HandleKey(key(tcell.KeyEnter)))

	// The start cell's north side is the border
	require.True(t, m.HandleKey(key(tcell.KeyUp)))
	require.True(t, m.Update(16*time.Millisecond))
	assert.Equal(t, 1, sounds.bumps)
	assert.Zero(t, sounds.steps)
	assert.False(t, m.Shared().Session.Agent.Moving())
}

func TestPlayThroughResult(t *testing.T) {
	m, sounds := newTestManager(t)
	require.True(t, m.HandleKey(key(tcell.KeyEnter)))
	c := m.Shared().Session

	playToGoal(t, m)
	assert.True(t, c.Won)
	assert.Equal(t, 3, c.Stars)
	assert.Equal(t, 1, sounds.goals)
	assert.Equal(t, c.ParMoves, sounds.steps)

	s := newTestScreen(t)
	m.Draw(s)

	// Retry keeps the level and the session
	require.True(t, m.HandleKey(runeKey('r')))
	assert.Equal(t, KindPlay, m.Current())
	assert.Same(t, c, m.Shared().Session)
	assert.False(t, c.Won)
	assert.Equal(t, 1, c.Level)
	assert.Zero(t, c.TotalStars)

	playToGoal(t, m)
	require.True(t, m.HandleKey(key(tcell.KeyEnter)))
	assert.Equal(t, KindPlay, m.Current())
	assert.Same(t, c, m.Shared().Session)
	assert.Equal(t, 2, c.Level)
	assert.Equal(t, 3, c.TotalStars)
	assert.Equal(t, 4, c.Grid.Width(), "classic keeps size")
}

func TestEndlessResultGrows(t *testing.T) {
	m, _ := newTestManager(t)
	require.True(t, m.HandleKey(key(tcell.KeyDown)))
	require.True(t, m.HandleKey(key(tcell.KeyEnter)))
	require.Equal(t, KindEndless, m.Current())

	playToGoal(t, m)
	require.True(t, m.HandleKey(key(tcell.KeyEnter)))
	assert.Equal(t, KindEndless, m.Current())
	assert.Equal(t, 5, m.Shared().Session.Grid.Width())
	assert.Equal(t, 4, m.Shared().Session.Grid.Height())
}

func TestStarString(t *testing.T) {
	assert.Equal(t, "★☆☆", starString(1))
	assert.Equal(t, "★★★", starString(3))
	assert.Equal(t, "☆☆☆", starString(-1))
}
