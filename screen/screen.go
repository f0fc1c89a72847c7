package screen

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze-master/game"
	"github.com/lixenwraith/maze-master/input"
)

// Kind identifies a screen variant
type Kind uint8

const (
	KindTitle Kind = iota
	KindPlay
	KindEndless
	KindResult
	KindQuit
)

var kindNames = [...]string{"title", "play", "endless", "result", "quit"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Screen is one variant of the UI. Handlers return the kind to show next;
// returning the screen's own kind keeps it active.
type Screen interface {
	Kind() Kind
	Enter(from Kind) error
	Update(dt time.Duration) Kind
	Draw(s tcell.Screen)
	HandleAction(a input.Action) Kind
	HandleClick(x, y int) Kind
}

// Sounds receives gameplay cues
type Sounds interface {
	PlayStep()
	PlayBump()
	PlayGoal()
}

// Shared is the state handed to every screen in place of globals
type Shared struct {
	Level   game.LevelConfig
	Keys    *input.KeyTable
	Sounds  Sounds
	Session *game.Context
}

// Manager owns the screens and dispatches events to the active one
type Manager struct {
	shared  *Shared
	screens map[Kind]Screen
	current Kind
}

// NewManager builds all screens and activates the title
func NewManager(shared *Shared) *Manager {
	if shared.Keys == nil {
		shared.Keys = input.DefaultKeyTable()
	}
	if shared.Sounds == nil {
		shared.Sounds = silent{}
	}

	m := &Manager{
		shared:  shared,
		screens: make(map[Kind]Screen),
		current: KindTitle,
	}
	for _, s := range []Screen{
		newTitle(),
		newPlay(shared, KindPlay),
		newPlay(shared, KindEndless),
		newResult(shared),
	} {
		m.screens[s.Kind()] = s
	}
	return m
}

// Current returns the active screen kind
func (m *Manager) Current() Kind { return m.current }

// Shared returns the state shared by all screens
func (m *Manager) Shared() *Shared { return m.shared }

// HandleKey translates and dispatches a key event. Returns false on quit.
func (m *Manager) HandleKey(ev *tcell.EventKey) bool {
	a := m.shared.Keys.Translate(ev)
	if a == input.ActionNone {
		return true
	}
	return m.transition(m.screens[m.current].HandleAction(a))
}

// HandleMouse dispatches primary button presses. Returns false on quit.
func (m *Manager) HandleMouse(ev *tcell.EventMouse) bool {
	if ev.Buttons()&tcell.Button1 == 0 {
		return true
	}
	x, y := ev.Position()
	return m.transition(m.screens[m.current].HandleClick(x, y))
}

// Update advances the active screen by one tick. Returns false on quit.
func (m *Manager) Update(dt time.Duration) bool {
	return m.transition(m.screens[m.current].Update(dt))
}

// Draw clears and renders the active screen
func (m *Manager) Draw(s tcell.Screen) {
	s.Clear()
	m.screens[m.current].Draw(s)
}

func (m *Manager) transition(next Kind) bool {
	if next == KindQuit {
		return false
	}
	if next == m.current {
		return true
	}
	if err := m.switchTo(next); err != nil {
		// Stay on the current screen; generation errors are configuration errors
		log.Printf("[screen] %s -> %s: %v", m.current, next, err)
	}
	return true
}

func (m *Manager) switchTo(next Kind) error {
	s, ok := m.screens[next]
	if !ok {
		return fmt.Errorf("no screen for %s", next)
	}
	if err := s.Enter(m.current); err != nil {
		return err
	}
	log.Printf("[screen] %s -> %s", m.current, next)
	m.current = next
	return nil
}

type silent struct{}

func (silent) PlayStep() {}
func (silent) PlayBump() {}
func (silent) PlayGoal() {}
