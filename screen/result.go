package screen

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze-master/game"
	"github.com/lixenwraith/maze-master/input"
)

// result shows the rating of a finished level and offers next/retry/menu
type result struct {
	shared *Shared
}

func newResult(shared *Shared) *result {
	return &result{shared: shared}
}

func (r *result) Kind() Kind { return KindResult }

func (r *result) Enter(Kind) error { return nil }

func (r *result) Update(time.Duration) Kind { return KindResult }

func (r *result) playKind() Kind {
	if r.shared.Session.Mode == game.ModeEndless {
		return KindEndless
	}
	return KindPlay
}

func (r *result) Draw(s tcell.Screen) {
	c := r.shared.Session
	_, h := s.Size()
	top := h/2 - 4

	drawCentered(s, top, styleTitle, fmt.Sprintf("Level %d complete", c.Level))
	drawCentered(s, top+2, styleGoal, starString(c.Stars))
	drawCentered(s, top+4, styleHUD, fmt.Sprintf("moves %d (par %d)   time %.1fs (par %.0fs)",
		c.Agent.Moves(), c.ParMoves, c.Elapsed.Seconds(), c.ParTime.Seconds()))
	drawCentered(s, top+5, styleHUD, fmt.Sprintf("total stars %d", c.TotalStars))
	drawCentered(s, top+7, styleDefault, "enter: next level   r: retry   esc: menu")
}

func (r *result) HandleAction(a input.Action) Kind {
	c := r.shared.Session
	switch a {
	case input.ActionConfirm:
		if err := c.NextLevel(); err != nil {
			return KindTitle
		}
		return r.playKind()
	case input.ActionRestart:
		if err := c.Restart(); err != nil {
			return KindTitle
		}
		return r.playKind()
	case input.ActionBack:
		return KindTitle
	case input.ActionQuit:
		return KindQuit
	}
	return KindResult
}

func (r *result) HandleClick(int, int) Kind { return KindResult }
