package screen

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze-master/input"
)

const buttonWidth = 16

type button struct {
	label  string
	target Kind
	area   rect // Set on draw
}

// title is the start menu: a play button and an endless button
type title struct {
	buttons []button
	focus   int
}

func newTitle() *title {
	return &title{
		buttons: []button{
			{label: "Play", target: KindPlay},
			{label: "Endless", target: KindEndless},
			{label: "Quit", target: KindQuit},
		},
	}
}

func (t *title) Kind() Kind { return KindTitle }

func (t *title) Enter(Kind) error {
	t.focus = 0
	return nil
}

func (t *title) Update(time.Duration) Kind { return KindTitle }

func (t *title) Draw(s tcell.Screen) {
	w, h := s.Size()
	top := h/2 - 5

	drawCentered(s, top, styleTitle, "M A Z E   M A S T E R")
	drawCentered(s, top+2, styleHUD, "arrows / hjkl / wasd to move, r restart, esc menu")

	x := (w - buttonWidth) / 2
	for i := range t.buttons {
		b := &t.buttons[i]
		b.area = rect{x: x, y: top + 5 + i*2, w: buttonWidth, h: 1}

		style := styleButton
		if i == t.focus {
			style = styleFocus
		}
		fill(s, b.area.x, b.area.y, b.area.w, b.area.h, ' ', style)
		drawText(s, x+(buttonWidth-len(b.label))/2, b.area.y, style, b.label)
	}
}

func (t *title) HandleAction(a input.Action) Kind {
	switch a {
	case input.ActionUp:
		t.focus = (t.focus + len(t.buttons) - 1) % len(t.buttons)
	case input.ActionDown:
		t.focus = (t.focus + 1) % len(t.buttons)
	case input.ActionConfirm:
		return t.buttons[t.focus].target
	case input.ActionQuit, input.ActionBack:
		return KindQuit
	}
	return KindTitle
}

func (t *title) HandleClick(x, y int) Kind {
	for i, b := range t.buttons {
		if b.area.contains(x, y) {
			t.focus = i
			return b.target
		}
	}
	return KindTitle
}
