package screen

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Styles
var (
	styleDefault = tcell.StyleDefault
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorSlateGray).Background(tcell.ColorSlateGray)
	styleTrail   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleAgent   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleGoal    = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleButton  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleFocus   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGold).Bold(true)
)

// Glyphs
const (
	runeTrail = '·'
	runeAgent = '@'
	runeGoal  = '★'
	runeStar  = '★'
	runeHole  = '☆'
)

// blockWidth is the terminal columns per maze block, roughly square cells
const blockWidth = 2

// drawText writes str at (x, y), clipped to the screen. Returns the column after the text.
func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) int {
	w, h := s.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, r := range str {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			rw = 1
		}
		if x >= 0 && x < w {
			s.SetContent(x, y, r, nil, style)
		}
		x += rw
	}
	return x
}

// drawCentered writes str horizontally centered on row y
func drawCentered(s tcell.Screen, y int, style tcell.Style, str string) {
	w, _ := s.Size()
	drawText(s, (w-runewidth.StringWidth(str))/2, y, style, str)
}

// fill paints a w x h rectangle
func fill(s tcell.Screen, x, y, w, h int, r rune, style tcell.Style) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			s.SetContent(x+dx, y+dy, r, nil, style)
		}
	}
}

// starString renders a 1..3 rating as filled and hollow stars
func starString(stars int) string {
	stars = max(0, min(stars, 3))
	return strings.Repeat(string(runeStar), stars) + strings.Repeat(string(runeHole), 3-stars)
}

// rect is a clickable screen area
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}
