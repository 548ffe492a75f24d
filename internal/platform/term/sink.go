// Package term drives a game directly on a tcell screen. Only the cells a
// frame changed are redrawn.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/termtris/internal/tetris"
)

var (
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSettled = tcell.StyleDefault.Foreground(tcell.ColorNavy)
	styleActive  = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleWarn    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Sink writes field cells to a tcell screen at an offset.
type Sink struct {
	screen tcell.Screen
	x0, y0 int

	// active marks cells of the falling piece; they get their own style.
	active tetris.CoordSet
}

// NewSink creates a sink whose field cell (0, 0) lands on screen (x0, y0).
func NewSink(screen tcell.Screen, x0, y0 int) *Sink {
	return &Sink{screen: screen, x0: x0, y0: y0}
}

// SetActive sets the cells drawn with the falling-piece style.
func (s *Sink) SetActive(cells tetris.CoordSet) {
	s.active = cells
}

// SetPoint draws one field cell.
func (s *Sink) SetPoint(x, y int, sym tetris.Symbol) {
	style := tcell.StyleDefault
	switch sym {
	case tetris.Border:
		style = styleBorder
	case tetris.Filled:
		style = styleSettled
		if s.active.Has(tetris.C(x, y)) {
			style = styleActive
		}
	}
	s.screen.SetContent(s.x0+x, s.y0+y, sym.Rune(), nil, style)
}

// Refresh presents the frame.
func (s *Sink) Refresh() {
	s.screen.Show()
}

// drawText writes a line of text starting at (x, y).
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	i := 0
	for _, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
		i++
	}
}
