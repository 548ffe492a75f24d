package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/termtris/internal/core"
)

// Input collects tcell events on a goroutine so the frame loop never blocks.
type Input struct {
	events chan tcell.Event
	quit   chan struct{}
}

// NewInput starts polling screen. Stop it with Close before finalizing the
// screen.
func NewInput(screen tcell.Screen) *Input {
	in := &Input{
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
	}
	go in.poll(screen)
	return in
}

func (in *Input) poll(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case in.events <- ev:
		case <-in.quit:
			return
		}
	}
}

// Close stops forwarding events.
func (in *Input) Close() {
	close(in.quit)
}

// Frame is what arrived since the previous frame.
type Frame struct {
	Action  core.Action
	Resized bool
}

// Read drains pending events without blocking. The first bound key wins and
// the rest are discarded, so held keys do not queue up moves.
func (in *Input) Read() Frame {
	var f Frame
	for {
		select {
		case ev := <-in.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if f.Action == core.ActionNone {
					f.Action = core.ActionForKey(keyName(ev.Key(), ev.Rune()))
				}
			case *tcell.EventResize:
				f.Resized = true
			}
		default:
			return f
		}
	}
}

// keyName converts a tcell key to the names used by core.DefaultBindings.
func keyName(k tcell.Key, r rune) string {
	switch k {
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyRune:
		return string(r)
	}
	return ""
}
