package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termtris/internal/core"
)

// KeyMap holds one binding per game action. It implements help.KeyMap.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	RotateCW  key.Binding
	RotateCCW key.Binding
	HardDrop  key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Quit      key.Binding
}

var helpText = map[core.Action]string{
	core.ActionLeft:      "left",
	core.ActionRight:     "right",
	core.ActionRotateCW:  "rotate",
	core.ActionRotateCCW: "rotate back",
	core.ActionHardDrop:  "drop",
	core.ActionPause:     "pause",
	core.ActionRestart:   "restart",
	core.ActionQuit:      "quit",
}

func binding(a core.Action) key.Binding {
	keys := core.KeysFor(a)
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		labels = append(labels, k)
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(labels, "/"), helpText[a]),
	)
}

// DefaultKeyMap builds the key map from core.DefaultBindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:      binding(core.ActionLeft),
		Right:     binding(core.ActionRight),
		RotateCW:  binding(core.ActionRotateCW),
		RotateCCW: binding(core.ActionRotateCCW),
		HardDrop:  binding(core.ActionHardDrop),
		Pause:     binding(core.ActionPause),
		Restart:   binding(core.ActionRestart),
		Quit:      binding(core.ActionQuit),
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.RotateCW):
		return core.ActionRotateCW, false
	case key.Matches(msg, km.RotateCCW):
		return core.ActionRotateCCW, false
	case key.Matches(msg, km.HardDrop):
		return core.ActionHardDrop, false
	case key.Matches(msg, km.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.Restart):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// ShortHelp returns the bindings shown in the footer.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Left, km.Right, km.RotateCW, km.HardDrop, km.Pause, km.Quit}
}

// FullHelp returns every binding grouped into columns.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.RotateCW, km.RotateCCW},
		{km.HardDrop, km.Pause, km.Restart, km.Quit},
	}
}
