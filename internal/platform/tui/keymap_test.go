package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termtris/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"a", runeKey('a'), core.ActionLeft, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"w", runeKey('w'), core.ActionRotateCW, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotateCW, false},
		{"z", runeKey('z'), core.ActionRotateCCW, false},
		{"s", runeKey('s'), core.ActionHardDrop, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionHardDrop, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionHardDrop, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)",
					tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestKeyMapMatchesCoreBindings(t *testing.T) {
	for _, a := range core.Actions {
		for _, k := range core.KeysFor(a) {
			if got := core.ActionForKey(k); got != a {
				t.Errorf("ActionForKey(%q) = %v, expected %v", k, got, a)
			}
		}
	}

	km := DefaultKeyMap()
	for _, group := range km.FullHelp() {
		for _, b := range group {
			if b.Help().Key == "" || b.Help().Desc == "" {
				t.Errorf("binding %v has no help text", b.Keys())
			}
		}
	}
	if km.HardDrop.Help().Key != "down/s/space" {
		t.Errorf("hard drop help key = %q", km.HardDrop.Help().Key)
	}
}
