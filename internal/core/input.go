package core

// Action represents a semantic game action, abstracted from physical key presses.
// Platforms translate keys into actions; the game never sees raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // A, Left arrow - shift piece left
	ActionRight            // D, Right arrow - shift piece right
	ActionRotateCW         // W, Up arrow - rotate clockwise
	ActionRotateCCW        // Z - rotate anticlockwise
	ActionHardDrop         // S, Down arrow, Space - drop piece to rest
	ActionPause            // P - pause/unpause
	ActionRestart          // R - start a new board
	ActionQuit             // Q, Esc, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionHardDrop:
		return "HardDrop"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Actions lists every bindable action in help order.
var Actions = []Action{
	ActionLeft,
	ActionRight,
	ActionRotateCW,
	ActionRotateCCW,
	ActionHardDrop,
	ActionPause,
	ActionRestart,
	ActionQuit,
}

// DefaultBindings maps actions to key names as Bubble Tea reports them
// (tea.KeyMsg.String()). The tcell backend normalizes its events to the
// same names.
var DefaultBindings = map[Action][]string{
	ActionLeft:      {"left", "a"},
	ActionRight:     {"right", "d"},
	ActionRotateCW:  {"up", "w"},
	ActionRotateCCW: {"z"},
	ActionHardDrop:  {"down", "s", " "},
	ActionPause:     {"p"},
	ActionRestart:   {"r"},
	ActionQuit:      {"q", "esc", "ctrl+c"},
}

var keyIndex = func() map[string]Action {
	idx := make(map[string]Action)
	for a, keys := range DefaultBindings {
		for _, k := range keys {
			idx[k] = a
		}
	}
	return idx
}()

// KeysFor returns the default key names bound to an action.
func KeysFor(a Action) []string {
	return DefaultBindings[a]
}

// ActionForKey returns the action bound to a key name, or ActionNone.
func ActionForKey(key string) Action {
	return keyIndex[key]
}

// InputFrame represents the input state for one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
