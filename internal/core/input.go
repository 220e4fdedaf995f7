package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W, K - steer up
	ActionDown           // Down arrow, S, J - steer down
	ActionLeft           // Left arrow, A, H - steer left
	ActionRight          // Right arrow, D, L - steer right
	ActionPause          // Space, P - pause/unpause
	ActionRestart        // R - new round after game over
	ActionBack           // Esc - back to the start screen
	ActionQuit           // Q - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the action steers the snake.
func (a Action) IsDirectional() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	}
	return false
}

// InputFrame collects the input drained during one simulation tick.
type InputFrame struct {
	// Actions maps non-directional actions to whether they were triggered.
	Actions map[Action]bool

	// Direction is the most recent directional action of the tick, or
	// ActionNone. Later directional keys overwrite earlier ones.
	Direction Action

	// toggles counts pause presses so that two presses within one tick
	// cancel out.
	toggles int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	switch {
	case a == ActionNone:
		return
	case a.IsDirectional():
		f.Direction = a
		return
	case a == ActionPause:
		f.toggles++
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if a.IsDirectional() {
		return f.Direction == a
	}
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// PauseToggled reports whether the frame flips the pause state, i.e. pause
// was pressed an odd number of times.
func (f InputFrame) PauseToggled() bool {
	return f.toggles%2 == 1
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Direction = ActionNone
	f.toggles = 0
}
