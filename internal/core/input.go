package core

import "github.com/vovakirdan/snake-core/internal/snake"

// Action represents a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionQuit
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
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the turn an action requests, if any.
func (a Action) Direction() (snake.Direction, bool) {
	switch a {
	case ActionUp:
		return snake.Up, true
	case ActionDown:
		return snake.Down, true
	case ActionLeft:
		return snake.Left, true
	case ActionRight:
		return snake.Right, true
	default:
		return 0, false
	}
}

// ActionFor returns the action that requests direction d.
func ActionFor(d snake.Direction) Action {
	switch d {
	case snake.Up:
		return ActionUp
	case snake.Down:
		return ActionDown
	case snake.Left:
		return ActionLeft
	case snake.Right:
		return ActionRight
	default:
		return ActionNone
	}
}

// InputFrame holds the actions received during one simulation tick, in
// arrival order. Order matters: two quick turns between ticks are both kept.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{}
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set appends an action to the frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Len returns the number of actions in the frame.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	return InputFrame{actions: append([]Action(nil), f.actions...)}
}
