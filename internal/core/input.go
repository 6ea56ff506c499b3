package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action uint8

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow
	ActionDown             // S, Down arrow
	ActionLeft             // A, Left arrow
	ActionRight            // D, Right arrow
	ActionSpeedUp          // P, +
	ActionSpeedDown        // O, -
	ActionSpecial          // E, Space - call the albatross
	ActionQuit             // Q - abandon the round
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R - restart after the round is over
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
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSpeedDown:
		return "SpeedDown"
	case ActionSpecial:
		return "Special"
	case ActionQuit:
		return "Quit"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// InputFrame holds the single command issued during one simulation tick.
// A frame with ActionNone is a valid "no input" tick. When several keys
// arrive within one tick the last one wins.
type InputFrame struct {
	Action Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records the action for this frame, replacing any earlier one.
func (f *InputFrame) Set(a Action) {
	f.Action = a
}

// Has returns true if the given action was issued this frame.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.Action == a
}

// Empty reports whether no action was issued.
func (f InputFrame) Empty() bool {
	return f.Action == ActionNone
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Action = ActionNone
}
