package core

// Action represents a semantic game action, abstracted from physical key presses.
// This lets the simulation work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // A, Left arrow - move one cell left
	ActionRight              // D, Right arrow - move one cell right
	ActionSprintLeft         // Shift+A - move two cells left
	ActionSprintRight        // Shift+D - move two cells right
	ActionInteract           // E - attack an adjacent enemy or open a box
	ActionConfirm            // Enter - confirm selection in menus
	ActionBack               // B, Escape - go back to menu
	ActionRestart            // R - restart after game over
	ActionQuit               // Q, Ctrl+C - exit game/session
	ActionPause              // P, Escape - pause/unpause
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
	case ActionSprintLeft:
		return "SprintLeft"
	case ActionSprintRight:
		return "SprintRight"
	case ActionInteract:
		return "Interact"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
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
