package core

// Action represents a semantic input action, abstracted from physical key presses.
// Frontends translate keys to actions and actions to calls on the session's
// input port.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - steer left
	ActionRight          // Right arrow, D - steer right
	ActionRelease        // A directional key was released (or timed out)
	ActionConfirm        // Enter - start a run with the entered name
	ActionRestart        // R - restart after game over, keeping the name
	ActionBack           // Esc - abandon the run and return to the menu
	ActionQuit           // Ctrl+C - exit
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
	case ActionRelease:
		return "Release"
	case ActionConfirm:
		return "Confirm"
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

// IsDirectional reports whether the action steers the player.
func (a Action) IsDirectional() bool {
	return a == ActionLeft || a == ActionRight
}
