package core

// Action represents a semantic game action, abstracted from physical key
// presses. This allows the session to work with high-level intents rather
// than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - jump over the obstacle
	ActionUp             // Up arrow, k - move menu cursor up
	ActionDown           // Down arrow, j - move menu cursor down
	ActionConfirm        // Enter - activate the focused menu button
	ActionBack           // Escape - pause while playing, back out of menus
	ActionQuit           // Q, Ctrl+C - exit immediately
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// EventKind distinguishes the two discrete input event shapes the session
// consumes: key-derived actions and mouse clicks with screen coordinates.
type EventKind int

const (
	EventKey EventKind = iota
	EventClick
)

// Event is a single discrete input event delivered to the session.
// Key events carry an Action; click events carry cell coordinates.
type Event struct {
	Kind   EventKind
	Action Action
	X, Y   int
}

// KeyEvent builds a key event for the given action.
func KeyEvent(a Action) Event {
	return Event{Kind: EventKey, Action: a}
}

// ClickEvent builds a left-click event at the given cell position.
func ClickEvent(x, y int) Event {
	return Event{Kind: EventClick, X: x, Y: y}
}
