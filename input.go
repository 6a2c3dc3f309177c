package spatial

// Event is the base interface for input events routed through the focus
// manager. Use a type switch to handle specific event types.
type Event interface {
	// isEvent is a marker method to prevent external implementations.
	isEvent()
}

// Key represents a keyboard key.
type Key uint16

const (
	// KeyNone represents no key (zero value).
	KeyNone Key = iota

	// KeyRune represents a printable character. Check KeyEvent.Rune for the character.
	KeyRune

	KeyEscape
	KeyEnter
	KeyTab

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Depth navigation
	KeyPageUp
	KeyPageDown
)

// KeyEvent represents a keyboard input event.
type KeyEvent struct {
	Key  Key
	Rune rune
}

func (KeyEvent) isEvent() {}

// Direction maps arrow and page keys to a focus direction.
// ok is false for any other key.
func (e KeyEvent) Direction() (dir Direction, ok bool) {
	switch e.Key {
	case KeyUp:
		return DirUp, true
	case KeyDown:
		return DirDown, true
	case KeyLeft:
		return DirLeft, true
	case KeyRight:
		return DirRight, true
	case KeyPageUp:
		return DirBackward, true
	case KeyPageDown:
		return DirForward, true
	default:
		return 0, false
	}
}

// PointerButton represents which pointer button was involved in an event.
type PointerButton int

const (
	PointerPrimary PointerButton = iota
	PointerSecondary
	PointerNone // motion only
)

// PointerEvent is a pointer ray cast into the scene, as produced by a
// mouse or a tracked controller.
type PointerEvent struct {
	Ray    Ray
	Button PointerButton
}

func (PointerEvent) isEvent() {}
