package minefield

import "github.com/mineprobs/mineprobs/board"

// Buttons is a bitmask of pointer buttons. Only the primary and
// secondary buttons are recognized by the editor.
type Buttons uint8

const (
	ButtonPrimary Buttons = 1 << iota
	ButtonSecondary
)

// RecognizedButtons is the mask of buttons the editor reacts to.
const RecognizedButtons = ButtonPrimary | ButtonSecondary

// EventType discriminates the pointer event stream.
type EventType int

const (
	EventPress EventType = iota
	EventDoublePress
	EventMove
	EventRelease
)

// PointerEvent is one normalized pointer event.
//
// Coord is the grid cell under the pointer, nil when the pointer is
// outside the grid. Button is the button that changed state (press,
// double-press and release events); Held is the mask of buttons held
// down after the event.
type PointerEvent struct {
	Type   EventType
	Coord  *board.Coord
	Button Buttons
	Held   Buttons
}

// Normalize filters an event down to the recognized buttons, returning a
// new event value with unsupported buttons removed from the held mask.
// Events whose changed button is itself unrecognized are dropped (ok is
// false). The input event is never modified.
func Normalize(ev PointerEvent) (normalized PointerEvent, ok bool) {
	if ev.Button&^RecognizedButtons != 0 {
		return PointerEvent{}, false
	}
	ev.Held &= RecognizedButtons
	return ev, true
}
