package mouse

import (
	"sync"
	"time"

	"github.com/dshills/vtext/internal/renderer/backend"
)

// Tracker converts backend mouse reports into Events.
//
// Terminals report the set of buttons held at each pointer update rather
// than discrete presses and releases. Tracker remembers the held button and
// derives the transition from consecutive reports.
type Tracker struct {
	mu   sync.Mutex
	held Button
}

// NewTracker creates a tracker with no button held.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Translate converts a backend mouse event observed at now. ok is false for
// events that are not mouse reports.
func (t *Tracker) Translate(ev backend.Event, now time.Time) (Event, bool) {
	if ev.Type != backend.EventMouse {
		return Event{}, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	out := Event{
		Position:  Position{X: ev.MouseX, Y: ev.MouseY},
		Button:    buttonFromBackend(ev.MouseButton),
		Modifiers: ev.Mod,
		Timestamp: now,
	}

	switch {
	case out.Button.IsWheel():
		// Wheel notches are momentary and never held.
		out.Action = ActionPress
	case out.Button == ButtonNone && t.held == ButtonNone:
		out.Action = ActionMove
	case out.Button == ButtonNone:
		out.Action = ActionRelease
		out.Button = t.held
		t.held = ButtonNone
	case out.Button == t.held:
		out.Action = ActionDrag
	default:
		// A different button while one is held counts as a fresh press.
		out.Action = ActionPress
		t.held = out.Button
	}
	return out, true
}

// Held returns the button currently held.
func (t *Tracker) Held() Button {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.held
}

func buttonFromBackend(b backend.MouseButton) Button {
	switch b {
	case backend.MouseLeft:
		return ButtonLeft
	case backend.MouseMiddle:
		return ButtonMiddle
	case backend.MouseRight:
		return ButtonRight
	case backend.MouseWheelUp:
		return ButtonWheelUp
	case backend.MouseWheelDown:
		return ButtonWheelDown
	default:
		return ButtonNone
	}
}
