package mouse

import (
	"sync"
	"time"

	"github.com/dshills/vtext/internal/input"
	"github.com/dshills/vtext/internal/input/key"
)

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button (scroll wheel click).
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonWheelUp indicates scroll wheel up.
	ButtonWheelUp
	// ButtonWheelDown indicates scroll wheel down.
	ButtonWheelDown
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonWheelUp:
		return "wheel-up"
	case ButtonWheelDown:
		return "wheel-down"
	default:
		return "none"
	}
}

// IsWheel returns true if this is a scroll wheel button.
func (b Button) IsWheel() bool {
	return b == ButtonWheelUp || b == ButtonWheelDown
}

// Action represents the type of mouse action.
type Action uint8

const (
	// ActionNone indicates no action.
	ActionNone Action = iota
	// ActionPress indicates a button press.
	ActionPress
	// ActionRelease indicates a button release.
	ActionRelease
	// ActionMove indicates mouse movement (no button held).
	ActionMove
	// ActionDrag indicates mouse movement with a button held.
	ActionDrag
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	case ActionMove:
		return "move"
	case ActionDrag:
		return "drag"
	default:
		return "none"
	}
}

// Position represents a screen cell.
type Position struct {
	X int
	Y int
}

// Distance returns the Manhattan distance (|dx| + |dy|) between two positions.
func (p Position) Distance(other Position) int {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Event represents a mouse input event.
type Event struct {
	// Position is the screen cell under the pointer.
	Position Position

	// Button is the mouse button involved.
	Button Button

	// Modifiers are any keyboard modifiers held during the event.
	Modifiers key.Modifier

	// Action is the type of mouse action.
	Action Action

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// Config configures mouse handler behavior.
type Config struct {
	// DoubleClickTime is the maximum time between clicks for a double-click.
	DoubleClickTime time.Duration

	// DoubleClickDistance is the maximum distance between clicks for a double-click.
	DoubleClickDistance int

	// EnableDragSelection enables selection via drag.
	EnableDragSelection bool

	// EnableMiddleClickPaste enables middle-click paste.
	EnableMiddleClickPaste bool
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		DoubleClickTime:        400 * time.Millisecond,
		DoubleClickDistance:    1,
		EnableDragSelection:    true,
		EnableMiddleClickPaste: true,
	}
}

// Handler processes mouse events and generates editor actions.
type Handler struct {
	mu     sync.Mutex
	config Config
	clicks *clickCounter
	drag   DragState
	onDrag func(active bool)
}

// NewHandler creates a new mouse handler with the given configuration.
func NewHandler(config Config) *Handler {
	return &Handler{
		config: config,
		clicks: newClickCounter(config.DoubleClickTime, config.DoubleClickDistance),
	}
}

// OnDrag registers fn to run when a left-button drag starts or ends.
func (h *Handler) OnDrag(fn func(active bool)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onDrag = fn
}

// Handle processes a mouse event and returns an action (or nil).
func (h *Handler) Handle(event Event) *input.Action {
	h.mu.Lock()
	var (
		action  *input.Action
		changed bool
		active  bool
	)
	switch event.Action {
	case ActionPress:
		action, changed = h.handlePress(event)
		active = true
	case ActionRelease:
		changed = h.handleRelease()
	case ActionDrag:
		action = h.handleDrag(event)
	}
	fn := h.onDrag
	h.mu.Unlock()

	if changed && fn != nil {
		fn(active)
	}
	return action
}

// handlePress handles mouse button press events. It reports whether a
// drag started.
func (h *Handler) handlePress(event Event) (*input.Action, bool) {
	switch event.Button {
	case ButtonLeft:
		return h.handleLeftPress(event)
	case ButtonMiddle:
		if h.config.EnableMiddleClickPaste {
			return positional("clipboard.paste", event.Position), false
		}
	}
	return nil, false
}

// handleLeftPress handles left mouse button press.
func (h *Handler) handleLeftPress(event Event) (*input.Action, bool) {
	if h.clicks.press(event.Position, event.Timestamp) {
		return positional("selection.segment", event.Position), false
	}

	started := false
	if h.config.EnableDragSelection {
		h.drag.begin(event.Position, event.Button)
		started = true
	}
	if event.Modifiers.Has(key.ModShift) {
		return positional("selection.extendTo", event.Position), started
	}
	return positional("cursor.setPosition", event.Position), started
}

// handleRelease ends drag tracking. Actions are generated on press and
// drag, so release only reports whether a drag ended.
func (h *Handler) handleRelease() bool {
	return h.drag.finish()
}

// handleDrag handles mouse drag (movement with button held).
func (h *Handler) handleDrag(event Event) *input.Action {
	if !h.drag.moveTo(event.Position) {
		return nil
	}
	return positional("selection.extendTo", event.Position)
}

func positional(name string, pos Position) *input.Action {
	a := input.NewAction(name, input.SourceMouse).WithPosition(pos.X, pos.Y)
	return &a
}

// Reset clears all handler state. A drag in progress ends without a
// callback.
func (h *Handler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clicks.reset()
	h.drag.finish()
}

// IsDragging returns true if a drag operation is in progress.
func (h *Handler) IsDragging() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.drag.Active
}

// DragState returns the current drag state.
func (h *Handler) DragState() DragState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.drag
}
