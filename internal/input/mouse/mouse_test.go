package mouse

import (
	"testing"
	"time"

	"github.com/dshills/vtext/internal/input"
	"github.com/dshills/vtext/internal/input/key"
	"github.com/dshills/vtext/internal/renderer/backend"
)

func press(x, y int, at time.Time) Event {
	return Event{Position: Position{X: x, Y: y}, Button: ButtonLeft, Action: ActionPress, Timestamp: at}
}

func expectAction(t *testing.T, got *input.Action, name string, x, y int) {
	t.Helper()
	if got == nil {
		t.Fatalf("expected %s, got nil", name)
	}
	if got.Name != name {
		t.Errorf("expected action %q, got %q", name, got.Name)
	}
	gx, gy, ok := got.Position()
	if !ok || gx != x || gy != y {
		t.Errorf("expected position %d,%d, got %d,%d (ok=%v)", x, y, gx, gy, ok)
	}
	if got.Source != input.SourceMouse {
		t.Errorf("expected mouse source, got %s", got.Source)
	}
}

// ============================================================================
// Types
// ============================================================================

func TestButtonString(t *testing.T) {
	tests := []struct {
		button   Button
		expected string
	}{
		{ButtonNone, "none"},
		{ButtonLeft, "left"},
		{ButtonMiddle, "middle"},
		{ButtonRight, "right"},
		{ButtonWheelUp, "wheel-up"},
		{ButtonWheelDown, "wheel-down"},
	}

	for _, tt := range tests {
		if got := tt.button.String(); got != tt.expected {
			t.Errorf("Button.String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestPositionDistance(t *testing.T) {
	tests := []struct {
		a, b Position
		want int
	}{
		{Position{0, 0}, Position{0, 0}, 0},
		{Position{0, 0}, Position{3, 4}, 7},
		{Position{5, 5}, Position{2, 7}, 5},
	}
	for _, tt := range tests {
		if got := tt.a.Distance(tt.b); got != tt.want {
			t.Errorf("%v.Distance(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

// ============================================================================
// Click tracking
// ============================================================================

func TestClickCounterDoubleClick(t *testing.T) {
	c := newClickCounter(400*time.Millisecond, 1)
	now := time.Now()

	presses := []bool{false, true, false, true}
	for i, want := range presses {
		at := now.Add(time.Duration(i) * 100 * time.Millisecond)
		if got := c.press(Position{5, 5}, at); got != want {
			t.Errorf("press %d: double = %v, want %v", i+1, got, want)
		}
	}
}

func TestClickCounterResets(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		pos  Position
		at   time.Time
	}{
		{"timeout", Position{5, 5}, now.Add(time.Second)},
		{"distance", Position{9, 5}, now.Add(50 * time.Millisecond)},
		{"clock skew", Position{5, 5}, now.Add(-time.Second)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newClickCounter(400*time.Millisecond, 1)
			c.press(Position{5, 5}, now)
			if c.press(tt.pos, tt.at) {
				t.Error("expected a single click")
			}
		})
	}
}

func TestClickCounterReset(t *testing.T) {
	c := newClickCounter(400*time.Millisecond, 1)
	now := time.Now()
	c.press(Position{1, 1}, now)
	c.reset()
	if c.press(Position{1, 1}, now.Add(10*time.Millisecond)) {
		t.Error("press after reset should be a single click")
	}
}

// ============================================================================
// Handler
// ============================================================================

func TestHandlerSingleClick(t *testing.T) {
	h := NewHandler(DefaultConfig())

	a := h.Handle(press(3, 4, time.Now()))
	expectAction(t, a, "cursor.setPosition", 3, 4)
	if !h.IsDragging() {
		t.Error("press should start a drag")
	}
}

func TestHandlerShiftClick(t *testing.T) {
	h := NewHandler(DefaultConfig())

	ev := press(3, 4, time.Now())
	ev.Modifiers = key.ModShift
	expectAction(t, h.Handle(ev), "selection.extendTo", 3, 4)
}

func TestHandlerDoubleClick(t *testing.T) {
	h := NewHandler(DefaultConfig())
	now := time.Now()

	h.Handle(press(3, 4, now))
	h.Handle(Event{Position: Position{3, 4}, Button: ButtonLeft, Action: ActionRelease})
	a := h.Handle(press(3, 4, now.Add(50*time.Millisecond)))
	expectAction(t, a, "selection.segment", 3, 4)
	if h.IsDragging() {
		t.Error("double click should not start a drag")
	}
}

func TestHandlerDrag(t *testing.T) {
	h := NewHandler(DefaultConfig())
	var events []bool
	h.OnDrag(func(active bool) { events = append(events, active) })

	h.Handle(press(1, 1, time.Now()))
	a := h.Handle(Event{Position: Position{4, 2}, Button: ButtonLeft, Action: ActionDrag})
	expectAction(t, a, "selection.extendTo", 4, 2)

	if a := h.Handle(Event{Position: Position{4, 2}, Button: ButtonLeft, Action: ActionDrag}); a != nil {
		t.Errorf("drag without movement should emit nothing, got %v", a)
	}

	st := h.DragState()
	if !st.Active || !st.Selecting || st.StartPos != (Position{1, 1}) || st.CurrentPos != (Position{4, 2}) {
		t.Errorf("unexpected drag state %+v", st)
	}

	if a := h.Handle(Event{Position: Position{4, 2}, Action: ActionRelease, Button: ButtonLeft}); a != nil {
		t.Errorf("release should emit nothing, got %v", a)
	}
	if h.IsDragging() {
		t.Error("release should end the drag")
	}

	if len(events) != 2 || !events[0] || events[1] {
		t.Errorf("expected drag events [true false], got %v", events)
	}
}

func TestHandlerDragDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnableDragSelection = false
	h := NewHandler(cfg)
	called := false
	h.OnDrag(func(bool) { called = true })

	h.Handle(press(1, 1, time.Now()))
	if a := h.Handle(Event{Position: Position{4, 2}, Button: ButtonLeft, Action: ActionDrag}); a != nil {
		t.Errorf("drag selection disabled, got %v", a)
	}
	h.Handle(Event{Action: ActionRelease, Button: ButtonLeft})
	if called {
		t.Error("OnDrag should not fire when drag selection is disabled")
	}
}

func TestHandlerMiddleClick(t *testing.T) {
	h := NewHandler(DefaultConfig())
	a := h.Handle(Event{Position: Position{2, 3}, Button: ButtonMiddle, Action: ActionPress})
	expectAction(t, a, "clipboard.paste", 2, 3)

	cfg := DefaultConfig()
	cfg.EnableMiddleClickPaste = false
	h = NewHandler(cfg)
	if a := h.Handle(Event{Button: ButtonMiddle, Action: ActionPress}); a != nil {
		t.Errorf("middle click paste disabled, got %v", a)
	}
}

func TestHandlerIgnoresOtherButtons(t *testing.T) {
	h := NewHandler(DefaultConfig())
	for _, b := range []Button{ButtonRight, ButtonWheelUp, ButtonWheelDown} {
		if a := h.Handle(Event{Button: b, Action: ActionPress}); a != nil {
			t.Errorf("%s: expected no action, got %v", b, a)
		}
	}
	if a := h.Handle(Event{Action: ActionMove}); a != nil {
		t.Errorf("move: expected no action, got %v", a)
	}
}

func TestHandlerReset(t *testing.T) {
	h := NewHandler(DefaultConfig())
	now := time.Now()
	h.Handle(press(1, 1, now))
	h.Reset()

	if h.IsDragging() {
		t.Error("Reset should end the drag")
	}
	a := h.Handle(press(1, 1, now.Add(10*time.Millisecond)))
	expectAction(t, a, "cursor.setPosition", 1, 1)
}

// ============================================================================
// Tracker
// ============================================================================

func TestTrackerTransitions(t *testing.T) {
	tr := NewTracker()
	now := time.Now()
	mouseEv := func(x, y int, b backend.MouseButton) backend.Event {
		return backend.Event{Type: backend.EventMouse, MouseX: x, MouseY: y, MouseButton: b}
	}

	steps := []struct {
		ev     backend.Event
		action Action
		button Button
	}{
		{mouseEv(0, 0, backend.MouseNone), ActionMove, ButtonNone},
		{mouseEv(1, 1, backend.MouseLeft), ActionPress, ButtonLeft},
		{mouseEv(2, 1, backend.MouseLeft), ActionDrag, ButtonLeft},
		{mouseEv(2, 1, backend.MouseNone), ActionRelease, ButtonLeft},
		{mouseEv(2, 1, backend.MouseWheelDown), ActionPress, ButtonWheelDown},
		{mouseEv(2, 1, backend.MouseNone), ActionMove, ButtonNone},
	}

	for i, s := range steps {
		got, ok := tr.Translate(s.ev, now)
		if !ok {
			t.Fatalf("step %d: not translated", i)
		}
		if got.Action != s.action || got.Button != s.button {
			t.Errorf("step %d: expected %s %s, got %s %s", i, s.action, s.button, got.Action, got.Button)
		}
		if got.Position != (Position{s.ev.MouseX, s.ev.MouseY}) {
			t.Errorf("step %d: position %v", i, got.Position)
		}
	}
	if tr.Held() != ButtonNone {
		t.Errorf("expected no held button, got %s", tr.Held())
	}
}

func TestTrackerIgnoresOtherEvents(t *testing.T) {
	tr := NewTracker()
	if _, ok := tr.Translate(backend.Event{Type: backend.EventKey}, time.Now()); ok {
		t.Error("key event should not translate")
	}
}

func TestTrackerWithHandler(t *testing.T) {
	tr := NewTracker()
	h := NewHandler(DefaultConfig())
	now := time.Now()

	var names []string
	for _, ev := range []backend.Event{
		{Type: backend.EventMouse, MouseX: 5, MouseY: 0, MouseButton: backend.MouseLeft},
		{Type: backend.EventMouse, MouseX: 5, MouseY: 3, MouseButton: backend.MouseLeft},
		{Type: backend.EventMouse, MouseX: 5, MouseY: 3},
	} {
		me, _ := tr.Translate(ev, now)
		if a := h.Handle(me); a != nil {
			names = append(names, a.Name)
		}
	}

	want := []string{"cursor.setPosition", "selection.extendTo"}
	if len(names) != len(want) || names[0] != want[0] || names[1] != want[1] {
		t.Errorf("expected %v, got %v", want, names)
	}
}
