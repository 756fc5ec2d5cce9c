package cursor_test

import (
	"errors"
	"testing"

	"github.com/dshills/vtext/internal/dispatcher/execctx"
	"github.com/dshills/vtext/internal/dispatcher/handler"
	cursorhandler "github.com/dshills/vtext/internal/dispatcher/handlers/cursor"
	"github.com/dshills/vtext/internal/engine"
	"github.com/dshills/vtext/internal/engine/cursor"
	"github.com/dshills/vtext/internal/input"
)

// gridView hit tests by treating x as the segment and y as the offset.
type gridView struct{}

func (gridView) HitTest(x, y int) (cursor.Cursor, bool) { return cursor.New(x, y), true }
func (gridView) SegmentSpacing() int                    { return 0 }
func (gridView) SetSegmentSpacing(int)                  {}

func newContext(text string, opts ...engine.Option) (*engine.Engine, *execctx.ExecutionContext) {
	e := engine.New(opts...)
	e.SetText(text)
	return e, execctx.New().WithEngine(e).WithView(gridView{})
}

func run(h *cursorhandler.Handler, ctx *execctx.ExecutionContext, action input.Action) handler.Result {
	return h.HandleAction(action, ctx)
}

func TestNamespace(t *testing.T) {
	h := cursorhandler.NewHandler()
	if h.Namespace() != "cursor" {
		t.Errorf("expected namespace 'cursor', got %q", h.Namespace())
	}
}

func TestCanHandle(t *testing.T) {
	h := cursorhandler.NewHandler()

	tests := []struct {
		action   string
		expected bool
	}{
		{cursorhandler.ActionMoveLeft, true},
		{cursorhandler.ActionMoveRight, true},
		{cursorhandler.ActionMoveUp, true},
		{cursorhandler.ActionMoveDown, true},
		{cursorhandler.ActionMoveHome, true},
		{cursorhandler.ActionMoveEnd, true},
		{cursorhandler.ActionSelectLeft, true},
		{cursorhandler.ActionSelectEnd, true},
		{cursorhandler.ActionSetPosition, true},
		{"cursor.unknown", false},
		{"editor.backspace", false},
	}

	for _, tc := range tests {
		if h.CanHandle(tc.action) != tc.expected {
			t.Errorf("CanHandle(%q) = %v, want %v", tc.action, h.CanHandle(tc.action), tc.expected)
		}
	}
}

// ============================================================================
// Motion
// ============================================================================

func TestMoveVerticalFlow(t *testing.T) {
	h := cursorhandler.NewHandler()
	e, ctx := newContext("ab\ncd")
	e.SetCursor(0, 1)

	tests := []struct {
		action string
		seg    int
		off    int
	}{
		{cursorhandler.ActionMoveDown, 0, 2},
		{cursorhandler.ActionMoveLeft, 1, 2},
		{cursorhandler.ActionMoveUp, 1, 1},
		{cursorhandler.ActionMoveRight, 0, 1},
		{cursorhandler.ActionMoveHome, 0, 0},
		{cursorhandler.ActionMoveEnd, 0, 2},
	}

	for _, tc := range tests {
		res := run(h, ctx, input.NewAction(tc.action, input.SourceKeyboard))
		if !res.IsOK() || !res.Redraw {
			t.Errorf("%s: expected redraw success, got %v", tc.action, res.Status)
		}
		if got := e.Cursor(); got != cursor.New(tc.seg, tc.off) {
			t.Errorf("%s: expected cursor %d:%d, got %v", tc.action, tc.seg, tc.off, got)
		}
	}
}

func TestMoveHorizontalFlow(t *testing.T) {
	h := cursorhandler.NewHandler()
	e, ctx := newContext("ab\ncd", engine.WithFlow(engine.Horizontal))
	e.SetCursor(1, 1)

	run(h, ctx, input.NewAction(cursorhandler.ActionMoveUp, input.SourceKeyboard))
	if got := e.Cursor(); got != cursor.New(0, 1) {
		t.Errorf("expected cursor 0:1 after up, got %v", got)
	}
	run(h, ctx, input.NewAction(cursorhandler.ActionMoveLeft, input.SourceKeyboard))
	if got := e.Cursor(); got != cursor.New(0, 0) {
		t.Errorf("expected cursor 0:0 after left, got %v", got)
	}
}

func TestMoveAtBoundaryIsNoOp(t *testing.T) {
	h := cursorhandler.NewHandler()
	e, ctx := newContext("ab")
	e.SetCursor(0, 0)

	res := run(h, ctx, input.NewAction(cursorhandler.ActionMoveUp, input.SourceKeyboard))
	if res.Status != handler.StatusNoOp {
		t.Errorf("expected no-op at document start, got %v", res.Status)
	}
}

func TestMoveClearsSelection(t *testing.T) {
	h := cursorhandler.NewHandler()
	e, ctx := newContext("abc")
	e.SelectAll()

	res := run(h, ctx, input.NewAction(cursorhandler.ActionMoveEnd, input.SourceKeyboard))
	if !res.IsOK() || res.Status == handler.StatusNoOp {
		t.Errorf("expected success when a selection is dropped, got %v", res.Status)
	}
	if e.HasSelection() {
		t.Error("expected selection to be cleared")
	}
}

func TestSelectExtends(t *testing.T) {
	h := cursorhandler.NewHandler()
	e, ctx := newContext("abc")
	e.SetCursor(0, 0)

	run(h, ctx, input.NewAction(cursorhandler.ActionSelectDown, input.SourceKeyboard))
	run(h, ctx, input.NewAction(cursorhandler.ActionSelectDown, input.SourceKeyboard))

	if !e.HasSelection() {
		t.Fatal("expected a selection")
	}
	if got := e.Selection().Anchor(); got != cursor.New(0, 0) {
		t.Errorf("expected anchor 0:0, got %v", got)
	}
	if got := e.Cursor(); got != cursor.New(0, 2) {
		t.Errorf("expected caret 0:2, got %v", got)
	}
}

// ============================================================================
// Positioning
// ============================================================================

func TestSetPositionExplicit(t *testing.T) {
	h := cursorhandler.NewHandler()
	e, ctx := newContext("abc\nde")

	action := input.NewAction(cursorhandler.ActionSetPosition, input.SourceAPI).
		WithArg("segment", 1).WithArg("offset", 1)
	if res := run(h, ctx, action); !res.IsOK() {
		t.Fatalf("expected success, got %v", res.Error)
	}
	if got := e.Cursor(); got != cursor.New(1, 1) {
		t.Errorf("expected cursor 1:1, got %v", got)
	}
}

func TestSetPositionOutOfRange(t *testing.T) {
	h := cursorhandler.NewHandler()
	_, ctx := newContext("abc")

	action := input.NewAction(cursorhandler.ActionSetPosition, input.SourceAPI).
		WithArg("segment", 0).WithArg("offset", 9)
	if res := run(h, ctx, action); !res.IsError() {
		t.Errorf("expected error for offset past the end, got %v", res.Status)
	}
}

func TestSetPositionHitTest(t *testing.T) {
	h := cursorhandler.NewHandler()
	e, ctx := newContext("abc\nde")

	action := input.NewAction(cursorhandler.ActionSetPosition, input.SourceMouse).WithPosition(1, 2)
	if res := run(h, ctx, action); !res.IsOK() {
		t.Fatalf("expected success, got %v", res.Error)
	}
	if got := e.Cursor(); got != cursor.New(1, 2) {
		t.Errorf("expected cursor 1:2, got %v", got)
	}
}

func TestSetPositionWithoutView(t *testing.T) {
	h := cursorhandler.NewHandler()
	_, ctx := newContext("abc")
	ctx.View = nil

	action := input.NewAction(cursorhandler.ActionSetPosition, input.SourceMouse).WithPosition(0, 0)
	res := run(h, ctx, action)
	if !errors.Is(res.Error, execctx.ErrMissingView) {
		t.Errorf("expected ErrMissingView, got %v", res.Error)
	}
}
