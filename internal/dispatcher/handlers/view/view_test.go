package view_test

import (
	"errors"
	"testing"

	"github.com/dshills/vtext/internal/dispatcher/execctx"
	"github.com/dshills/vtext/internal/dispatcher/handler"
	viewhandler "github.com/dshills/vtext/internal/dispatcher/handlers/view"
	"github.com/dshills/vtext/internal/engine"
	"github.com/dshills/vtext/internal/engine/cursor"
	"github.com/dshills/vtext/internal/input"
)

type fakeView struct {
	spacing int
}

func (v *fakeView) HitTest(int, int) (cursor.Cursor, bool) { return cursor.Cursor{}, false }
func (v *fakeView) SegmentSpacing() int                    { return v.spacing }
func (v *fakeView) SetSegmentSpacing(cells int)            { v.spacing = cells }

func newContext() (*engine.Engine, *fakeView, *execctx.ExecutionContext) {
	e := engine.New()
	v := &fakeView{}
	return e, v, execctx.New().WithEngine(e).WithView(v)
}

func action(name string) input.Action {
	return input.NewAction(name, input.SourceKeyboard)
}

func TestToggleFlow(t *testing.T) {
	h := viewhandler.NewHandler()
	e, _, ctx := newContext()

	res := h.HandleAction(action(viewhandler.ActionToggleFlow), ctx)
	if !res.IsOK() || e.Flow() != engine.Horizontal {
		t.Fatalf("expected horizontal flow, got %v", e.Flow())
	}
	if res.Message != "horizontal" {
		t.Errorf("expected message \"horizontal\", got %q", res.Message)
	}

	h.HandleAction(action(viewhandler.ActionToggleFlow), ctx)
	if e.Flow() != engine.Vertical {
		t.Errorf("expected vertical flow, got %v", e.Flow())
	}
}

func TestSetFlow(t *testing.T) {
	h := viewhandler.NewHandler()
	e, _, ctx := newContext()

	set := func(flow string) handler.Result {
		return h.HandleAction(action(viewhandler.ActionSetFlow).WithArg("flow", flow), ctx)
	}

	if res := set("horizontal"); !res.IsOK() || e.Flow() != engine.Horizontal {
		t.Errorf("expected horizontal flow, got %v", e.Flow())
	}
	if res := set("horizontal"); res.Status != handler.StatusNoOp {
		t.Errorf("expected no-op for unchanged flow, got %v", res.Status)
	}
	if res := set("diagonal"); !res.IsError() {
		t.Errorf("expected error for unknown flow, got %v", res.Status)
	}
}

func TestSpacing(t *testing.T) {
	h := viewhandler.NewHandler()
	_, v, ctx := newContext()

	if res := h.HandleAction(action(viewhandler.ActionShrinkSpacing), ctx); res.Status != handler.StatusNoOp {
		t.Errorf("expected no-op at zero spacing, got %v", res.Status)
	}

	h.HandleAction(action(viewhandler.ActionGrowSpacing), ctx)
	h.HandleAction(action(viewhandler.ActionGrowSpacing), ctx)
	if v.spacing != 2 {
		t.Errorf("expected spacing 2, got %d", v.spacing)
	}

	h.HandleAction(action(viewhandler.ActionShrinkSpacing), ctx)
	if v.spacing != 1 {
		t.Errorf("expected spacing 1, got %d", v.spacing)
	}

	h.HandleAction(action(viewhandler.ActionSetSpacing).WithArg("cells", 4), ctx)
	if v.spacing != 4 {
		t.Errorf("expected spacing 4, got %d", v.spacing)
	}

	if res := h.HandleAction(action(viewhandler.ActionSetSpacing).WithArg("cells", -1), ctx); !res.IsError() {
		t.Errorf("expected error for negative spacing, got %v", res.Status)
	}
}

func TestSpacingWithoutView(t *testing.T) {
	h := viewhandler.NewHandler()
	_, _, ctx := newContext()
	ctx.View = nil

	res := h.HandleAction(action(viewhandler.ActionGrowSpacing), ctx)
	if !errors.Is(res.Error, execctx.ErrMissingView) {
		t.Errorf("expected ErrMissingView, got %v", res.Error)
	}
}
