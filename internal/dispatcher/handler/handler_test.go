package handler

import (
	"errors"
	"testing"

	"github.com/dshills/vtext/internal/dispatcher/execctx"
	"github.com/dshills/vtext/internal/engine"
	"github.com/dshills/vtext/internal/input"
)

func TestHandlerFunc(t *testing.T) {
	var called string
	h := HandlerFunc(func(a input.Action, _ *execctx.ExecutionContext) Result {
		called = a.Name
		return Success()
	})

	if !h.CanHandle("anything") {
		t.Error("HandlerFunc should accept every action")
	}
	if r := h.Handle(input.Action{Name: "x.y"}, execctx.New()); !r.IsOK() {
		t.Errorf("expected ok, got %s", r.Status)
	}
	if called != "x.y" {
		t.Errorf("expected x.y, got %q", called)
	}

	var nilFunc HandlerFunc
	if r := nilFunc.Handle(input.Action{}, execctx.New()); !r.IsError() {
		t.Error("nil HandlerFunc should return an error")
	}
}

func TestBaseNamespaceHandler(t *testing.T) {
	h := NewBaseNamespaceHandler("test")
	h.Register("test.run", func(input.Action, *execctx.ExecutionContext) Result {
		return Success().WithRedraw()
	})

	if h.Namespace() != "test" {
		t.Errorf("expected namespace test, got %q", h.Namespace())
	}
	if !h.CanHandle("test.run") || h.CanHandle("test.walk") {
		t.Error("CanHandle should reflect registered actions")
	}
	if got := h.Actions(); len(got) != 1 || got[0] != "test.run" {
		t.Errorf("unexpected actions %v", got)
	}

	ctx := execctx.New().WithEngine(engine.New())
	r := h.HandleAction(input.Action{Name: "test.run"}, ctx)
	if !r.IsOK() || !r.Redraw {
		t.Errorf("expected ok with redraw, got %+v", r)
	}

	r = h.HandleAction(input.Action{Name: "test.walk"}, ctx)
	if !r.IsError() {
		t.Errorf("expected error for unknown action, got %s", r.Status)
	}
}

func TestBaseNamespaceHandlerValidates(t *testing.T) {
	h := NewBaseNamespaceHandler("test")
	h.Register("test.run", func(input.Action, *execctx.ExecutionContext) Result {
		t.Error("should not run without an engine")
		return Success()
	})

	r := h.HandleAction(input.Action{Name: "test.run"}, execctx.New())
	if !errors.Is(r.Error, execctx.ErrMissingEngine) {
		t.Errorf("expected ErrMissingEngine, got %v", r.Error)
	}
}

func TestNamespaceAdapter(t *testing.T) {
	base := NewBaseNamespaceHandler("test")
	base.Register("test.run", func(input.Action, *execctx.ExecutionContext) Result { return NoOp() })

	h := NewNamespaceAdapter(base)
	if !h.CanHandle("test.run") {
		t.Error("adapter should delegate CanHandle")
	}
	r := h.Handle(input.Action{Name: "test.run"}, execctx.New().WithEngine(engine.New()))
	if r.Status != StatusNoOp {
		t.Errorf("expected no-op, got %s", r.Status)
	}
}

func TestResultBuilders(t *testing.T) {
	r := Success().WithMessage("done").WithData("n", 3)
	if r.Message != "done" {
		t.Errorf("expected message, got %q", r.Message)
	}
	if v, ok := r.GetData("n"); !ok || v != 3 {
		t.Errorf("expected data n=3, got %v %v", v, ok)
	}

	r2 := r.WithData("m", 4)
	if _, ok := r.GetData("m"); ok {
		t.Error("WithData should not modify the receiver")
	}
	if _, ok := r2.GetData("n"); !ok {
		t.Error("WithData should keep existing data")
	}

	if !Errorf("bad %d", 1).IsError() {
		t.Error("Errorf should produce an error result")
	}
	if Error(errors.New("x")).Error.Error() != "x" {
		t.Error("Error should keep the error")
	}
}

func TestResultStatusString(t *testing.T) {
	tests := map[ResultStatus]string{
		StatusOK:        "ok",
		StatusNoOp:      "no-op",
		StatusError:     "error",
		StatusCancelled: "cancelled",
		ResultStatus(9): "unknown",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("%d: expected %q, got %q", s, want, got)
		}
	}
}
