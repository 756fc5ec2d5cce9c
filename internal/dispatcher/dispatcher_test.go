package dispatcher

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/vtext/internal/clipboard"
	"github.com/dshills/vtext/internal/dispatcher/execctx"
	"github.com/dshills/vtext/internal/dispatcher/handler"
	"github.com/dshills/vtext/internal/engine"
	"github.com/dshills/vtext/internal/input"
)

func newTestDispatcher(config Config) (*Dispatcher, *engine.Engine) {
	d := New(config)
	e := engine.New()
	d.SetEngine(e)
	d.SetClipboard(clipboard.NewMemory())
	RegisterDefaults(d)
	return d, e
}

func keyAction(name string) input.Action {
	return input.NewAction(name, input.SourceKeyboard)
}

// ============================================================================
// Routing
// ============================================================================

func TestDispatchRoutesByNamespace(t *testing.T) {
	d, e := newTestDispatcher(DefaultConfig())

	res := d.Dispatch(keyAction("editor.insertText").WithText("hi"))
	if !res.IsOK() {
		t.Fatalf("expected success, got %v: %v", res.Status, res.Error)
	}
	if got := e.Text(); got != "hi" {
		t.Errorf("expected \"hi\", got %q", got)
	}

	d.Dispatch(keyAction("selection.all"))
	d.Dispatch(keyAction("format.toggleBold"))
	if !e.Segment(0)[0].Format.Bold {
		t.Error("expected bold after format.toggleBold")
	}
}

func TestDispatchRegistryFallback(t *testing.T) {
	d, _ := newTestDispatcher(DefaultConfig())

	called := false
	d.RegisterHandlerFunc("file.save", func(input.Action, *execctx.ExecutionContext) handler.Result {
		called = true
		return handler.Success()
	})

	if !d.CanDispatch("file.save") {
		t.Error("expected file.save to be dispatchable")
	}
	if res := d.Dispatch(keyAction("file.save")); !res.IsOK() || !called {
		t.Errorf("expected registry handler to run, got %v", res.Status)
	}

	d.UnregisterHandler("file.save")
	if d.CanDispatch("file.save") {
		t.Error("expected file.save to be gone")
	}
}

func TestDispatchNoHandler(t *testing.T) {
	d, _ := newTestDispatcher(DefaultConfig())

	for _, name := range []string{"unknown.action", "editor.unknown", "noNamespace"} {
		res := d.Dispatch(keyAction(name))
		if !errors.Is(res.Error, ErrNoHandler) {
			t.Errorf("%s: expected ErrNoHandler, got %v", name, res.Error)
		}
	}
}

func TestDispatchInvalidAction(t *testing.T) {
	d, _ := newTestDispatcher(DefaultConfig())
	res := d.Dispatch(input.Action{})
	if !errors.Is(res.Error, ErrInvalidAction) {
		t.Errorf("expected ErrInvalidAction, got %v", res.Error)
	}
}

func TestDispatchWithoutEngine(t *testing.T) {
	d := NewWithDefaults()
	RegisterDefaults(d)

	res := d.DispatchName("editor.backspace", input.SourceKeyboard)
	if !errors.Is(res.Error, execctx.ErrMissingEngine) {
		t.Errorf("expected ErrMissingEngine, got %v", res.Error)
	}
}

func TestDefaultNamespaces(t *testing.T) {
	d, _ := newTestDispatcher(DefaultConfig())

	want := []string{"clipboard", "cursor", "editor", "format", "history", "selection", "view"}
	got := d.Router().Namespaces()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("expected namespaces %v, got %v", want, got)
	}
}

// ============================================================================
// Panic Recovery
// ============================================================================

func TestPanicRecovery(t *testing.T) {
	d, _ := newTestDispatcher(DefaultConfig().WithMetrics())
	d.RegisterHandlerFunc("test.panic", func(input.Action, *execctx.ExecutionContext) handler.Result {
		panic("boom")
	})

	res := d.Dispatch(keyAction("test.panic"))
	if !errors.Is(res.Error, ErrPanic) {
		t.Fatalf("expected ErrPanic, got %v", res.Error)
	}
	if !strings.Contains(res.Error.Error(), "boom") {
		t.Errorf("expected panic value in error, got %q", res.Error.Error())
	}
	if _, ok := res.GetData("stack"); !ok {
		t.Error("expected stack in result data")
	}
	if got := d.Metrics().Snapshot().TotalPanics; got != 1 {
		t.Errorf("expected 1 panic recorded, got %d", got)
	}
}

func TestPanicWithoutRecovery(t *testing.T) {
	d, _ := newTestDispatcher(DefaultConfig().WithPanicRecovery(false))
	d.RegisterHandlerFunc("test.panic", func(input.Action, *execctx.ExecutionContext) handler.Result {
		panic("boom")
	})

	defer func() {
		if recover() == nil {
			t.Error("expected panic to propagate")
		}
	}()
	d.Dispatch(keyAction("test.panic"))
}

// Out-of-range engine calls panic; the dispatcher turns them into errors.
func TestEnginePanicBecomesError(t *testing.T) {
	d, _ := newTestDispatcher(DefaultConfig())
	d.RegisterHandlerFunc("test.badCursor", func(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
		ctx.Engine.SetCursor(5, 0)
		return handler.Success()
	})

	if res := d.Dispatch(keyAction("test.badCursor")); !errors.Is(res.Error, ErrPanic) {
		t.Errorf("expected ErrPanic, got %v", res.Error)
	}
}

// ============================================================================
// Hooks
// ============================================================================

func TestPreHookCancels(t *testing.T) {
	d, e := newTestDispatcher(DefaultConfig())
	d.RegisterPreHook(PreDispatchFunc(func(action *input.Action, _ *execctx.ExecutionContext) bool {
		return action.Name != "editor.insertText"
	}))

	res := d.Dispatch(keyAction("editor.insertText").WithText("x"))
	if res.Status != handler.StatusCancelled {
		t.Errorf("expected cancelled, got %v", res.Status)
	}
	if e.Text() != "" {
		t.Errorf("expected no edit, got %q", e.Text())
	}
}

func TestPreHookRewritesAction(t *testing.T) {
	d, e := newTestDispatcher(DefaultConfig())
	d.RegisterPreHook(PreDispatchFunc(func(action *input.Action, _ *execctx.ExecutionContext) bool {
		action.Args.Text = strings.ToUpper(action.Args.Text)
		return true
	}))

	d.Dispatch(keyAction("editor.insertText").WithText("abc"))
	if got := e.Text(); got != "ABC" {
		t.Errorf("expected \"ABC\", got %q", got)
	}
}

func TestPostHookSeesResult(t *testing.T) {
	d, _ := newTestDispatcher(DefaultConfig())

	var redraws []string
	d.RegisterPostHook(PostDispatchFunc(func(action *input.Action, _ *execctx.ExecutionContext, result *handler.Result) {
		if result.Redraw {
			redraws = append(redraws, action.Name)
		}
	}))

	d.Dispatch(keyAction("editor.insertText").WithText("a"))
	d.Dispatch(keyAction("selection.clear"))
	d.Dispatch(keyAction("cursor.moveHome"))

	want := "editor.insertText,cursor.moveHome"
	if got := strings.Join(redraws, ","); got != want {
		t.Errorf("expected redraws %q, got %q", want, got)
	}
}

// ============================================================================
// Metrics
// ============================================================================

func TestMetrics(t *testing.T) {
	d, _ := newTestDispatcher(DefaultConfig().WithMetrics())

	d.Dispatch(keyAction("editor.insertText").WithText("a"))
	d.Dispatch(keyAction("editor.insertText").WithText("b"))
	d.Dispatch(keyAction("unknown.action"))

	snap := d.Metrics().Snapshot()
	if snap.TotalDispatches != 3 {
		t.Errorf("expected 3 dispatches, got %d", snap.TotalDispatches)
	}
	if snap.TotalErrors != 1 {
		t.Errorf("expected 1 error, got %d", snap.TotalErrors)
	}
	if len(snap.Actions) != 2 || snap.Actions[0].Name != "editor.insertText" || snap.Actions[0].DispatchCount != 2 {
		t.Errorf("unexpected action metrics %+v", snap.Actions)
	}

	d.Metrics().Reset()
	if d.Metrics().Snapshot().TotalDispatches != 0 {
		t.Error("expected reset to clear dispatches")
	}
}

func TestMetricsDisabled(t *testing.T) {
	d, _ := newTestDispatcher(DefaultConfig())
	if d.Metrics() != nil {
		t.Error("expected nil metrics when disabled")
	}
	d.Dispatch(keyAction("editor.insertText").WithText("a"))
}

func TestAverageDuration(t *testing.T) {
	m := ActionMetrics{DispatchCount: 4, TotalDuration: 40}
	if m.AverageDuration() != 10 {
		t.Errorf("expected 10, got %v", m.AverageDuration())
	}
	if (ActionMetrics{}).AverageDuration() != 0 {
		t.Error("expected zero average for no dispatches")
	}
}

// ============================================================================
// Registry
// ============================================================================

func TestRegistryNames(t *testing.T) {
	r := NewRegistry()
	noop := handler.HandlerFunc(func(input.Action, *execctx.ExecutionContext) handler.Result { return handler.NoOp() })
	r.Register("b.two", noop)
	r.Register("a.one", noop)

	if got := strings.Join(r.Names(), ","); got != "a.one,b.two" {
		t.Errorf("expected sorted names, got %q", got)
	}
	if r.Get("c.three") != nil {
		t.Error("expected nil for unregistered name")
	}
}

func TestRouterUnregister(t *testing.T) {
	d, _ := newTestDispatcher(DefaultConfig())
	d.Router().UnregisterNamespace("format")
	if d.CanDispatch("format.toggleBold") {
		t.Error("expected format namespace to be removed")
	}
}

func TestExtractNamespace(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"cursor.moveLeft", "cursor"},
		{"a.b.c", "a"},
		{"plain", ""},
		{"", ""},
	}
	for _, tc := range tests {
		if got := extractNamespace(tc.name); got != tc.want {
			t.Errorf("extractNamespace(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

// ============================================================================
// Read-only mode
// ============================================================================

func TestReadOnlyRejectsEdits(t *testing.T) {
	d := New(DefaultConfig().WithReadOnly(true))
	e := engine.New(engine.WithContent("abc"))
	cb := clipboard.NewMemory()
	d.SetEngine(e)
	d.SetClipboard(cb)
	RegisterDefaults(d)

	var posted handler.Result
	d.RegisterPostHook(PostDispatchFunc(func(_ *input.Action, _ *execctx.ExecutionContext, r *handler.Result) {
		posted = *r
	}))

	for _, name := range []string{"editor.backspace", "format.toggleBold", "history.undo", "clipboard.cut", "clipboard.paste", "view.toggleFlow"} {
		res := d.Dispatch(keyAction(name).WithText("x"))
		if !errors.Is(res.Error, ErrReadOnly) {
			t.Errorf("%s: expected ErrReadOnly, got %v", name, res.Error)
		}
		if !errors.Is(posted.Error, ErrReadOnly) {
			t.Errorf("%s: post hooks should see the refusal", name)
		}
	}
	if e.Text() != "abc" || e.Flow() != engine.Vertical {
		t.Errorf("document changed in read-only mode: %q %v", e.Text(), e.Flow())
	}

	for _, name := range []string{"selection.all", "clipboard.copy", "cursor.moveHome"} {
		if res := d.Dispatch(keyAction(name)); res.IsError() {
			t.Errorf("%s should be allowed, got %v", name, res.Error)
		}
	}
	if got, _ := cb.Fetch(); got != "abc" {
		t.Errorf("copy should work in read-only mode, clipboard has %q", got)
	}
}
