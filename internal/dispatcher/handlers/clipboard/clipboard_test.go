package clipboard_test

import (
	"errors"
	"testing"

	"github.com/dshills/vtext/internal/clipboard"
	"github.com/dshills/vtext/internal/dispatcher/execctx"
	"github.com/dshills/vtext/internal/dispatcher/handler"
	clipboardhandler "github.com/dshills/vtext/internal/dispatcher/handlers/clipboard"
	"github.com/dshills/vtext/internal/engine"
	"github.com/dshills/vtext/internal/engine/cursor"
	"github.com/dshills/vtext/internal/input"
)

type gridView struct{}

func (gridView) HitTest(x, y int) (cursor.Cursor, bool) { return cursor.New(x, y), true }
func (gridView) SegmentSpacing() int                    { return 0 }
func (gridView) SetSegmentSpacing(int)                  {}

type failingClipboard struct{}

var errUnavailable = errors.New("clipboard unavailable")

func (failingClipboard) Store(string) error      { return errUnavailable }
func (failingClipboard) Fetch() (string, error) { return "", errUnavailable }

func newContext(text string) (*engine.Engine, *clipboard.Memory, *execctx.ExecutionContext) {
	e := engine.New()
	e.SetText(text)
	cb := clipboard.NewMemory()
	return e, cb, execctx.New().WithEngine(e).WithClipboard(cb).WithView(gridView{})
}

func action(name string) input.Action {
	return input.NewAction(name, input.SourceKeyboard)
}

func TestCopy(t *testing.T) {
	h := clipboardhandler.NewHandler()
	e, cb, ctx := newContext("hello\nworld")

	if res := h.HandleAction(action(clipboardhandler.ActionCopy), ctx); res.Status != handler.StatusNoOp {
		t.Errorf("expected no-op without selection, got %v", res.Status)
	}

	e.SelectAll()
	if res := h.HandleAction(action(clipboardhandler.ActionCopy), ctx); !res.IsOK() {
		t.Fatalf("expected success, got %v", res.Error)
	}
	got, _ := cb.Fetch()
	if got != "hello\nworld" {
		t.Errorf("expected clipboard %q, got %q", "hello\nworld", got)
	}
	if e.Text() != "hello\nworld" {
		t.Errorf("expected copy to leave the document unchanged, got %q", e.Text())
	}
}

func TestCut(t *testing.T) {
	h := clipboardhandler.NewHandler()
	e, cb, ctx := newContext("hello")
	e.Select(cursor.New(0, 1), cursor.New(0, 4))

	res := h.HandleAction(action(clipboardhandler.ActionCut), ctx)
	if !res.IsOK() || !res.Redraw {
		t.Fatalf("expected redraw success, got %v", res.Status)
	}
	if got, _ := cb.Fetch(); got != "ell" {
		t.Errorf("expected clipboard \"ell\", got %q", got)
	}
	if got := e.Text(); got != "ho" {
		t.Errorf("expected \"ho\", got %q", got)
	}
}

func TestPaste(t *testing.T) {
	h := clipboardhandler.NewHandler()
	e, cb, ctx := newContext("ab")

	if res := h.HandleAction(action(clipboardhandler.ActionPaste), ctx); res.Status != handler.StatusNoOp {
		t.Errorf("expected no-op for empty clipboard, got %v", res.Status)
	}

	_ = cb.Store("x\ny")
	if res := h.HandleAction(action(clipboardhandler.ActionPaste), ctx); !res.IsOK() {
		t.Fatalf("expected success, got %v", res.Error)
	}
	if got := e.Text(); got != "abx\ny" {
		t.Errorf("expected \"abx\\ny\", got %q", got)
	}
}

func TestPasteAtPosition(t *testing.T) {
	h := clipboardhandler.NewHandler()
	e, cb, ctx := newContext("abc")
	_ = cb.Store("-")

	paste := input.NewAction(clipboardhandler.ActionPaste, input.SourceMouse).WithPosition(0, 1)
	if res := h.HandleAction(paste, ctx); !res.IsOK() {
		t.Fatalf("expected success, got %v", res.Error)
	}
	if got := e.Text(); got != "a-bc" {
		t.Errorf("expected \"a-bc\", got %q", got)
	}
}

func TestMissingClipboard(t *testing.T) {
	h := clipboardhandler.NewHandler()
	e, _, ctx := newContext("abc")
	ctx.Clipboard = nil
	e.SelectAll()

	for _, name := range []string{clipboardhandler.ActionCopy, clipboardhandler.ActionCut, clipboardhandler.ActionPaste} {
		res := h.HandleAction(action(name), ctx)
		if !errors.Is(res.Error, execctx.ErrMissingClipboard) {
			t.Errorf("%s: expected ErrMissingClipboard, got %v", name, res.Error)
		}
	}
}

func TestClipboardFailure(t *testing.T) {
	h := clipboardhandler.NewHandler()
	e, _, ctx := newContext("abc")
	ctx.Clipboard = failingClipboard{}
	e.SelectAll()

	res := h.HandleAction(action(clipboardhandler.ActionCut), ctx)
	if !errors.Is(res.Error, errUnavailable) {
		t.Errorf("expected store error, got %v", res.Error)
	}
	if got := e.Text(); got != "abc" {
		t.Errorf("expected failed cut to keep the text, got %q", got)
	}
}
