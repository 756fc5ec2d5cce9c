package execctx

import (
	"errors"
	"testing"

	"github.com/dshills/vtext/internal/engine"
	"github.com/dshills/vtext/internal/engine/cursor"
	"github.com/dshills/vtext/internal/input"
)

// Compile-time check that the engine satisfies the handler contract.
var _ EngineInterface = (*engine.Engine)(nil)

type stubView struct {
	ok bool
}

func (v stubView) HitTest(x, y int) (cursor.Cursor, bool) { return cursor.New(y, x), v.ok }
func (stubView) SegmentSpacing() int                      { return 0 }
func (stubView) SetSegmentSpacing(int)                    {}

func TestValidate(t *testing.T) {
	ctx := New()
	if !errors.Is(ctx.Validate(), ErrMissingEngine) {
		t.Errorf("expected ErrMissingEngine, got %v", ctx.Validate())
	}
	if ctx.HasSelection() {
		t.Error("expected no selection without engine")
	}

	ctx.WithEngine(engine.New())
	if err := ctx.Validate(); err != nil {
		t.Errorf("expected valid context, got %v", err)
	}
}

func TestHitTest(t *testing.T) {
	at := input.NewAction("cursor.setPosition", input.SourceMouse).WithPosition(3, 1)

	tests := []struct {
		name   string
		ctx    *ExecutionContext
		action input.Action
		want   error
	}{
		{"no position", New().WithView(stubView{ok: true}), input.NewAction("x.y", input.SourceMouse), ErrMissingPosition},
		{"no view", New(), at, ErrMissingView},
		{"no layout", New().WithView(stubView{}), at, ErrNoLayout},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.ctx.HitTest(tc.action); !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}

	c, err := New().WithView(stubView{ok: true}).HitTest(at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != cursor.New(1, 3) {
		t.Errorf("expected 1:3, got %v", c)
	}
}

func TestData(t *testing.T) {
	ctx := &ExecutionContext{}
	if _, ok := ctx.GetData("k"); ok {
		t.Error("expected missing key")
	}
	ctx.SetData("k", 7)
	if v, ok := ctx.GetData("k"); !ok || v != 7 {
		t.Errorf("expected 7, got %v", v)
	}
}
