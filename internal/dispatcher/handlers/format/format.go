// Package format provides handlers for character formatting.
//
// Every action applies to the selected characters, or to the typing
// format when nothing is selected.
package format

import (
	"fmt"

	"github.com/dshills/vtext/internal/dispatcher/execctx"
	"github.com/dshills/vtext/internal/dispatcher/handler"
	"github.com/dshills/vtext/internal/engine/style"
	"github.com/dshills/vtext/internal/input"
)

// Action names for formatting.
const (
	ActionToggleBold      = "format.toggleBold"
	ActionToggleItalic    = "format.toggleItalic"
	ActionToggleUnderline = "format.toggleUnderline"
	ActionToggleOverline  = "format.toggleOverline"
	ActionToggleStrikeOut = "format.toggleStrikeOut"
	ActionGrowFont        = "format.growFont"
	ActionShrinkFont      = "format.shrinkFont"

	// ActionSet applies every attribute present in the arguments in one
	// step: bold, italic, underline, overline, strikeout (bool), family
	// (string), size (int), letterSpacing (number), color (hex string).
	ActionSet = "format.set"
)

// FontStep is the point size change of grow and shrink.
const FontStep = 2

// Handler implements namespace-based formatting.
type Handler struct {
	*handler.BaseNamespaceHandler
}

// NewHandler creates a new format handler.
func NewHandler() *Handler {
	h := &Handler{BaseNamespaceHandler: handler.NewBaseNamespaceHandler("format")}
	h.Register(ActionToggleBold, toggle(func(e execctx.EngineInterface) { e.ToggleBold() }))
	h.Register(ActionToggleItalic, toggle(func(e execctx.EngineInterface) { e.ToggleItalic() }))
	h.Register(ActionToggleUnderline, toggle(func(e execctx.EngineInterface) { e.ToggleUnderline() }))
	h.Register(ActionToggleOverline, toggle(func(e execctx.EngineInterface) { e.ToggleOverline() }))
	h.Register(ActionToggleStrikeOut, toggle(func(e execctx.EngineInterface) { e.ToggleStrikeOut() }))
	h.Register(ActionGrowFont, apply(style.GrowPointSize(FontStep)))
	h.Register(ActionShrinkFont, apply(style.GrowPointSize(-FontStep)))
	h.Register(ActionSet, set)
	return h
}

func toggle(fn func(e execctx.EngineInterface)) handler.ActionFunc {
	return func(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
		fn(ctx.Engine)
		return handler.Success().WithRedraw()
	}
}

func apply(m style.Mutator) handler.ActionFunc {
	return func(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
		ctx.Engine.ApplyFormat(m)
		return handler.Success().WithRedraw()
	}
}

func set(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	m, err := Mutators(action.Args)
	if err != nil {
		return handler.Error(err)
	}
	if len(m) == 0 {
		return handler.NoOp()
	}
	ctx.Engine.ApplyFormat(style.Chain(m...))
	return handler.Success().WithRedraw()
}

// Mutators converts format.set arguments into mutators.
func Mutators(args input.ActionArgs) ([]style.Mutator, error) {
	var ms []style.Mutator

	flags := []struct {
		key string
		fn  func(bool) style.Mutator
	}{
		{"bold", style.Bold},
		{"italic", style.Italic},
		{"underline", style.Underline},
		{"overline", style.Overline},
		{"strikeout", style.StrikeOut},
	}
	for _, fl := range flags {
		if v, ok := args.Get(fl.key); ok {
			on, isBool := v.(bool)
			if !isBool {
				return nil, fmt.Errorf("format %s: expected bool, got %T", fl.key, v)
			}
			ms = append(ms, fl.fn(on))
		}
	}

	if _, ok := args.Get("family"); ok {
		ms = append(ms, style.Family(args.GetString("family")))
	}
	if size, ok := args.LookupInt("size"); ok {
		if size <= 0 {
			return nil, fmt.Errorf("format size: must be positive, got %d", size)
		}
		ms = append(ms, style.PointSize(size))
	}
	if _, ok := args.Get("letterSpacing"); ok {
		ms = append(ms, style.LetterSpacing(args.GetFloat("letterSpacing")))
	}
	if _, ok := args.Get("color"); ok {
		c, err := style.ParseColor(args.GetString("color"))
		if err != nil {
			return nil, fmt.Errorf("format color: %w", err)
		}
		ms = append(ms, style.Foreground(c))
	}
	return ms, nil
}
