// Package view provides handlers for view settings: flow direction and
// segment spacing.
package view

import (
	"github.com/dshills/vtext/internal/dispatcher/execctx"
	"github.com/dshills/vtext/internal/dispatcher/handler"
	"github.com/dshills/vtext/internal/engine"
	"github.com/dshills/vtext/internal/input"
)

// Action names for view settings.
const (
	ActionToggleFlow = "view.toggleFlow"

	// ActionSetFlow sets the flow from the "flow" argument.
	ActionSetFlow = "view.setFlow"

	ActionGrowSpacing   = "view.growSpacing"
	ActionShrinkSpacing = "view.shrinkSpacing"

	// ActionSetSpacing sets segment spacing from the "cells" argument.
	ActionSetSpacing = "view.setSpacing"
)

// Handler implements namespace-based view handling.
type Handler struct {
	*handler.BaseNamespaceHandler
}

// NewHandler creates a new view handler.
func NewHandler() *Handler {
	h := &Handler{BaseNamespaceHandler: handler.NewBaseNamespaceHandler("view")}
	h.Register(ActionToggleFlow, toggleFlow)
	h.Register(ActionSetFlow, setFlow)
	h.Register(ActionGrowSpacing, spacing(1))
	h.Register(ActionShrinkSpacing, spacing(-1))
	h.Register(ActionSetSpacing, setSpacing)
	return h
}

func toggleFlow(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
	next := engine.Horizontal
	if ctx.Engine.Flow() == engine.Horizontal {
		next = engine.Vertical
	}
	ctx.Engine.SetFlow(next)
	return handler.SuccessWithMessage(next.String()).WithRedraw()
}

func setFlow(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	flow, err := engine.ParseFlow(action.Args.GetString("flow"))
	if err != nil {
		return handler.Error(err)
	}
	if flow == ctx.Engine.Flow() {
		return handler.NoOp()
	}
	ctx.Engine.SetFlow(flow)
	return handler.Success().WithRedraw()
}

func spacing(delta int) handler.ActionFunc {
	return func(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
		if ctx.View == nil {
			return handler.Error(execctx.ErrMissingView)
		}
		cur := ctx.View.SegmentSpacing()
		next := max(cur+delta, 0)
		if next == cur {
			return handler.NoOp()
		}
		ctx.View.SetSegmentSpacing(next)
		return handler.Success().WithRedraw()
	}
}

func setSpacing(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if ctx.View == nil {
		return handler.Error(execctx.ErrMissingView)
	}
	cells, ok := action.Args.LookupInt("cells")
	if !ok || cells < 0 {
		return handler.Errorf("view spacing: expected non-negative cells argument")
	}
	ctx.View.SetSegmentSpacing(cells)
	return handler.Success().WithRedraw()
}
