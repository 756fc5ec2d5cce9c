// Package selection provides handlers for selection changes.
package selection

import (
	"github.com/dshills/vtext/internal/dispatcher/execctx"
	"github.com/dshills/vtext/internal/dispatcher/handler"
	"github.com/dshills/vtext/internal/input"
)

// Action names for selection changes.
const (
	ActionAll   = "selection.all"
	ActionClear = "selection.clear"

	// ActionSegment selects the segment under x,y, or the segment given
	// by the index argument. An empty segment just receives the caret.
	ActionSegment = "selection.segment"

	// ActionExtendTo moves the active end of the selection to the cell
	// under x,y. Without a selection the caret position is the anchor.
	ActionExtendTo = "selection.extendTo"
)

// Handler implements namespace-based selection handling.
type Handler struct {
	*handler.BaseNamespaceHandler
}

// NewHandler creates a new selection handler.
func NewHandler() *Handler {
	h := &Handler{BaseNamespaceHandler: handler.NewBaseNamespaceHandler("selection")}
	h.Register(ActionAll, selectAll)
	h.Register(ActionClear, clearSelection)
	h.Register(ActionSegment, selectSegment)
	h.Register(ActionExtendTo, extendTo)
	return h
}

func selectAll(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
	ctx.Engine.SelectAll()
	return handler.Success().WithRedraw()
}

func clearSelection(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if !ctx.Engine.HasSelection() {
		return handler.NoOp()
	}
	ctx.Engine.ClearSelection()
	return handler.Success().WithRedraw()
}

func selectSegment(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	index, ok := action.Args.LookupInt("index")
	if !ok {
		c, err := ctx.HitTest(action)
		if err != nil {
			return handler.Error(err)
		}
		index = c.Segment
	}
	if index < 0 || index >= ctx.Engine.SegmentCount() {
		return handler.Errorf("segment %d out of range", index)
	}
	ctx.Engine.SelectSegment(index)
	return handler.Success().WithRedraw()
}

func extendTo(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	target, err := ctx.HitTest(action)
	if err != nil {
		return handler.Error(err)
	}

	// The anchor survives across drag steps because the engine keeps it.
	anchor := ctx.Engine.Cursor()
	if ctx.Engine.HasSelection() {
		anchor = ctx.Engine.Selection().Anchor()
	}
	if ctx.Engine.HasSelection() && ctx.Engine.Cursor() == target {
		return handler.NoOp()
	}
	ctx.Engine.Select(anchor, target)
	return handler.Success().WithRedraw()
}
