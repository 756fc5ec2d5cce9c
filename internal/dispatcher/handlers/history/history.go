// Package history provides handlers for undo and redo.
package history

import (
	"github.com/dshills/vtext/internal/dispatcher/execctx"
	"github.com/dshills/vtext/internal/dispatcher/handler"
	"github.com/dshills/vtext/internal/input"
)

// Action names for history.
const (
	ActionUndo = "history.undo"

	// ActionRedo is accepted but does nothing; only undo is supported.
	ActionRedo = "history.redo"
)

// Handler implements namespace-based history handling.
type Handler struct {
	*handler.BaseNamespaceHandler
}

// NewHandler creates a new history handler.
func NewHandler() *Handler {
	h := &Handler{BaseNamespaceHandler: handler.NewBaseNamespaceHandler("history")}
	h.Register(ActionUndo, undo)
	h.Register(ActionRedo, redo)
	return h
}

func undo(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if !ctx.Engine.Undo() {
		return handler.NoOpWithMessage("nothing to undo")
	}
	return handler.Success().WithRedraw()
}

func redo(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
	ctx.Engine.Redo()
	return handler.NoOp()
}
