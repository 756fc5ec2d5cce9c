// Package editor provides handlers for text editing.
package editor

import (
	"github.com/dshills/vtext/internal/dispatcher/execctx"
	"github.com/dshills/vtext/internal/dispatcher/handler"
	"github.com/dshills/vtext/internal/input"
)

// Action names for editing.
const (
	// ActionInsertText types Args.Text in the current typing format,
	// replacing the selection.
	ActionInsertText      = "editor.insertText"
	ActionBackspace       = "editor.backspace"
	ActionDelete          = "editor.delete"
	ActionNewline         = "editor.newline"
	ActionDeleteSelection = "editor.deleteSelection"

	// ActionTab is swallowed. Tab characters are not part of the model.
	ActionTab = "editor.tab"
)

// Handler implements namespace-based editing.
type Handler struct {
	*handler.BaseNamespaceHandler
}

// NewHandler creates a new editor handler.
func NewHandler() *Handler {
	h := &Handler{BaseNamespaceHandler: handler.NewBaseNamespaceHandler("editor")}
	h.Register(ActionInsertText, insertText)
	h.Register(ActionBackspace, edit(func(ctx *execctx.ExecutionContext) { ctx.Engine.Backspace() }))
	h.Register(ActionDelete, edit(func(ctx *execctx.ExecutionContext) { ctx.Engine.Delete() }))
	h.Register(ActionNewline, edit(func(ctx *execctx.ExecutionContext) { ctx.Engine.Enter() }))
	h.Register(ActionDeleteSelection, deleteSelection)
	h.Register(ActionTab, func(input.Action, *execctx.ExecutionContext) handler.Result {
		return handler.NoOp()
	})
	return h
}

// edit wraps an unconditional engine edit.
func edit(fn func(ctx *execctx.ExecutionContext)) handler.ActionFunc {
	return func(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
		fn(ctx)
		return handler.Success().WithRedraw()
	}
}

func insertText(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if action.Args.Text == "" {
		return handler.NoOp()
	}
	ctx.Engine.Type(action.Args.Text)
	return handler.Success().WithRedraw()
}

func deleteSelection(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if !ctx.Engine.HasSelection() {
		return handler.NoOp()
	}
	ctx.Engine.DeleteSelection()
	return handler.Success().WithRedraw()
}
