// Package clipboard provides handlers for copy, cut and paste.
//
// Only plain text crosses the clipboard. Pasted text takes the current
// typing format.
package clipboard

import (
	"github.com/dshills/vtext/internal/dispatcher/execctx"
	"github.com/dshills/vtext/internal/dispatcher/handler"
	"github.com/dshills/vtext/internal/input"
)

// Action names for clipboard operations.
const (
	ActionCopy = "clipboard.copy"
	ActionCut  = "clipboard.cut"

	// ActionPaste inserts the clipboard text. With x,y arguments the caret
	// first moves to that cell.
	ActionPaste = "clipboard.paste"
)

// Handler implements namespace-based clipboard handling.
type Handler struct {
	*handler.BaseNamespaceHandler
}

// NewHandler creates a new clipboard handler.
func NewHandler() *Handler {
	h := &Handler{BaseNamespaceHandler: handler.NewBaseNamespaceHandler("clipboard")}
	h.Register(ActionCopy, copyText)
	h.Register(ActionCut, cutText)
	h.Register(ActionPaste, pasteText)
	return h
}

func copyText(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if ctx.Clipboard == nil {
		return handler.Error(execctx.ErrMissingClipboard)
	}
	if !ctx.Engine.HasSelection() {
		return handler.NoOp()
	}
	if err := ctx.Clipboard.Store(ctx.Engine.Copy()); err != nil {
		return handler.Error(err)
	}
	return handler.Success()
}

func cutText(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if ctx.Clipboard == nil {
		return handler.Error(execctx.ErrMissingClipboard)
	}
	if !ctx.Engine.HasSelection() {
		return handler.NoOp()
	}
	// Store before deleting so a clipboard failure loses nothing.
	if err := ctx.Clipboard.Store(ctx.Engine.Copy()); err != nil {
		return handler.Error(err)
	}
	ctx.Engine.DeleteSelection()
	return handler.Success().WithRedraw()
}

func pasteText(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if ctx.Clipboard == nil {
		return handler.Error(execctx.ErrMissingClipboard)
	}
	text, err := ctx.Clipboard.Fetch()
	if err != nil {
		return handler.Error(err)
	}
	if text == "" {
		return handler.NoOp()
	}

	if _, _, ok := action.Position(); ok {
		c, err := ctx.HitTest(action)
		if err != nil {
			return handler.Error(err)
		}
		ctx.Engine.SetCursor(c.Segment, c.Offset)
	}
	ctx.Engine.Paste(text)
	return handler.Success().WithRedraw()
}
