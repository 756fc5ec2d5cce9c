// Package cursor provides handlers for caret movement.
//
// Arrow motions are interpreted by the engine according to the document
// flow. The select variants extend the selection instead of clearing it.
package cursor

import (
	"github.com/dshills/vtext/internal/dispatcher/execctx"
	"github.com/dshills/vtext/internal/dispatcher/handler"
	"github.com/dshills/vtext/internal/engine"
	"github.com/dshills/vtext/internal/input"
)

// Action names for caret movement.
const (
	ActionMoveLeft    = "cursor.moveLeft"
	ActionMoveRight   = "cursor.moveRight"
	ActionMoveUp      = "cursor.moveUp"
	ActionMoveDown    = "cursor.moveDown"
	ActionMoveHome    = "cursor.moveHome"
	ActionMoveEnd     = "cursor.moveEnd"
	ActionSelectLeft  = "cursor.selectLeft"
	ActionSelectRight = "cursor.selectRight"
	ActionSelectUp    = "cursor.selectUp"
	ActionSelectDown  = "cursor.selectDown"
	ActionSelectHome  = "cursor.selectHome"
	ActionSelectEnd   = "cursor.selectEnd"

	// ActionSetPosition places the caret. Args: x and y screen cells, or
	// segment and offset.
	ActionSetPosition = "cursor.setPosition"
)

// Handler implements namespace-based caret handling.
type Handler struct {
	*handler.BaseNamespaceHandler
}

// NewHandler creates a new cursor handler.
func NewHandler() *Handler {
	h := &Handler{BaseNamespaceHandler: handler.NewBaseNamespaceHandler("cursor")}

	moves := map[string]engine.Motion{
		ActionMoveLeft:  engine.MoveLeft,
		ActionMoveRight: engine.MoveRight,
		ActionMoveUp:    engine.MoveUp,
		ActionMoveDown:  engine.MoveDown,
		ActionMoveHome:  engine.MoveHome,
		ActionMoveEnd:   engine.MoveEnd,
	}
	for name, m := range moves {
		h.Register(name, move(m, false))
	}

	extends := map[string]engine.Motion{
		ActionSelectLeft:  engine.MoveLeft,
		ActionSelectRight: engine.MoveRight,
		ActionSelectUp:    engine.MoveUp,
		ActionSelectDown:  engine.MoveDown,
		ActionSelectHome:  engine.MoveHome,
		ActionSelectEnd:   engine.MoveEnd,
	}
	for name, m := range extends {
		h.Register(name, move(m, true))
	}

	h.Register(ActionSetPosition, setPosition)
	return h
}

// move returns an action that applies motion m.
func move(m engine.Motion, extend bool) handler.ActionFunc {
	return func(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
		before, hadSel := ctx.Engine.Cursor(), ctx.Engine.HasSelection()
		if extend {
			ctx.Engine.MoveExtend(m)
		} else {
			ctx.Engine.Move(m)
		}
		if ctx.Engine.Cursor() == before && hadSel == ctx.Engine.HasSelection() {
			return handler.NoOp()
		}
		return handler.Success().WithRedraw()
	}
}

// setPosition places the caret at a screen cell or an explicit position
// and clears the selection.
func setPosition(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if seg, ok := action.Args.LookupInt("segment"); ok {
		off := action.Args.GetInt("offset")
		if seg < 0 || seg >= ctx.Engine.SegmentCount() || off < 0 || off > ctx.Engine.CharacterCount(seg) {
			return handler.Errorf("position %d:%d out of range", seg, off)
		}
		ctx.Engine.SetCursor(seg, off)
		return handler.Success().WithRedraw()
	}

	c, err := ctx.HitTest(action)
	if err != nil {
		return handler.Error(err)
	}
	ctx.Engine.SetCursor(c.Segment, c.Offset)
	return handler.Success().WithRedraw()
}
