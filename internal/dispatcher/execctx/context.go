// Package execctx provides the execution context for action handlers.
package execctx

import (
	"github.com/dshills/vtext/internal/clipboard"
	"github.com/dshills/vtext/internal/engine"
	"github.com/dshills/vtext/internal/engine/cursor"
	"github.com/dshills/vtext/internal/engine/style"
	"github.com/dshills/vtext/internal/input"
)

// EngineInterface abstracts the editing engine for handlers.
// *engine.Engine satisfies it.
type EngineInterface interface {
	// Read operations
	Text() string
	SegmentCount() int
	CharacterCount(segment int) int
	Flow() engine.Flow
	CurrentFormat() style.Format
	FormatAtCaret() style.Format

	// Cursor and selection
	Cursor() cursor.Cursor
	SetCursor(segment, offset int)
	Selection() cursor.Selection
	HasSelection() bool
	Select(anchor, active cursor.Cursor)
	SelectAll()
	SelectSegment(i int)
	ClearSelection()
	Move(m engine.Motion)
	MoveExtend(m engine.Motion)

	// Editing
	Type(text string)
	Paste(text string)
	Backspace()
	Delete()
	Enter()
	DeleteSelection()
	Copy() string
	Cut() string

	// Formatting
	ApplyFormat(m style.Mutator)
	ToggleBold()
	ToggleItalic()
	ToggleUnderline()
	ToggleOverline()
	ToggleStrikeOut()
	SetFlow(flow engine.Flow)

	// History
	Undo() bool
	Redo() bool
	CanUndo() bool
	BeginGroup(name string)
	EndGroup()
}

// ViewInterface abstracts the renderer for handlers.
type ViewInterface interface {
	// HitTest maps a screen cell to a caret position.
	HitTest(x, y int) (cursor.Cursor, bool)

	// Segment spacing in screen cells
	SegmentSpacing() int
	SetSegmentSpacing(cells int)
}

// ExecutionContext provides context for action execution.
// It contains references to the editor subsystems needed by handlers.
type ExecutionContext struct {
	// Engine provides access to the document.
	Engine EngineInterface

	// Clipboard stores and fetches copied text.
	Clipboard clipboard.Clipboard

	// View provides hit testing and view settings.
	View ViewInterface

	// Source is where the action came from.
	Source input.ActionSource

	// Data holds handler-specific context data.
	Data map[string]any
}

// New creates a new execution context.
func New() *ExecutionContext {
	return &ExecutionContext{
		Data: make(map[string]any),
	}
}

// WithEngine returns the context with the engine set.
func (ctx *ExecutionContext) WithEngine(e EngineInterface) *ExecutionContext {
	ctx.Engine = e
	return ctx
}

// WithClipboard returns the context with the clipboard set.
func (ctx *ExecutionContext) WithClipboard(cb clipboard.Clipboard) *ExecutionContext {
	ctx.Clipboard = cb
	return ctx
}

// WithView returns the context with the view set.
func (ctx *ExecutionContext) WithView(v ViewInterface) *ExecutionContext {
	ctx.View = v
	return ctx
}

// HasSelection returns true if there is an active selection.
func (ctx *ExecutionContext) HasSelection() bool {
	return ctx.Engine != nil && ctx.Engine.HasSelection()
}

// HitTest resolves the screen position carried by action. It fails with
// ErrMissingPosition when the action has no coordinates and ErrMissingView
// when no view is attached.
func (ctx *ExecutionContext) HitTest(action input.Action) (cursor.Cursor, error) {
	x, y, ok := action.Position()
	if !ok {
		return cursor.Cursor{}, ErrMissingPosition
	}
	if ctx.View == nil {
		return cursor.Cursor{}, ErrMissingView
	}
	c, ok := ctx.View.HitTest(x, y)
	if !ok {
		return cursor.Cursor{}, ErrNoLayout
	}
	return c, nil
}

// SetData sets a context data value.
func (ctx *ExecutionContext) SetData(key string, value any) {
	if ctx.Data == nil {
		ctx.Data = make(map[string]any)
	}
	ctx.Data[key] = value
}

// GetData retrieves a context data value.
func (ctx *ExecutionContext) GetData(key string) (any, bool) {
	if ctx.Data == nil {
		return nil, false
	}
	v, ok := ctx.Data[key]
	return v, ok
}

// Validate checks that the context has the subsystems every handler needs.
func (ctx *ExecutionContext) Validate() error {
	if ctx.Engine == nil {
		return ErrMissingEngine
	}
	return nil
}
