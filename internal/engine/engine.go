package engine

import (
	"fmt"
	"sync"

	"github.com/dshills/vtext/internal/engine/buffer"
	"github.com/dshills/vtext/internal/engine/cursor"
	"github.com/dshills/vtext/internal/engine/history"
	"github.com/dshills/vtext/internal/engine/style"
)

// Re-export commonly used types for convenience.
type (
	// Segment is one column or row of styled characters.
	Segment = buffer.Segment

	// Cursor is a (segment, offset) caret position.
	Cursor = cursor.Cursor

	// Selection is an anchor/active selection.
	Selection = cursor.Selection

	// Format holds per-character formatting.
	Format = style.Format
)

// Engine is the main facade for the editing core.
// It keeps the buffer, cursor, selection, typing format and undo history
// consistent across every edit.
//
// All operations are thread-safe and can be called from multiple goroutines.
type Engine struct {
	mu sync.RWMutex

	// Core components
	buf     *buffer.Buffer
	cur     cursor.Cursor
	sel     cursor.Selection
	format  style.Format
	history *history.History

	// Configuration
	flow           Flow
	maxUndoEntries int

	// Initialization
	initContent  string
	initSegments []buffer.Segment
}

// State is a consistent copy of everything needed to draw the editor.
type State struct {
	Segments  []buffer.Segment
	Cursor    cursor.Cursor
	Selection cursor.Selection
	Format    style.Format
	Flow      Flow
	Revision  buffer.RevisionID
}

// New creates a new Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		format:         style.DefaultFormat(),
		flow:           Vertical,
		maxUndoEntries: DefaultMaxUndoEntries,
	}

	for _, opt := range opts {
		opt(e)
	}

	switch {
	case e.initSegments != nil:
		e.buf = buffer.NewFromSegments(e.initSegments)
	case e.initContent != "":
		e.buf = buffer.NewFromText(e.initContent, e.format)
	default:
		e.buf = buffer.New()
	}
	e.initSegments = nil
	e.initContent = ""

	e.history = history.New(e.maxUndoEntries)

	return e
}

// ============================================================================
// Read Operations
// ============================================================================

// Text returns the document as plain text, segments joined by "\n".
func (e *Engine) Text() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.Text()
}

// Len returns the total number of characters.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.Len()
}

// SegmentCount returns the number of segments.
func (e *Engine) SegmentCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.SegmentCount()
}

// Segment returns a copy of segment i.
func (e *Engine) Segment(i int) buffer.Segment {
	e.mu.RLock()
	defer e.mu.RUnlock()
	e.checkSegment(i)
	return e.buf.Segment(i)
}

// CharacterCount returns the length of segment i.
func (e *Engine) CharacterCount(i int) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	e.checkSegment(i)
	return e.buf.CharacterCount(i)
}

// Segments returns copies of all segments.
func (e *Engine) Segments() []buffer.Segment {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.Segments()
}

// RevisionID returns the buffer revision.
func (e *Engine) RevisionID() buffer.RevisionID {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.RevisionID()
}

// State returns a consistent copy of the drawable state.
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return State{
		Segments:  e.buf.Segments(),
		Cursor:    e.cur,
		Selection: e.sel,
		Format:    e.format,
		Flow:      e.flow,
		Revision:  e.buf.RevisionID(),
	}
}

// ============================================================================
// Content Replacement
// ============================================================================

// SetText replaces the document with one segment per line of text in the
// typing format. The caret moves to the end of the last segment, the
// selection is cleared and undo history is discarded.
func (e *Engine) SetText(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.buf.SetText(text, e.format)
	e.resetAfterLoadLocked()
}

// SetSegments replaces the document with copies of segs, with the same
// caret, selection and history rules as SetText.
func (e *Engine) SetSegments(segs []buffer.Segment) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.buf.SetSegments(segs)
	e.resetAfterLoadLocked()
}

func (e *Engine) resetAfterLoadLocked() {
	last := e.buf.SegmentCount() - 1
	e.cur = cursor.New(last, e.buf.CharacterCount(last))
	e.sel.Clean()
	e.history.Clear()
}

// ============================================================================
// Cursor and Selection
// ============================================================================

// Cursor returns the caret position.
func (e *Engine) Cursor() cursor.Cursor {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cur
}

// SetCursor places the caret and clears the selection.
// Panics if the position is outside the document.
func (e *Engine) SetCursor(segment, offset int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.checkPosition(segment, offset)
	e.cur = cursor.New(segment, offset)
	e.sel.Clean()
}

// Selection returns the current selection.
func (e *Engine) Selection() cursor.Selection {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.sel
}

// HasSelection reports whether a non-empty selection exists.
func (e *Engine) HasSelection() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.sel.IsActive()
}

// Select sets the selection from anchor to active and moves the caret to
// the active end. Panics if either end is outside the document.
func (e *Engine) Select(anchor, active cursor.Cursor) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.checkPosition(anchor.Segment, anchor.Offset)
	e.checkPosition(active.Segment, active.Offset)
	e.sel = cursor.NewSelection(anchor, active)
	e.cur = active
}

// SelectAll selects the whole document and moves the caret to its end.
func (e *Engine) SelectAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	last := e.buf.SegmentCount() - 1
	end := cursor.New(last, e.buf.CharacterCount(last))
	e.sel = cursor.NewSelection(cursor.Cursor{}, end)
	e.cur = end
}

// SelectSegment selects all of segment i. An empty segment only receives
// the caret.
func (e *Engine) SelectSegment(i int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.checkSegment(i)
	n := e.buf.CharacterCount(i)
	e.sel.Clean()
	if n == 0 {
		e.cur = cursor.New(i, 0)
		return
	}
	e.sel = cursor.NewSelection(cursor.New(i, 0), cursor.New(i, n))
	e.cur = cursor.New(i, n)
}

// ClearSelection removes the selection without moving the caret.
func (e *Engine) ClearSelection() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sel.Clean()
}

// ============================================================================
// Configuration
// ============================================================================

// Flow returns the layout direction.
func (e *Engine) Flow() Flow {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.flow
}

// SetFlow changes the layout direction. Content and positions are kept.
func (e *Engine) SetFlow(flow Flow) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.flow = flow
}

// CurrentFormat returns the typing format.
func (e *Engine) CurrentFormat() style.Format {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.format
}

// SetCurrentFormat replaces the typing format.
func (e *Engine) SetCurrentFormat(f style.Format) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.format = f
}

// ============================================================================
// Undo
// ============================================================================

// Undo restores the most recent snapshot. It returns false when there is
// nothing to undo.
func (e *Engine) Undo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap, err := e.history.Undo()
	if err != nil {
		return false
	}
	e.buf.Restore(snap.Buffer)
	e.cur = snap.Cursor
	e.sel.Clean()
	return true
}

// Redo does nothing and returns false. Only undo is supported.
func (e *Engine) Redo() bool {
	return e.history.Redo()
}

// CanUndo returns true if undo is available.
func (e *Engine) CanUndo() bool {
	return e.history.CanUndo()
}

// UndoCount returns the number of undo steps available.
func (e *Engine) UndoCount() int {
	return e.history.UndoCount()
}

// BeginGroup starts collapsing edits into one undo step.
func (e *Engine) BeginGroup(name string) {
	e.history.BeginGroup(name)
}

// EndGroup finishes an undo group.
func (e *Engine) EndGroup() {
	e.history.EndGroup()
}

// Checkpoint is a saved copy of the whole editor state, including the
// undo stack. It is used to abandon a batch of edits without a trace.
type Checkpoint struct {
	buf     *buffer.Snapshot
	cur     cursor.Cursor
	sel     cursor.Selection
	format  style.Format
	flow    Flow
	entries []*history.Snapshot
}

// Checkpoint saves the current state.
func (e *Engine) Checkpoint() *Checkpoint {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return &Checkpoint{
		buf:     e.buf.Snapshot(),
		cur:     e.cur,
		sel:     e.sel,
		format:  e.format,
		flow:    e.flow,
		entries: e.history.Entries(),
	}
}

// Rollback returns to cp. The document, caret, selection, typing format,
// flow and undo stack all match the moment cp was taken, and the revision
// is the one cp was taken at.
func (e *Engine) Rollback(cp *Checkpoint) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.buf.Restore(cp.buf)
	e.cur = cp.cur
	e.sel = cp.sel
	e.format = cp.format
	e.flow = cp.flow
	e.history.ReplaceEntries(cp.entries)
}

// pushLocked records the pre-mutation state. Callers must hold the write lock.
func (e *Engine) pushLocked(description string) {
	e.history.Push(history.NewSnapshot(description, e.buf.Snapshot(), e.cur))
}

// ============================================================================
// Validation
// ============================================================================

// checkSegment panics when i is not a segment index.
func (e *Engine) checkSegment(i int) {
	if n := e.buf.SegmentCount(); i < 0 || i >= n {
		panic(fmt.Errorf("%w: segment %d of %d", ErrOutOfRange, i, n))
	}
}

// checkPosition panics when (segment, offset) is not a caret position.
func (e *Engine) checkPosition(segment, offset int) {
	e.checkSegment(segment)
	if n := e.buf.CharacterCount(segment); offset < 0 || offset > n {
		panic(fmt.Errorf("%w: offset %d in segment %d of length %d", ErrOutOfRange, offset, segment, n))
	}
}
