package engine

import "github.com/dshills/vtext/internal/engine/cursor"

// Move moves the caret and clears the selection. The meaning of the arrow
// motions depends on the flow. Moves past the first or last position of
// the document do nothing.
func (e *Engine) Move(m Motion) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cur = e.targetLocked(m)
	e.sel.Clean()
}

// MoveExtend moves the caret and extends the selection to it. The anchor
// is the caret position when no selection exists yet.
func (e *Engine) MoveExtend(m Motion) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.sel.IsActive() {
		e.sel = cursor.NewSelection(e.cur, e.cur)
	}
	e.cur = e.targetLocked(m)
	e.sel = e.sel.Extend(e.cur)
}

// targetLocked computes where motion m takes the caret.
func (e *Engine) targetLocked(m Motion) cursor.Cursor {
	c := e.cur
	n := e.buf.CharacterCount(c.Segment)
	last := e.buf.SegmentCount() - 1

	switch e.flow.resolve(m) {
	case stepStart:
		c.Offset = 0
	case stepEnd:
		c.Offset = n
	case stepPrevChar:
		if c.Offset > 0 {
			c.Offset--
		} else if c.Segment > 0 {
			c.Segment--
			c.Offset = e.buf.CharacterCount(c.Segment)
		}
	case stepNextChar:
		if c.Offset < n {
			c.Offset++
		} else if c.Segment < last {
			c.Segment++
			c.Offset = 0
		}
	case stepPrevSegment:
		if c.Segment > 0 {
			c.Segment--
			c.Offset = min(c.Offset, e.buf.CharacterCount(c.Segment))
		}
	case stepNextSegment:
		if c.Segment < last {
			c.Segment++
			c.Offset = min(c.Offset, e.buf.CharacterCount(c.Segment))
		}
	}
	return c
}
