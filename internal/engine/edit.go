package engine

import (
	"strings"

	"github.com/dshills/vtext/internal/engine/buffer"
	"github.com/dshills/vtext/internal/engine/cursor"
	"github.com/dshills/vtext/internal/engine/style"
)

// Every mutating operation pushes exactly one snapshot before touching the
// buffer, including operations that end up changing nothing.

// InsertText inserts text at the caret with format f, replacing any
// selection. Newlines split the text into new segments; the caret ends
// after the last inserted character.
func (e *Engine) InsertText(text string, f style.Format) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pushLocked("Insert")
	e.insertLocked(text, f)
}

// Type inserts text in the typing format.
func (e *Engine) Type(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pushLocked("Type")
	e.insertLocked(text, e.format)
}

// Paste inserts clipboard text in the typing format.
func (e *Engine) Paste(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pushLocked("Paste")
	e.insertLocked(text, e.format)
}

// Backspace deletes the selection, or the character before the caret.
// At the start of a segment the segment is joined onto the previous one.
func (e *Engine) Backspace() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pushLocked("Backspace")

	if e.sel.IsActive() {
		e.deleteSelectionLocked()
		return
	}

	s, off := e.cur.Segment, e.cur.Offset
	switch {
	case s == 0 && off == 0:
		return
	case off == 0:
		prev := e.buf.Segment(s - 1)
		e.buf.ReplaceSegment(s-1, prev.Concat(e.buf.Segment(s)))
		e.buf.RemoveSegment(s)
		e.cur = cursor.New(s-1, prev.Len())
	default:
		e.buf.ReplaceSegment(s, e.buf.Segment(s).Delete(off-1, off))
		e.cur.Offset--
	}
}

// Delete deletes the selection, or the character after the caret.
// At the end of a segment the next segment is joined onto this one.
func (e *Engine) Delete() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pushLocked("Delete")

	if e.sel.IsActive() {
		e.deleteSelectionLocked()
		return
	}

	s, off := e.cur.Segment, e.cur.Offset
	seg := e.buf.Segment(s)
	switch {
	case off < seg.Len():
		e.buf.ReplaceSegment(s, seg.Delete(off, off+1))
	case s < e.buf.SegmentCount()-1:
		e.buf.ReplaceSegment(s, seg.Concat(e.buf.Segment(s+1)))
		e.buf.RemoveSegment(s + 1)
	}
}

// Enter deletes any selection and splits the current segment at the caret.
// The caret moves to the start of the new segment.
func (e *Engine) Enter() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pushLocked("Enter")

	e.deleteSelectionLocked()
	s := e.cur.Segment
	left, right := e.buf.Segment(s).Split(e.cur.Offset)
	e.buf.ReplaceSegment(s, left)
	e.buf.InsertSegment(s+1, right)
	e.cur = cursor.New(s+1, 0)
}

// DeleteSelection removes the selected characters, joining the remainder
// of the first and last selected segments. The caret moves to the start of
// the removed range. Without a selection nothing changes.
func (e *Engine) DeleteSelection() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pushLocked("Delete Selection")
	e.deleteSelectionLocked()
}

// SelectedText returns the selected text, or "" without a selection.
func (e *Engine) SelectedText() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if !e.sel.IsActive() {
		return ""
	}
	return e.extractLocked(e.sel)
}

// ExtractText returns the text covered by sel. Segments are separated by
// "\n". Panics if sel reaches outside the document.
func (e *Engine) ExtractText(sel cursor.Selection) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	e.checkPosition(sel.AnchorSegment, sel.AnchorOffset)
	e.checkPosition(sel.ActiveSegment, sel.ActiveOffset)
	return e.extractLocked(sel)
}

// Copy returns the selected text without changing the document.
func (e *Engine) Copy() string {
	return e.SelectedText()
}

// Cut returns the selected text and deletes it.
func (e *Engine) Cut() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pushLocked("Cut")
	if !e.sel.IsActive() {
		return ""
	}
	text := e.extractLocked(e.sel)
	e.deleteSelectionLocked()
	return text
}

// insertLocked splices text at the caret. Callers must hold the write lock.
func (e *Engine) insertLocked(text string, f style.Format) {
	e.deleteSelectionLocked()

	lines := buffer.SplitLines(text)
	s, off := e.cur.Segment, e.cur.Offset
	seg := e.buf.Segment(s)

	if len(lines) == 1 {
		chars := style.NewChars(lines[0], f)
		e.buf.ReplaceSegment(s, seg.Insert(off, chars))
		e.cur.Offset += len(chars)
		return
	}

	left, right := seg.Split(off)
	e.buf.ReplaceSegment(s, left.Concat(buffer.NewSegment(lines[0], f)))
	for i := 1; i < len(lines)-1; i++ {
		e.buf.InsertSegment(s+i, buffer.NewSegment(lines[i], f))
	}
	last := buffer.NewSegment(lines[len(lines)-1], f)
	e.buf.InsertSegment(s+len(lines)-1, last.Concat(right))
	e.cur = cursor.New(s+len(lines)-1, last.Len())
}

// deleteSelectionLocked removes the selected range. Callers must hold the
// write lock.
func (e *Engine) deleteSelectionLocked() {
	if !e.sel.IsActive() {
		return
	}
	start, end := e.sel.Ordered()
	e.sel.Clean()

	first := e.buf.Segment(start.Segment)
	if start.Segment == end.Segment {
		e.buf.ReplaceSegment(start.Segment, first.Delete(start.Offset, end.Offset))
	} else {
		last := e.buf.Segment(end.Segment)
		joined := first[:start.Offset].Concat(last[end.Offset:])
		e.buf.ReplaceSegment(start.Segment, joined)
		e.buf.RemoveSegments(start.Segment+1, end.Segment+1)
	}
	e.cur = start
}

// extractLocked returns the text covered by sel. Callers must hold a lock.
func (e *Engine) extractLocked(sel cursor.Selection) string {
	start, end := sel.Ordered()
	first := e.buf.Segment(start.Segment)
	if start.Segment == end.Segment {
		return first.Slice(start.Offset, end.Offset).Text()
	}

	var sb strings.Builder
	sb.WriteString(first[start.Offset:].Text())
	sb.WriteByte('\n')
	for i := start.Segment + 1; i < end.Segment; i++ {
		sb.WriteString(e.buf.Segment(i).Text())
		sb.WriteByte('\n')
	}
	sb.WriteString(e.buf.Segment(end.Segment)[:end.Offset].Text())
	return sb.String()
}
