package engine

import "github.com/dshills/vtext/internal/engine/style"

// ApplyFormat runs m over the format of every selected character. Without
// a selection it changes the typing format instead.
func (e *Engine) ApplyFormat(m style.Mutator) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pushLocked("Format")

	if !e.sel.IsActive() {
		m(&e.format)
		return
	}

	start, end := e.sel.Ordered()
	for s := start.Segment; s <= end.Segment; s++ {
		from, to := 0, e.buf.CharacterCount(s)
		if s == start.Segment {
			from = start.Offset
		}
		if s == end.Segment {
			to = end.Offset
		}
		e.buf.MutateFormat(s, from, to, m)
	}
}

// SetBold sets boldness on the selection or typing format.
func (e *Engine) SetBold(on bool) { e.ApplyFormat(style.Bold(on)) }

// SetItalic sets italics on the selection or typing format.
func (e *Engine) SetItalic(on bool) { e.ApplyFormat(style.Italic(on)) }

// SetUnderline sets underlining on the selection or typing format.
func (e *Engine) SetUnderline(on bool) { e.ApplyFormat(style.Underline(on)) }

// SetOverline sets overlining on the selection or typing format.
func (e *Engine) SetOverline(on bool) { e.ApplyFormat(style.Overline(on)) }

// SetStrikeOut sets strike-out on the selection or typing format.
func (e *Engine) SetStrikeOut(on bool) { e.ApplyFormat(style.StrikeOut(on)) }

// SetFamily sets the font family on the selection or typing format.
func (e *Engine) SetFamily(name string) { e.ApplyFormat(style.Family(name)) }

// SetPointSize sets the point size on the selection or typing format.
func (e *Engine) SetPointSize(size int) { e.ApplyFormat(style.PointSize(size)) }

// SetLetterSpacing sets letter spacing on the selection or typing format.
func (e *Engine) SetLetterSpacing(spacing float64) {
	e.ApplyFormat(style.LetterSpacing(spacing))
}

// SetColor sets the text color on the selection or typing format.
func (e *Engine) SetColor(c style.Color) { e.ApplyFormat(style.Foreground(c)) }

// ToggleBold flips boldness based on the first selected character, or the
// typing format when nothing is selected.
func (e *Engine) ToggleBold() {
	e.SetBold(!e.FormatAtCaret().Bold)
}

// ToggleItalic flips italics like ToggleBold.
func (e *Engine) ToggleItalic() {
	e.SetItalic(!e.FormatAtCaret().Italic)
}

// ToggleUnderline flips underlining like ToggleBold.
func (e *Engine) ToggleUnderline() {
	e.SetUnderline(!e.FormatAtCaret().Underline)
}

// ToggleOverline flips overlining like ToggleBold.
func (e *Engine) ToggleOverline() {
	e.SetOverline(!e.FormatAtCaret().Overline)
}

// ToggleStrikeOut flips strike-out like ToggleBold.
func (e *Engine) ToggleStrikeOut() {
	e.SetStrikeOut(!e.FormatAtCaret().StrikeOut)
}

// FormatAtCaret returns the format governing toggles: the first selected
// character when a selection exists, otherwise the typing format.
func (e *Engine) FormatAtCaret() style.Format {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.sel.IsActive() {
		start, end := e.sel.Ordered()
		if start.Offset < e.buf.CharacterCount(start.Segment) && start != end {
			return e.buf.Char(start.Segment, start.Offset).Format
		}
	}
	return e.format
}
