package renderer

import (
	"unicode"

	"golang.org/x/text/width"

	"github.com/dshills/vtext/internal/engine/style"
	"github.com/dshills/vtext/internal/renderer/backend"
)

// cellColor converts a document color. Opaque black, the document default,
// becomes the terminal's own foreground so text stays readable on dark
// themes.
func cellColor(c style.Color) backend.Color {
	if c == style.Black {
		return backend.ColorDefault
	}
	return backend.RGB(c.R, c.G, c.B)
}

// cellStyle converts a character format to a terminal style. Terminals have
// no overline, family or size; those are dropped.
func cellStyle(f style.Format) backend.Style {
	s := backend.DefaultStyle()
	s.Foreground = cellColor(f.Color)
	if f.Bold {
		s.Attrs |= backend.AttrBold
	}
	if f.Italic {
		s.Attrs |= backend.AttrItalic
	}
	if f.Underline {
		s.Attrs |= backend.AttrUnderline
	}
	if f.StrikeOut {
		s.Attrs |= backend.AttrStrikeThrough
	}
	return s
}

// displayRune returns the rune drawn for r. Control characters are blank.
// In vertical flow narrow characters are widened when a full-width form
// exists.
func displayRune(r rune, vertical bool) rune {
	if unicode.IsControl(r) {
		return ' '
	}
	if vertical && style.IsNarrow(r) {
		if w := width.LookupRune(r).Wide(); w != 0 {
			return w
		}
	}
	return r
}

// selectionStyle returns the style of a selected cell: the selection color
// behind, black or white text in front, whichever contrasts more.
func selectionStyle(base backend.Style, bg style.Color) backend.Style {
	base.Background = backend.RGB(bg.R, bg.G, bg.B)
	if bg.Luminance() > 0.5 {
		base.Foreground = backend.RGB(0, 0, 0)
	} else {
		base.Foreground = backend.RGB(255, 255, 255)
	}
	return base
}
