// Package style defines the per-character formatting model of the editor.
//
// Every character in a buffer carries its own Format value inline:
//
//	c := style.Char{Rune: 'A', Format: style.DefaultFormat()}
//	c.Format.Bold = true
//
// Formats are plain values. Copying a Char copies its formatting, so
// mutating one character never affects another.
//
// # Narrow and Wide Characters
//
// The layout layer measures characters differently depending on their
// class. Code points below 128 are narrow and advance by their glyph
// width; all others are wide and advance by the font's line height.
// IsNarrow and IsWide expose that classification.
package style
