package backend

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Attr is a set of text attributes.
type Attr uint16

// Text attribute flags.
const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrReverse
	AttrStrikeThrough
)

// Has reports whether a contains attr.
func (a Attr) Has(attr Attr) bool {
	return a&attr != 0
}

// Color is a true color or the terminal default.
type Color struct {
	R, G, B uint8
	// Default selects the terminal's own color; R, G and B are ignored.
	Default bool
}

// ColorDefault is the terminal's default color.
var ColorDefault = Color{Default: true}

// RGB creates a true color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// String returns "default" or "#rrggbb".
func (c Color) String() string {
	if c.Default {
		return "default"
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Style is the visual style of a cell.
type Style struct {
	Foreground Color
	Background Color
	Attrs      Attr
}

// DefaultStyle returns the terminal default style.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// Cell is one terminal cell. A wide rune covers its own cell and the next;
// the covered cell is left untouched by drawing.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a blank cell in the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Style: DefaultStyle()}
}

// NewCell creates a cell with style s.
func NewCell(r rune, s Style) Cell {
	return Cell{Rune: r, Style: s}
}

// Width returns the number of columns the cell's rune covers.
func (c Cell) Width() int {
	if w := runewidth.RuneWidth(c.Rune); w > 1 {
		return w
	}
	return 1
}
