package measure

import (
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/vtext/internal/engine"
	"github.com/dshills/vtext/internal/engine/style"
	"github.com/dshills/vtext/internal/renderer/layout"
)

// Grid measures characters on a terminal grid.
//
// Terminal cells are about twice as tall as they are wide, so a square
// layout cell is two columns by one row. In vertical flow one layout unit is
// one row along the column and two terminal columns across it; every
// character is drawn full width and takes one row. In horizontal flow one
// layout unit is one terminal column along the row and half a row across
// it, so every row is exactly one terminal row tall.
type Grid struct {
	Flow engine.Flow
}

// NewGrid creates a grid measurer for flow.
func NewGrid(flow engine.Flow) Grid {
	return Grid{Flow: flow}
}

// Measure implements layout.Measurer.
func (g Grid) Measure(c style.Char) layout.GlyphMetrics {
	if g.Flow == engine.Vertical {
		return layout.GlyphMetrics{Advance: 1, LineHeight: 1, Ascent: 1}
	}
	w := runewidth.RuneWidth(c.Rune)
	if w < 1 {
		w = 1
	}
	return layout.GlyphMetrics{Advance: float64(w), LineHeight: 2, Ascent: 2}
}

// Scale returns terminal cells per layout unit on each axis.
func (g Grid) Scale() (sx, sy float64) {
	if g.Flow == engine.Vertical {
		return 2, 1
	}
	return 1, 0.5
}

// DefaultCellSize returns the band thickness of an empty segment.
func (g Grid) DefaultCellSize() float64 {
	if g.Flow == engine.Vertical {
		return 1
	}
	return 2
}

// ToCells converts a layout point to the terminal cell containing it.
func (g Grid) ToCells(p layout.Point) (x, y int) {
	sx, sy := g.Scale()
	return int(math.Floor(p.X * sx)), int(math.Floor(p.Y * sy))
}

// FromCells converts a terminal cell to the layout point at its center.
func (g Grid) FromCells(x, y int) layout.Point {
	sx, sy := g.Scale()
	return layout.Point{X: (float64(x) + 0.5) / sx, Y: (float64(y) + 0.5) / sy}
}
