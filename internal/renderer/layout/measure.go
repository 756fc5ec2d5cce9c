package layout

import (
	"github.com/dshills/vtext/internal/engine/buffer"
	"github.com/dshills/vtext/internal/engine/style"
)

// GlyphMetrics describes a measured character.
type GlyphMetrics struct {
	Advance    float64
	LineHeight float64
	Ascent     float64
	Descent    float64
}

// Measurer reports glyph metrics for a styled character.
type Measurer interface {
	Measure(c style.Char) GlyphMetrics
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(c style.Char) GlyphMetrics

// Measure calls f(c).
func (f MeasurerFunc) Measure(c style.Char) GlyphMetrics {
	return f(c)
}

// FlowExtent returns how far a character advances along the flow axis.
func FlowExtent(c style.Char, gm GlyphMetrics) float64 {
	base := gm.LineHeight
	if c.IsNarrow() {
		base = gm.Advance
	}
	return base + c.Format.LetterSpacing
}

// CellExtent returns how much cross-axis room a character needs.
func CellExtent(gm GlyphMetrics) float64 {
	return max(gm.Advance, gm.LineHeight)
}

// SegmentLayout holds the measured geometry of one segment.
type SegmentLayout struct {
	// Offsets[j] is the flow distance from the segment start to the gap
	// before character j. len(Offsets) == segment length + 1.
	Offsets []float64

	// Metrics holds the raw metrics of every character.
	Metrics []GlyphMetrics

	// CellSize is the band thickness; zero for an empty segment.
	CellSize float64

	HasWide bool
}

// Extent returns the total flow length of the segment.
func (l *SegmentLayout) Extent() float64 {
	return l.Offsets[len(l.Offsets)-1]
}

// Len returns the number of characters.
func (l *SegmentLayout) Len() int {
	return len(l.Offsets) - 1
}

// OffsetAt returns the index of the first character whose end lies beyond
// d, zero for d before the segment and Len for d past its end.
func (l *SegmentLayout) OffsetAt(d float64) int {
	if d < 0 {
		return 0
	}
	for j := 0; j < l.Len(); j++ {
		if l.Offsets[j+1] > d {
			return j
		}
	}
	return l.Len()
}

// MeasureSegment measures seg with m.
func MeasureSegment(seg buffer.Segment, m Measurer) *SegmentLayout {
	l := &SegmentLayout{
		Offsets: make([]float64, len(seg)+1),
		Metrics: make([]GlyphMetrics, len(seg)),
	}
	var d float64
	for j, c := range seg {
		gm := m.Measure(c)
		l.Metrics[j] = gm
		d += FlowExtent(c, gm)
		l.Offsets[j+1] = d
		l.CellSize = max(l.CellSize, CellExtent(gm))
		if !c.IsNarrow() {
			l.HasWide = true
		}
	}
	return l
}
