package layout

import (
	"fmt"

	"github.com/dshills/vtext/internal/engine"
	"github.com/dshills/vtext/internal/engine/buffer"
	"github.com/dshills/vtext/internal/engine/cursor"
	"github.com/dshills/vtext/internal/engine/style"
)

// Frame is the computed geometry of a document.
type Frame struct {
	cfg      Config
	segments []buffer.Segment
	layouts  []*SegmentLayout

	cells     []float64 // band thickness per segment
	positions []float64 // far edge of each band from the stacking origin
	starts    []float64 // flow coordinate where each segment begins

	crossTotal float64
	flowExtent float64
}

// Glyph is a positioned character.
type Glyph struct {
	Index int
	Char  style.Char
	Box   Rect

	// Upright is false for narrow characters in vertical flow, which are
	// drawn rotated along the column.
	Upright bool
}

func newFrame(segs []buffer.Segment, layouts []*SegmentLayout, cfg Config) *Frame {
	f := &Frame{
		cfg:       cfg,
		segments:  segs,
		layouts:   layouts,
		cells:     make([]float64, len(segs)),
		positions: make([]float64, len(segs)),
		starts:    make([]float64, len(segs)),
	}

	var pos float64
	for i, l := range layouts {
		cell := l.CellSize
		if l.Len() == 0 || cell <= 0 {
			cell = cfg.DefaultCellSize
		}
		f.cells[i] = cell
		if i > 0 {
			pos += cfg.SegmentSpacing
		}
		pos += cell
		f.positions[i] = pos
		f.flowExtent = max(f.flowExtent, l.Extent())
	}
	f.crossTotal = pos
	f.flowExtent = max(f.flowExtent, cfg.MinExtent)

	for i, l := range layouts {
		slack := f.flowExtent - l.Extent()
		start := cfg.Padding
		switch cfg.Alignment {
		case AlignCenter:
			start += slack / 2
		case AlignEnd:
			start += slack
		}
		f.starts[i] = start
	}
	return f
}

// Flow returns the flow the frame was laid out for.
func (f *Frame) Flow() engine.Flow {
	return f.cfg.Flow
}

// SegmentCount returns the number of laid-out segments.
func (f *Frame) SegmentCount() int {
	return len(f.layouts)
}

// Segment returns the segment a band was computed from.
func (f *Frame) Segment(i int) buffer.Segment {
	f.check(i)
	return f.segments[i]
}

// CellSize returns the band thickness of segment i.
func (f *Frame) CellSize(i int) float64 {
	f.check(i)
	return f.cells[i]
}

// Position returns the cumulative cell size of segments 0..i plus i
// segment spacings.
func (f *Frame) Position(i int) float64 {
	f.check(i)
	return f.positions[i]
}

// SegmentExtent returns the flow length of segment i.
func (f *Frame) SegmentExtent(i int) float64 {
	f.check(i)
	return f.layouts[i].Extent()
}

// FlowExtent returns the flow length of the frame's content area.
func (f *Frame) FlowExtent() float64 {
	return f.flowExtent
}

// Bounds returns the frame size including padding.
func (f *Frame) Bounds() Rect {
	p := f.cfg.Padding
	if f.cfg.Flow == engine.Vertical {
		return Rect{Width: f.crossTotal + 2*p, Height: f.flowExtent + 2*p}
	}
	return Rect{Width: f.flowExtent + 2*p, Height: f.crossTotal + 2*p}
}

// band returns the cross-axis interval [lo, hi) of segment i in frame
// coordinates.
func (f *Frame) band(i int) (lo, hi float64) {
	p := f.cfg.Padding
	if f.cfg.Flow == engine.Vertical {
		lo = p + f.crossTotal - f.positions[i]
		return lo, lo + f.cells[i]
	}
	hi = p + f.positions[i]
	return hi - f.cells[i], hi
}

// rect builds a rectangle from cross and flow intervals.
func (f *Frame) rect(crossLo, crossHi, flowLo, flowHi float64) Rect {
	if f.cfg.Flow == engine.Vertical {
		return Rect{X: crossLo, Y: flowLo, Width: crossHi - crossLo, Height: flowHi - flowLo}
	}
	return Rect{X: flowLo, Y: crossLo, Width: flowHi - flowLo, Height: crossHi - crossLo}
}

// SegmentRect returns the band of segment i spanning the whole flow extent.
func (f *Frame) SegmentRect(i int) Rect {
	f.check(i)
	lo, hi := f.band(i)
	p := f.cfg.Padding
	return f.rect(lo, hi, p, p+f.flowExtent)
}

// Glyphs returns the boxes of every character of segment i.
func (f *Frame) Glyphs(i int) []Glyph {
	f.check(i)
	lo, hi := f.band(i)
	l := f.layouts[i]
	start := f.starts[i]

	glyphs := make([]Glyph, l.Len())
	for j := range glyphs {
		c := f.segments[i][j]
		glyphs[j] = Glyph{
			Index:   j,
			Char:    c,
			Box:     f.rect(lo, hi, start+l.Offsets[j], start+l.Offsets[j+1]),
			Upright: f.cfg.Flow == engine.Horizontal || !c.IsNarrow(),
		}
	}
	return glyphs
}

// HitTest maps a point to the nearest caret position. Points beyond the
// outermost bands clamp to the first or last segment; points before or
// after a segment's characters clamp to its ends.
func (f *Frame) HitTest(p Point) cursor.Cursor {
	var d, along float64
	pad := f.cfg.Padding
	if f.cfg.Flow == engine.Vertical {
		d = pad + f.crossTotal - p.X
		along = p.Y
	} else {
		d = p.Y - pad
		along = p.X
	}

	seg := len(f.positions) - 1
	for i, pos := range f.positions {
		if d <= pos+f.cfg.SegmentSpacing {
			seg = i
			break
		}
	}

	return cursor.New(seg, f.layouts[seg].OffsetAt(along-f.starts[seg]))
}

// CaretPoint returns the flow-axis start of the gap at c, centered across
// the band.
func (f *Frame) CaretPoint(c cursor.Cursor) Point {
	a, b := f.CaretLine(c)
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// CaretLine returns the endpoints of the caret at c. The caret spans the
// band across the flow: horizontal in vertical flow, vertical otherwise.
func (f *Frame) CaretLine(c cursor.Cursor) (Point, Point) {
	f.check(c.Segment)
	l := f.layouts[c.Segment]
	if c.Offset < 0 || c.Offset > l.Len() {
		panic(fmt.Errorf("%w: caret offset %d of %d", engine.ErrOutOfRange, c.Offset, l.Len()))
	}
	lo, hi := f.band(c.Segment)
	at := f.starts[c.Segment] + l.Offsets[c.Offset]
	if f.cfg.Flow == engine.Vertical {
		return Point{X: lo, Y: at}, Point{X: hi, Y: at}
	}
	return Point{X: at, Y: lo}, Point{X: at, Y: hi}
}

// SelectionRects returns one rectangle per segment covered by sel.
// Segments where the selection covers no characters are skipped.
func (f *Frame) SelectionRects(sel cursor.Selection) []Rect {
	if !sel.IsActive() {
		return nil
	}
	start, end := sel.Ordered()
	var rects []Rect
	for i := start.Segment; i <= end.Segment && i < len(f.layouts); i++ {
		l := f.layouts[i]
		from, to := 0, l.Len()
		if i == start.Segment {
			from = min(start.Offset, l.Len())
		}
		if i == end.Segment {
			to = min(end.Offset, l.Len())
		}
		if from >= to {
			continue
		}
		lo, hi := f.band(i)
		s := f.starts[i]
		rects = append(rects, f.rect(lo, hi, s+l.Offsets[from], s+l.Offsets[to]))
	}
	return rects
}

func (f *Frame) check(i int) {
	if i < 0 || i >= len(f.layouts) {
		panic(fmt.Errorf("%w: segment %d of %d", engine.ErrOutOfRange, i, len(f.layouts)))
	}
}
