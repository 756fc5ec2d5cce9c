// Package layout maps editor positions to geometry and back.
//
// Layout is computed from a list of segments and an abstract Measurer that
// reports glyph metrics for a styled character. Units are whatever the
// measurer uses: pixels for font metrics, terminal cells for the grid
// measurer.
//
// # Model
//
// Each segment occupies one band across the stacking axis:
//
//   - Vertical flow: bands are columns stacked from right to left, and
//     characters run top to bottom inside them.
//   - Horizontal flow: bands are rows stacked from top to bottom, and
//     characters run left to right inside them.
//
// A band is as thick as the segment's cell size, the largest
// max(advance, line height) of its characters. Along the band every
// character takes its flow extent: the glyph advance for narrow code points,
// the line height for wide ones, plus the character's letter spacing.
//
// The position of segment i is the sum of the cell sizes of segments 0..i
// plus i times the segment spacing, measured from the stacking origin
// (right edge for vertical flow, top edge for horizontal flow).
//
// # Usage
//
//	le := layout.NewLayoutEngine(measurer, layout.DefaultConfig())
//	frame := le.Layout(engine.Segments())
//	pos := frame.HitTest(layout.Point{X: 40, Y: 12})
//	a, b := frame.CaretLine(pos)
//
// Frames are immutable snapshots; nothing in this package mutates editor
// state.
package layout
