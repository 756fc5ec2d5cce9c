// Package cursor provides caret and selection positions for the editor.
//
// Positions are (segment, offset) pairs. The offset is a gap index: 0 is
// before the first character of the segment and the segment length is after
// the last one.
//
// Selection Model:
//
// Selections use an anchor/active model where:
//   - Anchor: where the selection started (pointer press, first shift-move)
//   - Active: the moving end (pointer drag, further shift-moves)
//
// A selection is active only while anchor and active differ. Bounds
// normalizes by segment alone, so a selection inside one segment may report
// its offsets in either order; Ordered returns fully ordered bounds.
//
// Direction classifies a selection into one of four drag directions:
//
//	ForwardAcross   anchor segment < active segment
//	BackwardAcross  anchor segment > active segment
//	ForwardAlong    same segment, anchor offset <= active offset
//	BackwardAlong   same segment, anchor offset > active offset
//
// Thread Safety:
//
// Cursor and Selection are plain value types with no internal locking.
package cursor
