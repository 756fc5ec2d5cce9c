package cursor

import "fmt"

// Direction classifies the drag direction of a selection.
type Direction uint8

const (
	// ForwardAcross: the active end is in a later segment than the anchor.
	ForwardAcross Direction = iota
	// BackwardAcross: the active end is in an earlier segment.
	BackwardAcross
	// ForwardAlong: both ends share a segment and the active offset is not
	// before the anchor offset.
	ForwardAlong
	// BackwardAlong: both ends share a segment and the active offset is
	// before the anchor offset.
	BackwardAlong
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case ForwardAcross:
		return "forward-across"
	case BackwardAcross:
		return "backward-across"
	case ForwardAlong:
		return "forward-along"
	case BackwardAlong:
		return "backward-along"
	default:
		return "unknown"
	}
}

// Across reports whether the selection spans segments.
func (d Direction) Across() bool {
	return d == ForwardAcross || d == BackwardAcross
}

// Selection is an anchor/active pair of positions.
type Selection struct {
	AnchorSegment int
	AnchorOffset  int
	ActiveSegment int
	ActiveOffset  int
}

// NewSelection creates a selection from anchor to active.
func NewSelection(anchor, active Cursor) Selection {
	return Selection{
		AnchorSegment: anchor.Segment,
		AnchorOffset:  anchor.Offset,
		ActiveSegment: active.Segment,
		ActiveOffset:  active.Offset,
	}
}

// Anchor returns the fixed end.
func (s Selection) Anchor() Cursor {
	return Cursor{Segment: s.AnchorSegment, Offset: s.AnchorOffset}
}

// Active returns the moving end.
func (s Selection) Active() Cursor {
	return Cursor{Segment: s.ActiveSegment, Offset: s.ActiveOffset}
}

// IsActive reports whether the selection covers anything.
func (s Selection) IsActive() bool {
	return s.AnchorSegment != s.ActiveSegment || s.AnchorOffset != s.ActiveOffset
}

// StartSegment returns the smaller segment index.
func (s Selection) StartSegment() int {
	return min(s.AnchorSegment, s.ActiveSegment)
}

// EndSegment returns the larger segment index.
func (s Selection) EndSegment() int {
	return max(s.AnchorSegment, s.ActiveSegment)
}

// StartOffset returns the offset belonging to the start segment. When both
// ends share a segment the anchor offset is returned as is, which may be
// larger than EndOffset.
func (s Selection) StartOffset() int {
	if s.AnchorSegment > s.ActiveSegment {
		return s.ActiveOffset
	}
	return s.AnchorOffset
}

// EndOffset returns the offset belonging to the end segment. When both ends
// share a segment the active offset is returned as is.
func (s Selection) EndOffset() int {
	if s.AnchorSegment > s.ActiveSegment {
		return s.AnchorOffset
	}
	return s.ActiveOffset
}

// Bounds returns the segment-normalized bounds.
func (s Selection) Bounds() (startSeg, startOff, endSeg, endOff int) {
	return s.StartSegment(), s.StartOffset(), s.EndSegment(), s.EndOffset()
}

// Ordered returns bounds in document order, swapping the offsets of a
// single-segment selection when needed.
func (s Selection) Ordered() (start, end Cursor) {
	start = Cursor{Segment: s.StartSegment(), Offset: s.StartOffset()}
	end = Cursor{Segment: s.EndSegment(), Offset: s.EndOffset()}
	if start.Segment == end.Segment && start.Offset > end.Offset {
		start.Offset, end.Offset = end.Offset, start.Offset
	}
	return start, end
}

// Direction classifies the selection.
func (s Selection) Direction() Direction {
	switch {
	case s.AnchorSegment < s.ActiveSegment:
		return ForwardAcross
	case s.AnchorSegment > s.ActiveSegment:
		return BackwardAcross
	case s.AnchorOffset > s.ActiveOffset:
		return BackwardAlong
	default:
		return ForwardAlong
	}
}

// Contains reports whether the character at (segment, offset) is selected.
func (s Selection) Contains(segment, offset int) bool {
	if !s.IsActive() {
		return false
	}
	start, end := s.Ordered()
	if segment < start.Segment || segment > end.Segment {
		return false
	}
	if segment == start.Segment && offset < start.Offset {
		return false
	}
	if segment == end.Segment && offset >= end.Offset {
		return false
	}
	return true
}

// Clean resets every field to zero.
func (s *Selection) Clean() {
	*s = Selection{}
}

// Extend returns a selection that keeps the anchor and moves the active end.
func (s Selection) Extend(active Cursor) Selection {
	s.ActiveSegment = active.Segment
	s.ActiveOffset = active.Offset
	return s
}

// String returns a human-readable representation.
func (s Selection) String() string {
	return fmt.Sprintf("[%s -> %s]", s.Anchor(), s.Active())
}
