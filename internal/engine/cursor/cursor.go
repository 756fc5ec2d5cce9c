package cursor

import "fmt"

// Cursor is an insertion point in the buffer.
type Cursor struct {
	Segment int
	Offset  int
}

// New creates a cursor at (segment, offset).
func New(segment, offset int) Cursor {
	return Cursor{Segment: segment, Offset: offset}
}

// Before reports whether c is strictly before other in document order.
func (c Cursor) Before(other Cursor) bool {
	if c.Segment != other.Segment {
		return c.Segment < other.Segment
	}
	return c.Offset < other.Offset
}

// String returns a human-readable representation.
func (c Cursor) String() string {
	return fmt.Sprintf("(%d:%d)", c.Segment, c.Offset)
}
