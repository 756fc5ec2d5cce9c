package layout

import "fmt"

// Point is a location in layout units.
type Point struct {
	X, Y float64
}

// String returns a human-readable representation.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle in layout units.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// String returns a human-readable representation.
func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g %gx%g]", r.X, r.Y, r.Width, r.Height)
}
