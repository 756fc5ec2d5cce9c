package style

// Default formatting values.
const (
	DefaultFamily    = "Go"
	DefaultPointSize = 15
)

// Format holds the visual attributes of a single character.
type Format struct {
	Family        string
	PointSize     int
	Bold          bool
	Italic        bool
	Underline     bool
	Overline      bool
	StrikeOut     bool
	LetterSpacing float64
	Color         Color
}

// DefaultFormat returns the format used for new documents.
func DefaultFormat() Format {
	return Format{
		Family:    DefaultFamily,
		PointSize: DefaultPointSize,
		Color:     Black,
	}
}

// Char is a code point together with its formatting.
type Char struct {
	Rune   rune
	Format Format
}

// NewChars converts text into styled characters sharing one format.
func NewChars(text string, f Format) []Char {
	chars := make([]Char, 0, len(text))
	for _, r := range text {
		chars = append(chars, Char{Rune: r, Format: f})
	}
	return chars
}

// IsNarrow reports whether r is measured by glyph advance.
func IsNarrow(r rune) bool {
	return r < 128
}

// IsWide reports whether r is measured by line height.
func IsWide(r rune) bool {
	return !IsNarrow(r)
}

// IsNarrow reports whether the character is narrow.
func (c Char) IsNarrow() bool {
	return IsNarrow(c.Rune)
}

// Mutator edits a format in place.
type Mutator func(*Format)

// Bold returns a mutator that sets boldness.
func Bold(on bool) Mutator {
	return func(f *Format) { f.Bold = on }
}

// Italic returns a mutator that sets italics.
func Italic(on bool) Mutator {
	return func(f *Format) { f.Italic = on }
}

// Underline returns a mutator that sets underlining.
func Underline(on bool) Mutator {
	return func(f *Format) { f.Underline = on }
}

// Overline returns a mutator that sets overlining.
func Overline(on bool) Mutator {
	return func(f *Format) { f.Overline = on }
}

// StrikeOut returns a mutator that sets strike-out.
func StrikeOut(on bool) Mutator {
	return func(f *Format) { f.StrikeOut = on }
}

// Family returns a mutator that sets the font family.
func Family(name string) Mutator {
	return func(f *Format) { f.Family = name }
}

// PointSize returns a mutator that sets the point size.
// Non-positive sizes are ignored.
func PointSize(size int) Mutator {
	return func(f *Format) {
		if size > 0 {
			f.PointSize = size
		}
	}
}

// LetterSpacing returns a mutator that sets extra per-character spacing.
func LetterSpacing(spacing float64) Mutator {
	return func(f *Format) { f.LetterSpacing = spacing }
}

// Foreground returns a mutator that sets the text color.
func Foreground(c Color) Mutator {
	return func(f *Format) { f.Color = c }
}

// GrowPointSize returns a mutator that adds delta to the point size,
// keeping it at least 1.
func GrowPointSize(delta int) Mutator {
	return func(f *Format) { f.PointSize = max(f.PointSize+delta, 1) }
}

// Chain returns a mutator that applies ms in order.
func Chain(ms ...Mutator) Mutator {
	return func(f *Format) {
		for _, m := range ms {
			m(f)
		}
	}
}
