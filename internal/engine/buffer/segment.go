package buffer

import (
	"strings"

	"github.com/dshills/vtext/internal/engine/style"
)

// Segment is one column or row of styled characters.
type Segment []style.Char

// NewSegment creates a segment from text with a uniform format.
func NewSegment(text string, f style.Format) Segment {
	return Segment(style.NewChars(text, f))
}

// Len returns the number of characters.
func (s Segment) Len() int {
	return len(s)
}

// Text returns the characters as a string.
func (s Segment) Text() string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, c := range s {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Clone returns an independent copy.
// A nil segment clones to an empty, non-nil one.
func (s Segment) Clone() Segment {
	out := make(Segment, len(s))
	copy(out, s)
	return out
}

// Slice returns a copy of the characters in [start, end).
func (s Segment) Slice(start, end int) Segment {
	checkRange(start, end, len(s))
	return s[start:end].Clone()
}

// Insert returns a new segment with chars spliced in at offset.
func (s Segment) Insert(offset int, chars []style.Char) Segment {
	checkOffset(offset, len(s))
	out := make(Segment, 0, len(s)+len(chars))
	out = append(out, s[:offset]...)
	out = append(out, chars...)
	out = append(out, s[offset:]...)
	return out
}

// Delete returns a new segment without the characters in [start, end).
func (s Segment) Delete(start, end int) Segment {
	checkRange(start, end, len(s))
	out := make(Segment, 0, len(s)-(end-start))
	out = append(out, s[:start]...)
	out = append(out, s[end:]...)
	return out
}

// Split returns copies of the characters before and after offset.
func (s Segment) Split(offset int) (Segment, Segment) {
	checkOffset(offset, len(s))
	return s[:offset].Clone(), s[offset:].Clone()
}

// Concat returns a new segment holding s followed by other.
func (s Segment) Concat(other Segment) Segment {
	out := make(Segment, 0, len(s)+len(other))
	out = append(out, s...)
	out = append(out, other...)
	return out
}

// Equal reports whether both segments hold the same characters and formats.
func (s Segment) Equal(other Segment) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}
