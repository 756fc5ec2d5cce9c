package buffer

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dshills/vtext/internal/engine/style"
)

// Errors carried by buffer panics.
var (
	ErrSegmentOutOfRange = errors.New("segment index out of range")
	ErrOffsetOutOfRange  = errors.New("character offset out of range")
)

// RevisionID identifies a document state. Every mutation produces a
// revision the buffer has never had before; Restore returns to the
// revision of the snapshot.
type RevisionID uint64

// Buffer holds the ordered segments of a document.
// All methods are thread-safe.
type Buffer struct {
	mu       sync.RWMutex
	segments []Segment
	revision RevisionID
	last     RevisionID
}

// New creates a buffer holding one empty segment.
func New() *Buffer {
	return &Buffer{segments: []Segment{{}}}
}

// NewFromText creates a buffer with one segment per line of text.
// CRLF and CR line endings are treated as LF.
func NewFromText(text string, f style.Format) *Buffer {
	b := New()
	b.segments = segmentsFromText(text, f)
	return b
}

// NewFromSegments creates a buffer from copies of segs.
// An empty list yields one empty segment.
func NewFromSegments(segs []Segment) *Buffer {
	b := New()
	b.SetSegments(segs)
	return b
}

// SegmentCount returns the number of segments (always at least one).
func (b *Buffer) SegmentCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.segments)
}

// Segment returns a copy of segment i.
func (b *Buffer) Segment(i int) Segment {
	b.mu.RLock()
	defer b.mu.RUnlock()
	b.checkSegment(i)
	return b.segments[i].Clone()
}

// CharacterCount returns the length of segment i.
func (b *Buffer) CharacterCount(i int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	b.checkSegment(i)
	return len(b.segments[i])
}

// Char returns the character at offset j of segment i.
func (b *Buffer) Char(i, j int) style.Char {
	b.mu.RLock()
	defer b.mu.RUnlock()
	b.checkSegment(i)
	seg := b.segments[i]
	if j < 0 || j >= len(seg) {
		panic(fmt.Errorf("%w: offset %d in segment %d of length %d", ErrOffsetOutOfRange, j, i, len(seg)))
	}
	return seg[j]
}

// ReplaceSegment replaces the contents of segment i.
func (b *Buffer) ReplaceSegment(i int, seg Segment) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.checkSegment(i)
	b.segments[i] = seg.Clone()
	b.bump()
}

// InsertSegment inserts seg so that it becomes segment i.
// i may equal SegmentCount to append.
func (b *Buffer) InsertSegment(i int, seg Segment) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i < 0 || i > len(b.segments) {
		panic(fmt.Errorf("%w: insert at %d of %d", ErrSegmentOutOfRange, i, len(b.segments)))
	}
	b.segments = append(b.segments, nil)
	copy(b.segments[i+1:], b.segments[i:])
	b.segments[i] = seg.Clone()
	b.bump()
}

// RemoveSegment deletes segment i. If that leaves the buffer without
// segments, one empty segment is restored and RemoveSegment returns true.
func (b *Buffer) RemoveSegment(i int) (repaired bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.checkSegment(i)
	b.segments = append(b.segments[:i], b.segments[i+1:]...)
	b.bump()
	if len(b.segments) == 0 {
		b.segments = []Segment{{}}
		return true
	}
	return false
}

// RemoveSegments deletes the segments in [start, end) with the same repair
// rule as RemoveSegment.
func (b *Buffer) RemoveSegments(start, end int) (repaired bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if start < 0 || end > len(b.segments) || start > end {
		panic(fmt.Errorf("%w: remove [%d,%d) of %d", ErrSegmentOutOfRange, start, end, len(b.segments)))
	}
	if start == end {
		return false
	}
	b.segments = append(b.segments[:start], b.segments[end:]...)
	b.bump()
	if len(b.segments) == 0 {
		b.segments = []Segment{{}}
		return true
	}
	return false
}

// MutateFormat applies fn to the format of every character in [start, end)
// of segment i.
func (b *Buffer) MutateFormat(i, start, end int, fn style.Mutator) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.checkSegment(i)
	seg := b.segments[i]
	checkRange(start, end, len(seg))
	for j := start; j < end; j++ {
		fn(&seg[j].Format)
	}
	if start < end {
		b.bump()
	}
}

// Segments returns copies of all segments.
func (b *Buffer) Segments() []Segment {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return cloneSegments(b.segments)
}

// SetSegments replaces the whole document with copies of segs.
// An empty list yields one empty segment.
func (b *Buffer) SetSegments(segs []Segment) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(segs) == 0 {
		b.segments = []Segment{{}}
	} else {
		b.segments = cloneSegments(segs)
	}
	b.bump()
}

// SetText replaces the document with one segment per line of text.
func (b *Buffer) SetText(text string, f style.Format) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.segments = segmentsFromText(text, f)
	b.bump()
}

// Text returns the document with segments joined by "\n".
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var sb strings.Builder
	for i, seg := range b.segments {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(seg.Text())
	}
	return sb.String()
}

// Len returns the total number of characters across segments.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n := 0
	for _, seg := range b.segments {
		n += len(seg)
	}
	return n
}

// RevisionID returns the current revision.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

// Snapshot returns a read-only copy of the current state.
func (b *Buffer) Snapshot() *Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return &Snapshot{
		segments: cloneSegments(b.segments),
		revision: b.revision,
	}
}

// Restore replaces the document with the contents of snap.
func (b *Buffer) Restore(snap *Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(snap.segments) == 0 {
		b.segments = []Segment{{}}
	} else {
		b.segments = cloneSegments(snap.segments)
	}
	b.revision = snap.revision
	if b.last < snap.revision {
		b.last = snap.revision
	}
}

// bump gives the buffer a fresh revision. Callers must hold the lock.
func (b *Buffer) bump() {
	b.last++
	b.revision = b.last
}

// checkSegment panics when i is not a valid segment index.
// Callers must hold the lock.
func (b *Buffer) checkSegment(i int) {
	if i < 0 || i >= len(b.segments) {
		panic(fmt.Errorf("%w: %d of %d", ErrSegmentOutOfRange, i, len(b.segments)))
	}
}

func checkOffset(offset, length int) {
	if offset < 0 || offset > length {
		panic(fmt.Errorf("%w: %d of %d", ErrOffsetOutOfRange, offset, length))
	}
}

func checkRange(start, end, length int) {
	if start < 0 || end > length || start > end {
		panic(fmt.Errorf("%w: [%d,%d) of %d", ErrOffsetOutOfRange, start, end, length))
	}
}

func cloneSegments(segs []Segment) []Segment {
	out := make([]Segment, len(segs))
	for i, seg := range segs {
		out[i] = seg.Clone()
	}
	return out
}

// SplitLines splits text on line breaks, treating CRLF and CR as LF.
// The result always has at least one element.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

func segmentsFromText(text string, f style.Format) []Segment {
	lines := SplitLines(text)
	segs := make([]Segment, len(lines))
	for i, line := range lines {
		segs[i] = NewSegment(line, f)
	}
	return segs
}
