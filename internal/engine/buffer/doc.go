// Package buffer provides the styled-character store of the editor engine.
//
// A Buffer is an ordered list of segments. A segment is an ordered run of
// style.Char values and is drawn either as one column (vertical flow) or one
// row (horizontal flow); the buffer itself does not know which.
//
// The buffer provides:
//
//   - Segment access and replacement by index
//   - Segment insertion and removal with automatic repair
//   - Per-character format mutation
//   - Read-only snapshots for undo and rendering
//   - Plain text conversion with line ending normalization
//
// Basic usage:
//
//	buf := buffer.NewFromText("ab\ncd", style.DefaultFormat())
//	buf.SegmentCount()     // 2
//	buf.CharacterCount(1)  // 2
//	buf.Text()             // "ab\ncd"
//
// Invariants:
//
// A buffer always holds at least one segment. An empty document is exactly
// one empty segment; removing the last segment leaves an empty one behind.
//
// Index arguments outside the valid range are caller bugs. Methods panic
// with an error wrapping ErrSegmentOutOfRange or ErrOffsetOutOfRange.
//
// Thread Safety:
//
// All Buffer methods are thread-safe. Segment values returned by accessors
// are copies and may be modified freely by the caller.
package buffer
