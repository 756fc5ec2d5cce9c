// Package engine provides the editing core of vtext.
//
// The engine package serves as the main facade, combining the styled
// character buffer, caret and selection handling, the typing format and
// snapshot undo into a unified, thread-safe API. It knows nothing about
// pixels; the layout package maps its positions to geometry.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - style: per-character Format and the narrow/wide classification
//   - buffer: ordered segments of styled characters
//   - cursor: (segment, offset) carets and anchor/active selections
//   - history: snapshot-based undo
//
// # Flow
//
// A document is a list of segments. In Vertical flow each segment is a
// column and columns advance from right to left; in Horizontal flow each
// segment is a row. The flow changes only how arrow keys are interpreted:
//
//	Vertical:   Up/Down move within a column, Left/Right move across columns
//	Horizontal: Left/Right move within a row, Up/Down move across rows
//
// # Basic Usage
//
//	e := engine.New(engine.WithContent("ab\ncd"))
//
//	e.SetCursor(0, 1)
//	e.Enter()        // "a\nb\ncd"
//	e.Type("X")      // "a\nXb\ncd"
//	e.Undo()         // "a\nb\ncd"
//
// # Undo
//
// Every mutating call pushes a full snapshot first. Undo restores the
// buffer and caret and clears the selection. Redo is a no-op.
//
// # Errors
//
// Positions outside the document are programming errors: the engine
// panics with an error wrapping ErrOutOfRange. Edits and motions at a
// document boundary are silently ignored.
//
// # Thread Safety
//
// All Engine operations are thread-safe. The engine uses a read-write mutex
// to allow concurrent reads while serializing writes.
package engine
