// Package history provides snapshot-based undo for the editor engine.
//
// Before every mutating operation the engine pushes a Snapshot holding a
// deep copy of the buffer (characters and formats), the cursor position and
// the segment count. Undo pops the most recent snapshot and the engine
// restores it wholesale. Snapshots are pushed eagerly, so an edit that turns
// out to change nothing still costs one undo step.
//
// # History Stack
//
//	h := history.New(1000) // keep at most 1000 snapshots
//
//	h.Push(history.NewSnapshot("Insert", buf.Snapshot(), cur))
//	snap, err := h.Undo() // ErrNothingToUndo when empty
//
// # Redo
//
// Redo is intentionally unsupported: it always reports false and changes
// nothing. The stack keeps no forward states.
//
// # Grouping
//
// Several operations can be collapsed into one undo step:
//
//	h.BeginGroup("Script")
//	// ... multiple edits, each pushing a snapshot ...
//	h.EndGroup()
//
// Only the first snapshot pushed inside the group is kept, so one Undo
// returns to the state before the whole group.
package history
