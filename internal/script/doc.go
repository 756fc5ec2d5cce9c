// Package script runs Lua editing scripts against an engine.
//
// Scripts see a global table named "ed" (also available through
// require("ed")) that mirrors the editing operations:
//
//	ed.move("end")
//	ed.type("縦")
//	ed.bold(true)
//	ed.select(0, 0, 0, 1)
//	ed.dispatch("format.growFont")
//
// Positions are zero-based (segment, offset) pairs, the same as the engine.
//
// # Sandbox
//
// Only the base, table, string and math libraries are opened. dofile,
// loadfile, load and loadstring are removed, require resolves only the
// built-in safe modules and "ed", and print writes to the runner's output.
// Execution stops when the run context is done or the timeout expires.
//
// # Undo
//
// A run is recorded as one undo step. When the script fails, edits made
// before the failure are rolled back.
package script
