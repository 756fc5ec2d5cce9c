// Package app wires the editing engine, dispatcher, renderer and input
// handling into a running editor.
//
// An Application owns one document. Backend events are polled on a
// separate goroutine and handled on the event loop goroutine, which is the
// only goroutine that mutates the engine while the editor runs:
//
//   - key events are looked up in the keymap; unbound printable keys insert
//     their character
//   - mouse events are translated and turned into caret and selection
//     actions
//   - bracketed pastes are collected and inserted as one edit
//   - focus events start and stop the caret blinker
//   - interrupts carry caret toggles and configuration reloads from other
//     goroutines
//
// Frames are drawn from a ticker when the renderer has pending changes.
// The status line below the document is refreshed before every frame.
package app
