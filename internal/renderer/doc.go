// Package renderer draws a styled document on a terminal grid.
//
// The renderer reads segments, the caret and the selection from a Source,
// lays them out with the layout package using the grid measurer, and paints
// the result into a backend. It never mutates the document.
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│           Renderer (Facade)             │
//	├─────────────────────────────────────────┤
//	│  LayoutEngine │ SegmentCache │ Grid     │
//	├─────────────────────────────────────────┤
//	│           Backend Abstraction           │
//	├─────────────────────────────────────────┤
//	│  Terminal (tcell) │ NullBackend         │
//	└─────────────────────────────────────────┘
//
// # Vertical flow
//
// Segments are columns ordered right to left. Every character takes one
// row and two terminal columns; narrow characters are replaced by their
// full-width forms where Unicode defines one.
//
// # Horizontal flow
//
// Segments are rows ordered top to bottom and characters take their
// natural terminal width.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.DefaultOptions())
//	r.SetSource(eng)
//	r.RenderNow()
package renderer
