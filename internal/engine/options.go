package engine

import (
	"github.com/dshills/vtext/internal/engine/buffer"
	"github.com/dshills/vtext/internal/engine/style"
)

// Default configuration values.
const (
	DefaultMaxUndoEntries = 1000
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial plain-text content of the engine.
// Each line becomes one segment in the typing format.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.initContent = content
		e.initSegments = nil
	}
}

// WithSegments sets the initial styled content of the engine.
func WithSegments(segs []buffer.Segment) Option {
	return func(e *Engine) {
		e.initSegments = segs
		e.initContent = ""
	}
}

// WithFlow sets the layout direction.
func WithFlow(flow Flow) Option {
	return func(e *Engine) {
		e.flow = flow
	}
}

// WithFormat sets the initial typing format.
func WithFormat(f style.Format) Option {
	return func(e *Engine) {
		e.format = f
	}
}

// WithMaxUndoEntries sets the maximum number of undo history entries.
func WithMaxUndoEntries(max int) Option {
	return func(e *Engine) {
		if max > 0 {
			e.maxUndoEntries = max
		}
	}
}
