package dispatcher

import (
	"github.com/dshills/vtext/internal/dispatcher/handlers/clipboard"
	"github.com/dshills/vtext/internal/dispatcher/handlers/view"
)

// Config selects optional dispatcher behavior.
type Config struct {
	// EnableMetrics records per-action counts and durations.
	EnableMetrics bool

	// RecoverFromPanic turns a panicking handler into an error result
	// wrapping ErrPanic.
	RecoverFromPanic bool

	// ReadOnly rejects every action that could change the document with
	// ErrReadOnly. Caret movement, selection and copy still work.
	ReadOnly bool
}

// DefaultConfig recovers from panics and collects no metrics.
func DefaultConfig() Config {
	return Config{RecoverFromPanic: true}
}

// WithMetrics returns c with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithPanicRecovery returns c with panic recovery set to recover.
func (c Config) WithPanicRecovery(recover bool) Config {
	c.RecoverFromPanic = recover
	return c
}

// WithReadOnly returns c with read-only mode set.
func (c Config) WithReadOnly(readOnly bool) Config {
	c.ReadOnly = readOnly
	return c
}

// mutatingNamespaces hold only actions that can edit the document. Scripts
// edit the engine directly, so script.run is refused as a whole.
var mutatingNamespaces = map[string]bool{
	"editor":  true,
	"format":  true,
	"history": true,
	"script":  true,
}

// mutatingActions are the document-changing actions of mixed namespaces.
var mutatingActions = map[string]bool{
	clipboard.ActionCut:   true,
	clipboard.ActionPaste: true,
	view.ActionToggleFlow: true,
	view.ActionSetFlow:    true,
}

// mutates reports whether the named action can change the document. Flow
// is saved with the document, so flow switches count.
func mutates(name, namespace string) bool {
	return mutatingNamespaces[namespace] || mutatingActions[name]
}
