package execctx

import "errors"

// Context validation errors.
var (
	// ErrMissingEngine indicates the engine is required but not set.
	ErrMissingEngine = errors.New("execution context: engine is required")

	// ErrMissingClipboard indicates the clipboard is required but not set.
	ErrMissingClipboard = errors.New("execution context: clipboard is required")

	// ErrMissingView indicates the view is required but not set.
	ErrMissingView = errors.New("execution context: view is required")

	// ErrMissingPosition indicates a positional action without coordinates.
	ErrMissingPosition = errors.New("execution context: action has no position")

	// ErrNoLayout indicates the view has not laid out the document yet.
	ErrNoLayout = errors.New("execution context: view has no layout")
)
