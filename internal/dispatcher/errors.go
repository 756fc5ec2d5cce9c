package dispatcher

import "errors"

var (
	// ErrNoHandler is wrapped with the action name when nothing handles it.
	ErrNoHandler = errors.New("dispatcher: no handler for action")

	// ErrPanic is wrapped with the action name and panic value.
	ErrPanic = errors.New("dispatcher: handler panic")

	// ErrInvalidAction is returned for an action without a name.
	ErrInvalidAction = errors.New("dispatcher: invalid action")

	// ErrReadOnly is wrapped with the action name when a read-only
	// dispatcher refuses an edit.
	ErrReadOnly = errors.New("dispatcher: document is read-only")
)
