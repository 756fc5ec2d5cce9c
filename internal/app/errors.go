package app

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyRunning is returned by Run and SetBackend while the event
	// loop runs.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoBackend is returned by Run before SetBackend.
	ErrNoBackend = errors.New("no backend")

	// ErrUnsavedChanges is returned by Quit(false) for a modified document.
	ErrUnsavedChanges = errors.New("unsaved changes")

	// ErrNoPath is returned when saving a scratch document without a name.
	ErrNoPath = errors.New("document has no file path")
)

// OperationError reports a failed document or configuration operation,
// such as "open doc.vtx" or "reload config.toml".
type OperationError struct {
	Op     string
	Target string
	Err    error
}

// NewOperationError wraps err for op on target.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

func (e *OperationError) Error() string {
	what := e.Op
	if e.Target != "" {
		what += " " + e.Target
	}
	if e.Err == nil {
		return what
	}
	return fmt.Sprintf("%s: %v", what, e.Err)
}

func (e *OperationError) Unwrap() error { return e.Err }

// ComponentError reports a failure of a runtime component, such as the
// backend failing to initialize or the config watcher failing to start.
type ComponentError struct {
	Component string
	Action    string
	Err       error
}

// NewComponentError wraps err for action on component.
func NewComponentError(component, action string, err error) *ComponentError {
	return &ComponentError{Component: component, Action: action, Err: err}
}

func (e *ComponentError) Error() string {
	msg := e.Component
	if e.Action != "" {
		msg += ": " + e.Action
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ComponentError) Unwrap() error { return e.Err }
