package script

import "errors"

// Errors for script execution.
var (
	// ErrTimeout is returned when a script runs past its deadline.
	ErrTimeout = errors.New("script timeout")

	// ErrNoDispatcher is raised by ed.dispatch when no dispatcher is set.
	ErrNoDispatcher = errors.New("no dispatcher available")
)

// Error describes a failed script run.
type Error struct {
	Name string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return "script " + e.Name + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
