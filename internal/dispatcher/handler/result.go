package handler

import "fmt"

// ResultStatus is the outcome class of an action.
type ResultStatus uint8

const (
	// StatusOK means the action ran.
	StatusOK ResultStatus = iota
	// StatusNoOp means the action was valid but changed nothing, such as
	// backspace at the start of the document.
	StatusNoOp
	// StatusError means the action failed; Result.Error says why.
	StatusError
	// StatusCancelled means a pre-dispatch hook vetoed the action.
	StatusCancelled
)

var statusNames = [...]string{
	StatusOK:        "ok",
	StatusNoOp:      "no-op",
	StatusError:     "error",
	StatusCancelled: "cancelled",
}

// String returns the status name.
func (s ResultStatus) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Result is what a handler reports back to the dispatcher. Message is
// shown on the status line; Redraw asks for a frame even when the
// document revision did not change (flow switches, spacing changes).
type Result struct {
	Status  ResultStatus
	Error   error
	Message string
	Redraw  bool

	// Data carries diagnostics, such as the stack of a recovered panic.
	Data map[string]any
}

// IsOK reports StatusOK.
func (r Result) IsOK() bool { return r.Status == StatusOK }

// IsError reports StatusError.
func (r Result) IsError() bool { return r.Status == StatusError }

// Success is the plain OK result.
func Success() Result { return Result{Status: StatusOK} }

// SuccessWithMessage is an OK result with a status line message.
func SuccessWithMessage(msg string) Result {
	return Success().WithMessage(msg)
}

// NoOp is the plain no-op result.
func NoOp() Result { return Result{Status: StatusNoOp} }

// NoOpWithMessage is a no-op result with a status line message.
func NoOpWithMessage(msg string) Result {
	return NoOp().WithMessage(msg)
}

// Error wraps err in an error result.
func Error(err error) Result { return Result{Status: StatusError, Error: err} }

// Errorf builds an error result from a format string.
func Errorf(format string, args ...any) Result {
	return Error(fmt.Errorf(format, args...))
}

// CancelledWithMessage is the result of a vetoed action.
func CancelledWithMessage(msg string) Result {
	return Result{Status: StatusCancelled, Message: msg}
}

// WithMessage returns r with its message replaced.
func (r Result) WithMessage(msg string) Result {
	r.Message = msg
	return r
}

// WithRedraw returns r with a redraw request.
func (r Result) WithRedraw() Result {
	r.Redraw = true
	return r
}

// WithData returns a copy of r with key set. The receiver's map is not
// modified.
func (r Result) WithData(key string, value any) Result {
	data := make(map[string]any, len(r.Data)+1)
	for k, v := range r.Data {
		data[k] = v
	}
	data[key] = value
	r.Data = data
	return r
}

// GetData returns the value stored under key.
func (r Result) GetData(key string) (any, bool) {
	v, ok := r.Data[key]
	return v, ok
}
