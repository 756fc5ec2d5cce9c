package config

import (
	"errors"
	"fmt"

	"github.com/dshills/vtext/internal/config/loader"
)

var (
	// ErrSettingNotFound is matched by Set for an unknown dotted path.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrTypeMismatch is matched by a TypeError.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrValidationFailed is matched by a ValidationError.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidPath is returned for a path without a section, such as
	// "flow" instead of "editor.flow".
	ErrInvalidPath = errors.New("invalid setting path")
)

// ParseError reports a TOML syntax or decoding error with its position.
type ParseError = loader.ParseError

// ValidationErrorCode classifies a ValidationError.
type ValidationErrorCode uint8

const (
	// ErrCodeOutOfRange is a number outside its bounds, such as a point
	// size of zero.
	ErrCodeOutOfRange ValidationErrorCode = iota
	// ErrCodeInvalidEnum is a name outside its set, such as flow "diagonal".
	ErrCodeInvalidEnum
	// ErrCodePatternMismatch is a malformed value, such as a bad color or
	// key spec.
	ErrCodePatternMismatch
)

var codeNames = [...]string{
	ErrCodeOutOfRange:      "out_of_range",
	ErrCodeInvalidEnum:     "invalid_enum",
	ErrCodePatternMismatch: "pattern_mismatch",
}

func (c ValidationErrorCode) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return "unknown"
}

// ValidationError describes one setting that failed Validate.
type ValidationError struct {
	Path    string
	Message string
	Value   any
	Code    ValidationErrorCode
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (value: %v)", e.Path, e.Message, e.Value)
}

// Is matches ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// TypeError is returned by Set when raw cannot be converted to the
// setting's type.
type TypeError struct {
	Path     string
	Expected string
	Raw      string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error for %s: expected %s, got %q", e.Path, e.Expected, e.Raw)
}

// Is matches ErrTypeMismatch.
func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}
