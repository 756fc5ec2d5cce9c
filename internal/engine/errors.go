package engine

import (
	"errors"

	"github.com/dshills/vtext/internal/engine/history"
)

// Errors carried by engine panics and returned by helpers.
var (
	// ErrOutOfRange indicates a segment or offset outside the document.
	// Operations panic with an error wrapping it.
	ErrOutOfRange = errors.New("position out of range")

	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = history.ErrNothingToUndo

	// ErrUnknownFlow indicates an unrecognized flow name.
	ErrUnknownFlow = errors.New("unknown flow direction")
)
