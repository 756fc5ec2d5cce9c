package engine

import (
	"fmt"
	"strings"
)

// Flow is the direction segments are laid out in.
type Flow uint8

const (
	// Vertical lays segments out as top-to-bottom columns read right to left.
	Vertical Flow = iota
	// Horizontal lays segments out as left-to-right rows read top to bottom.
	Horizontal
)

// String returns the flow name.
func (f Flow) String() string {
	switch f {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// ParseFlow parses "vertical" or "horizontal".
func ParseFlow(s string) (Flow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "v":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	default:
		return Vertical, fmt.Errorf("%w: %q", ErrUnknownFlow, s)
	}
}

// Motion is a caret movement key.
type Motion uint8

const (
	MoveHome Motion = iota
	MoveEnd
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
)

// String returns the motion name.
func (m Motion) String() string {
	switch m {
	case MoveHome:
		return "home"
	case MoveEnd:
		return "end"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	default:
		return "unknown"
	}
}

// ParseMotion parses a motion name as returned by Motion.String.
func ParseMotion(s string) (Motion, bool) {
	for m := MoveHome; m <= MoveDown; m++ {
		if m.String() == strings.ToLower(s) {
			return m, true
		}
	}
	return 0, false
}

// step is the logical effect of a motion under a flow.
type step uint8

const (
	stepNone step = iota
	stepStart
	stepEnd
	stepPrevChar
	stepNextChar
	stepPrevSegment
	stepNextSegment
)

// resolve maps a physical motion to a logical step. Vertical columns
// advance right to left, so Left moves to the next segment.
func (f Flow) resolve(m Motion) step {
	switch m {
	case MoveHome:
		return stepStart
	case MoveEnd:
		return stepEnd
	}
	if f == Vertical {
		switch m {
		case MoveLeft:
			return stepNextSegment
		case MoveRight:
			return stepPrevSegment
		case MoveUp:
			return stepPrevChar
		case MoveDown:
			return stepNextChar
		}
		return stepNone
	}
	switch m {
	case MoveLeft:
		return stepPrevChar
	case MoveRight:
		return stepNextChar
	case MoveUp:
		return stepPrevSegment
	case MoveDown:
		return stepNextSegment
	}
	return stepNone
}
