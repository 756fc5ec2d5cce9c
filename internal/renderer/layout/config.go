package layout

import (
	"fmt"
	"strings"

	"github.com/dshills/vtext/internal/engine"
)

// Alignment positions segments along the flow axis.
type Alignment uint8

const (
	// AlignStart puts segments at the top (vertical) or left (horizontal).
	AlignStart Alignment = iota
	// AlignCenter centers segments.
	AlignCenter
	// AlignEnd puts segments at the bottom (vertical) or right (horizontal).
	AlignEnd
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "unknown"
	}
}

// ParseAlignment accepts start/center/end and the physical names
// top/left, middle/vcenter/hcenter, bottom/right.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start", "top", "left":
		return AlignStart, nil
	case "center", "centre", "middle", "vcenter", "hcenter":
		return AlignCenter, nil
	case "end", "bottom", "right":
		return AlignEnd, nil
	default:
		return AlignStart, fmt.Errorf("unknown alignment %q", s)
	}
}

// Default layout values.
const (
	DefaultMinExtent = 300
	DefaultCellSize  = 20
)

// Config controls frame geometry.
type Config struct {
	Flow      engine.Flow
	Alignment Alignment

	// SegmentSpacing is the gap between adjacent bands.
	SegmentSpacing float64

	// DefaultCellSize is the band thickness of an empty segment.
	DefaultCellSize float64

	// MinExtent is the smallest flow length of the frame.
	MinExtent float64

	// Padding surrounds the content on every side.
	Padding float64
}

// DefaultConfig returns vertical, start-aligned settings.
func DefaultConfig() Config {
	return Config{
		Flow:            engine.Vertical,
		Alignment:       AlignStart,
		DefaultCellSize: DefaultCellSize,
		MinExtent:       DefaultMinExtent,
		Padding:         DefaultCellSize / 3.0,
	}
}

// normalized returns c with invalid values replaced.
func (c Config) normalized() Config {
	if c.DefaultCellSize <= 0 {
		c.DefaultCellSize = 1
	}
	if c.SegmentSpacing < 0 {
		c.SegmentSpacing = 0
	}
	if c.MinExtent < 0 {
		c.MinExtent = 0
	}
	if c.Padding < 0 {
		c.Padding = 0
	}
	return c
}
