package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Black = Color{0, 0, 0, 255}
	White = Color{255, 255, 255, 255}
)

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa". Every character
// after the '#' must be a hex digit.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	digits, ok := strings.CutPrefix(s, "#")
	switch {
	case !ok, strings.TrimLeft(digits, hexDigits) != "":
		return Color{}, fmt.Errorf("invalid color %q", s)
	case len(digits) != 3 && len(digits) != 6 && len(digits) != 8:
		return Color{}, fmt.Errorf("invalid color %q: want 3, 6 or 8 hex digits", s)
	}
	alpha := uint8(255)
	if len(digits) == 8 {
		a, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

const hexDigits = "0123456789abcdefABCDEF"

// Hex formats the color as "#rrggbb", adding alpha when not opaque.
func (c Color) Hex() string {
	hex := c.colorful().Hex()
	if c.A != 255 {
		hex += fmt.Sprintf("%02x", c.A)
	}
	return hex
}

// Blend mixes c toward other by t in [0,1], interpolating in Lab space.
// The alpha of c is kept.
func (c Color) Blend(other Color, t float64) Color {
	r, g, b := c.colorful().BlendLab(other.colorful(), t).Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: c.A}
}

// Luminance returns the perceived lightness in [0,1].
func (c Color) Luminance() float64 {
	l, _, _ := c.colorful().Lab()
	return l
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
