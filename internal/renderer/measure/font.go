// Package measure provides layout.Measurer implementations.
//
// Font measures characters with real outline fonts from the Go font family.
// Grid measures characters on a terminal cell grid.
package measure

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/dshills/vtext/internal/engine/style"
	"github.com/dshills/vtext/internal/renderer/layout"
)

// DefaultDPI makes one point equal one pixel.
const DefaultDPI = 72

type faceKey struct {
	mono   bool
	size   int
	bold   bool
	italic bool
}

// variants holds the four styles of one family.
type variants struct {
	regular, bold, italic, boldItalic *opentype.Font
}

func (v variants) pick(bold, italic bool) *opentype.Font {
	switch {
	case bold && italic:
		return v.boldItalic
	case bold:
		return v.bold
	case italic:
		return v.italic
	default:
		return v.regular
	}
}

// Font measures characters with the Go fonts. Families whose name contains
// "mono" use Go Mono; everything else uses Go.
// Safe for concurrent use.
type Font struct {
	mu    sync.Mutex
	sans  variants
	mono  variants
	dpi   float64
	faces map[faceKey]font.Face
}

// NewFont parses the embedded Go fonts.
func NewFont() (*Font, error) {
	f := &Font{dpi: DefaultDPI, faces: make(map[faceKey]font.Face)}

	var err error
	parse := func(name string, data []byte) *opentype.Font {
		if err != nil {
			return nil
		}
		var parsed *opentype.Font
		parsed, err = opentype.Parse(data)
		if err != nil {
			err = fmt.Errorf("parse %s: %w", name, err)
		}
		return parsed
	}

	f.sans = variants{
		regular:    parse("goregular", goregular.TTF),
		bold:       parse("gobold", gobold.TTF),
		italic:     parse("goitalic", goitalic.TTF),
		boldItalic: parse("gobolditalic", gobolditalic.TTF),
	}
	f.mono = variants{
		regular:    parse("gomono", gomono.TTF),
		bold:       parse("gomonobold", gomonobold.TTF),
		italic:     parse("gomonoitalic", gomonoitalic.TTF),
		boldItalic: parse("gomonobolditalic", gomonobolditalic.TTF),
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// SetDPI changes the resolution and drops cached faces.
func (f *Font) SetDPI(dpi float64) {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dpi = dpi
	f.closeFacesLocked()
}

// Close releases cached faces.
func (f *Font) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closeFacesLocked()
	return nil
}

func (f *Font) closeFacesLocked() {
	for _, face := range f.faces {
		_ = face.Close()
	}
	f.faces = make(map[faceKey]font.Face)
}

// Measure implements layout.Measurer.
func (f *Font) Measure(c style.Char) layout.GlyphMetrics {
	f.mu.Lock()
	defer f.mu.Unlock()

	face := f.faceLocked(c.Format)
	m := face.Metrics()
	gm := layout.GlyphMetrics{
		LineHeight: toFloat(m.Height),
		Ascent:     toFloat(m.Ascent),
		Descent:    toFloat(m.Descent),
	}
	if adv, ok := face.GlyphAdvance(c.Rune); ok {
		gm.Advance = toFloat(adv)
	} else if !style.IsNarrow(c.Rune) {
		// Glyphs the Go fonts lack are drawn by a fallback at full width.
		gm.Advance = gm.LineHeight
	}
	return gm
}

// LineHeight returns the line height of format fm.
func (f *Font) LineHeight(fm style.Format) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return toFloat(f.faceLocked(fm).Metrics().Height)
}

func (f *Font) faceLocked(fm style.Format) font.Face {
	size := fm.PointSize
	if size <= 0 {
		size = style.DefaultPointSize
	}
	key := faceKey{
		mono:   strings.Contains(strings.ToLower(fm.Family), "mono"),
		size:   size,
		bold:   fm.Bold,
		italic: fm.Italic,
	}
	if face, ok := f.faces[key]; ok {
		return face
	}

	fam := f.sans
	if key.mono {
		fam = f.mono
	}
	base := fam.pick(key.bold, key.italic)
	if base == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(base, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     f.dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	f.faces[key] = face
	return face
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
