package measure

import (
	"testing"

	"github.com/dshills/vtext/internal/engine"
	"github.com/dshills/vtext/internal/engine/style"
	"github.com/dshills/vtext/internal/renderer/layout"
)

func char(r rune, mutate ...style.Mutator) style.Char {
	f := style.DefaultFormat()
	for _, m := range mutate {
		m(&f)
	}
	return style.Char{Rune: r, Format: f}
}

// ============================================================================
// Font
// ============================================================================

func TestFontMeasure(t *testing.T) {
	f, err := NewFont()
	if err != nil {
		t.Fatalf("NewFont: %v", err)
	}
	defer f.Close()

	gm := f.Measure(char('a'))
	if gm.Advance <= 0 {
		t.Errorf("expected positive advance, got %v", gm.Advance)
	}
	if gm.LineHeight <= gm.Advance {
		t.Errorf("line height %v should exceed the advance of 'a' (%v)", gm.LineHeight, gm.Advance)
	}
	if gm.Ascent <= 0 {
		t.Errorf("expected positive ascent, got %v", gm.Ascent)
	}
}

func TestFontSizeScales(t *testing.T) {
	f, err := NewFont()
	if err != nil {
		t.Fatalf("NewFont: %v", err)
	}
	defer f.Close()

	small := f.Measure(char('m', style.PointSize(10)))
	large := f.Measure(char('m', style.PointSize(40)))
	if large.Advance <= small.Advance {
		t.Errorf("expected larger advance at 40pt: %v <= %v", large.Advance, small.Advance)
	}
	if large.LineHeight <= small.LineHeight {
		t.Errorf("expected larger line height at 40pt: %v <= %v", large.LineHeight, small.LineHeight)
	}
	if got := f.LineHeight(char('m', style.PointSize(40)).Format); got != large.LineHeight {
		t.Errorf("LineHeight mismatch: %v vs %v", got, large.LineHeight)
	}
}

func TestFontMonoFamily(t *testing.T) {
	f, err := NewFont()
	if err != nil {
		t.Fatalf("NewFont: %v", err)
	}
	defer f.Close()

	i := f.Measure(char('i', style.Family("Go Mono")))
	m := f.Measure(char('m', style.Family("Go Mono")))
	if i.Advance != m.Advance {
		t.Errorf("mono advances should match: i=%v m=%v", i.Advance, m.Advance)
	}

	pi := f.Measure(char('i'))
	pm := f.Measure(char('m'))
	if pi.Advance >= pm.Advance {
		t.Errorf("proportional 'i' should be narrower than 'm': %v >= %v", pi.Advance, pm.Advance)
	}
}

func TestFontDPI(t *testing.T) {
	f, err := NewFont()
	if err != nil {
		t.Fatalf("NewFont: %v", err)
	}
	defer f.Close()

	before := f.Measure(char('m')).LineHeight
	f.SetDPI(144)
	after := f.Measure(char('m')).LineHeight
	if after <= before {
		t.Errorf("doubling DPI should grow line height: %v <= %v", after, before)
	}
}

func TestFontWithLayout(t *testing.T) {
	f, err := NewFont()
	if err != nil {
		t.Fatalf("NewFont: %v", err)
	}
	defer f.Close()

	seg := []style.Char{char('a'), char('中')}
	l := layout.MeasureSegment(seg, f)
	lh := f.LineHeight(style.DefaultFormat())

	if got := l.Offsets[2] - l.Offsets[1]; got != lh {
		t.Errorf("wide character should advance by line height %v, got %v", lh, got)
	}
	if l.CellSize < lh {
		t.Errorf("cell size %v should be at least the line height %v", l.CellSize, lh)
	}
}

// ============================================================================
// Grid
// ============================================================================

func TestGridVertical(t *testing.T) {
	g := NewGrid(engine.Vertical)

	for _, r := range []rune{'a', '中', 'é'} {
		gm := g.Measure(char(r))
		if gm.Advance != 1 || gm.LineHeight != 1 {
			t.Errorf("%q: expected 1x1, got %+v", r, gm)
		}
	}
	if sx, sy := g.Scale(); sx != 2 || sy != 1 {
		t.Errorf("expected scale 2,1, got %v,%v", sx, sy)
	}
}

func TestGridHorizontal(t *testing.T) {
	g := NewGrid(engine.Horizontal)

	tests := []struct {
		r       rune
		advance float64
	}{
		{'a', 1},
		{'中', 2},
		{'\x01', 1},
	}
	for _, tt := range tests {
		gm := g.Measure(char(tt.r))
		if gm.Advance != tt.advance {
			t.Errorf("%q: expected advance %v, got %v", tt.r, tt.advance, gm.Advance)
		}
		if gm.LineHeight != 2 {
			t.Errorf("%q: expected line height 2, got %v", tt.r, gm.LineHeight)
		}
	}
}

func TestGridCellRoundTrip(t *testing.T) {
	for _, flow := range []engine.Flow{engine.Vertical, engine.Horizontal} {
		g := NewGrid(flow)
		for _, xy := range [][2]int{{0, 0}, {3, 7}, {10, 1}} {
			x, y := g.ToCells(g.FromCells(xy[0], xy[1]))
			if x != xy[0] || y != xy[1] {
				t.Errorf("%s: cell %d,%d maps back to %d,%d", flow, xy[0], xy[1], x, y)
			}
		}
	}
}
