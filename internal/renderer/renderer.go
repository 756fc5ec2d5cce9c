package renderer

import (
	"math"
	"sync"
	"time"

	"github.com/dshills/vtext/internal/engine"
	"github.com/dshills/vtext/internal/engine/buffer"
	"github.com/dshills/vtext/internal/engine/cursor"
	"github.com/dshills/vtext/internal/engine/style"
	"github.com/dshills/vtext/internal/renderer/backend"
	"github.com/dshills/vtext/internal/renderer/layout"
	"github.com/dshills/vtext/internal/renderer/measure"
)

// Source provides the document state to draw. *engine.Engine implements it.
type Source interface {
	Segments() []buffer.Segment
	Cursor() cursor.Cursor
	Selection() cursor.Selection
	Flow() engine.Flow
	RevisionID() buffer.RevisionID
}

// Overlay draws below the document area, like a status line.
type Overlay interface {
	// Height returns the rows reserved at the bottom of the screen.
	Height() int

	// Paint draws the overlay starting at row.
	Paint(b backend.Backend, row, width int)
}

// Options configures the renderer.
type Options struct {
	// Layout
	Alignment      layout.Alignment
	SegmentSpacing int // Blank terminal cells between segments

	// Colors
	SelectionColor style.Color // Selection background while focused
	InactiveBlend  float64     // How far the selection fades to gray when unfocused

	// Cursor
	CursorStyle backend.CursorStyle

	// Performance
	MaxFPS int // Maximum frames per second
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		Alignment:      layout.AlignStart,
		SegmentSpacing: 0,
		SelectionColor: style.RGB(0x26, 0x4f, 0x78),
		InactiveBlend:  0.6,
		CursorStyle:    backend.CursorBlock,
		MaxFPS:         60,
	}
}

// Renderer is the main rendering facade.
type Renderer struct {
	mu sync.Mutex

	opts    Options
	backend backend.Backend
	overlay Overlay

	// Screen size and the document area above the overlay.
	screenW, screenH int
	width, height    int

	src    Source
	grid   measure.Grid
	layout *layout.LayoutEngine
	frame  *layout.Frame

	// Source state the frame was laid out from.
	frameRev  buffer.RevisionID
	frameFlow engine.Flow

	// Scroll offset in cells subtracted from frame cells.
	scrollX, scrollY int
	anchored         bool

	caretVisible bool
	focused      bool

	lastFrame    time.Time
	minFrameTime time.Duration
	frameCount   uint64
	needsRedraw  bool
}

// New creates a renderer drawing into b.
func New(b backend.Backend, opts Options) *Renderer {
	width, height := b.Size()
	grid := measure.NewGrid(engine.Vertical)

	r := &Renderer{
		opts:         opts,
		backend:      b,
		screenW:      width,
		screenH:      height,
		width:        width,
		height:       height,
		grid:         grid,
		layout:       layout.NewLayoutEngine(grid, layout.DefaultConfig()),
		caretVisible: true,
		focused:      true,
		needsRedraw:  true,
	}
	r.setFrameRateLocked()
	b.SetCursorStyle(opts.CursorStyle)
	return r
}

func (r *Renderer) setFrameRateLocked() {
	fps := r.opts.MaxFPS
	if fps <= 0 {
		fps = 60
	}
	r.minFrameTime = time.Second / time.Duration(fps)
}

// SetSource sets the document to draw.
func (r *Renderer) SetSource(src Source) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.src = src
	r.frame = nil
	r.anchored = false
	r.needsRedraw = true
}

// Options returns the current options.
func (r *Renderer) Options() Options {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.opts
}

// SetOptions replaces the options.
func (r *Renderer) SetOptions(opts Options) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opts = opts
	r.setFrameRateLocked()
	r.backend.SetCursorStyle(opts.CursorStyle)
	r.needsRedraw = true
}

// SegmentSpacing returns the blank cells drawn between segments.
func (r *Renderer) SegmentSpacing() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.opts.SegmentSpacing
}

// SetSegmentSpacing changes the blank cells between segments. Negative
// values are treated as zero.
func (r *Renderer) SetSegmentSpacing(cells int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opts.SegmentSpacing = max(cells, 0)
	r.needsRedraw = true
}

// Resize updates the screen size.
func (r *Renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.screenW, r.screenH = width, height
	r.applySizeLocked()
}

// SetOverlay reserves the bottom rows of the screen for o. Nil removes it.
func (r *Renderer) SetOverlay(o Overlay) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overlay = o
	r.applySizeLocked()
}

func (r *Renderer) applySizeLocked() {
	r.width, r.height = r.screenW, r.screenH
	if r.overlay != nil {
		r.height = max(0, r.screenH-r.overlay.Height())
	}
	r.anchored = false
	r.needsRedraw = true
}

// Size returns the document area in cells.
func (r *Renderer) Size() (width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

// SetCaretVisible shows or hides the caret on the next frame.
func (r *Renderer) SetCaretVisible(visible bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.caretVisible != visible {
		r.caretVisible = visible
		r.needsRedraw = true
	}
}

// SetFocused records whether the editor has focus. The selection fades
// while unfocused.
func (r *Renderer) SetFocused(focused bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.focused != focused {
		r.focused = focused
		r.needsRedraw = true
	}
}

// MarkDirty schedules a redraw.
func (r *Renderer) MarkDirty() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.needsRedraw = true
}

// NeedsRedraw reports whether a redraw is pending.
func (r *Renderer) NeedsRedraw() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.needsRedraw
}

// FrameCount returns the number of frames drawn.
func (r *Renderer) FrameCount() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frameCount
}

// Frame returns the geometry of the last drawn frame, or nil before the
// first render.
func (r *Renderer) Frame() *layout.Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frame
}

// LayoutCache returns the segment measurement cache.
func (r *Renderer) LayoutCache() *layout.SegmentCache {
	return r.layout.Cache()
}

// Render draws a frame if one is pending, respecting the frame rate limit.
func (r *Renderer) Render() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if now.Sub(r.lastFrame) < r.minFrameTime {
		return
	}
	if !r.needsRedraw {
		return
	}
	r.lastFrame = now
	r.render()
}

// RenderNow draws a frame immediately, ignoring frame rate limiting.
func (r *Renderer) RenderNow() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastFrame = time.Now()
	r.render()
}

// HitTest maps a terminal cell to a caret position. The frame is laid out
// again first when the document changed since the last render, so the
// result is always a position in the current document. It reports false
// before the first render.
func (r *Renderer) HitTest(x, y int) (cursor.Cursor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.freshFrameLocked() {
		return cursor.Cursor{}, false
	}
	return r.frame.HitTest(r.grid.FromCells(x+r.scrollX, y+r.scrollY)), true
}

// CaretCell returns the screen cell of the caret.
func (r *Renderer) CaretCell() (x, y int, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.freshFrameLocked() {
		return 0, 0, false
	}
	cx, cy := r.caretCellLocked(r.src.Cursor())
	return cx - r.scrollX, cy - r.scrollY, true
}

// render performs the actual rendering (must hold lock).
func (r *Renderer) render() {
	r.needsRedraw = false
	r.frameCount++

	r.backend.Clear()
	if r.src == nil {
		r.frame = nil
		r.backend.HideCursor()
		r.paintOverlay()
		r.backend.Show()
		return
	}

	flow := r.layoutLocked()
	cur := r.src.Cursor()
	sel := r.src.Selection()

	r.scrollLocked(cur)
	r.paintGlyphs(flow == engine.Vertical)
	r.paintSelection(sel)
	r.paintCaret(cur)
	r.paintOverlay()
	r.backend.Show()
}

func (r *Renderer) paintOverlay() {
	if r.overlay != nil && r.height < r.screenH {
		r.overlay.Paint(r.backend, r.height, r.width)
	}
}

// layoutLocked lays the source out into a new frame and returns its flow.
// The revision is read before the segments, so an edit racing the layout
// leaves the frame marked stale.
func (r *Renderer) layoutLocked() engine.Flow {
	flow := r.src.Flow()
	rev := r.src.RevisionID()
	r.relayoutLocked(flow)
	r.frame = r.layout.Layout(r.src.Segments())
	r.frameRev, r.frameFlow = rev, flow
	return flow
}

// freshFrameLocked lays the source out again when the frame is older than
// the document. It reports false when nothing has been rendered yet.
func (r *Renderer) freshFrameLocked() bool {
	if r.frame == nil || r.src == nil {
		return false
	}
	if r.src.RevisionID() != r.frameRev || r.src.Flow() != r.frameFlow {
		r.layoutLocked()
		if !r.anchored {
			r.scrollLocked(r.src.Cursor())
		}
	}
	return true
}

// relayoutLocked points the grid and layout engine at flow and the current
// screen size.
func (r *Renderer) relayoutLocked(flow engine.Flow) {
	if r.grid.Flow != flow {
		r.grid = measure.NewGrid(flow)
		r.layout.SetMeasurer(r.grid)
		r.anchored = false
	}

	sx, sy := r.grid.Scale()
	cfg := layout.Config{
		Flow:            flow,
		Alignment:       r.opts.Alignment,
		DefaultCellSize: r.grid.DefaultCellSize(),
	}
	if flow == engine.Vertical {
		cfg.SegmentSpacing = float64(r.opts.SegmentSpacing) / sx
		cfg.MinExtent = float64(r.height) / sy
	} else {
		cfg.SegmentSpacing = float64(r.opts.SegmentSpacing) / sy
		cfg.MinExtent = float64(r.width) / sx
	}
	r.layout.SetConfig(cfg)
}

// scrollLocked keeps the caret on screen. Vertical documents start at
// their right edge, where the first column is.
func (r *Renderer) scrollLocked(cur cursor.Cursor) {
	b := r.frame.Bounds()
	sx, sy := r.grid.Scale()
	contentW := int(math.Ceil(b.Width * sx))
	contentH := int(math.Ceil(b.Height * sy))
	cx, cy := r.caretCellLocked(cur)

	vertical := r.frame.Flow() == engine.Vertical
	if !r.anchored {
		r.scrollX, r.scrollY = 0, 0
		if vertical {
			r.scrollX = contentW
		}
		r.anchored = true
	}
	r.scrollX = follow(r.scrollX, cx, r.width, contentW, vertical)
	r.scrollY = follow(r.scrollY, cy, r.height, contentH, false)
}

// follow returns a scroll offset that shows caret within a viewport of size
// over content cells. Content smaller than the viewport sticks to the start,
// or to the end when alignEnd is set.
func follow(scroll, caret, size, content int, alignEnd bool) int {
	if size <= 0 {
		return 0
	}
	if content <= size {
		if alignEnd {
			return content - size
		}
		return 0
	}
	scroll = max(0, min(scroll, content-size))
	if caret < scroll {
		scroll = caret
	} else if caret >= scroll+size {
		scroll = caret - size + 1
	}
	return scroll
}

func (r *Renderer) caretCellLocked(cur cursor.Cursor) (x, y int) {
	a, _ := r.frame.CaretLine(clampCursor(r.frame, cur))
	return r.grid.ToCells(a)
}

// clampCursor keeps c inside the frame in case the source changed between
// reading segments and reading the cursor.
func clampCursor(f *layout.Frame, c cursor.Cursor) cursor.Cursor {
	c.Segment = max(0, min(c.Segment, f.SegmentCount()-1))
	c.Offset = max(0, min(c.Offset, len(f.Segment(c.Segment))))
	return c
}

func (r *Renderer) paintGlyphs(vertical bool) {
	for i := 0; i < r.frame.SegmentCount(); i++ {
		for _, g := range r.frame.Glyphs(i) {
			x, y := r.grid.ToCells(layout.Point{X: g.Box.X, Y: g.Box.Y})
			x -= r.scrollX
			y -= r.scrollY
			if y < 0 || y >= r.height || x < -1 || x >= r.width {
				continue
			}

			cell := backend.NewCell(displayRune(g.Char.Rune, vertical), cellStyle(g.Char.Format))
			r.backend.SetCell(x, y, cell)
			// A vertical character fills two columns; pad the ones that
			// stayed narrow.
			if vertical && cell.Width() == 1 {
				r.backend.SetCell(x+1, y, backend.NewCell(' ', cell.Style))
			}
		}
	}
}

func (r *Renderer) paintSelection(sel cursor.Selection) {
	bg := r.opts.SelectionColor
	if !r.focused {
		bg = bg.Blend(style.RGB(0x80, 0x80, 0x80), r.opts.InactiveBlend)
	}
	sx, sy := r.grid.Scale()

	for _, rect := range r.frame.SelectionRects(sel) {
		x0, x1 := cellSpan(rect.X, rect.X+rect.Width, sx)
		y0, y1 := cellSpan(rect.Y, rect.Y+rect.Height, sy)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				sxx, syy := x-r.scrollX, y-r.scrollY
				if sxx < 0 || sxx >= r.width || syy < 0 || syy >= r.height {
					continue
				}
				cell := r.backend.GetCell(sxx, syy)
				cell.Style = selectionStyle(cell.Style, bg)
				r.backend.SetCell(sxx, syy, cell)
				// The second half of a wide rune is not a cell of its own.
				if cell.Width() > 1 {
					x++
				}
			}
		}
	}
}

// cellSpan returns the half-open cell range covering [lo, hi) layout units.
func cellSpan(lo, hi, scale float64) (int, int) {
	return int(math.Floor(lo*scale + 1e-9)), int(math.Ceil(hi*scale - 1e-9))
}

func (r *Renderer) paintCaret(cur cursor.Cursor) {
	if !r.caretVisible || !r.focused {
		r.backend.HideCursor()
		return
	}
	x, y := r.caretCellLocked(cur)
	x -= r.scrollX
	y -= r.scrollY
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		r.backend.HideCursor()
		return
	}
	r.backend.ShowCursor(x, y)
}
