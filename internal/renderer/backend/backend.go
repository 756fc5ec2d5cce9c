// Package backend provides the cell surfaces the renderer draws on: a tcell
// terminal and an in-memory NullBackend for tests and offline rendering.
package backend

import (
	"strings"
	"sync"
)

// CursorStyle defines how the terminal cursor appears.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventPaste
	EventFocus
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields. Control letters arrive as KeyRune with ModCtrl and
	// a lower-case Rune.
	Key  Key
	Rune rune
	Mod  ModMask

	// Mouse event fields. MouseButton is MouseNone on release and on
	// motion without a button.
	MouseX, MouseY int
	MouseButton    MouseButton

	// Resize event fields
	Width, Height int

	// Focus and paste fields. For EventPaste, Focused is true at the start
	// of a bracketed paste and false at its end.
	Focused bool

	// Data carries the payload of an EventInterrupt.
	Data any
}

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// MouseButton represents mouse button state.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// Backend is a drawable cell surface with an event source.
type Backend interface {
	// Init prepares the backend. Must be called before any other method.
	Init() error

	// Shutdown releases resources and restores the terminal.
	Shutdown()

	// Size returns the surface dimensions in cells.
	Size() (width, height int)

	// SetCell sets one cell. Positions outside the surface are ignored.
	SetCell(x, y int, cell Cell)

	// GetCell returns the cell at a position, or an empty cell outside
	// the surface.
	GetCell(x, y int) Cell

	// Clear blanks the surface.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// SetCursorStyle changes the cursor appearance.
	SetCursorStyle(style CursorStyle)

	// PollEvent blocks until the next event. It returns an EventNone event
	// once the backend is shut down.
	PollEvent() Event

	// PostEvent queues a synthetic event. Safe to call from any goroutine.
	PostEvent(event Event)
}

// NullBackend is an in-memory backend for tests and offline rendering.
type NullBackend struct {
	mu            sync.Mutex
	width, height int
	cells         [][]Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	cursorStyle   CursorStyle
	shows         int
	events        chan Event
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
	}
	b.allocate()
	return b
}

func (b *NullBackend) allocate() {
	b.cells = make([][]Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = EmptyCell()
		}
	}
}

func (b *NullBackend) Init() error { return nil }

func (b *NullBackend) Shutdown() {
	b.PostEvent(Event{Type: EventNone})
}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

func (b *NullBackend) GetCell(x, y int) Cell {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return EmptyCell()
}

func (b *NullBackend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	empty := EmptyCell()
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = empty
		}
	}
}

func (b *NullBackend) Show() {
	b.mu.Lock()
	b.shows++
	b.mu.Unlock()
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorVisible = false
}

func (b *NullBackend) SetCursorStyle(style CursorStyle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorStyle = style
}

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

// CursorPosition returns the cursor position and visibility.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursorX, b.cursorY, b.cursorVisible
}

// CursorStyleValue returns the current cursor style.
func (b *NullBackend) CursorStyleValue() CursorStyle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursorStyle
}

// ShowCount returns how many times Show was called.
func (b *NullBackend) ShowCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shows
}

// Resize changes the dimensions and blanks the surface.
func (b *NullBackend) Resize(width, height int) {
	b.mu.Lock()
	b.width = width
	b.height = height
	b.allocate()
	b.mu.Unlock()
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}

// Lines returns the surface as text, one string per row, with trailing
// blanks removed. The cell covered by a wide rune is skipped.
func (b *NullBackend) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	lines := make([]string, b.height)
	var sb strings.Builder
	for y, row := range b.cells {
		sb.Reset()
		for x := 0; x < len(row); x++ {
			c := row[x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			sb.WriteRune(r)
			x += c.Width() - 1
		}
		lines[y] = strings.TrimRight(sb.String(), " ")
	}
	return lines
}

// String returns Lines joined with newlines, without trailing empty rows.
func (b *NullBackend) String() string {
	lines := b.Lines()
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
