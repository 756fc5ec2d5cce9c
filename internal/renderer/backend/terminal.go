package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal implements Backend using tcell.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing screen, such as a
// tcell.SimulationScreen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse(tcell.MouseButtonEvents, tcell.MouseDragEvents)
	t.screen.EnablePaste()
	t.screen.EnableFocus()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

func (t *Terminal) GetCell(x, y int) Cell {
	t.mu.Lock()
	defer t.mu.Unlock()

	mainc, _, style, _ := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	if mainc == 0 {
		mainc = ' '
	}
	return Cell{Rune: mainc, Style: convertTcellStyle(style)}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) SetCursorStyle(style CursorStyle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var tcellStyle tcell.CursorStyle
	switch style {
	case CursorUnderline:
		tcellStyle = tcell.CursorStyleSteadyUnderline
	case CursorBar:
		tcellStyle = tcell.CursorStyleSteadyBar
	default:
		tcellStyle = tcell.CursorStyleSteadyBlock
	}
	t.screen.SetCursorStyle(tcellStyle)
}

func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	if ev == nil {
		return Event{Type: EventNone}
	}
	return convertEvent(ev)
}

func (t *Terminal) PostEvent(event Event) {
	var ev tcell.Event
	switch event.Type {
	case EventKey:
		ev = tcell.NewEventKey(convertToTcellKey(event.Key), event.Rune, convertToTcellMod(event.Mod))
	case EventInterrupt:
		ev = tcell.NewEventInterrupt(event.Data)
	default:
		return
	}
	_ = t.screen.PostEvent(ev) // best-effort; event queue may be full
}

// convertStyle converts a cell Style to tcell.Style.
func convertStyle(s Style) tcell.Style {
	style := tcell.StyleDefault

	if !s.Foreground.Default {
		style = style.Foreground(tcell.NewRGBColor(int32(s.Foreground.R), int32(s.Foreground.G), int32(s.Foreground.B)))
	}
	if !s.Background.Default {
		style = style.Background(tcell.NewRGBColor(int32(s.Background.R), int32(s.Background.G), int32(s.Background.B)))
	}

	if s.Attrs.Has(AttrBold) {
		style = style.Bold(true)
	}
	if s.Attrs.Has(AttrDim) {
		style = style.Dim(true)
	}
	if s.Attrs.Has(AttrItalic) {
		style = style.Italic(true)
	}
	if s.Attrs.Has(AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attrs.Has(AttrReverse) {
		style = style.Reverse(true)
	}
	if s.Attrs.Has(AttrStrikeThrough) {
		style = style.StrikeThrough(true)
	}
	return style
}

// convertTcellStyle converts tcell.Style back to a cell Style.
func convertTcellStyle(ts tcell.Style) Style {
	fg, bg, attrs := ts.Decompose()

	s := Style{
		Foreground: convertTcellColor(fg),
		Background: convertTcellColor(bg),
	}
	if attrs&tcell.AttrBold != 0 {
		s.Attrs |= AttrBold
	}
	if attrs&tcell.AttrDim != 0 {
		s.Attrs |= AttrDim
	}
	if attrs&tcell.AttrItalic != 0 {
		s.Attrs |= AttrItalic
	}
	if attrs&tcell.AttrUnderline != 0 {
		s.Attrs |= AttrUnderline
	}
	if attrs&tcell.AttrReverse != 0 {
		s.Attrs |= AttrReverse
	}
	if attrs&tcell.AttrStrikeThrough != 0 {
		s.Attrs |= AttrStrikeThrough
	}
	return s
}

func convertTcellColor(tc tcell.Color) Color {
	if tc == tcell.ColorDefault {
		return ColorDefault
	}
	r, g, b := tc.RGB()
	return RGB(uint8(r), uint8(g), uint8(b))
}

// convertEvent converts tcell events to Event.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return convertKeyEvent(e)

	case *tcell.EventMouse:
		x, y := e.Position()
		return Event{
			Type:        EventMouse,
			MouseX:      x,
			MouseY:      y,
			MouseButton: convertMouseButton(e.Buttons()),
			Mod:         convertMod(e.Modifiers()),
		}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}

	case *tcell.EventPaste:
		return Event{Type: EventPaste, Focused: e.Start()}

	case *tcell.EventFocus:
		return Event{Type: EventFocus, Focused: e.Focused}

	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt, Data: e.Data()}

	default:
		return Event{Type: EventNone}
	}
}

func convertKeyEvent(e *tcell.EventKey) Event {
	ev := Event{Type: EventKey, Mod: convertMod(e.Modifiers())}
	k := e.Key()

	switch k {
	case tcell.KeyRune:
		ev.Key = KeyRune
		ev.Rune = e.Rune()
	case tcell.KeyEscape:
		ev.Key = KeyEscape
	case tcell.KeyEnter:
		ev.Key = KeyEnter
	case tcell.KeyTab:
		ev.Key = KeyTab
	case tcell.KeyBacktab:
		ev.Key = KeyBacktab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ev.Key = KeyBackspace
	case tcell.KeyDelete:
		ev.Key = KeyDelete
	case tcell.KeyInsert:
		ev.Key = KeyInsert
	case tcell.KeyHome:
		ev.Key = KeyHome
	case tcell.KeyEnd:
		ev.Key = KeyEnd
	case tcell.KeyPgUp:
		ev.Key = KeyPageUp
	case tcell.KeyPgDn:
		ev.Key = KeyPageDown
	case tcell.KeyUp:
		ev.Key = KeyUp
	case tcell.KeyDown:
		ev.Key = KeyDown
	case tcell.KeyLeft:
		ev.Key = KeyLeft
	case tcell.KeyRight:
		ev.Key = KeyRight
	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			ev.Key = KeyRune
			ev.Rune = 'a' + rune(k-tcell.KeyCtrlA)
			ev.Mod |= ModCtrl
			return ev
		}
		ev.Key = KeyNone
	}
	return ev
}

func convertToTcellKey(k Key) tcell.Key {
	switch k {
	case KeyEscape:
		return tcell.KeyEscape
	case KeyEnter:
		return tcell.KeyEnter
	case KeyTab:
		return tcell.KeyTab
	case KeyBacktab:
		return tcell.KeyBacktab
	case KeyBackspace:
		return tcell.KeyBackspace2
	case KeyDelete:
		return tcell.KeyDelete
	case KeyInsert:
		return tcell.KeyInsert
	case KeyHome:
		return tcell.KeyHome
	case KeyEnd:
		return tcell.KeyEnd
	case KeyPageUp:
		return tcell.KeyPgUp
	case KeyPageDown:
		return tcell.KeyPgDn
	case KeyUp:
		return tcell.KeyUp
	case KeyDown:
		return tcell.KeyDown
	case KeyLeft:
		return tcell.KeyLeft
	case KeyRight:
		return tcell.KeyRight
	default:
		return tcell.KeyRune
	}
}

func convertMod(m tcell.ModMask) ModMask {
	var result ModMask
	if m&tcell.ModShift != 0 {
		result |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= ModMeta
	}
	return result
}

func convertToTcellMod(m ModMask) tcell.ModMask {
	var result tcell.ModMask
	if m&ModShift != 0 {
		result |= tcell.ModShift
	}
	if m&ModCtrl != 0 {
		result |= tcell.ModCtrl
	}
	if m&ModAlt != 0 {
		result |= tcell.ModAlt
	}
	if m&ModMeta != 0 {
		result |= tcell.ModMeta
	}
	return result
}

func convertMouseButton(b tcell.ButtonMask) MouseButton {
	switch {
	case b&tcell.Button1 != 0:
		return MouseLeft
	case b&tcell.Button2 != 0:
		return MouseMiddle
	case b&tcell.Button3 != 0:
		return MouseRight
	case b&tcell.WheelUp != 0:
		return MouseWheelUp
	case b&tcell.WheelDown != 0:
		return MouseWheelDown
	default:
		return MouseNone
	}
}
