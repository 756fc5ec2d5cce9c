package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/vtext/internal/engine"
	"github.com/dshills/vtext/internal/engine/cursor"
	"github.com/dshills/vtext/internal/engine/style"
	"github.com/dshills/vtext/internal/input"
)

// module implements the ed API table.
type module struct {
	r *Runner
	e *engine.Engine
}

func newModule(r *Runner) *module {
	return &module{r: r, e: r.engine}
}

func (m *module) loader(L *lua.LState) int {
	L.Push(m.table(L))
	return 1
}

func (m *module) table(L *lua.LState) *lua.LTable {
	return L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		// Content
		"text":          m.text,
		"set_text":      m.setText,
		"segment_count": m.segmentCount,
		"segment":       m.segment,
		"char_count":    m.charCount,

		// Editing
		"type":             m.typeText,
		"paste":            m.paste,
		"backspace":        m.backspace,
		"delete":           m.delete,
		"enter":            m.enter,
		"delete_selection": m.deleteSelection,
		"copy":             m.copy,
		"cut":              m.cut,

		// Caret and selection
		"cursor":          m.cursor,
		"set_cursor":      m.setCursor,
		"move":            m.move,
		"select":          m.selectRange,
		"select_all":      m.selectAll,
		"select_segment":  m.selectSegment,
		"clear_selection": m.clearSelection,
		"has_selection":   m.hasSelection,
		"selection":       m.selection,
		"selected_text":   m.selectedText,

		// Formatting
		"bold":           m.boolFormat(style.Bold),
		"italic":         m.boolFormat(style.Italic),
		"underline":      m.boolFormat(style.Underline),
		"overline":       m.boolFormat(style.Overline),
		"strikeout":      m.boolFormat(style.StrikeOut),
		"family":         m.family,
		"size":           m.size,
		"letter_spacing": m.letterSpacing,
		"color":          m.color,
		"format":         m.format,

		// Flow
		"flow":     m.flow,
		"set_flow": m.setFlow,

		// History
		"undo":     m.undo,
		"can_undo": m.canUndo,

		// Host
		"dispatch": m.dispatch,
		"log":      m.log,
	})
}

// ============================================================================
// Content
// ============================================================================

// text() -> string
func (m *module) text(L *lua.LState) int {
	L.Push(lua.LString(m.e.Text()))
	return 1
}

// set_text(s) replaces the document and clears undo history.
func (m *module) setText(L *lua.LState) int {
	m.e.SetText(L.CheckString(1))
	return 0
}

// segment_count() -> n
func (m *module) segmentCount(L *lua.LState) int {
	L.Push(lua.LNumber(m.e.SegmentCount()))
	return 1
}

// segment(i) -> string
func (m *module) segment(L *lua.LState) int {
	i := m.checkSegment(L, 1)
	L.Push(lua.LString(m.e.Segment(i).Text()))
	return 1
}

// char_count(i) -> n
func (m *module) charCount(L *lua.LState) int {
	i := m.checkSegment(L, 1)
	L.Push(lua.LNumber(m.e.CharacterCount(i)))
	return 1
}

// ============================================================================
// Editing
// ============================================================================

func (m *module) typeText(L *lua.LState) int {
	m.e.Type(L.CheckString(1))
	return 0
}

func (m *module) paste(L *lua.LState) int {
	m.e.Paste(L.CheckString(1))
	return 0
}

func (m *module) backspace(L *lua.LState) int {
	m.e.Backspace()
	return 0
}

func (m *module) delete(L *lua.LState) int {
	m.e.Delete()
	return 0
}

func (m *module) enter(L *lua.LState) int {
	m.e.Enter()
	return 0
}

func (m *module) deleteSelection(L *lua.LState) int {
	m.e.DeleteSelection()
	return 0
}

// copy() -> string
func (m *module) copy(L *lua.LState) int {
	L.Push(lua.LString(m.e.Copy()))
	return 1
}

// cut() -> string
func (m *module) cut(L *lua.LState) int {
	L.Push(lua.LString(m.e.Cut()))
	return 1
}

// ============================================================================
// Caret and Selection
// ============================================================================

// cursor() -> segment, offset
func (m *module) cursor(L *lua.LState) int {
	c := m.e.Cursor()
	L.Push(lua.LNumber(c.Segment))
	L.Push(lua.LNumber(c.Offset))
	return 2
}

// set_cursor(segment, offset)
func (m *module) setCursor(L *lua.LState) int {
	c := m.checkPosition(L, 1)
	m.e.SetCursor(c.Segment, c.Offset)
	return 0
}

// move(name [, extend])
func (m *module) move(L *lua.LState) int {
	name := L.CheckString(1)
	motion, ok := engine.ParseMotion(name)
	if !ok {
		L.ArgError(1, "unknown motion "+name)
		return 0
	}
	if L.OptBool(2, false) {
		m.e.MoveExtend(motion)
	} else {
		m.e.Move(motion)
	}
	return 0
}

// select(anchorSegment, anchorOffset, segment, offset)
func (m *module) selectRange(L *lua.LState) int {
	anchor := m.checkPosition(L, 1)
	active := m.checkPosition(L, 3)
	m.e.Select(anchor, active)
	return 0
}

func (m *module) selectAll(L *lua.LState) int {
	m.e.SelectAll()
	return 0
}

// select_segment(i)
func (m *module) selectSegment(L *lua.LState) int {
	m.e.SelectSegment(m.checkSegment(L, 1))
	return 0
}

func (m *module) clearSelection(L *lua.LState) int {
	m.e.ClearSelection()
	return 0
}

// has_selection() -> bool
func (m *module) hasSelection(L *lua.LState) int {
	L.Push(lua.LBool(m.e.HasSelection()))
	return 1
}

// selection() -> {anchor = {seg, off}, active = {seg, off}} or nil
func (m *module) selection(L *lua.LState) int {
	if !m.e.HasSelection() {
		L.Push(lua.LNil)
		return 1
	}
	sel := m.e.Selection()
	tbl := L.NewTable()
	L.SetField(tbl, "anchor", positionTable(L, sel.Anchor()))
	L.SetField(tbl, "active", positionTable(L, sel.Active()))
	L.Push(tbl)
	return 1
}

// selected_text() -> string
func (m *module) selectedText(L *lua.LState) int {
	L.Push(lua.LString(m.e.SelectedText()))
	return 1
}

func positionTable(L *lua.LState, c cursor.Cursor) *lua.LTable {
	tbl := L.NewTable()
	tbl.RawSetInt(1, lua.LNumber(c.Segment))
	tbl.RawSetInt(2, lua.LNumber(c.Offset))
	return tbl
}

// ============================================================================
// Formatting
// ============================================================================

// boolFormat returns a setter taking an optional bool, true by default.
func (m *module) boolFormat(fn func(bool) style.Mutator) lua.LGFunction {
	return func(L *lua.LState) int {
		m.e.ApplyFormat(fn(L.OptBool(1, true)))
		return 0
	}
}

// family(name)
func (m *module) family(L *lua.LState) int {
	m.e.SetFamily(L.CheckString(1))
	return 0
}

// size(points)
func (m *module) size(L *lua.LState) int {
	size := L.CheckInt(1)
	if size <= 0 {
		L.ArgError(1, "size must be positive")
		return 0
	}
	m.e.SetPointSize(size)
	return 0
}

// letter_spacing(x)
func (m *module) letterSpacing(L *lua.LState) int {
	m.e.SetLetterSpacing(float64(L.CheckNumber(1)))
	return 0
}

// color("#rrggbb")
func (m *module) color(L *lua.LState) int {
	c, err := style.ParseColor(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	m.e.SetColor(c)
	return 0
}

// format() -> table describing the format at the caret
func (m *module) format(L *lua.LState) int {
	f := m.e.FormatAtCaret()
	tbl := L.NewTable()
	L.SetField(tbl, "family", lua.LString(f.Family))
	L.SetField(tbl, "size", lua.LNumber(f.PointSize))
	L.SetField(tbl, "bold", lua.LBool(f.Bold))
	L.SetField(tbl, "italic", lua.LBool(f.Italic))
	L.SetField(tbl, "underline", lua.LBool(f.Underline))
	L.SetField(tbl, "overline", lua.LBool(f.Overline))
	L.SetField(tbl, "strikeout", lua.LBool(f.StrikeOut))
	L.SetField(tbl, "letter_spacing", lua.LNumber(f.LetterSpacing))
	L.SetField(tbl, "color", lua.LString(f.Color.Hex()))
	L.Push(tbl)
	return 1
}

// ============================================================================
// Flow and History
// ============================================================================

// flow() -> "vertical" | "horizontal"
func (m *module) flow(L *lua.LState) int {
	L.Push(lua.LString(m.e.Flow().String()))
	return 1
}

// set_flow(name)
func (m *module) setFlow(L *lua.LState) int {
	flow, err := engine.ParseFlow(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	m.e.SetFlow(flow)
	return 0
}

// undo() -> bool
func (m *module) undo(L *lua.LState) int {
	L.Push(lua.LBool(m.e.Undo()))
	return 1
}

// can_undo() -> bool
func (m *module) canUndo(L *lua.LState) int {
	L.Push(lua.LBool(m.e.CanUndo()))
	return 1
}

// ============================================================================
// Host
// ============================================================================

// dispatch(name [, args]) -> ok, message
//
// args is a table; the "text" key fills the action text and every other
// string key becomes an extra argument.
func (m *module) dispatch(L *lua.LState) int {
	if m.r.dispatcher == nil {
		L.RaiseError("dispatch: %v", ErrNoDispatcher)
		return 0
	}
	action := input.NewAction(L.CheckString(1), input.SourceScript)
	if tbl, ok := L.Get(2).(*lua.LTable); ok {
		tbl.ForEach(func(k, v lua.LValue) {
			key, ok := k.(lua.LString)
			if !ok {
				return
			}
			if key == "text" {
				action = action.WithText(v.String())
				return
			}
			action = action.WithArg(string(key), fromLua(v))
		})
	}

	result := m.r.dispatcher.Dispatch(action)
	if result.IsError() {
		L.Push(lua.LFalse)
		L.Push(lua.LString(result.Error.Error()))
		return 2
	}
	L.Push(lua.LBool(result.IsOK()))
	L.Push(lua.LString(result.Message))
	return 2
}

// log(message [, level])
func (m *module) log(L *lua.LState) int {
	msg := L.CheckString(1)
	switch L.OptString(2, "info") {
	case "debug":
		m.r.logger.Debug(msg)
	case "warn":
		m.r.logger.Warn(msg)
	case "error":
		m.r.logger.Error(msg)
	default:
		m.r.logger.Info(msg)
	}
	return 0
}

// ============================================================================
// Argument Helpers
// ============================================================================

func (m *module) checkSegment(L *lua.LState, n int) int {
	i := L.CheckInt(n)
	if i < 0 || i >= m.e.SegmentCount() {
		L.ArgError(n, "segment out of range")
	}
	return i
}

// checkPosition reads a (segment, offset) pair starting at argument n.
func (m *module) checkPosition(L *lua.LState, n int) cursor.Cursor {
	seg := m.checkSegment(L, n)
	off := L.CheckInt(n + 1)
	if off < 0 || off > m.e.CharacterCount(seg) {
		L.ArgError(n+1, "offset out of range")
	}
	return cursor.New(seg, off)
}

// fromLua converts scalar Lua values for action arguments.
func fromLua(v lua.LValue) any {
	switch v := v.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		if f := float64(v); f == float64(int(f)) {
			return int(f)
		}
		return float64(v)
	case lua.LString:
		return string(v)
	default:
		return v.String()
	}
}
