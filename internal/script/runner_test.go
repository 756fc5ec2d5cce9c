package script

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/vtext/internal/dispatcher"
	"github.com/dshills/vtext/internal/engine"
	"github.com/dshills/vtext/internal/logging"
)

func newRunner(t *testing.T, content string, opts ...Option) (*Runner, *engine.Engine, *bytes.Buffer) {
	t.Helper()
	e := engine.New(engine.WithContent(content))
	var out bytes.Buffer
	opts = append([]Option{WithOutput(&out)}, opts...)
	return New(e, opts...), e, &out
}

func run(t *testing.T, r *Runner, code string) {
	t.Helper()
	require.NoError(t, r.Run(context.Background(), "test", code))
}

// ============================================================================
// Editing
// ============================================================================

func TestTypeAtEnd(t *testing.T) {
	r, e, _ := newRunner(t, "abc")
	run(t, r, `ed.move("end"); ed.type("XY")`)

	assert.Equal(t, "abcXY", e.Text())
	seg, off := e.Cursor().Segment, e.Cursor().Offset
	assert.Equal(t, 0, seg)
	assert.Equal(t, 5, off)
}

func TestRunIsOneUndoStep(t *testing.T) {
	r, e, _ := newRunner(t, "abc")
	run(t, r, `
ed.move("end")
ed.type("d")
ed.enter()
ed.type("e")
ed.backspace()
`)
	assert.Equal(t, "abcd\n", e.Text())
	assert.Equal(t, 1, e.UndoCount())

	require.True(t, e.Undo())
	assert.Equal(t, "abc", e.Text())
}

func TestFailedRunRollsBack(t *testing.T) {
	r, e, _ := newRunner(t, "abc")
	err := r.Run(context.Background(), "broken", `ed.type("zz"); error("boom")`)
	require.Error(t, err)

	var serr *Error
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "broken", serr.Name)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, "abc", e.Text())
}

func TestFailedRunRestoresFormatAndHistory(t *testing.T) {
	r, e, _ := newRunner(t, "abc")
	run(t, r, `ed.move("end"); ed.type("d")`)
	require.Equal(t, 1, e.UndoCount())
	rev := e.RevisionID()

	err := r.Run(context.Background(), "styled", `
ed.bold(true)
ed.select(0, 0, 0, 2)
ed.italic()
ed.set_flow("horizontal")
error("boom")
`)
	require.Error(t, err)

	assert.False(t, e.CurrentFormat().Bold)
	assert.False(t, e.Segment(0)[0].Format.Italic)
	assert.False(t, e.HasSelection())
	assert.Equal(t, engine.Vertical, e.Flow())
	assert.Equal(t, 1, e.UndoCount())
	assert.Equal(t, rev, e.RevisionID())
}

func TestFailedRunKeepsEarlierHistory(t *testing.T) {
	r, e, _ := newRunner(t, "abc")
	run(t, r, `ed.move("end"); ed.type("d")`)

	err := r.Run(context.Background(), "wipe", `ed.undo(); ed.set_text("gone"); error("boom")`)
	require.Error(t, err)

	assert.Equal(t, "abcd", e.Text())
	require.Equal(t, 1, e.UndoCount())
	require.True(t, e.Undo())
	assert.Equal(t, "abc", e.Text())
}

func TestPositionChecks(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"segment", `ed.set_cursor(3, 0)`},
		{"offset", `ed.set_cursor(0, 9)`},
		{"negative", `ed.set_cursor(0, -1)`},
		{"select", `ed.select(0, 0, 1, 0)`},
		{"motion", `ed.move("sideways")`},
		{"size", `ed.size(0)`},
		{"color", `ed.color("nope")`},
		{"flow", `ed.set_flow("diagonal")`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, e, _ := newRunner(t, "abc")
			assert.Error(t, r.Run(context.Background(), tt.name, tt.code))
			assert.Equal(t, "abc", e.Text())
		})
	}
}

func TestSelectionAPI(t *testing.T) {
	r, e, out := newRunner(t, "abc\nde")
	run(t, r, `
ed.select(0, 1, 1, 1)
print(ed.has_selection(), ed.selected_text())
local s = ed.selection()
print(s.anchor[1], s.anchor[2], s.active[1], s.active[2])
ed.clear_selection()
print(ed.selection())
`)
	assert.Equal(t, "true\tbc\nd\n0\t1\t1\t1\nnil\n", out.String())
	assert.False(t, e.HasSelection())
}

func TestMoveExtend(t *testing.T) {
	r, _, out := newRunner(t, "abc")
	run(t, r, `ed.move("end", true); print(ed.selected_text())`)
	assert.Equal(t, "abc\n", out.String())
}

func TestCutAndPaste(t *testing.T) {
	r, e, out := newRunner(t, "hello")
	run(t, r, `
ed.select_segment(0)
local s = ed.cut()
ed.paste(s .. s)
print(s)
`)
	assert.Equal(t, "hello\n", out.String())
	assert.Equal(t, "hellohello", e.Text())
}

func TestContentQueries(t *testing.T) {
	r, _, out := newRunner(t, "ab\n\nxyz")
	run(t, r, `print(ed.segment_count(), ed.segment(2), ed.char_count(0), ed.char_count(1))`)
	assert.Equal(t, "3\txyz\t2\t0\n", out.String())
}

func TestSetTextClearsHistory(t *testing.T) {
	r, e, _ := newRunner(t, "abc")
	run(t, r, `ed.set_text("new\ntext")`)
	assert.Equal(t, "new\ntext", e.Text())
	assert.Equal(t, 2, e.SegmentCount())
}

// ============================================================================
// Formatting and Flow
// ============================================================================

func TestFormatSelection(t *testing.T) {
	r, e, _ := newRunner(t, "abc")
	run(t, r, `
ed.select(0, 0, 0, 2)
ed.bold()
ed.color("#ff0000")
ed.size(20)
`)
	seg := e.Segment(0)
	assert.True(t, seg[0].Format.Bold)
	assert.True(t, seg[1].Format.Bold)
	assert.False(t, seg[2].Format.Bold)
	assert.Equal(t, "#ff0000", seg[0].Format.Color.Hex())
	assert.Equal(t, 20, seg[1].Format.PointSize)
	assert.Equal(t, 1, e.UndoCount())
}

func TestTypingFormat(t *testing.T) {
	r, e, out := newRunner(t, "")
	run(t, r, `
ed.italic(true)
ed.family("Mono")
ed.type("x")
local f = ed.format()
print(f.italic, f.bold, f.family, f.size, f.color)
`)
	assert.Equal(t, "true\tfalse\tMono\t15\t#000000\n", out.String())
	assert.True(t, e.Segment(0)[0].Format.Italic)
}

func TestFlow(t *testing.T) {
	r, e, out := newRunner(t, "abc")
	run(t, r, `print(ed.flow()); ed.set_flow("horizontal"); print(ed.flow())`)
	assert.Equal(t, "vertical\nhorizontal\n", out.String())
	assert.Equal(t, engine.Horizontal, e.Flow())
}

// ============================================================================
// Host Integration
// ============================================================================

func TestDispatch(t *testing.T) {
	e := engine.New(engine.WithContent("abc"))
	d := dispatcher.NewWithDefaults()
	dispatcher.RegisterDefaults(d)
	d.SetEngine(e)

	var out bytes.Buffer
	r := New(e, WithDispatcher(d), WithOutput(&out))
	run(t, r, `
print(ed.dispatch("view.toggleFlow"))
ed.dispatch("cursor.moveEnd")
print(ed.dispatch("editor.insertText", {text = "!"}))
print(ed.dispatch("nothing.here"))
`)
	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Equal(t, "true\thorizontal", string(lines[0]))
	assert.Equal(t, "true\t", string(lines[1]))
	assert.True(t, bytes.HasPrefix(lines[2], []byte("false\t")))
	assert.Equal(t, "abc!", e.Text())
}

func TestDispatchWithoutDispatcher(t *testing.T) {
	r, _, _ := newRunner(t, "abc")
	err := r.Run(context.Background(), "d", `ed.dispatch("view.toggleFlow")`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrNoDispatcher.Error())
}

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: logging.LevelDebug, Output: &buf})
	r, _, _ := newRunner(t, "", WithLogger(logger))
	run(t, r, `ed.log("hello from lua", "warn")`)
	assert.Contains(t, buf.String(), "hello from lua")
	assert.Contains(t, buf.String(), "component=script")
}

// ============================================================================
// Sandbox
// ============================================================================

func TestSandbox(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"dofile", `dofile("/etc/passwd")`},
		{"loadstring", `loadstring("return 1")()`},
		{"require os", `require("os")`},
		{"require io", `require("io")`},
		{"io global", `io.write("x")`},
		{"os global", `os.exit(1)`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := newRunner(t, "")
			assert.Error(t, r.Run(context.Background(), tt.name, tt.code))
		})
	}
}

func TestRequireEd(t *testing.T) {
	r, e, out := newRunner(t, "")
	run(t, r, `
local ed2 = require("ed")
local s = require("string")
ed2.type(s.upper("q"))
print(math.max(1, 2))
`)
	assert.Equal(t, "Q", e.Text())
	assert.Equal(t, "2\n", out.String())
}

func TestFreshStatePerRun(t *testing.T) {
	r, _, out := newRunner(t, "")
	run(t, r, `leaked = 1`)
	run(t, r, `print(leaked)`)
	assert.Equal(t, "nil\n", out.String())
}

func TestTimeout(t *testing.T) {
	r, e, _ := newRunner(t, "abc", WithTimeout(50*time.Millisecond))
	err := r.Run(context.Background(), "loop", `ed.type("x"); while true do end`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, "abc", e.Text())
}

func TestCancelledContext(t *testing.T) {
	r, _, _ := newRunner(t, "", WithTimeout(0))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := r.Run(ctx, "cancelled", `while true do end`)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edit.lua")
	require.NoError(t, os.WriteFile(path, []byte(`ed.type("from file")`), 0644))

	r, e, _ := newRunner(t, "")
	require.NoError(t, r.RunFile(context.Background(), path))
	assert.Equal(t, "from file", e.Text())

	err := r.RunFile(context.Background(), filepath.Join(t.TempDir(), "missing.lua"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
