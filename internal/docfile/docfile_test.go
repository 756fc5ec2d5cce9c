package docfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/vtext/internal/engine"
	"github.com/dshills/vtext/internal/engine/buffer"
	"github.com/dshills/vtext/internal/engine/style"
)

func styledEngine(t *testing.T) *engine.Engine {
	t.Helper()
	plain := style.DefaultFormat()
	bold := plain
	bold.Bold = true
	red := plain
	red.Color = style.RGB(255, 0, 0)
	red.PointSize = 22

	seg0 := buffer.NewSegment("縦書き", plain).Concat(buffer.NewSegment("ab", bold))
	seg1 := buffer.Segment{}
	seg2 := buffer.NewSegment("x", red)
	return engine.New(
		engine.WithSegments([]buffer.Segment{seg0, seg1, seg2}),
		engine.WithFlow(engine.Horizontal),
	)
}

func TestKindFor(t *testing.T) {
	tests := []struct {
		path string
		want Kind
	}{
		{"doc.vtx", KindRich},
		{"doc.YAML", KindRich},
		{"dir/doc.yml", KindRich},
		{"notes.txt", KindText},
		{"README", KindText},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, KindFor(tt.path))
		})
	}
	assert.Equal(t, "rich", KindRich.String())
	assert.Equal(t, "text", KindText.String())
}

func TestCaptureGroupsRuns(t *testing.T) {
	e := styledEngine(t)
	f := Capture(e, "")

	assert.Equal(t, Version, f.Version)
	assert.Equal(t, "horizontal", f.Flow)
	_, err := uuid.Parse(f.ID)
	require.NoError(t, err)

	require.Len(t, f.Segments, 3)
	require.Len(t, f.Segments[0].Runs, 2)
	assert.Equal(t, "縦書き", f.Segments[0].Runs[0].Text)
	assert.Equal(t, "ab", f.Segments[0].Runs[1].Text)
	assert.True(t, f.Segments[0].Runs[1].Style.Bold)
	assert.Empty(t, f.Segments[1].Runs)
	assert.Equal(t, "#ff0000", f.Segments[2].Runs[0].Style.Color)
	assert.Equal(t, 22, f.Segments[2].Runs[0].Style.Size)
}

func TestCaptureKeepsID(t *testing.T) {
	f := Capture(engine.New(), "fixed-id")
	assert.Equal(t, "fixed-id", f.ID)
}

func TestEncodeDecodePreservesFormats(t *testing.T) {
	src := styledEngine(t)
	data, err := Encode(Capture(src, "doc-1"))
	require.NoError(t, err)

	f, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "doc-1", f.ID)

	dst := engine.New()
	require.NoError(t, f.Apply(dst))

	assert.Equal(t, engine.Horizontal, dst.Flow())
	require.Equal(t, src.SegmentCount(), dst.SegmentCount())
	for i := 0; i < src.SegmentCount(); i++ {
		assert.True(t, src.Segment(i).Equal(dst.Segment(i)), "segment %d", i)
	}
	assert.False(t, dst.CanUndo())
}

func TestDecodeDefaults(t *testing.T) {
	data := []byte(`
version: 1
segments:
  - runs:
      - text: hi
        style: {italic: true}
`)
	f, err := Decode(data)
	require.NoError(t, err)
	assert.NotEmpty(t, f.ID)
	assert.Equal(t, "vertical", f.Flow)

	flow, segs, err := f.Decoded()
	require.NoError(t, err)
	assert.Equal(t, engine.Vertical, flow)
	require.Len(t, segs, 1)
	require.Len(t, segs[0], 2)

	want := style.DefaultFormat()
	want.Italic = true
	assert.Equal(t, want, segs[0][0].Format)
}

func TestDecodeErrors(t *testing.T) {
	t.Run("version", func(t *testing.T) {
		_, err := Decode([]byte("version: 7\n"))
		assert.ErrorIs(t, err, ErrUnsupportedVersion)
	})

	t.Run("syntax", func(t *testing.T) {
		_, err := Decode([]byte("version: [\n"))
		assert.Error(t, err)
	})

	t.Run("color", func(t *testing.T) {
		f, err := Decode([]byte(`
version: 1
segments:
  - runs:
      - text: x
        style: {color: "not a color"}
`))
		require.NoError(t, err)
		_, _, err = f.Decoded()
		assert.ErrorIs(t, err, ErrInvalidStyle)
	})

	t.Run("size", func(t *testing.T) {
		f := &File{Version: Version, Flow: "vertical", Segments: []Segment{{Runs: []Run{{Text: "x", Style: Style{Size: -1}}}}}}
		_, _, err := f.Decoded()
		assert.ErrorIs(t, err, ErrInvalidStyle)
	})

	t.Run("flow", func(t *testing.T) {
		f := &File{Version: Version, Flow: "diagonal"}
		assert.ErrorIs(t, f.Apply(engine.New()), engine.ErrUnknownFlow)
	})
}

func TestSaveLoadRich(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.vtx")
	src := styledEngine(t)
	require.NoError(t, Save(path, src, "saved-id"))

	dst := engine.New()
	id, err := Load(path, dst)
	require.NoError(t, err)
	assert.Equal(t, "saved-id", id)
	assert.Equal(t, src.Text(), dst.Text())
	assert.Equal(t, src.Segments(), dst.Segments())
}

func TestSaveLoadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	src := styledEngine(t)
	require.NoError(t, Save(path, src, ""))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "縦書きab\n\nx", string(data))

	dst := engine.New()
	id, err := Load(path, dst)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, 3, dst.SegmentCount())
	assert.Equal(t, "縦書きab\n\nx", dst.Text())
}

func TestLoadCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dos.txt")
	require.NoError(t, os.WriteFile(path, []byte("ab\r\ncd"), 0644))

	e := engine.New()
	_, err := Load(path, e)
	require.NoError(t, err)
	assert.Equal(t, "ab\ncd", e.Text())
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.vtx"), engine.New())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
