package loader

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Editor struct {
		Flow    string `toml:"flow"`
		Spacing int    `toml:"spacing"`
	} `toml:"editor"`
}

func TestLoadIntoMissingFile(t *testing.T) {
	l := NewTOMLLoaderWithFS(MapFS{})
	var v sample
	found, err := l.LoadInto("config.toml", &v)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLoadIntoKeepsDefaults(t *testing.T) {
	l := NewTOMLLoaderWithFS(MapFS{"config.toml": "[editor]\nspacing = 2\n"})
	var v sample
	v.Editor.Flow = "vertical"

	found, err := l.LoadInto("config.toml", &v)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "vertical", v.Editor.Flow)
	assert.Equal(t, 2, v.Editor.Spacing)
}

func TestLoadIntoSyntaxError(t *testing.T) {
	l := NewTOMLLoaderWithFS(MapFS{"config.toml": "[editor]\nflow = \n"})
	var v sample
	_, err := l.LoadInto("config.toml", &v)

	var pe *ParseError
	require.True(t, errors.As(err, &pe), "expected ParseError, got %v", err)
	assert.Equal(t, "config.toml", pe.Path)
	assert.Positive(t, pe.Line)
	assert.Contains(t, pe.Error(), "config.toml")
}

func TestLoadIntoUnknownSetting(t *testing.T) {
	l := NewTOMLLoaderWithFS(MapFS{"config.toml": "[editor]\ntabsize = 4\n"})
	var v sample
	_, err := l.LoadInto("config.toml", &v)

	var pe *ParseError
	require.True(t, errors.As(err, &pe), "expected ParseError, got %v", err)
	assert.Contains(t, pe.Message, "unknown setting")
}

func TestDecodeReader(t *testing.T) {
	var v sample
	err := NewTOMLLoader().DecodeReader(strings.NewReader("[editor]\nflow = \"horizontal\"\n"), &v)
	require.NoError(t, err)
	assert.Equal(t, "horizontal", v.Editor.Flow)
}

func TestParseErrorFormat(t *testing.T) {
	tests := []struct {
		err  ParseError
		want string
	}{
		{ParseError{Path: "a", Line: 1, Column: 2, Message: "m"}, "parse error in a at line 1, column 2: m"},
		{ParseError{Path: "a", Line: 1, Message: "m"}, "parse error in a at line 1: m"},
		{ParseError{Path: "a", Message: "m"}, "parse error in a: m"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.err.Error())
	}
}

func TestEnvLoader(t *testing.T) {
	l := NewEnvLoaderFrom("VTEXT_", map[string]string{
		"VTEXT_FLOW":             "horizontal",
		"VTEXT_EDITOR_MAX_UNDO":  "50",
		"VTEXT_LOG_LEVEL":        "debug",
		"VTEXT_FORMAT_BOLD":      "",
		"VTEXT_NOSECTION":        "x",
		"OTHER_EDITOR_FLOW":      "vertical",
		"VTEXT_EDITOR_ALIGNMENT": "center",
	})

	got := l.Load()
	assert.Equal(t, map[string]string{
		"editor.flow":      "horizontal",
		"editor.max_undo":  "50",
		"logging.level":    "debug",
		"format.bold":      "",
		"editor.alignment": "center",
	}, got)
}

func TestEnvLoaderMappedWins(t *testing.T) {
	l := NewEnvLoaderFrom("VTEXT_", map[string]string{
		"VTEXT_FLOW":        "horizontal",
		"VTEXT_EDITOR_FLOW": "vertical",
	})
	assert.Equal(t, "horizontal", l.Load()["editor.flow"])
}

func TestEnvLoaderAddMapping(t *testing.T) {
	l := NewEnvLoaderFrom("VTEXT_", map[string]string{"VTEXT_DIR": "rtl"})
	l.AddMapping("VTEXT_DIR", "editor.flow")
	assert.Equal(t, "rtl", l.Load()["editor.flow"])
}
