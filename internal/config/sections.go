package config

import (
	"time"

	"github.com/dshills/vtext/internal/caret"
	"github.com/dshills/vtext/internal/engine"
	"github.com/dshills/vtext/internal/engine/style"
	"github.com/dshills/vtext/internal/logging"
	"github.com/dshills/vtext/internal/renderer/layout"
)

// EditorConfig holds document and view settings.
type EditorConfig struct {
	// Flow is "vertical" or "horizontal".
	Flow string `toml:"flow"`

	// Alignment along the flow axis: start, center, end, or the physical
	// names top, bottom, left, right.
	Alignment string `toml:"alignment"`

	// SegmentSpacing is the number of blank cells between segments.
	SegmentSpacing int `toml:"segment_spacing"`

	// MinExtent is the smallest flow length of a frame in font units.
	MinExtent float64 `toml:"min_extent"`

	// MaxUndo caps the undo stack. Zero keeps the engine default.
	MaxUndo int `toml:"max_undo"`

	// SelectionColor is the selection background as "#rrggbb".
	SelectionColor string `toml:"selection_color"`
}

// FlowValue returns the parsed flow, or Vertical when invalid.
func (c EditorConfig) FlowValue() engine.Flow {
	f, err := engine.ParseFlow(c.Flow)
	if err != nil {
		return engine.Vertical
	}
	return f
}

// AlignmentValue returns the parsed alignment, or AlignStart when invalid.
func (c EditorConfig) AlignmentValue() layout.Alignment {
	a, err := layout.ParseAlignment(c.Alignment)
	if err != nil {
		return layout.AlignStart
	}
	return a
}

// SelectionColorValue returns the parsed selection color and whether it
// was valid.
func (c EditorConfig) SelectionColorValue() (style.Color, bool) {
	col, err := style.ParseColor(c.SelectionColor)
	return col, err == nil
}

// LayoutConfig returns frame geometry settings.
func (c EditorConfig) LayoutConfig() layout.Config {
	lc := layout.DefaultConfig()
	lc.Flow = c.FlowValue()
	lc.Alignment = c.AlignmentValue()
	lc.MinExtent = c.MinExtent
	return lc
}

// FormatConfig holds the typing format of new documents.
type FormatConfig struct {
	Family        string  `toml:"family"`
	Size          int     `toml:"size"`
	Bold          bool    `toml:"bold"`
	Italic        bool    `toml:"italic"`
	Underline     bool    `toml:"underline"`
	Overline      bool    `toml:"overline"`
	StrikeOut     bool    `toml:"strikeout"`
	LetterSpacing float64 `toml:"letter_spacing"`
	Color         string  `toml:"color"`
}

// Style converts the section to a character format. Invalid colors fall
// back to the default.
func (c FormatConfig) Style() style.Format {
	f := style.DefaultFormat()
	f.Family = c.Family
	f.PointSize = c.Size
	f.Bold = c.Bold
	f.Italic = c.Italic
	f.Underline = c.Underline
	f.Overline = c.Overline
	f.StrikeOut = c.StrikeOut
	f.LetterSpacing = c.LetterSpacing
	if col, err := style.ParseColor(c.Color); err == nil {
		f.Color = col
	}
	return f
}

// CaretConfig holds caret blink settings.
type CaretConfig struct {
	Blink    bool     `toml:"blink"`
	Interval Duration `toml:"interval"`
}

// BlinkConfig converts the section to blinker settings.
func (c CaretConfig) BlinkConfig() caret.Config {
	return caret.Config{Enabled: c.Blink, Interval: time.Duration(c.Interval)}
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is debug, info, warn or error.
	Level string `toml:"level"`

	// File is the log file path. Empty logs to stderr, which the terminal
	// editor replaces with a discard sink.
	File string `toml:"file"`

	// JSON selects JSON log records.
	JSON bool `toml:"json"`
}

// LoggerConfig converts the section to logger settings.
func (c LoggingConfig) LoggerConfig() logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = logging.ParseLevel(c.Level)
	lc.File = c.File
	lc.JSON = c.JSON
	return lc
}

// Duration is a time.Duration written as a string such as "500ms".
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}
