package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/vtext/internal/caret"
	"github.com/dshills/vtext/internal/config/loader"
	"github.com/dshills/vtext/internal/engine"
	"github.com/dshills/vtext/internal/engine/style"
	"github.com/dshills/vtext/internal/input/key"
	"github.com/dshills/vtext/internal/logging"
	"github.com/dshills/vtext/internal/renderer/layout"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "VTEXT_"

// Config is the complete vtext configuration.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	Format  FormatConfig  `toml:"format"`
	Caret   CaretConfig   `toml:"caret"`
	Logging LoggingConfig `toml:"logging"`

	// Keys maps key specs such as "ctrl+b" to action names. An empty
	// action unbinds the key.
	Keys map[string]string `toml:"keys"`

	source string
}

// Default returns the built-in configuration.
func Default() *Config {
	f := style.DefaultFormat()
	return &Config{
		Editor: EditorConfig{
			Flow:           engine.Vertical.String(),
			Alignment:      layout.AlignStart.String(),
			MinExtent:      layout.DefaultMinExtent,
			SelectionColor: "#264f78",
		},
		Format: FormatConfig{
			Family: f.Family,
			Size:   f.PointSize,
			Color:  f.Color.Hex(),
		},
		Caret: CaretConfig{
			Blink:    true,
			Interval: Duration(caret.DefaultInterval),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Keys: map[string]string{},
	}
}

// Source returns the file the configuration was read from, or "" when
// only defaults and environment were used.
func (c *Config) Source() string {
	return c.source
}

// options configures Load.
type options struct {
	fs  loader.FileSystem
	env *loader.EnvLoader
}

// Option configures Load.
type Option func(*options)

// WithFS reads the file through fsys.
func WithFS(fsys loader.FileSystem) Option {
	return func(o *options) { o.fs = fsys }
}

// WithEnv replaces the process environment with vars.
func WithEnv(vars map[string]string) Option {
	return func(o *options) { o.env = loader.NewEnvLoaderFrom(EnvPrefix, vars) }
}

// WithoutEnv ignores environment overrides.
func WithoutEnv() Option {
	return func(o *options) { o.env = nil }
}

// Load builds a configuration from defaults, the TOML file at path and
// environment overrides, in that order, and validates the result. A
// missing file is not an error.
func Load(path string, opts ...Option) (*Config, error) {
	o := options{fs: loader.DefaultFS(), env: loader.NewEnvLoader(EnvPrefix)}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := Default()
	if path != "" {
		found, err := loader.NewTOMLLoaderWithFS(o.fs).LoadInto(path, cfg)
		if err != nil {
			return nil, err
		}
		if found {
			cfg.source = path
		}
	}
	if cfg.Keys == nil {
		cfg.Keys = map[string]string{}
	}

	if o.env != nil {
		if err := cfg.applyEnv(o.env.Load()); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPath returns the user configuration file path.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "vtext", "config.toml")
}

func (c *Config) applyEnv(vars map[string]string) error {
	paths := make([]string, 0, len(vars))
	for p := range vars {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		if err := c.Set(p, vars[p]); err != nil {
			return fmt.Errorf("environment override %s: %w", p, err)
		}
	}
	return nil
}

// Set assigns a setting from its string form. Paths use the TOML names,
// for example "editor.flow" or "keys.ctrl+b".
func (c *Config) Set(path, raw string) error {
	section, name, ok := strings.Cut(path, ".")
	if !ok || name == "" {
		return fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	switch section {
	case "editor":
		return c.setEditor(path, name, raw)
	case "format":
		return c.setFormat(path, name, raw)
	case "caret":
		return c.setCaret(path, name, raw)
	case "logging":
		return c.setLogging(path, name, raw)
	case "keys":
		if c.Keys == nil {
			c.Keys = map[string]string{}
		}
		c.Keys[name] = raw
		return nil
	}
	return fmt.Errorf("%w: %s", ErrSettingNotFound, path)
}

func (c *Config) setEditor(path, name, raw string) error {
	e := &c.Editor
	switch name {
	case "flow":
		e.Flow = raw
	case "alignment":
		e.Alignment = raw
	case "segment_spacing":
		return parseInt(path, raw, &e.SegmentSpacing)
	case "min_extent":
		return parseFloat(path, raw, &e.MinExtent)
	case "max_undo":
		return parseInt(path, raw, &e.MaxUndo)
	case "selection_color":
		e.SelectionColor = raw
	default:
		return fmt.Errorf("%w: %s", ErrSettingNotFound, path)
	}
	return nil
}

func (c *Config) setFormat(path, name, raw string) error {
	f := &c.Format
	switch name {
	case "family":
		f.Family = raw
	case "size":
		return parseInt(path, raw, &f.Size)
	case "bold":
		return parseBool(path, raw, &f.Bold)
	case "italic":
		return parseBool(path, raw, &f.Italic)
	case "underline":
		return parseBool(path, raw, &f.Underline)
	case "overline":
		return parseBool(path, raw, &f.Overline)
	case "strikeout":
		return parseBool(path, raw, &f.StrikeOut)
	case "letter_spacing":
		return parseFloat(path, raw, &f.LetterSpacing)
	case "color":
		f.Color = raw
	default:
		return fmt.Errorf("%w: %s", ErrSettingNotFound, path)
	}
	return nil
}

func (c *Config) setCaret(path, name, raw string) error {
	switch name {
	case "blink":
		return parseBool(path, raw, &c.Caret.Blink)
	case "interval":
		d, err := time.ParseDuration(raw)
		if err != nil {
			return &TypeError{Path: path, Expected: "duration", Raw: raw}
		}
		c.Caret.Interval = Duration(d)
		return nil
	}
	return fmt.Errorf("%w: %s", ErrSettingNotFound, path)
}

func (c *Config) setLogging(path, name, raw string) error {
	switch name {
	case "level":
		c.Logging.Level = raw
	case "file":
		c.Logging.File = raw
	case "json":
		return parseBool(path, raw, &c.Logging.JSON)
	default:
		return fmt.Errorf("%w: %s", ErrSettingNotFound, path)
	}
	return nil
}

func parseInt(path, raw string, dst *int) error {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return &TypeError{Path: path, Expected: "integer", Raw: raw}
	}
	*dst = n
	return nil
}

func parseFloat(path, raw string, dst *float64) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return &TypeError{Path: path, Expected: "number", Raw: raw}
	}
	*dst = f
	return nil
}

func parseBool(path, raw string, dst *bool) error {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "yes", "on", "1":
		*dst = true
	case "false", "no", "off", "0":
		*dst = false
	default:
		return &TypeError{Path: path, Expected: "boolean", Raw: raw}
	}
	return nil
}

// Validate checks every setting and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error
	fail := func(path, msg string, value any, code ValidationErrorCode) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value, Code: code})
	}

	if _, err := engine.ParseFlow(c.Editor.Flow); err != nil {
		fail("editor.flow", "must be vertical or horizontal", c.Editor.Flow, ErrCodeInvalidEnum)
	}
	if _, err := layout.ParseAlignment(c.Editor.Alignment); err != nil {
		fail("editor.alignment", "unknown alignment", c.Editor.Alignment, ErrCodeInvalidEnum)
	}
	if c.Editor.SegmentSpacing < 0 {
		fail("editor.segment_spacing", "must not be negative", c.Editor.SegmentSpacing, ErrCodeOutOfRange)
	}
	if c.Editor.MinExtent < 0 {
		fail("editor.min_extent", "must not be negative", c.Editor.MinExtent, ErrCodeOutOfRange)
	}
	if c.Editor.MaxUndo < 0 {
		fail("editor.max_undo", "must not be negative", c.Editor.MaxUndo, ErrCodeOutOfRange)
	}
	if _, ok := c.Editor.SelectionColorValue(); !ok {
		fail("editor.selection_color", "must be #rrggbb", c.Editor.SelectionColor, ErrCodePatternMismatch)
	}

	if c.Format.Size <= 0 {
		fail("format.size", "must be positive", c.Format.Size, ErrCodeOutOfRange)
	}
	if _, err := style.ParseColor(c.Format.Color); err != nil {
		fail("format.color", "must be #rrggbb", c.Format.Color, ErrCodePatternMismatch)
	}

	if c.Caret.Interval <= 0 {
		fail("caret.interval", "must be positive", time.Duration(c.Caret.Interval), ErrCodeOutOfRange)
	}

	if !logging.ValidLevel(c.Logging.Level) {
		fail("logging.level", "must be debug, info, warn or error", c.Logging.Level, ErrCodeInvalidEnum)
	}

	specs := make([]string, 0, len(c.Keys))
	for spec := range c.Keys {
		specs = append(specs, spec)
	}
	sort.Strings(specs)
	for _, spec := range specs {
		if _, err := key.Parse(spec); err != nil {
			fail("keys."+spec, "invalid key", spec, ErrCodePatternMismatch)
		}
	}

	return errors.Join(errs...)
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Keys = make(map[string]string, len(c.Keys))
	for k, v := range c.Keys {
		cp.Keys[k] = v
	}
	return &cp
}

// Marshal encodes the configuration as TOML.
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
