package docfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dshills/vtext/internal/engine"
	"github.com/dshills/vtext/internal/engine/buffer"
	"github.com/dshills/vtext/internal/engine/style"
)

// Version is the rich file format version written by Encode.
const Version = 1

// Errors returned when decoding rich files.
var (
	ErrUnsupportedVersion = errors.New("unsupported document version")
	ErrInvalidStyle       = errors.New("invalid style")
)

// Kind identifies an on-disk representation.
type Kind uint8

const (
	// KindText is plain UTF-8 text, one segment per line.
	KindText Kind = iota
	// KindRich is the YAML format with per-character styling.
	KindRich
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindRich {
		return "rich"
	}
	return "text"
}

// KindFor picks the representation for path from its extension.
func KindFor(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vtx", ".yaml", ".yml":
		return KindRich
	default:
		return KindText
	}
}

// File is the rich document file structure.
type File struct {
	Version  int       `yaml:"version"`
	ID       string    `yaml:"id"`
	Flow     string    `yaml:"flow"`
	Segments []Segment `yaml:"segments"`
}

// Segment is one column or row stored as runs.
type Segment struct {
	Runs []Run `yaml:"runs"`
}

// Run is text sharing a single style.
type Run struct {
	Text  string `yaml:"text"`
	Style Style  `yaml:"style,flow"`
}

// Style is the serialized form of a character format.
// Zero values fall back to the defaults on decode.
type Style struct {
	Family        string  `yaml:"family,omitempty"`
	Size          int     `yaml:"size,omitempty"`
	Bold          bool    `yaml:"bold,omitempty"`
	Italic        bool    `yaml:"italic,omitempty"`
	Underline     bool    `yaml:"underline,omitempty"`
	Overline      bool    `yaml:"overline,omitempty"`
	StrikeOut     bool    `yaml:"strikeout,omitempty"`
	LetterSpacing float64 `yaml:"letter_spacing,omitempty"`
	Color         string  `yaml:"color,omitempty"`
}

// Source is the part of the engine a File is captured from.
type Source interface {
	Segments() []buffer.Segment
	Flow() engine.Flow
}

// Document is a Source that also renders as plain text.
type Document interface {
	Source
	Text() string
}

// NewID returns a fresh document identifier.
func NewID() string {
	return uuid.New().String()
}

// Capture builds a File from the current document.
// An empty id is replaced by a new one.
func Capture(src Source, id string) *File {
	if id == "" {
		id = NewID()
	}
	segs := src.Segments()
	f := &File{
		Version:  Version,
		ID:       id,
		Flow:     src.Flow().String(),
		Segments: make([]Segment, len(segs)),
	}
	for i, seg := range segs {
		f.Segments[i] = encodeSegment(seg)
	}
	return f
}

// Decoded converts the stored segments back to engine segments.
func (f *File) Decoded() (engine.Flow, []buffer.Segment, error) {
	flow, err := engine.ParseFlow(f.Flow)
	if err != nil {
		return engine.Vertical, nil, err
	}
	segs := make([]buffer.Segment, len(f.Segments))
	for i, s := range f.Segments {
		seg, err := decodeSegment(s)
		if err != nil {
			return engine.Vertical, nil, fmt.Errorf("segment %d: %w", i, err)
		}
		segs[i] = seg
	}
	return flow, segs, nil
}

// Apply loads the file into e, replacing its content and flow.
func (f *File) Apply(e *engine.Engine) error {
	flow, segs, err := f.Decoded()
	if err != nil {
		return err
	}
	e.SetSegments(segs)
	e.SetFlow(flow)
	return nil
}

// Encode marshals f as YAML.
func Encode(f *File) ([]byte, error) {
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return data, nil
}

// Decode parses a YAML document and checks its version.
// A missing id is filled in.
func Decode(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	if f.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, f.Version)
	}
	if f.ID == "" {
		f.ID = NewID()
	}
	if f.Flow == "" {
		f.Flow = engine.Vertical.String()
	}
	return &f, nil
}

// Load reads path into e and returns the document id.
// Plain text files get a new id on every load.
func Load(path string, e *engine.Engine) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if KindFor(path) == KindText {
		e.SetText(strings.ReplaceAll(string(data), "\r\n", "\n"))
		return NewID(), nil
	}
	f, err := Decode(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Apply(e); err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return f.ID, nil
}

// Save writes src to path in the representation chosen by its extension.
func Save(path string, src Document, id string) error {
	var data []byte
	if KindFor(path) == KindText {
		data = []byte(src.Text())
	} else {
		var err error
		if data, err = Encode(Capture(src, id)); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

func encodeSegment(seg buffer.Segment) Segment {
	var out Segment
	var sb strings.Builder
	start := 0
	for i := 1; i <= len(seg); i++ {
		if i < len(seg) && seg[i].Format == seg[start].Format {
			continue
		}
		sb.Reset()
		for _, c := range seg[start:i] {
			sb.WriteRune(c.Rune)
		}
		out.Runs = append(out.Runs, Run{Text: sb.String(), Style: encodeStyle(seg[start].Format)})
		start = i
	}
	return out
}

func decodeSegment(s Segment) (buffer.Segment, error) {
	seg := buffer.Segment{}
	for _, r := range s.Runs {
		f, err := decodeStyle(r.Style)
		if err != nil {
			return nil, err
		}
		seg = append(seg, style.NewChars(r.Text, f)...)
	}
	return seg, nil
}

func encodeStyle(f style.Format) Style {
	return Style{
		Family:        f.Family,
		Size:          f.PointSize,
		Bold:          f.Bold,
		Italic:        f.Italic,
		Underline:     f.Underline,
		Overline:      f.Overline,
		StrikeOut:     f.StrikeOut,
		LetterSpacing: f.LetterSpacing,
		Color:         f.Color.Hex(),
	}
}

func decodeStyle(s Style) (style.Format, error) {
	f := style.DefaultFormat()
	if s.Family != "" {
		f.Family = s.Family
	}
	if s.Size < 0 {
		return f, fmt.Errorf("%w: size %d", ErrInvalidStyle, s.Size)
	}
	if s.Size > 0 {
		f.PointSize = s.Size
	}
	if s.Color != "" {
		c, err := style.ParseColor(s.Color)
		if err != nil {
			return f, fmt.Errorf("%w: %v", ErrInvalidStyle, err)
		}
		f.Color = c
	}
	f.Bold = s.Bold
	f.Italic = s.Italic
	f.Underline = s.Underline
	f.Overline = s.Overline
	f.StrikeOut = s.StrikeOut
	f.LetterSpacing = s.LetterSpacing
	return f, nil
}
