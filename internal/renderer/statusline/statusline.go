// Package statusline provides the status bar drawn under the document.
//
// The bar shows the flow direction, the file name with a modified marker,
// and on the right the caret position and the format at the caret. A status
// message replaces the bar until it is cleared.
package statusline

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/vtext/internal/engine"
	"github.com/dshills/vtext/internal/engine/style"
	"github.com/dshills/vtext/internal/renderer/backend"
)

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageWarning
	MessageError
)

// Common bar colors.
var (
	colorWhite  = backend.RGB(0xff, 0xff, 0xff)
	colorBlack  = backend.RGB(0x00, 0x00, 0x00)
	colorGray   = backend.RGB(0x44, 0x44, 0x44)
	colorBlue   = backend.RGB(0x26, 0x4f, 0x78)
	colorGreen  = backend.RGB(0x4e, 0x9a, 0x06)
	colorRed    = backend.RGB(0xcc, 0x00, 0x00)
	colorYellow = backend.RGB(0xc4, 0xa0, 0x00)
)

// StatusLine renders a one-row status bar. Safe for concurrent use.
type StatusLine struct {
	mu sync.Mutex

	// Display state
	flow     engine.Flow
	filename string
	modified bool
	segment  int
	offset   int
	segments int
	format   style.Format

	// Message display
	message     string
	messageType MessageType

	flowStyles map[engine.Flow]backend.Style
}

// New creates a new status line.
func New() *StatusLine {
	return &StatusLine{
		segments:   1,
		format:     style.DefaultFormat(),
		flowStyles: defaultFlowStyles(),
	}
}

func defaultFlowStyles() map[engine.Flow]backend.Style {
	return map[engine.Flow]backend.Style{
		engine.Vertical:   {Foreground: colorWhite, Background: colorBlue, Attrs: backend.AttrBold},
		engine.Horizontal: {Foreground: colorBlack, Background: colorGreen, Attrs: backend.AttrBold},
	}
}

// SetFlow updates the displayed flow direction.
func (s *StatusLine) SetFlow(flow engine.Flow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flow = flow
}

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(filename string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filename = filename
}

// SetModified updates the modified indicator.
func (s *StatusLine) SetModified(modified bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modified = modified
}

// SetPosition updates the caret position and segment count.
func (s *StatusLine) SetPosition(segment, offset, segments int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.segment = segment
	s.offset = offset
	s.segments = segments
}

// SetFormat updates the format shown for the caret.
func (s *StatusLine) SetFormat(f style.Format) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.format = f
}

// SetMessage displays a status message.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = msg
	s.messageType = msgType
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = ""
	s.messageType = MessageNone
}

// Message returns the current message.
func (s *StatusLine) Message() (string, MessageType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message, s.messageType
}

// Height returns the number of rows the status line uses.
func (s *StatusLine) Height() int {
	return 1
}

// Paint draws the status line at row.
func (s *StatusLine) Paint(b backend.Backend, row, width int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.message != "" {
		s.paintMessage(b, row, width)
		return
	}
	s.paintBar(b, row, width)
}

func (s *StatusLine) paintBar(b backend.Backend, row, width int) {
	barStyle := backend.Style{Foreground: colorWhite, Background: colorGray}
	fill(b, row, width, barStyle)

	flowStyle, ok := s.flowStyles[s.flow]
	if !ok {
		flowStyle = barStyle
	}
	col := put(b, 0, row, width, " "+strings.ToUpper(s.flow.String())+" ", flowStyle)
	col = put(b, col, row, width, " ", barStyle)

	filename := s.filename
	if filename == "" {
		filename = "[No Name]"
	}
	if s.modified {
		filename += " [+]"
	}

	info := s.formatInfo()
	infoStart := width - runewidth.StringWidth(info) - 1
	limit := width
	if infoStart > col {
		limit = infoStart - 1
	}
	put(b, col, row, limit, filename, barStyle)
	if infoStart > col {
		put(b, infoStart, row, width, info, barStyle)
	}
}

func (s *StatusLine) paintMessage(b backend.Backend, row, width int) {
	msgStyle := backend.DefaultStyle()
	switch s.messageType {
	case MessageError:
		msgStyle.Foreground = colorRed
		msgStyle.Attrs |= backend.AttrBold
	case MessageWarning:
		msgStyle.Foreground = colorYellow
	}
	fill(b, row, width, msgStyle)
	put(b, 0, row, width, s.message, msgStyle)
}

// formatInfo formats the right side: "Seg 2/5, Off 3 | B I 15pt Go".
func (s *StatusLine) formatInfo() string {
	var attrs []string
	f := s.format
	for _, a := range []struct {
		on   bool
		mark string
	}{
		{f.Bold, "B"},
		{f.Italic, "I"},
		{f.Underline, "U"},
		{f.Overline, "O"},
		{f.StrikeOut, "S"},
	} {
		if a.on {
			attrs = append(attrs, a.mark)
		}
	}
	attrs = append(attrs, fmt.Sprintf("%dpt", f.PointSize), f.Family)
	return fmt.Sprintf("Seg %d/%d, Off %d | %s", s.segment+1, s.segments, s.offset, strings.Join(attrs, " "))
}

// fill blanks a row.
func fill(b backend.Backend, row, width int, st backend.Style) {
	for x := 0; x < width; x++ {
		b.SetCell(x, row, backend.NewCell(' ', st))
	}
}

// put writes text from col, stopping before limit, and returns the next
// free column. Wide runes take two columns.
func put(b backend.Backend, col, row, limit int, text string, st backend.Style) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > limit {
			break
		}
		b.SetCell(col, row, backend.NewCell(r, st))
		col += w
	}
	return col
}
