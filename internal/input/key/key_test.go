package key

import (
	"errors"
	"testing"

	"github.com/dshills/vtext/internal/renderer/backend"
)

// ============================================================================
// Parse
// ============================================================================

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", Event{Key: KeyRune, Rune: 'a'}},
		{"A", Event{Key: KeyRune, Rune: 'A'}},
		{"@", Event{Key: KeyRune, Rune: '@'}},
		{"+", Event{Key: KeyRune, Rune: '+'}},
		{"space", Event{Key: KeyRune, Rune: ' '}},
		{"Enter", Event{Key: KeyEnter}},
		{"esc", Event{Key: KeyEscape}},
		{"PgDn", Event{Key: KeyPageDown}},
		{"ctrl+b", Event{Key: KeyRune, Rune: 'b', Modifiers: ModCtrl}},
		{"Ctrl+B", Event{Key: KeyRune, Rune: 'b', Modifiers: ModCtrl | ModShift}},
		{"ctrl+shift+z", Event{Key: KeyRune, Rune: 'z', Modifiers: ModCtrl | ModShift}},
		{"shift+a", Event{Key: KeyRune, Rune: 'a'}},
		{"shift+Left", Event{Key: KeyLeft, Modifiers: ModShift}},
		{"alt+x", Event{Key: KeyRune, Rune: 'x', Modifiers: ModAlt}},
		{"ctrl++", Event{Key: KeyRune, Rune: '+', Modifiers: ModCtrl}},
		{"ctrl+plus", Event{Key: KeyRune, Rune: '+', Modifiers: ModCtrl}},
		{"<C-s>", Event{Key: KeyRune, Rune: 's', Modifiers: ModCtrl}},
		{"<S-Right>", Event{Key: KeyRight, Modifiers: ModShift}},
		{"<CR>", Event{Key: KeyEnter}},
		{"<C-->", Event{Key: KeyRune, Rune: '-', Modifiers: ModCtrl}},
	}

	for _, tt := range tests {
		got, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.spec, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"hyper+a", ErrInvalidSpec},
		{"ctrl+", ErrInvalidSpec},
		{"notakey", ErrInvalidSpec},
		{"<X-a>", ErrInvalidSpec},
	}

	for _, tt := range tests {
		_, err := Parse(tt.spec)
		if !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid spec")
		}
	}()
	MustParse("nope+nope")
}

// ============================================================================
// String
// ============================================================================

func TestStringRoundTrip(t *testing.T) {
	specs := []string{
		"a", "Z", "space", "plus", "ctrl+b", "ctrl+shift+z", "alt+x",
		"shift+Left", "Home", "ctrl+Backspace", "Esc", "meta+v",
	}

	for _, spec := range specs {
		ev := MustParse(spec)
		back, err := Parse(ev.String())
		if err != nil {
			t.Errorf("%q: String() = %q does not parse: %v", spec, ev.String(), err)
			continue
		}
		if back != ev {
			t.Errorf("%q: round trip gave %+v, want %+v", spec, back, ev)
		}
	}
}

func TestNormalizeSpec(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"<C-s>", "ctrl+s"},
		{"Ctrl+Shift+Z", "ctrl+shift+z"},
		{"<S-Left>", "shift+Left"},
		{"return", "Enter"},
		{" ", ""},
	}

	for _, tt := range tests {
		got, _ := NormalizeSpec(tt.spec)
		if got != tt.want {
			t.Errorf("NormalizeSpec(%q) = %q, want %q", tt.spec, got, tt.want)
		}
	}
}

// ============================================================================
// FromBackend
// ============================================================================

func TestFromBackend(t *testing.T) {
	tests := []struct {
		name string
		ev   backend.Event
		spec string
	}{
		{"plain", backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'x'}, "x"},
		{"shifted letter", backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'X', Mod: backend.ModShift}, "X"},
		{"control letter", backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'b', Mod: backend.ModCtrl}, "ctrl+b"},
		{"shift arrow", backend.Event{Type: backend.EventKey, Key: backend.KeyLeft, Mod: backend.ModShift}, "shift+Left"},
		{"enter", backend.Event{Type: backend.EventKey, Key: backend.KeyEnter}, "Enter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromBackend(tt.ev)
			want := MustParse(tt.spec)
			if got != want {
				t.Errorf("expected %+v, got %+v", want, got)
			}
		})
	}
}

func TestIsChar(t *testing.T) {
	if !NewRuneEvent('a', ModNone).IsChar() {
		t.Error("plain rune should be a character")
	}
	if !NewRuneEvent('A', ModShift).IsChar() {
		t.Error("shifted rune should be a character")
	}
	if NewRuneEvent('a', ModCtrl).IsChar() {
		t.Error("ctrl chord should not be a character")
	}
	if NewSpecialEvent(KeyEnter, ModNone).IsChar() {
		t.Error("Enter should not be a character")
	}
}

func TestModifierFromName(t *testing.T) {
	tests := map[string]Modifier{
		"ctrl":  ModCtrl,
		"C":     ModCtrl,
		"Alt":   ModAlt,
		"shift": ModShift,
		"cmd":   ModMeta,
		"nope":  ModNone,
	}
	for name, want := range tests {
		if got := ModifierFromName(name); got != want {
			t.Errorf("ModifierFromName(%q) = %v, want %v", name, got, want)
		}
	}
}
