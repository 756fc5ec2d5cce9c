package key

import (
	"strings"
	"unicode"

	"github.com/dshills/vtext/internal/renderer/backend"
)

// Event is a normalized key press.
type Event struct {
	// Key is the key code. KeyRune for character keys.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers holds the modifier keys held during the press.
	Modifiers Modifier
}

// NewRuneEvent creates a character key event.
func NewRuneEvent(r rune, mods Modifier) Event {
	return normalize(Event{Key: KeyRune, Rune: r, Modifiers: mods})
}

// NewSpecialEvent creates a special key event.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return normalize(Event{Key: k, Modifiers: mods})
}

// FromBackend converts a backend key event.
func FromBackend(ev backend.Event) Event {
	if ev.Key == KeyRune {
		return NewRuneEvent(ev.Rune, ev.Mod)
	}
	return NewSpecialEvent(ev.Key, ev.Mod)
}

// normalize makes equivalent keystrokes compare equal. A printable rune
// already carries its case, so Shift is dropped unless Ctrl or Alt is held,
// and letters chorded with Ctrl or Alt are lowercased.
func normalize(e Event) Event {
	if e.Key != KeyRune {
		e.Rune = 0
		return e
	}
	chord := e.Modifiers.Has(ModCtrl) || e.Modifiers.Has(ModAlt)
	if chord {
		if unicode.IsUpper(e.Rune) {
			e.Modifiers |= ModShift
		}
		e.Rune = unicode.ToLower(e.Rune)
	} else {
		e.Modifiers &^= ModShift
	}
	return e
}

// IsRune returns true if this is a character key.
func (e Event) IsRune() bool {
	return e.Key == KeyRune
}

// IsChar returns true if this event inserts a character: a rune with no
// Ctrl, Alt or Meta modifier.
func (e Event) IsChar() bool {
	return e.IsRune() && e.Modifiers&(ModCtrl|ModAlt|ModMeta) == 0
}

// String returns the canonical spec, e.g. "ctrl+b", "shift+Left", "a".
// The result parses back to an equal event.
func (e Event) String() string {
	var parts []string
	if e.Modifiers.Has(ModCtrl) {
		parts = append(parts, "ctrl")
	}
	if e.Modifiers.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	if e.Modifiers.Has(ModMeta) {
		parts = append(parts, "meta")
	}
	if e.Modifiers.Has(ModShift) {
		parts = append(parts, "shift")
	}

	switch {
	case e.Key != KeyRune:
		parts = append(parts, KeyName(e.Key))
	case e.Rune == ' ':
		parts = append(parts, "space")
	case e.Rune == '+':
		parts = append(parts, "plus")
	default:
		parts = append(parts, string(e.Rune))
	}
	return strings.Join(parts, "+")
}
