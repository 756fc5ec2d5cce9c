package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "1", "@"
//   - Special keys: "Enter", "Esc", "Tab", "Backspace", "Space"
//   - With modifiers: "ctrl+s", "Shift+Left", "Ctrl+Shift+Z"
//   - Bracketed: "<C-s>", "<S-Left>", "<CR>", "<Esc>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseBracketed(spec[1 : len(spec)-1])
	}

	// A lone "+" is the plus key, not a separator.
	if spec != "+" && strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}

	return parseKeyWithModifiers(spec, ModNone)
}

// parseBracketed parses notation like "C-s", "S-Left", "CR".
func parseBracketed(inner string) (Event, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Event{}, ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")
	// "<C-->" binds the minus key.
	if strings.HasSuffix(inner, "--") {
		parts = append(parts[:len(parts)-2], "-")
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(p)
		if mod == ModNone || len(strings.TrimSpace(p)) != 1 {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods |= mod
	}
	return parseKeyWithModifiers(parts[len(parts)-1], mods)
}

// parseModifierStyle parses "Ctrl+S" style notation.
func parseModifierStyle(spec string) (Event, error) {
	parts := strings.Split(spec, "+")
	// "ctrl++" binds the plus key.
	if strings.HasSuffix(spec, "++") {
		parts = append(parts[:len(parts)-2], "+")
	}
	if len(parts) < 2 {
		return Event{}, ErrInvalidSpec
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods |= mod
	}
	return parseKeyWithModifiers(parts[len(parts)-1], mods)
}

// parseKeyWithModifiers parses a key part with already-known modifiers.
func parseKeyWithModifiers(keyPart string, mods Modifier) (Event, error) {
	if keyPart != " " {
		keyPart = strings.TrimSpace(keyPart)
	}
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	if k := KeyFromName(keyPart); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}
	if r, ok := runeNames[strings.ToLower(keyPart)]; ok {
		return NewRuneEvent(r, mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) == 1 {
		return NewRuneEvent(runes[0], mods), nil
	}
	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}

// NormalizeSpec parses and re-formats a key specification to its canonical form.
func NormalizeSpec(spec string) (string, error) {
	event, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return event.String(), nil
}
