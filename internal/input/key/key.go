package key

import (
	"strings"

	"github.com/dshills/vtext/internal/renderer/backend"
)

// Key is a keyboard key code. Character keys use KeyRune.
type Key = backend.Key

// Modifier is a modifier key mask.
type Modifier = backend.ModMask

// Key and modifier codes re-exported for callers that only deal in keys.
const (
	KeyNone      = backend.KeyNone
	KeyRune      = backend.KeyRune
	KeyEscape    = backend.KeyEscape
	KeyEnter     = backend.KeyEnter
	KeyTab       = backend.KeyTab
	KeyBacktab   = backend.KeyBacktab
	KeyBackspace = backend.KeyBackspace
	KeyDelete    = backend.KeyDelete
	KeyInsert    = backend.KeyInsert
	KeyHome      = backend.KeyHome
	KeyEnd       = backend.KeyEnd
	KeyPageUp    = backend.KeyPageUp
	KeyPageDown  = backend.KeyPageDown
	KeyUp        = backend.KeyUp
	KeyDown      = backend.KeyDown
	KeyLeft      = backend.KeyLeft
	KeyRight     = backend.KeyRight

	ModNone  = backend.ModNone
	ModShift = backend.ModShift
	ModCtrl  = backend.ModCtrl
	ModAlt   = backend.ModAlt
	ModMeta  = backend.ModMeta
)

// keyNames holds the canonical name of each special key.
var keyNames = map[Key]string{
	KeyEscape:    "Esc",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBacktab:   "Backtab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
}

// keyNameMap maps key names (lowercase) to Key values.
var keyNameMap = map[string]Key{
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"cr":        KeyEnter,
	"tab":       KeyTab,
	"backtab":   KeyBacktab,
	"backspace": KeyBackspace,
	"bs":        KeyBackspace,
	"delete":    KeyDelete,
	"del":       KeyDelete,
	"insert":    KeyInsert,
	"ins":       KeyInsert,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pageup":    KeyPageUp,
	"pgup":      KeyPageUp,
	"pagedown":  KeyPageDown,
	"pgdn":      KeyPageDown,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
}

// runeNames maps names of awkward character keys to their rune.
var runeNames = map[string]rune{
	"space":  ' ',
	"lt":     '<',
	"gt":     '>',
	"plus":   '+',
	"minus":  '-',
	"bslash": '\\',
}

// KeyFromName returns the Key for a given name (case-insensitive).
// Returns KeyNone if the name is not recognized.
func KeyFromName(name string) Key {
	if k, ok := keyNameMap[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k
	}
	return KeyNone
}

// KeyName returns the canonical name of a special key.
func KeyName(k Key) string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k == KeyRune {
		return "Rune"
	}
	return "None"
}

// ModifierFromName returns the modifier for a name such as "ctrl" or "C".
// Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifier {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ctrl", "control", "c":
		return ModCtrl
	case "alt", "opt", "option", "a":
		return ModAlt
	case "shift", "s":
		return ModShift
	case "meta", "cmd", "super", "m", "d":
		return ModMeta
	default:
		return ModNone
	}
}
