// Package key normalizes keystrokes and parses key specifications.
//
// An Event is a single key press: a backend key code, the rune for
// character keys, and the modifier mask. Events built from terminal input
// and events parsed from configuration compare equal when they describe the
// same keystroke, so they can be used directly as map keys.
//
// # Key Specifications
//
// Key specifications can be written in two formats:
//
//   - With modifiers: "ctrl+s", "Ctrl+Shift+Left", "alt+x", "Home"
//   - Bracketed: "<C-s>", "<S-Left>", "<CR>", "<Esc>"
//
// Letters bound with Ctrl or Alt are case-insensitive.
package key
