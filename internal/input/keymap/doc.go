// Package keymap maps keystrokes to action names.
//
// A Keymap is a set of Bindings, each tying one key specification to an
// action. Specs are parsed once when bound, so lookups by a key.Event built
// from terminal input are a single map access.
//
// # Key Specifications
//
//	"ctrl+b"        - Ctrl+B
//	"<C-b>"         - Ctrl+B (angle bracket notation)
//	"shift+Left"    - Shift+Left arrow
//	"alt+plus"      - Alt and the plus key
//
// # Overrides
//
// User bindings from the configuration file are applied with Merge. An
// empty action unbinds the key:
//
//	km := keymap.Default()
//	err := km.Merge(map[string]string{
//	    "ctrl+t": "view.toggleFlow",
//	    "ctrl+u": "",
//	})
package keymap
