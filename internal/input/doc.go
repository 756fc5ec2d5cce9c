// Package input turns user input into editor actions.
//
// Raw terminal events arrive from the renderer backend. The key subpackage
// normalizes keystrokes and parses binding specs such as "ctrl+b". The keymap
// subpackage maps keystrokes to action names. The mouse subpackage tracks
// clicks and drags and emits positional actions.
//
// # Actions
//
// Every input ends up as an Action: a dotted name such as "cursor.moveLeft"
// or "format.toggleBold" plus optional arguments. Actions are executed by the
// dispatcher, which routes them by namespace to the handler that owns them.
//
//	km := keymap.Default()
//	if b, ok := km.Lookup(key.FromBackend(ev)); ok {
//	    dispatcher.Dispatch(b.ToAction(input.SourceKeyboard))
//	}
package input
