// Package dispatcher routes editor actions to the handlers that execute them.
//
// Input layers produce input.Action values ("cursor.moveLeft",
// "format.toggleBold", "selection.extendTo"). The dispatcher builds an
// execution context holding the engine, clipboard and view, finds the
// handler for the action, runs it, and reports the outcome as a
// handler.Result.
//
// # Routing
//
// Actions are routed in two steps:
//
//  1. Namespace handlers own every action under a prefix, so "cursor.*"
//     goes to the cursor handler.
//  2. Exact-name handlers registered with RegisterHandler cover actions
//     whose namespace has no handler, such as "file.save" and "app.quit",
//     which the application registers itself.
//
// # Hooks
//
// Pre-dispatch hooks run before routing and may cancel an action.
// Post-dispatch hooks see the result; the application uses one to request
// a redraw and to log failures.
//
// # Panics
//
// The engine panics when handed an out-of-range position. With
// RecoverFromPanic set (the default) such a panic becomes an error result
// wrapping ErrPanic, so a bad script call cannot take the editor down.
//
//	d := dispatcher.NewWithDefaults()
//	d.SetEngine(eng)
//	d.SetClipboard(clipboard.New())
//	dispatcher.RegisterDefaults(d)
//	res := d.Dispatch(input.NewAction("format.toggleBold", input.SourceKeyboard))
package dispatcher
