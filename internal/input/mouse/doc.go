// Package mouse turns pointer input into editor actions.
//
// A Tracker converts raw backend mouse reports, which only carry the
// buttons currently held, into press, release, move and drag events. The
// Handler then detects double clicks and drags and emits actions carrying
// the screen cell under the pointer:
//
//   - Press: "cursor.setPosition", or "selection.extendTo" with Shift held
//   - Double click: "selection.segment"
//   - Drag with the left button: "selection.extendTo"
//   - Middle click: "clipboard.paste" at the pointer
//
// Handler reports drag start and end through the OnDrag callback. The
// application uses it to pause the caret blink while a selection is dragged.
//
// # Thread Safety
//
// Handler and Tracker are safe for concurrent use. Callbacks run after the
// handler lock is released.
package mouse
