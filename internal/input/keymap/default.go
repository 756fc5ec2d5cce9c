package keymap

// Default returns the default editing keymap.
//
// Ctrl+I and Ctrl+M are indistinguishable from Tab and Enter on most
// terminals, so italic lives on Alt+I.
func Default() *Keymap {
	km := New("default")
	for _, b := range defaultBindings() {
		if err := km.Bind(b); err != nil {
			panic(err)
		}
	}
	return km
}

func defaultBindings() []Binding {
	return []Binding{
		// Movement
		{Keys: "Left", Action: "cursor.moveLeft", Description: "Move left", Category: "Movement"},
		{Keys: "Right", Action: "cursor.moveRight", Description: "Move right", Category: "Movement"},
		{Keys: "Up", Action: "cursor.moveUp", Description: "Move up", Category: "Movement"},
		{Keys: "Down", Action: "cursor.moveDown", Description: "Move down", Category: "Movement"},
		{Keys: "Home", Action: "cursor.moveHome", Description: "Move to segment start", Category: "Movement"},
		{Keys: "End", Action: "cursor.moveEnd", Description: "Move to segment end", Category: "Movement"},

		// Selection
		{Keys: "shift+Left", Action: "cursor.selectLeft", Description: "Extend selection left", Category: "Selection"},
		{Keys: "shift+Right", Action: "cursor.selectRight", Description: "Extend selection right", Category: "Selection"},
		{Keys: "shift+Up", Action: "cursor.selectUp", Description: "Extend selection up", Category: "Selection"},
		{Keys: "shift+Down", Action: "cursor.selectDown", Description: "Extend selection down", Category: "Selection"},
		{Keys: "shift+Home", Action: "cursor.selectHome", Description: "Extend selection to segment start", Category: "Selection"},
		{Keys: "shift+End", Action: "cursor.selectEnd", Description: "Extend selection to segment end", Category: "Selection"},
		{Keys: "ctrl+a", Action: "selection.all", Description: "Select all", Category: "Selection"},
		{Keys: "Esc", Action: "selection.clear", Description: "Clear selection", Category: "Selection"},

		// Editing
		{Keys: "Backspace", Action: "editor.backspace", Description: "Delete backward", Category: "Editing"},
		{Keys: "Delete", Action: "editor.delete", Description: "Delete forward", Category: "Editing"},
		{Keys: "Enter", Action: "editor.newline", Description: "Split segment", Category: "Editing"},
		{Keys: "Tab", Action: "editor.tab", Description: "Ignored", Category: "Editing"},
		{Keys: "Backtab", Action: "editor.tab", Description: "Ignored", Category: "Editing"},

		// History
		{Keys: "ctrl+z", Action: "history.undo", Description: "Undo", Category: "History"},
		{Keys: "ctrl+y", Action: "history.redo", Description: "Redo", Category: "History"},
		{Keys: "ctrl+shift+z", Action: "history.redo", Description: "Redo", Category: "History"},

		// Clipboard
		{Keys: "ctrl+c", Action: "clipboard.copy", Description: "Copy", Category: "Clipboard"},
		{Keys: "ctrl+x", Action: "clipboard.cut", Description: "Cut", Category: "Clipboard"},
		{Keys: "ctrl+v", Action: "clipboard.paste", Description: "Paste", Category: "Clipboard"},

		// Format
		{Keys: "ctrl+b", Action: "format.toggleBold", Description: "Toggle bold", Category: "Format"},
		{Keys: "alt+i", Action: "format.toggleItalic", Description: "Toggle italic", Category: "Format"},
		{Keys: "ctrl+u", Action: "format.toggleUnderline", Description: "Toggle underline", Category: "Format"},
		{Keys: "alt+o", Action: "format.toggleOverline", Description: "Toggle overline", Category: "Format"},
		{Keys: "alt+s", Action: "format.toggleStrikeOut", Description: "Toggle strike-out", Category: "Format"},
		{Keys: "alt+plus", Action: "format.growFont", Description: "Increase point size", Category: "Format"},
		{Keys: "alt+=", Action: "format.growFont", Description: "Increase point size", Category: "Format"},
		{Keys: "alt+-", Action: "format.shrinkFont", Description: "Decrease point size", Category: "Format"},

		// View
		{Keys: "ctrl+t", Action: "view.toggleFlow", Description: "Switch between vertical and horizontal flow", Category: "View"},
		{Keys: "alt+]", Action: "view.growSpacing", Description: "Increase segment spacing", Category: "View"},
		{Keys: "alt+[", Action: "view.shrinkSpacing", Description: "Decrease segment spacing", Category: "View"},

		// Application
		{Keys: "ctrl+s", Action: "file.save", Description: "Save document", Category: "File"},
		{Keys: "ctrl+q", Action: "app.quit", Description: "Quit", Category: "Application"},
	}
}
