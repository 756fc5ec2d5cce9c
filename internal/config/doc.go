// Package config provides the configuration system for vtext.
//
// Settings are read in three layers, each overriding the one before:
//
//	┌─────────────────────────────┐
//	│  3. Environment (VTEXT_*)   │  ← Highest priority
//	├─────────────────────────────┤
//	│  2. config.toml             │  ← ~/.config/vtext/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # File Format
//
//	[editor]
//	flow = "vertical"
//	alignment = "center"
//	segment_spacing = 1
//
//	[format]
//	family = "Go"
//	size = 15
//	color = "#202020"
//
//	[caret]
//	blink = true
//	interval = "500ms"
//
//	[logging]
//	level = "info"
//	file = "/tmp/vtext.log"
//
//	[keys]
//	"ctrl+e" = "view.toggleFlow"
//	"ctrl+t" = ""
//
// # Environment
//
// Short names such as VTEXT_FLOW and VTEXT_FONT_SIZE are mapped
// explicitly. Any other VTEXT_SECTION_KEY variable sets section.key, so
// VTEXT_EDITOR_MAX_UNDO sets editor.max_undo.
//
// # Sub-packages
//
//   - loader: TOML decoding and environment collection
//   - watcher: file watching for live reload
//
// # Live Reload
//
//	w, err := watcher.New(path, func(watcher.Event) {
//	    cfg, err := config.Load(path)
//	    ...
//	})
package config
