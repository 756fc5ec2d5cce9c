package dispatcher

import (
	"github.com/dshills/vtext/internal/dispatcher/handler"
	"github.com/dshills/vtext/internal/dispatcher/handlers/clipboard"
	"github.com/dshills/vtext/internal/dispatcher/handlers/cursor"
	"github.com/dshills/vtext/internal/dispatcher/handlers/editor"
	"github.com/dshills/vtext/internal/dispatcher/handlers/format"
	"github.com/dshills/vtext/internal/dispatcher/handlers/history"
	"github.com/dshills/vtext/internal/dispatcher/handlers/selection"
	"github.com/dshills/vtext/internal/dispatcher/handlers/view"
)

// DefaultNamespaces returns the built-in namespace handlers.
func DefaultNamespaces() []handler.NamespaceHandler {
	return []handler.NamespaceHandler{
		cursor.NewHandler(),
		selection.NewHandler(),
		editor.NewHandler(),
		history.NewHandler(),
		clipboard.NewHandler(),
		format.NewHandler(),
		view.NewHandler(),
	}
}

// RegisterDefaults registers the built-in namespace handlers on d.
func RegisterDefaults(d *Dispatcher) {
	for _, h := range DefaultNamespaces() {
		d.RegisterNamespace(h)
	}
}
