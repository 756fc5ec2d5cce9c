// Package handler provides the handler interface and types for action dispatch.
package handler

import (
	"github.com/dshills/vtext/internal/dispatcher/execctx"
	"github.com/dshills/vtext/internal/input"
)

// Handler processes a specific action or set of actions.
type Handler interface {
	// Handle executes the action and returns a result.
	Handle(action input.Action, ctx *execctx.ExecutionContext) Result

	// CanHandle returns true if this handler can process the action.
	CanHandle(actionName string) bool
}

// HandlerFunc is a function adapter for the Handler interface.
// It handles every action it is asked to; the caller routes by name.
type HandlerFunc func(action input.Action, ctx *execctx.ExecutionContext) Result

// Handle implements Handler.Handle.
func (f HandlerFunc) Handle(action input.Action, ctx *execctx.ExecutionContext) Result {
	if f == nil {
		return Errorf("handler function is nil")
	}
	return f(action, ctx)
}

// CanHandle implements Handler.CanHandle.
func (f HandlerFunc) CanHandle(string) bool {
	return true
}

// NamespaceHandler handles all actions within a namespace.
// A namespace is the prefix before the first dot (e.g., "cursor" in "cursor.moveDown").
type NamespaceHandler interface {
	// HandleAction handles an action within this namespace.
	HandleAction(action input.Action, ctx *execctx.ExecutionContext) Result

	// CanHandle returns true if this handler can process the action.
	CanHandle(actionName string) bool

	// Namespace returns the namespace prefix (e.g., "cursor", "editor").
	Namespace() string
}

// namespaceAdapter adapts NamespaceHandler to the Handler interface.
type namespaceAdapter struct {
	h NamespaceHandler
}

// NewNamespaceAdapter creates a Handler from a NamespaceHandler.
func NewNamespaceAdapter(h NamespaceHandler) Handler {
	return namespaceAdapter{h: h}
}

func (a namespaceAdapter) Handle(action input.Action, ctx *execctx.ExecutionContext) Result {
	return a.h.HandleAction(action, ctx)
}

func (a namespaceAdapter) CanHandle(actionName string) bool {
	return a.h.CanHandle(actionName)
}

// ActionFunc handles one action inside a namespace.
type ActionFunc func(action input.Action, ctx *execctx.ExecutionContext) Result

// BaseNamespaceHandler provides a table-driven NamespaceHandler. Handlers
// embed it and register one ActionFunc per action name.
type BaseNamespaceHandler struct {
	namespace string
	actions   map[string]ActionFunc
}

// NewBaseNamespaceHandler creates a new BaseNamespaceHandler.
func NewBaseNamespaceHandler(namespace string) *BaseNamespaceHandler {
	return &BaseNamespaceHandler{
		namespace: namespace,
		actions:   make(map[string]ActionFunc),
	}
}

// Register registers a handler function for an action name.
func (h *BaseNamespaceHandler) Register(actionName string, fn ActionFunc) {
	h.actions[actionName] = fn
}

// Namespace implements NamespaceHandler.Namespace.
func (h *BaseNamespaceHandler) Namespace() string {
	return h.namespace
}

// CanHandle implements NamespaceHandler.CanHandle.
func (h *BaseNamespaceHandler) CanHandle(actionName string) bool {
	_, ok := h.actions[actionName]
	return ok
}

// Actions returns the registered action names in no particular order.
func (h *BaseNamespaceHandler) Actions() []string {
	names := make([]string, 0, len(h.actions))
	for name := range h.actions {
		names = append(names, name)
	}
	return names
}

// HandleAction implements NamespaceHandler.HandleAction. It validates the
// context before running the registered function.
func (h *BaseNamespaceHandler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) Result {
	fn, ok := h.actions[action.Name]
	if !ok {
		return Errorf("unknown action in namespace %s: %s", h.namespace, action.Name)
	}
	if err := ctx.Validate(); err != nil {
		return Error(err)
	}
	return fn(action, ctx)
}
