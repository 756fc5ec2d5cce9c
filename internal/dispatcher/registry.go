package dispatcher

import (
	"sort"
	"strings"
	"sync"

	"github.com/dshills/vtext/internal/dispatcher/handler"
)

// Registry holds exact-name handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]handler.Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]handler.Handler)}
}

// Register sets the handler for an action name, replacing any existing one.
func (r *Registry) Register(actionName string, h handler.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[actionName] = h
}

// Unregister removes the handler for an action name.
func (r *Registry) Unregister(actionName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, actionName)
}

// Get returns the handler for an action name, or nil.
func (r *Registry) Get(actionName string) handler.Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.handlers[actionName]
}

// Names returns the registered action names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Router routes actions to handlers by namespace prefix.
type Router struct {
	mu         sync.RWMutex
	namespaces map[string]handler.NamespaceHandler
}

// NewRouter creates a new action router.
func NewRouter() *Router {
	return &Router{namespaces: make(map[string]handler.NamespaceHandler)}
}

// RegisterNamespace registers h for every action under its namespace.
func (r *Router) RegisterNamespace(h handler.NamespaceHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.namespaces[h.Namespace()] = h
}

// UnregisterNamespace removes a namespace handler.
func (r *Router) UnregisterNamespace(namespace string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.namespaces, namespace)
}

// Route finds the namespace handler for an action. Returns nil if no
// handler owns the namespace or the owner does not know the action.
func (r *Router) Route(actionName string) handler.Handler {
	ns := extractNamespace(actionName)
	if ns == "" {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if h, ok := r.namespaces[ns]; ok && h.CanHandle(actionName) {
		return handler.NewNamespaceAdapter(h)
	}
	return nil
}

// Namespaces returns the registered namespaces, sorted.
func (r *Router) Namespaces() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.namespaces))
	for ns := range r.namespaces {
		names = append(names, ns)
	}
	sort.Strings(names)
	return names
}

// extractNamespace returns the part of the action name before the first dot.
func extractNamespace(actionName string) string {
	ns, _, ok := strings.Cut(actionName, ".")
	if !ok {
		return ""
	}
	return ns
}
