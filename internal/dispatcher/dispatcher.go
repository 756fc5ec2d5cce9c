package dispatcher

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/dshills/vtext/internal/clipboard"
	"github.com/dshills/vtext/internal/dispatcher/execctx"
	"github.com/dshills/vtext/internal/dispatcher/handler"
	"github.com/dshills/vtext/internal/input"
)

// Dispatcher routes actions to handlers and coordinates execution.
type Dispatcher struct {
	mu sync.RWMutex

	registry *Registry
	router   *Router

	// Editor subsystems
	engine    execctx.EngineInterface
	clipboard clipboard.Clipboard
	view      execctx.ViewInterface

	config  Config
	metrics *Metrics

	preHooks  []PreDispatchHook
	postHooks []PostDispatchHook
}

// New creates a new dispatcher with the given configuration.
func New(config Config) *Dispatcher {
	d := &Dispatcher{
		registry: NewRegistry(),
		router:   NewRouter(),
		config:   config,
	}
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	return d
}

// NewWithDefaults creates a new dispatcher with default configuration.
func NewWithDefaults() *Dispatcher {
	return New(DefaultConfig())
}

// SetEngine sets the editing engine.
func (d *Dispatcher) SetEngine(e execctx.EngineInterface) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.engine = e
}

// SetClipboard sets the clipboard.
func (d *Dispatcher) SetClipboard(cb clipboard.Clipboard) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clipboard = cb
}

// SetView sets the view used for hit testing.
func (d *Dispatcher) SetView(v execctx.ViewInterface) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.view = v
}

// Engine returns the editing engine.
func (d *Dispatcher) Engine() execctx.EngineInterface {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.engine
}

// Dispatch executes an action synchronously.
func (d *Dispatcher) Dispatch(action input.Action) handler.Result {
	if action.Name == "" {
		return handler.Error(ErrInvalidAction)
	}
	start := time.Now()

	ctx := d.buildContext(action)

	if !d.runPreHooks(&action, ctx) {
		return handler.CancelledWithMessage("cancelled by hook")
	}
	if d.config.ReadOnly && mutates(action.Name, action.Namespace()) {
		result := handler.Error(fmt.Errorf("%w: %s", ErrReadOnly, action.Name))
		d.runPostHooks(&action, ctx, &result)
		return result
	}

	h := d.router.Route(action.Name)
	if h == nil {
		h = d.registry.Get(action.Name)
	}

	var result handler.Result
	switch {
	case h == nil:
		result = handler.Error(fmt.Errorf("%w: %s", ErrNoHandler, action.Name))
	case d.config.RecoverFromPanic:
		result = d.executeWithRecovery(h, action, ctx)
	default:
		result = h.Handle(action, ctx)
	}

	d.runPostHooks(&action, ctx, &result)

	if d.metrics != nil {
		d.metrics.RecordDispatch(action.Name, time.Since(start), result.Status)
	}
	return result
}

// DispatchName dispatches an argument-free action by name.
func (d *Dispatcher) DispatchName(name string, source input.ActionSource) handler.Result {
	return d.Dispatch(input.NewAction(name, source))
}

// executeWithRecovery executes a handler with panic recovery.
func (d *Dispatcher) executeWithRecovery(h handler.Handler, action input.Action, ctx *execctx.ExecutionContext) (result handler.Result) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)

			result = handler.Error(fmt.Errorf("%w in %s: %v", ErrPanic, action.Name, r)).
				WithData("stack", string(stack[:n]))

			if d.metrics != nil {
				d.metrics.RecordPanic(action.Name)
			}
		}
	}()

	return h.Handle(action, ctx)
}

// buildContext builds an execution context from current state.
func (d *Dispatcher) buildContext(action input.Action) *execctx.ExecutionContext {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ctx := execctx.New().
		WithEngine(d.engine).
		WithClipboard(d.clipboard).
		WithView(d.view)
	ctx.Source = action.Source
	return ctx
}

// RegisterHandler registers a handler for an exact action name.
func (d *Dispatcher) RegisterHandler(actionName string, h handler.Handler) {
	d.registry.Register(actionName, h)
}

// RegisterHandlerFunc registers a handler function for an action name.
func (d *Dispatcher) RegisterHandlerFunc(actionName string, fn func(input.Action, *execctx.ExecutionContext) handler.Result) {
	d.registry.Register(actionName, handler.HandlerFunc(fn))
}

// UnregisterHandler removes a handler for an action name.
func (d *Dispatcher) UnregisterHandler(actionName string) {
	d.registry.Unregister(actionName)
}

// RegisterNamespace registers a namespace handler.
func (d *Dispatcher) RegisterNamespace(h handler.NamespaceHandler) {
	d.router.RegisterNamespace(h)
}

// CanDispatch reports whether some handler accepts the action name.
func (d *Dispatcher) CanDispatch(actionName string) bool {
	return d.router.Route(actionName) != nil || d.registry.Get(actionName) != nil
}

// RegisterPreHook registers a pre-dispatch hook.
func (d *Dispatcher) RegisterPreHook(hook PreDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.preHooks = append(d.preHooks, hook)
}

// RegisterPostHook registers a post-dispatch hook.
func (d *Dispatcher) RegisterPostHook(hook PostDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.postHooks = append(d.postHooks, hook)
}

// runPreHooks runs all pre-dispatch hooks.
// Returns false if any hook cancels the action.
func (d *Dispatcher) runPreHooks(action *input.Action, ctx *execctx.ExecutionContext) bool {
	d.mu.RLock()
	hooks := make([]PreDispatchHook, len(d.preHooks))
	copy(hooks, d.preHooks)
	d.mu.RUnlock()

	for _, h := range hooks {
		if !h.PreDispatch(action, ctx) {
			return false
		}
	}
	return true
}

// runPostHooks runs all post-dispatch hooks.
func (d *Dispatcher) runPostHooks(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result) {
	d.mu.RLock()
	hooks := make([]PostDispatchHook, len(d.postHooks))
	copy(hooks, d.postHooks)
	d.mu.RUnlock()

	for _, h := range hooks {
		h.PostDispatch(action, ctx, result)
	}
}

// Registry returns the exact-name handler registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Router returns the namespace router.
func (d *Dispatcher) Router() *Router {
	return d.router
}

// Metrics returns the metrics collector, or nil when metrics are disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}
