package dispatcher

import (
	"github.com/dshills/vtext/internal/dispatcher/execctx"
	"github.com/dshills/vtext/internal/dispatcher/handler"
	"github.com/dshills/vtext/internal/input"
)

// PreDispatchHook is called before an action is dispatched.
type PreDispatchHook interface {
	// PreDispatch may modify the action. Returning false cancels it.
	PreDispatch(action *input.Action, ctx *execctx.ExecutionContext) bool
}

// PostDispatchHook is called after an action is dispatched.
type PostDispatchHook interface {
	// PostDispatch may inspect or modify the result.
	PostDispatch(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result)
}

// PreDispatchFunc is a function adapter for PreDispatchHook.
type PreDispatchFunc func(action *input.Action, ctx *execctx.ExecutionContext) bool

// PreDispatch implements PreDispatchHook.
func (f PreDispatchFunc) PreDispatch(action *input.Action, ctx *execctx.ExecutionContext) bool {
	return f(action, ctx)
}

// PostDispatchFunc is a function adapter for PostDispatchHook.
type PostDispatchFunc func(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result)

// PostDispatch implements PostDispatchHook.
func (f PostDispatchFunc) PostDispatch(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result) {
	f(action, ctx, result)
}
