package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/vtext/internal/dispatcher/handler"
	"github.com/dshills/vtext/internal/engine"
	"github.com/dshills/vtext/internal/input"
	"github.com/dshills/vtext/internal/logging"
)

// DefaultTimeout bounds a single script run.
const DefaultTimeout = 5 * time.Second

// ModuleName is the name scripts use for the editing API.
const ModuleName = "ed"

// Dispatcher executes named actions on behalf of scripts.
type Dispatcher interface {
	Dispatch(action input.Action) handler.Result
}

// Runner executes scripts against one engine.
//
// Every run gets a fresh Lua state, so scripts cannot leak globals into
// each other. A Runner is not safe for concurrent runs on the same engine
// from multiple goroutines unless the engine edits are meant to interleave.
type Runner struct {
	engine     *engine.Engine
	dispatcher Dispatcher
	logger     *logging.Logger
	output     io.Writer
	timeout    time.Duration
}

// Option configures a Runner.
type Option func(*Runner)

// WithDispatcher enables ed.dispatch.
func WithDispatcher(d Dispatcher) Option {
	return func(r *Runner) {
		r.dispatcher = d
	}
}

// WithLogger sets the logger used by ed.log.
func WithLogger(l *logging.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithOutput redirects print.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.output = w
	}
}

// WithTimeout sets the per-run timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		r.timeout = d
	}
}

// New creates a runner for e.
func New(e *engine.Engine, opts ...Option) *Runner {
	r := &Runner{
		engine:  e,
		logger:  logging.Nop(),
		output:  io.Discard,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.WithComponent("script")
	return r
}

// RunFile executes the Lua file at path.
func (r *Runner) RunFile(ctx context.Context, path string) error {
	code, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	return r.Run(ctx, filepath.Base(path), string(code))
}

// Run executes code as one undoable step. A failed run leaves the engine
// exactly as it was, undo history and typing format included.
func (r *Runner) Run(ctx context.Context, name, code string) (err error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	L := r.newState()
	defer L.Close()
	L.SetContext(ctx)

	start := time.Now()
	cp := r.engine.Checkpoint()

	r.engine.BeginGroup("script " + name)
	err = r.exec(L, code)
	r.engine.EndGroup()

	if err != nil {
		if ctx.Err() != nil {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				err = ErrTimeout
			} else {
				err = ctx.Err()
			}
		}
		r.engine.Rollback(cp)
		r.logger.Warn("script failed", "name", name, "error", err)
		return &Error{Name: name, Err: err}
	}

	r.logger.Debug("script finished", "name", name, "duration", time.Since(start))
	return nil
}

// exec runs code, converting Go panics into errors.
func (r *Runner) exec(L *lua.LState, code string) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("lua panic: %v", rec)
		}
	}()
	return L.DoString(code)
}

// newState creates a sandboxed state with the ed module installed.
func (r *Runner) newState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage},
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	L.SetGlobal("print", L.NewFunction(r.print))

	mod := newModule(r)
	L.PreloadModule(ModuleName, mod.loader)
	L.SetGlobal(ModuleName, mod.table(L))
	r.installRequire(L)

	return L
}

// installRequire restricts require to the safe libraries and ed.
func (r *Runner) installRequire(L *lua.LState) {
	pkg, ok := L.GetGlobal("package").(*lua.LTable)
	if ok {
		L.SetField(pkg, "path", lua.LString(""))
		L.SetField(pkg, "cpath", lua.LString(""))
	}

	allowed := map[string]bool{
		"string":   true,
		"table":    true,
		"math":     true,
		ModuleName: true,
	}
	original := L.GetGlobal("require")
	L.SetGlobal("require", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		if !allowed[name] {
			L.RaiseError("module %q is not available", name)
			return 0
		}
		L.Push(original)
		L.Push(lua.LString(name))
		L.Call(1, 1)
		return 1
	}))
}

func (r *Runner) print(L *lua.LState) int {
	n := L.GetTop()
	parts := make([]string, n)
	for i := 1; i <= n; i++ {
		parts[i-1] = L.ToStringMeta(L.Get(i)).String()
	}
	fmt.Fprintln(r.output, strings.Join(parts, "\t"))
	return 0
}
