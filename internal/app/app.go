package app

import (
	"context"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/vtext/internal/caret"
	"github.com/dshills/vtext/internal/clipboard"
	"github.com/dshills/vtext/internal/config"
	"github.com/dshills/vtext/internal/config/watcher"
	"github.com/dshills/vtext/internal/dispatcher"
	"github.com/dshills/vtext/internal/engine"
	"github.com/dshills/vtext/internal/input/keymap"
	"github.com/dshills/vtext/internal/input/mouse"
	"github.com/dshills/vtext/internal/logging"
	"github.com/dshills/vtext/internal/renderer"
	"github.com/dshills/vtext/internal/renderer/backend"
	"github.com/dshills/vtext/internal/renderer/statusline"
	"github.com/dshills/vtext/internal/script"
)

// Application is the central coordinator for all editor components.
// It manages component lifecycles, wiring, and the main event loop.
type Application struct {
	mu sync.Mutex

	// Core infrastructure
	config    *config.Config
	logger    *logging.Logger
	sessionID string
	metrics   *Metrics

	// Editing
	engine     *engine.Engine
	doc        *Document
	dispatcher *dispatcher.Dispatcher
	clipboard  clipboard.Clipboard
	scripts    *script.Runner

	// Input
	keymap  *keymap.Keymap
	tracker *mouse.Tracker
	mouse   *mouse.Handler

	// Output
	backend  backend.Backend
	renderer *renderer.Renderer
	status   *statusline.StatusLine
	blinker  *caret.Blinker
	watcher  *watcher.Watcher

	// Event loop state, owned by the loop goroutine
	ctx       context.Context
	pasting   bool
	paste     strings.Builder
	quitArmed bool

	// State
	running  atomic.Bool
	done     chan struct{}
	quitOnce sync.Once

	opts Options
}

// Options configures the application.
type Options struct {
	// Config is the initial configuration. Nil uses the defaults.
	Config *config.Config

	// ConfigPath is the file Config was loaded from. It is reread on
	// app.reloadConfig and, with WatchConfig, whenever it changes.
	ConfigPath string

	// WatchConfig reloads the configuration when ConfigPath changes.
	WatchConfig bool

	// Overrides are "section.key" settings applied on top of every load
	// of ConfigPath.
	Overrides map[string]string

	// Path is the document to open. Empty opens a scratch document.
	Path string

	// Logger receives application logs. Nil discards them.
	Logger *logging.Logger

	// Clipboard backs copy and paste. Nil uses the system clipboard.
	Clipboard clipboard.Clipboard

	// ScriptOutput receives print output from scripts.
	ScriptOutput io.Writer

	// ReadOnly opens the document for viewing. Edits are refused with a
	// status line message; saving still works.
	ReadOnly bool
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:      opts,
		sessionID: uuid.NewString(),
		metrics:   NewMetrics(),
		done:      make(chan struct{}),
		ctx:       context.Background(),
	}

	if err := app.bootstrap(); err != nil {
		return nil, err
	}

	return app, nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// SessionID identifies this editor session in logs.
func (app *Application) SessionID() string {
	return app.sessionID
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.config
}

// Engine returns the editing engine.
func (app *Application) Engine() *engine.Engine {
	return app.engine
}

// Document returns the open document.
func (app *Application) Document() *Document {
	return app.doc
}

// Dispatcher returns the dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.dispatcher
}

// Renderer returns the renderer, or nil before Run.
func (app *Application) Renderer() *renderer.Renderer {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.renderer
}

// StatusLine returns the status line.
func (app *Application) StatusLine() *statusline.StatusLine {
	return app.status
}

// Metrics returns the application's metrics instance.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// IsModified reports whether the document has unsaved changes.
func (app *Application) IsModified() bool {
	return app.doc.IsModified(app.engine)
}
