package app

import (
	"github.com/dshills/vtext/internal/caret"
	"github.com/dshills/vtext/internal/clipboard"
	"github.com/dshills/vtext/internal/config"
	"github.com/dshills/vtext/internal/dispatcher"
	"github.com/dshills/vtext/internal/engine"
	"github.com/dshills/vtext/internal/input/keymap"
	"github.com/dshills/vtext/internal/input/mouse"
	"github.com/dshills/vtext/internal/logging"
	"github.com/dshills/vtext/internal/renderer/statusline"
	"github.com/dshills/vtext/internal/script"
)

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config and logging
	app.config = app.opts.Config
	if app.config == nil {
		app.config = config.Default()
	}
	cfg := app.config

	logger := app.opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	app.logger = logger.WithComponent("app").WithField("session", app.sessionID)

	// 2. Engine
	engineOpts := []engine.Option{
		engine.WithFlow(cfg.Editor.FlowValue()),
		engine.WithFormat(cfg.Format.Style()),
	}
	if cfg.Editor.MaxUndo > 0 {
		engineOpts = append(engineOpts, engine.WithMaxUndoEntries(cfg.Editor.MaxUndo))
	}
	app.engine = engine.New(engineOpts...)

	// 3. Document. A rich file overrides the configured flow.
	doc, err := openDocument(app.opts.Path, app.engine)
	if err != nil {
		return err
	}
	app.doc = doc

	// 4. Dispatcher
	app.clipboard = app.opts.Clipboard
	if app.clipboard == nil {
		app.clipboard = clipboard.New()
	}
	app.dispatcher = dispatcher.New(dispatcher.DefaultConfig().
		WithMetrics().
		WithPanicRecovery(true).
		WithReadOnly(app.opts.ReadOnly))
	dispatcher.RegisterDefaults(app.dispatcher)
	app.dispatcher.SetEngine(app.engine)
	app.dispatcher.SetClipboard(app.clipboard)

	// 5. Scripts
	scriptOpts := []script.Option{
		script.WithDispatcher(app.dispatcher),
		script.WithLogger(logger),
	}
	if app.opts.ScriptOutput != nil {
		scriptOpts = append(scriptOpts, script.WithOutput(app.opts.ScriptOutput))
	}
	app.scripts = script.New(app.engine, scriptOpts...)

	app.registerHandlers()

	// 6. Input
	app.keymap = buildKeymap(cfg.Keys, app.logger)
	app.tracker = mouse.NewTracker()
	app.mouse = mouse.NewHandler(mouse.DefaultConfig())
	app.mouse.OnDrag(app.onDrag)

	// 7. Status line and caret
	app.status = statusline.New()
	app.blinker = caret.New(cfg.Caret.BlinkConfig(), app.onCaretToggle)

	app.logger.Info("application initialized",
		"path", doc.Path,
		"document", doc.ID,
		"flow", app.engine.Flow().String(),
		"config", cfg.Source())
	return nil
}

// buildKeymap returns the default bindings with overrides applied. Invalid
// overrides are logged and skipped as a whole.
func buildKeymap(overrides map[string]string, logger *logging.Logger) *keymap.Keymap {
	km := keymap.Default()
	if len(overrides) == 0 {
		return km
	}
	merged := km.Clone()
	if err := merged.Merge(overrides); err != nil {
		logger.Warn("ignoring key bindings", "error", err)
		return km
	}
	return merged
}
