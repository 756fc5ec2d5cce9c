package app

import (
	"context"

	"github.com/dshills/vtext/internal/config/watcher"
	"github.com/dshills/vtext/internal/renderer"
	"github.com/dshills/vtext/internal/renderer/backend"
)

// Run starts the application main loop.
// Blocks until Quit is called or ctx is cancelled.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	if err := app.attach(); err != nil {
		app.running.Store(false)
		return err
	}
	defer func() {
		// Stop polling before the backend goes away so the poller exits
		// on the event that Shutdown uses to unblock it.
		app.running.Store(false)
		app.backend.Shutdown()
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	app.ctx = ctx

	app.blinker.Start(ctx)
	defer app.blinker.Stop()

	app.startWatcher()
	defer app.stopWatcher()

	app.logger.Info("event loop started")
	err := app.eventLoop(ctx)
	app.logger.Info("event loop stopped", "metrics", app.metrics.Snapshot().String())
	return err
}

// attach initializes the backend and creates the renderer on it.
func (app *Application) attach() error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.backend == nil {
		return ErrNoBackend
	}
	if err := app.backend.Init(); err != nil {
		return NewComponentError("backend", "init", err)
	}

	r := renderer.New(app.backend, RendererOptions(app.config, renderer.DefaultOptions()))
	r.SetSource(app.engine)
	r.SetOverlay(app.status)
	app.renderer = r
	app.dispatcher.SetView(r)
	return nil
}

// Quit stops the event loop. Unless force is set it refuses with
// ErrUnsavedChanges while the document is modified.
func (app *Application) Quit(force bool) error {
	if !force && app.IsModified() {
		return ErrUnsavedChanges
	}
	app.quitOnce.Do(func() {
		app.logger.Info("quit requested", "force", force)
		close(app.done)
	})
	return nil
}

// Save writes the document to its file.
func (app *Application) Save() error {
	return app.SaveAs(app.doc.Path)
}

// SaveAs writes the document to path, which becomes the document file.
func (app *Application) SaveAs(path string) error {
	if err := app.doc.save(path, app.engine); err != nil {
		app.logger.Error("save failed", "path", path, "error", err)
		return err
	}
	app.logger.Info("document saved", "path", path, "document", app.doc.ID)
	return nil
}

// startWatcher watches the configuration file when requested. Changes are
// posted to the event loop as interrupts.
func (app *Application) startWatcher() {
	if !app.opts.WatchConfig || app.opts.ConfigPath == "" {
		return
	}
	w, err := watcher.New(app.opts.ConfigPath,
		func(ev watcher.Event) {
			app.logger.Debug("config file changed", "op", ev.Op.String())
			app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: configChanged{}})
		},
		watcher.WithErrorHandler(func(err error) {
			app.logger.Warn("config watcher error", "error", err)
		}),
	)
	if err != nil {
		app.logger.Warn("config watcher unavailable", "error", NewComponentError("watcher", "start", err))
		return
	}
	app.watcher = w
}

func (app *Application) stopWatcher() {
	if app.watcher == nil {
		return
	}
	if err := app.watcher.Close(); err != nil {
		app.logger.Warn("config watcher close failed", "error", err)
	}
	app.watcher = nil
}
