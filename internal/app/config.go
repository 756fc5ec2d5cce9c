package app

import (
	"github.com/dshills/vtext/internal/config"
	"github.com/dshills/vtext/internal/logging"
	"github.com/dshills/vtext/internal/renderer"
)

// configChanged is posted by the config watcher.
type configChanged struct{}

// ReloadConfig rereads the configuration file, applies the overrides and
// updates the running components. On error the current configuration stays.
func (app *Application) ReloadConfig() error {
	cfg, err := config.Load(app.opts.ConfigPath)
	if err != nil {
		return NewOperationError("reload", app.opts.ConfigPath, err)
	}
	for path, raw := range app.opts.Overrides {
		if err := cfg.Set(path, raw); err != nil {
			return NewOperationError("reload", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return NewOperationError("reload", app.opts.ConfigPath, err)
	}

	app.mu.Lock()
	old := app.config
	app.config = cfg
	app.mu.Unlock()

	app.applyConfig(old, cfg)
	app.logger.Info("configuration reloaded", "source", cfg.Source())
	return nil
}

// applyConfig pushes cfg into the running components. Document settings
// the user may have changed since startup, such as flow and typing format,
// are only touched when the file changed them.
func (app *Application) applyConfig(old, cfg *config.Config) {
	if old.Editor.Flow != cfg.Editor.Flow {
		app.engine.SetFlow(cfg.Editor.FlowValue())
	}
	if old.Format != cfg.Format {
		app.engine.SetCurrentFormat(cfg.Format.Style())
	}

	app.keymap = buildKeymap(cfg.Keys, app.logger)
	app.blinker.SetConfig(cfg.Caret.BlinkConfig())
	app.logger.SetLevel(logging.ParseLevel(cfg.Logging.Level))

	if r := app.Renderer(); r != nil {
		opts := RendererOptions(cfg, r.Options())
		if old.Editor.SegmentSpacing == cfg.Editor.SegmentSpacing {
			opts.SegmentSpacing = r.SegmentSpacing()
		}
		r.SetOptions(opts)
	}
}

// RendererOptions overlays the editor settings of cfg on opts.
func RendererOptions(cfg *config.Config, opts renderer.Options) renderer.Options {
	opts.Alignment = cfg.Editor.AlignmentValue()
	opts.SegmentSpacing = cfg.Editor.SegmentSpacing
	if c, ok := cfg.Editor.SelectionColorValue(); ok {
		opts.SelectionColor = c
	}
	return opts
}
