package app

import (
	"errors"
	"fmt"

	"github.com/dshills/vtext/internal/dispatcher"
	"github.com/dshills/vtext/internal/dispatcher/execctx"
	"github.com/dshills/vtext/internal/dispatcher/handler"
	"github.com/dshills/vtext/internal/input"
	"github.com/dshills/vtext/internal/renderer/statusline"
)

// Application actions.
const (
	ActionSave         = "file.save"
	ActionSaveAs       = "file.saveAs"
	ActionQuit         = "app.quit"
	ActionForceQuit    = "app.forceQuit"
	ActionReloadConfig = "app.reloadConfig"
	ActionRunScript    = "script.run"
)

// registerHandlers installs the actions that need the application and the
// hooks that keep the screen in step with dispatched actions.
func (app *Application) registerHandlers() {
	d := app.dispatcher
	d.RegisterHandlerFunc(ActionSave, app.handleSave)
	d.RegisterHandlerFunc(ActionSaveAs, app.handleSaveAs)
	d.RegisterHandlerFunc(ActionQuit, app.handleQuit)
	d.RegisterHandlerFunc(ActionForceQuit, app.handleForceQuit)
	d.RegisterHandlerFunc(ActionReloadConfig, app.handleReloadConfig)
	d.RegisterHandlerFunc(ActionRunScript, app.handleRunScript)

	d.RegisterPreHook(dispatcher.PreDispatchFunc(app.beforeDispatch))
	d.RegisterPostHook(dispatcher.PostDispatchFunc(app.afterDispatch))
}

// beforeDispatch disarms a pending quit when any other action runs.
func (app *Application) beforeDispatch(action *input.Action, _ *execctx.ExecutionContext) bool {
	if action.Name != ActionQuit {
		app.quitArmed = false
	}
	return true
}

// afterDispatch schedules a redraw and reports the result on the status line.
func (app *Application) afterDispatch(action *input.Action, _ *execctx.ExecutionContext, result *handler.Result) {
	if r := app.Renderer(); r != nil {
		r.MarkDirty()
	}

	switch {
	case result.IsError():
		app.logger.Warn("action failed", "action", action.Name, "source", action.Source.String(), "error", result.Error)
		app.status.SetMessage(result.Error.Error(), statusline.MessageError)
	case result.Message == "":
		app.status.ClearMessage()
	case result.IsOK():
		app.status.SetMessage(result.Message, statusline.MessageInfo)
	default:
		app.status.SetMessage(result.Message, statusline.MessageWarning)
	}
}

func (app *Application) handleSave(_ input.Action, _ *execctx.ExecutionContext) handler.Result {
	return app.saveResult(app.Save())
}

// handleSaveAs saves to the "path" argument, or to the action text.
func (app *Application) handleSaveAs(action input.Action, _ *execctx.ExecutionContext) handler.Result {
	path := actionPath(action)
	if path == "" {
		return handler.Error(ErrNoPath)
	}
	return app.saveResult(app.SaveAs(path))
}

func (app *Application) saveResult(err error) handler.Result {
	if err != nil {
		return handler.Error(err)
	}
	return handler.SuccessWithMessage(fmt.Sprintf("saved %s", app.doc.Name()))
}

// handleQuit quits, or warns once when the document has unsaved changes.
// Quitting again right away discards them.
func (app *Application) handleQuit(_ input.Action, _ *execctx.ExecutionContext) handler.Result {
	err := app.Quit(app.quitArmed)
	if errors.Is(err, ErrUnsavedChanges) {
		app.quitArmed = true
		return handler.NoOpWithMessage("unsaved changes: quit again to discard them")
	}
	return handler.Success()
}

func (app *Application) handleForceQuit(_ input.Action, _ *execctx.ExecutionContext) handler.Result {
	_ = app.Quit(true)
	return handler.Success()
}

func (app *Application) handleReloadConfig(_ input.Action, _ *execctx.ExecutionContext) handler.Result {
	if err := app.ReloadConfig(); err != nil {
		return handler.Error(err)
	}
	return handler.SuccessWithMessage("configuration reloaded")
}

// handleRunScript runs the Lua file named by the "path" argument or the
// action text.
func (app *Application) handleRunScript(action input.Action, _ *execctx.ExecutionContext) handler.Result {
	path := actionPath(action)
	if path == "" {
		return handler.Errorf("%s: missing script path", ActionRunScript)
	}
	if err := app.scripts.RunFile(app.ctx, path); err != nil {
		return handler.Error(err)
	}
	return handler.SuccessWithMessage(fmt.Sprintf("ran %s", path)).WithRedraw()
}

func actionPath(action input.Action) string {
	if path := action.Args.GetString("path"); path != "" {
		return path
	}
	return action.Args.Text
}
