package app

import (
	"context"
	"time"

	"github.com/dshills/vtext/internal/dispatcher/handler"
	"github.com/dshills/vtext/internal/dispatcher/handlers/editor"
	"github.com/dshills/vtext/internal/input"
	"github.com/dshills/vtext/internal/input/key"
	"github.com/dshills/vtext/internal/renderer/backend"
)

// caretToggled is posted by the blinker.
type caretToggled struct {
	visible bool
}

// eventLoop is the main application loop.
func (app *Application) eventLoop(ctx context.Context) error {
	events := app.startInputPolling()

	frameTicker := time.NewTicker(app.frameInterval())
	defer frameTicker.Stop()

	app.renderFrame()

	for {
		select {
		case <-app.done:
			return nil

		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			timer := StartTimer()
			app.handleEvent(ev)
			if ev.Type != backend.EventInterrupt {
				app.metrics.RecordInput(timer.Elapsed())
			}

		case <-frameTicker.C:
			if app.renderer.NeedsRedraw() {
				app.renderFrame()
			}
		}
	}
}

func (app *Application) frameInterval() time.Duration {
	fps := app.renderer.Options().MaxFPS
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// renderFrame refreshes the status line and draws a frame.
func (app *Application) renderFrame() {
	timer := StartTimer()
	app.refreshStatus()
	app.renderer.Render()
	app.metrics.RecordFrame(timer.Elapsed())
}

// refreshStatus copies the document state into the status line.
func (app *Application) refreshStatus() {
	c := app.engine.Cursor()
	app.status.SetFlow(app.engine.Flow())
	app.status.SetFilename(app.doc.Name())
	app.status.SetModified(app.IsModified())
	app.status.SetPosition(c.Segment, c.Offset, app.engine.SegmentCount())
	app.status.SetFormat(app.engine.FormatAtCaret())
}

// handleEvent processes a backend event and routes it appropriately.
func (app *Application) handleEvent(ev backend.Event) {
	switch ev.Type {
	case backend.EventResize:
		app.renderer.Resize(ev.Width, ev.Height)
	case backend.EventKey:
		app.handleKey(ev)
	case backend.EventMouse:
		app.handleMouse(ev)
	case backend.EventPaste:
		app.handlePaste(ev)
	case backend.EventFocus:
		app.handleFocus(ev)
	case backend.EventInterrupt:
		app.metrics.RecordInterrupt()
		app.handleInterrupt(ev)
	}
}

// handleKey looks the key up in the keymap. Unbound printable keys insert
// their character. Keys inside a bracketed paste are collected instead.
func (app *Application) handleKey(ev backend.Event) {
	kev := key.FromBackend(ev)

	if app.pasting {
		if r, ok := pastedRune(kev); ok {
			app.paste.WriteRune(r)
		}
		return
	}

	if b, ok := app.keymap.Lookup(kev); ok {
		app.dispatch(b.ToAction(input.SourceKeyboard))
	} else if kev.IsChar() {
		app.dispatch(input.NewAction(editor.ActionInsertText, input.SourceKeyboard).WithText(string(kev.Rune)))
	}
	app.blinker.Reset()
}

// pastedRune returns the character a key inside a bracketed paste stands
// for. Terminals report pasted control characters as keys: Tab arrives as
// Tab or ctrl+i, line feeds as Enter or ctrl+j.
func pastedRune(kev key.Event) (rune, bool) {
	switch {
	case kev.IsChar():
		return kev.Rune, true
	case kev.Key == key.KeyEnter:
		return '\n', true
	case kev.Key == key.KeyTab:
		return '\t', true
	case kev.IsRune() && kev.Modifiers == key.ModCtrl:
		switch kev.Rune {
		case 'i':
			return '\t', true
		case 'j', 'm':
			return '\n', true
		}
	}
	return 0, false
}

// handleMouse turns pointer reports into caret and selection actions.
func (app *Application) handleMouse(ev backend.Event) {
	mev, ok := app.tracker.Translate(ev, time.Now())
	if !ok {
		return
	}
	if action := app.mouse.Handle(mev); action != nil {
		app.dispatch(*action)
	}
}

// handlePaste brackets a paste. The collected text is inserted as one edit
// when the paste ends.
func (app *Application) handlePaste(ev backend.Event) {
	if ev.Focused {
		app.pasting = true
		app.paste.Reset()
		return
	}
	if !app.pasting {
		return
	}
	app.pasting = false
	text := app.paste.String()
	app.paste.Reset()
	app.dispatch(input.NewAction(editor.ActionInsertText, input.SourceKeyboard).WithText(text))
	app.blinker.Reset()
}

// handleFocus fades the selection and stops blinking while unfocused.
func (app *Application) handleFocus(ev backend.Event) {
	app.renderer.SetFocused(ev.Focused)
	if ev.Focused {
		app.blinker.Start(app.ctx)
	} else {
		app.blinker.Stop()
	}
}

func (app *Application) handleInterrupt(ev backend.Event) {
	switch data := ev.Data.(type) {
	case caretToggled:
		app.renderer.SetCaretVisible(data.visible)
	case configChanged:
		app.dispatch(input.NewAction(ActionReloadConfig, input.SourceAPI))
	}
}

func (app *Application) dispatch(action input.Action) handler.Result {
	return app.dispatcher.Dispatch(action)
}

// onCaretToggle runs on the blinker goroutine and hands the change to the
// event loop.
func (app *Application) onCaretToggle(visible bool) {
	if b := app.backend; b != nil {
		b.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: caretToggled{visible: visible}})
	}
}

// onDrag keeps the caret steady while a drag selection is in progress.
func (app *Application) onDrag(active bool) {
	if active {
		app.blinker.Pause()
	} else {
		app.blinker.Resume()
	}
}

// startInputPolling starts a goroutine that polls for input events.
// Events are sent to the returned channel.
//
// PollEvent is blocking, so the goroutine exits on the event that follows
// backend shutdown.
func (app *Application) startInputPolling() <-chan backend.Event {
	events := make(chan backend.Event, 100)

	go func() {
		defer close(events)

		for app.running.Load() {
			ev := app.backend.PollEvent()
			if !app.running.Load() {
				return
			}
			if ev.Type == backend.EventNone {
				continue
			}

			select {
			case events <- ev:
			case <-app.done:
				return
			default:
				app.metrics.RecordInputDropped()
			}
		}
	}()

	return events
}
