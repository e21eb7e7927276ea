package app

import (
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/dirsplit/internal/errmsg"
	fsutil "github.com/kk-code-lab/dirsplit/internal/fs"
	statepkg "github.com/kk-code-lab/dirsplit/internal/state"
	renderui "github.com/kk-code-lab/dirsplit/internal/ui/render"
)

// Run processes input until the user quits.
func (app *Application) Run() {
	defer app.fini()

	app.render()
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	var flashTimer *time.Timer
	var flashCh <-chan time.Time
	defer func() {
		if flashTimer != nil {
			flashTimer.Stop()
		}
	}()

	for !app.shouldQuit {
		if renderPending {
			app.render()
			renderPending = false
		}

		if remaining := app.flashRemaining(); remaining > 0 {
			if flashTimer == nil {
				flashTimer = time.NewTimer(remaining)
			} else {
				flashTimer.Reset(remaining)
			}
			flashCh = flashTimer.C
		} else {
			flashCh = nil
		}

		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if app.handleEvent(ev) {
				renderPending = true
			}
		case <-flashCh:
			renderPending = true
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
		return true
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	case statepkg.ResizeAction:
		app.screen.Sync()
		return true
	case statepkg.YankPathAction:
		return app.handleYank()
	}

	app.clearMessage()
	if _, err := app.reducer.Reduce(app.workspace, action); err != nil {
		app.reportError(operationFor(action), err)
	}
	return true
}

// handleYank records the selected path, then offers it to the clipboard.
// A clipboard failure keeps the recorded path.
func (app *Application) handleYank() bool {
	app.clearMessage()
	before := len(app.workspace.YankedPaths())
	if _, err := app.reducer.Reduce(app.workspace, statepkg.YankPathAction{}); err != nil {
		app.reportError(errmsg.OpYankPath, err)
		return true
	}
	yanked, ok := app.workspace.LastYanked()
	if !ok || len(app.workspace.YankedPaths()) == before {
		return true
	}
	app.logger.Info("yanked path", "path", yanked)

	if app.clipboard == nil {
		app.lastYankTime = app.now()
		return true
	}
	if err := copyToClipboard(app.clipboard, yanked); err != nil {
		app.reportError(errmsg.OpCopyClipboard, err)
		return true
	}
	app.lastYankTime = app.now()
	return true
}

func operationFor(action statepkg.Action) errmsg.Op {
	switch action.(type) {
	case statepkg.EnterDirectoryAction:
		return errmsg.OpEnterDirectory
	case statepkg.GoUpAction:
		return errmsg.OpParentDirectory
	default:
		return errmsg.OpRefreshDirectory
	}
}

func (app *Application) reportError(op errmsg.Op, err error) {
	app.message = errmsg.Format(op, err)
	app.messageError = true

	var clipErr *ClipboardError
	if errors.As(err, &clipErr) {
		app.logger.Warn(string(op), "path", clipErr.Path, "err", clipErr.Err)
		return
	}
	app.logger.Warn(string(op), "err", err)
}

func (app *Application) clearMessage() {
	app.message = ""
	app.messageError = false
}

func (app *Application) flashRemaining() time.Duration {
	if app.lastYankTime.IsZero() {
		return 0
	}
	remaining := flashDuration - app.now().Sub(app.lastYankTime)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (app *Application) frame() renderui.Frame {
	_, h := app.screen.Size()
	capacity := renderui.ListCapacity(h, len(app.workspace.YankedPaths()))
	view := app.workspace.Snapshot(capacity)

	frame := renderui.Frame{
		View:    view,
		Message: app.message,
		IsError: app.messageError,
		Flash:   app.flashRemaining() > 0,
	}
	for _, pane := range view.Panes {
		if pane.Active && pane.Selected != nil && pane.Selected.IsSymlink {
			if target, err := fsutil.LinkTarget(pane.Selected.FullPath); err == nil {
				frame.SymlinkTarget = target
			}
		}
	}
	return frame
}

func (app *Application) render() {
	app.renderer.Render(app.frame())
}
