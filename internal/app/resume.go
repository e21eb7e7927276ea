package app

import statepkg "github.com/kk-code-lab/dirsplit/internal/state"

// resumeAfterStop repaints after the process was continued and rereads the
// active split, since the directories may have changed while it was stopped.
func (app *Application) resumeAfterStop() bool {
	// Resume fails when the terminal was never suspended, as after an external SIGSTOP.
	if err := app.screen.Resume(); err != nil {
		app.logger.Debug("resume terminal", "err", err)
	}
	app.screen.Sync()
	app.logger.Info("refreshing after resume")
	app.handleAction(statepkg.RefreshAction{})
	return true
}
