package app

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/dirsplit/internal/logging"
	statepkg "github.com/kk-code-lab/dirsplit/internal/state"
	inputui "github.com/kk-code-lab/dirsplit/internal/ui/input"
	renderui "github.com/kk-code-lab/dirsplit/internal/ui/render"
)

// flashDuration is how long the status line stays highlighted after a yank.
const flashDuration = 150 * time.Millisecond

// Options configures the collaborators of an Application.
type Options struct {
	// Clipboard receives yanked paths; nil keeps yanks in the session only.
	Clipboard Clipboard
	Logger    *slog.Logger
}

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	workspace  *statepkg.Workspace
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	clipboard  Clipboard
	logger     *slog.Logger
	shouldQuit bool

	message      string
	messageError bool
	lastYankTime time.Time
	now          func() time.Time
	finiOnce     sync.Once
}

// NewApplication opens the terminal and prepares ws for interaction.
func NewApplication(ws *statepkg.Workspace, opts Options) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return newApplicationWithScreen(screen, ws, opts), nil
}

func newApplicationWithScreen(screen tcell.Screen, ws *statepkg.Workspace, opts Options) *Application {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	actionCh := make(chan statepkg.Action, 10)
	return &Application{
		screen:    screen,
		workspace: ws,
		reducer:   statepkg.NewStateReducer(),
		renderer:  renderui.NewRenderer(screen),
		input:     inputui.NewInputHandler(actionCh),
		actionCh:  actionCh,
		clipboard: opts.Clipboard,
		logger:    logger,
		now:       time.Now,
	}
}

// Workspace exposes the session state, e.g. to print yanked paths on exit.
func (app *Application) Workspace() *statepkg.Workspace {
	return app.workspace
}

// Close restores the terminal. It is safe to call after Run returned.
func (app *Application) Close() error {
	app.fini()
	return nil
}

func (app *Application) fini() {
	app.finiOnce.Do(app.screen.Fini)
}
