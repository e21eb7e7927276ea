package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/dirsplit/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan<- statepkg.Action
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan<- statepkg.Action) *InputHandler {
	return &InputHandler{actionChan: actionChan}
}

// ProcessEvent converts a tcell event into an Action. It returns false once
// the user asked to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	action, quit := keyAction(ev)
	if action != nil {
		ih.actionChan <- action
	}
	return !quit
}

// keyAction maps a key press to its action. Unbound keys yield nil.
func keyAction(ev *tcell.EventKey) (statepkg.Action, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return statepkg.QuitAction{}, true
	case tcell.KeyTab:
		return statepkg.SwitchPaneAction{}, false
	case tcell.KeyUp:
		return statepkg.NavigateUpAction{}, false
	case tcell.KeyDown:
		return statepkg.NavigateDownAction{}, false
	case tcell.KeyEnter, tcell.KeyRight:
		return statepkg.EnterDirectoryAction{}, false
	case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
		return statepkg.GoUpAction{}, false
	case tcell.KeyRune:
		return runeAction(ev.Rune())
	}
	return nil, false
}

func runeAction(r rune) (statepkg.Action, bool) {
	switch r {
	case 'q':
		return statepkg.QuitAction{}, true
	case 'w':
		return statepkg.SwitchPaneAction{}, false
	case 's':
		return statepkg.CycleSortAction{}, false
	case 'k':
		return statepkg.NavigateUpAction{}, false
	case 'j':
		return statepkg.NavigateDownAction{}, false
	case 'l':
		return statepkg.EnterDirectoryAction{}, false
	case 'h':
		return statepkg.GoUpAction{}, false
	case 'y':
		return statepkg.YankPathAction{}, false
	}
	return nil, false
}
