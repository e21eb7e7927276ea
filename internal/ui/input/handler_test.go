package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/dirsplit/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func process(t *testing.T, ev tcell.Event) (statepkg.Action, bool) {
	t.Helper()
	actionChan := make(chan statepkg.Action, 1)
	handler := NewInputHandler(actionChan)

	keepRunning := handler.ProcessEvent(ev)

	select {
	case action := <-actionChan:
		return action, keepRunning
	default:
		return nil, keepRunning
	}
}

func TestKeyBindings(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want statepkg.Action
	}{
		{"tab switches pane", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), statepkg.SwitchPaneAction{}},
		{"w switches pane", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), statepkg.SwitchPaneAction{}},
		{"s cycles sort", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), statepkg.CycleSortAction{}},
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), statepkg.NavigateUpAction{}},
		{"k", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), statepkg.NavigateUpAction{}},
		{"down arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), statepkg.NavigateDownAction{}},
		{"j", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), statepkg.NavigateDownAction{}},
		{"enter descends", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), statepkg.EnterDirectoryAction{}},
		{"right descends", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), statepkg.EnterDirectoryAction{}},
		{"l descends", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), statepkg.EnterDirectoryAction{}},
		{"left ascends", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), statepkg.GoUpAction{}},
		{"h ascends", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), statepkg.GoUpAction{}},
		{"backspace ascends", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), statepkg.GoUpAction{}},
		{"y yanks", tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModNone), statepkg.YankPathAction{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, keepRunning := process(t, tt.ev)
			assert.True(t, keepRunning)
			assert.Equal(t, tt.want, action)
		})
	}
}

func TestQuitKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	} {
		action, keepRunning := process(t, ev)
		assert.False(t, keepRunning)
		assert.Equal(t, statepkg.QuitAction{}, action)
	}
}

func TestUnboundKeysAreIgnored(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone),
	} {
		action, keepRunning := process(t, ev)
		assert.True(t, keepRunning)
		assert.Nil(t, action)
	}
}

func TestResizeEmitsAction(t *testing.T) {
	action, keepRunning := process(t, tcell.NewEventResize(120, 40))

	require.True(t, keepRunning)
	assert.Equal(t, statepkg.ResizeAction{Width: 120, Height: 40}, action)
}

func TestOtherEventsAreIgnored(t *testing.T) {
	action, keepRunning := process(t, tcell.NewEventInterrupt(nil))

	assert.True(t, keepRunning)
	assert.Nil(t, action)
}
