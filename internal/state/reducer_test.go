package state

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorkspace(t *testing.T, fsys *memFS, path string) *Workspace {
	t.Helper()
	ws := NewWorkspace()
	ws.NewSingleSplit(openMemWindow(t, fsys, path))
	return ws
}

func reduceAll(t *testing.T, ws *Workspace, actions ...Action) *Workspace {
	t.Helper()
	reducer := NewStateReducer()
	for _, action := range actions {
		var err error
		ws, err = reducer.Reduce(ws, action)
		require.NoError(t, err, "action %T", action)
	}
	return ws
}

// ===== NAVIGATION TESTS =====

func TestReduceNavigate(t *testing.T) {
	fsys := treeFS()
	ws := newTestWorkspace(t, fsys, "/root")

	ws = reduceAll(t, ws, NavigateDownAction{}, NavigateDownAction{}, NavigateDownAction{})
	assert.Equal(t, 2, ws.ActiveWindow().Listing().SelectedIndex())

	ws = reduceAll(t, ws, NavigateUpAction{})
	assert.Equal(t, 1, ws.ActiveWindow().Listing().SelectedIndex())
}

func TestReduceEnterAndGoUp(t *testing.T) {
	fsys := treeFS()
	ws := newTestWorkspace(t, fsys, "/root")

	// a.txt, other, sub
	ws = reduceAll(t, ws, NavigateDownAction{}, NavigateDownAction{}, EnterDirectoryAction{})
	assert.Equal(t, p("/root/sub"), ws.ActiveWindow().Path())

	ws = reduceAll(t, ws, GoUpAction{})
	assert.Equal(t, p("/root"), ws.ActiveWindow().Path())
	assert.Equal(t, "sub", mustSelected(t, ws.ActiveWindow()).Name)
}

func TestReduceErrorLeavesWorkspaceUnchanged(t *testing.T) {
	fsys := treeFS()
	ws := newTestWorkspace(t, fsys, "/root")
	ws = reduceAll(t, ws, NavigateDownAction{}, NavigateDownAction{})
	fsys.readErrs[p("/root/sub")] = fs.ErrPermission

	got, err := NewStateReducer().Reduce(ws, EnterDirectoryAction{})

	require.Error(t, err)
	assert.Same(t, ws, got)
	assert.Equal(t, p("/root"), got.ActiveWindow().Path())
	assert.Equal(t, 2, got.ActiveWindow().Listing().SelectedIndex())
}

// ===== LAYOUT TESTS =====

func TestReduceSwitchPaneRoutesInput(t *testing.T) {
	fsys := treeFS()
	ws := newTestWorkspace(t, fsys, "/root")

	ws = reduceAll(t, ws, SwitchPaneAction{}, NavigateDownAction{})

	split := ws.ActiveSplit()
	require.True(t, split.IsDual())
	assert.Equal(t, 0, split.First().Listing().SelectedIndex())
	assert.Equal(t, 1, split.Second().Listing().SelectedIndex())

	ws = reduceAll(t, ws, SwitchPaneAction{}, NavigateDownAction{}, NavigateDownAction{})
	assert.Equal(t, 2, split.First().Listing().SelectedIndex())
	assert.Equal(t, 1, split.Second().Listing().SelectedIndex())
}

func TestReduceCycleSortAffectsActivePaneOnly(t *testing.T) {
	fsys := treeFS()
	ws := newTestWorkspace(t, fsys, "/root")

	ws = reduceAll(t, ws, SwitchPaneAction{}, CycleSortAction{})

	split := ws.ActiveSplit()
	assert.Equal(t, SortUngrouped, split.First().Listing().SortMode())
	assert.Equal(t, SortDirectoriesFirst, split.Second().Listing().SortMode())
	assert.Equal(t, []string{"other", "sub", "a.txt"}, names(split.Second().Listing().Entries()))
}

// ===== VIEW TESTS =====

func TestReduceRefresh(t *testing.T) {
	fsys := treeFS()
	ws := newTestWorkspace(t, fsys, "/root/other")
	fsys.dir("/root/other", fileEntry("new.txt"))

	ws = reduceAll(t, ws, RefreshAction{})

	assert.Equal(t, []string{"new.txt"}, names(ws.ActiveWindow().Listing().Entries()))
}

func TestReduceYank(t *testing.T) {
	fsys := treeFS()
	ws := newTestWorkspace(t, fsys, "/root")

	ws = reduceAll(t, ws, YankPathAction{}, NavigateDownAction{}, YankPathAction{})

	assert.Equal(t, []string{p("/root/a.txt"), p("/root/other")}, ws.YankedPaths())
}

func TestReduceIgnoresUnhandledActions(t *testing.T) {
	fsys := treeFS()
	ws := newTestWorkspace(t, fsys, "/root")

	ws = reduceAll(t, ws, ResizeAction{Width: 80, Height: 24}, QuitAction{}, struct{}{})

	assert.Equal(t, 0, ws.ActiveWindow().Listing().SelectedIndex())
	assert.False(t, ws.ActiveSplit().IsDual())
}

func TestReduceOnIdleWorkspace(t *testing.T) {
	ws := NewWorkspace()

	got := reduceAll(t, ws, NavigateDownAction{}, EnterDirectoryAction{}, GoUpAction{},
		SwitchPaneAction{}, CycleSortAction{}, RefreshAction{}, YankPathAction{})

	assert.Same(t, ws, got)
	assert.Equal(t, 0, got.SplitCount())
}
