package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== SPLIT TESTS =====

func TestToggleActiveClonesSinglePane(t *testing.T) {
	fsys := treeFS()
	w := openMemWindow(t, fsys, "/root")
	w.Listing().SelectName("sub")
	split := NewSingleSplit(w)
	reads := fsys.reads

	split.ToggleActive()

	require.True(t, split.IsDual())
	assert.Equal(t, reads, fsys.reads)
	assert.Equal(t, PaneSecond, split.ActivePane())
	second := split.Second()
	assert.NotSame(t, w, second)
	assert.Equal(t, w.Path(), second.Path())
	assert.Equal(t, w.Listing().Entries(), second.Listing().Entries())
	assert.Equal(t, w.Listing().SelectedIndex(), second.Listing().SelectedIndex())
}

func TestPanesNavigateIndependently(t *testing.T) {
	fsys := treeFS()
	split := NewSingleSplit(openMemWindow(t, fsys, "/root"))
	split.ToggleActive()

	split.Active().Listing().SelectName("sub")
	require.NoError(t, split.Active().Descend())

	assert.Equal(t, p("/root/sub"), split.Second().Path())
	assert.Equal(t, p("/root"), split.First().Path())
	assert.Equal(t, 0, split.First().Listing().SelectedIndex())
}

func TestToggleActiveTwiceReturnsToFirst(t *testing.T) {
	fsys := treeFS()
	split := NewSingleSplit(openMemWindow(t, fsys, "/root"))

	split.ToggleActive()
	second := split.Second()
	split.ToggleActive()

	assert.Equal(t, PaneFirst, split.ActivePane())
	assert.Same(t, split.First(), split.Active())
	assert.Same(t, second, split.Second(), "the clone is made only once")
}

func TestPairSplitStartsOnFirst(t *testing.T) {
	fsys := treeFS()
	a := openMemWindow(t, fsys, "/root")
	b := openMemWindow(t, fsys, "/root/sub")

	split := NewPairSplit(a, b)

	assert.Same(t, a, split.Active())
	assert.Equal(t, []*Window{a, b}, split.Windows())
	split.ToggleActive()
	assert.Same(t, b, split.Active())
}

func TestActiveFallsBackWithoutSecondPane(t *testing.T) {
	fsys := treeFS()
	w := openMemWindow(t, fsys, "/root")
	split := &Split{first: w, active: PaneSecond}

	assert.Same(t, w, split.Active())
	assert.Equal(t, PaneFirst, split.ActivePane())
	assert.Len(t, split.Windows(), 1)
}

func TestPaneOpposite(t *testing.T) {
	assert.Equal(t, PaneSecond, PaneFirst.Opposite())
	assert.Equal(t, PaneFirst, PaneSecond.Opposite())
	assert.Equal(t, "second", PaneSecond.String())
}
