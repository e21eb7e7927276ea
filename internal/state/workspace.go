package state

// Workspace holds every split of the session plus the yanked paths.
type Workspace struct {
	splits []*Split
	active int
	yanked []string
}

// NewWorkspace returns an idle workspace with no splits.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// AddSplit appends split without changing which split is active.
func (ws *Workspace) AddSplit(split *Split) *Split {
	ws.splits = append(ws.splits, split)
	return split
}

// NewSingleSplit appends a single-pane split showing w.
func (ws *Workspace) NewSingleSplit(w *Window) *Split {
	return ws.AddSplit(NewSingleSplit(w))
}

// NewPairSplit appends a dual-pane split.
func (ws *Workspace) NewPairSplit(first, second *Window) *Split {
	return ws.AddSplit(NewPairSplit(first, second))
}

// SelectSplit makes the split at index active.
func (ws *Workspace) SelectSplit(index int) bool {
	if index < 0 || index >= len(ws.splits) {
		return false
	}
	ws.active = index
	return true
}

// ActiveSplit returns nil for an empty workspace. An out-of-range index
// falls back to the first split.
func (ws *Workspace) ActiveSplit() *Split {
	if len(ws.splits) == 0 {
		return nil
	}
	if ws.active < 0 || ws.active >= len(ws.splits) {
		return ws.splits[0]
	}
	return ws.splits[ws.active]
}

// ActiveSplitIndex mirrors the fallback of ActiveSplit; -1 when empty.
func (ws *Workspace) ActiveSplitIndex() int {
	if len(ws.splits) == 0 {
		return -1
	}
	if ws.active < 0 || ws.active >= len(ws.splits) {
		return 0
	}
	return ws.active
}

// ActiveWindow returns the window receiving input, or nil when idle.
func (ws *Workspace) ActiveWindow() *Window {
	split := ws.ActiveSplit()
	if split == nil {
		return nil
	}
	return split.Active()
}

func (ws *Workspace) SplitCount() int { return len(ws.splits) }

// YankSelected records the selected path of the active window.
func (ws *Workspace) YankSelected() (string, error) {
	w := ws.ActiveWindow()
	if w == nil {
		return "", nil
	}
	path, err := w.SelectedPath()
	if err != nil {
		return "", err
	}
	ws.yanked = append(ws.yanked, path)
	return path, nil
}

// YankedPaths returns the yanked paths in the order they were recorded.
func (ws *Workspace) YankedPaths() []string {
	return append([]string(nil), ws.yanked...)
}

// LastYanked returns the most recent yanked path.
func (ws *Workspace) LastYanked() (string, bool) {
	if len(ws.yanked) == 0 {
		return "", false
	}
	return ws.yanked[len(ws.yanked)-1], true
}

// RefreshActiveSplit rereads every window of the active split. All windows
// are attempted; the first failure is returned.
func (ws *Workspace) RefreshActiveSplit() error {
	split := ws.ActiveSplit()
	if split == nil {
		return nil
	}
	var firstErr error
	for _, w := range split.Windows() {
		if err := w.Refresh(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
