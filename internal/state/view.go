package state

// View is the read-only snapshot a renderer draws for one frame.
type View struct {
	Panes      []PaneView
	Yanked     []string
	SplitIndex int
	SplitCount int
}

// PaneView describes one visible window.
type PaneView struct {
	Label    string
	Path     string
	Active   bool
	SortMode SortMode
	Offset   int
	Total    int
	Rows     []RowView
	Selected *FileEntry
}

// RowView is one visible entry of a pane.
type RowView struct {
	Entry    FileEntry
	Index    int
	Selected bool
	Hidden   bool
}

// Snapshot scrolls every pane of the active split so its selection fits into
// capacity rows and returns what to draw.
func (ws *Workspace) Snapshot(capacity int) View {
	view := View{
		Yanked:     ws.YankedPaths(),
		SplitIndex: ws.ActiveSplitIndex(),
		SplitCount: ws.SplitCount(),
	}

	split := ws.ActiveSplit()
	if split == nil {
		return view
	}

	active := split.Active()
	for _, w := range split.Windows() {
		view.Panes = append(view.Panes, w.paneView(capacity, w == active))
	}
	return view
}

func (w *Window) paneView(capacity int, active bool) PaneView {
	listing := w.listing
	vp := listing.ScrollToSelection(capacity)

	pane := PaneView{
		Label:    listing.Label(),
		Path:     w.path,
		Active:   active,
		SortMode: listing.SortMode(),
		Offset:   vp.Offset,
		Total:    listing.Len(),
		Rows:     make([]RowView, 0, len(vp.Entries)),
	}
	if entry, ok := listing.SelectedEntry(); ok {
		pane.Selected = &entry
	}

	for i, entry := range vp.Entries {
		idx := vp.Offset + i
		pane.Rows = append(pane.Rows, RowView{
			Entry:    entry,
			Index:    idx,
			Selected: idx == listing.SelectedIndex(),
			Hidden:   entry.IsHidden(),
		})
	}
	return pane
}
