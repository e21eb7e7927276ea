package state

// StateReducer applies actions to a workspace.
type StateReducer struct{}

// NewStateReducer creates a new reducer
func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce applies action to the active split of ws. Failed actions leave the
// workspace as it was and return the error to the caller.
func (r *StateReducer) Reduce(ws *Workspace, action Action) (*Workspace, error) {
	split := ws.ActiveSplit()
	if split == nil {
		return ws, nil
	}
	w := split.Active()

	switch action.(type) {

	// ===== NAVIGATION =====

	case NavigateUpAction:
		w.Listing().MoveSelection(-1)
		return ws, nil

	case NavigateDownAction:
		w.Listing().MoveSelection(1)
		return ws, nil

	case EnterDirectoryAction:
		return ws, w.Descend()

	case GoUpAction:
		return ws, w.Ascend()

	// ===== LAYOUT =====

	case SwitchPaneAction:
		split.ToggleActive()
		return ws, nil

	case CycleSortAction:
		w.Listing().CycleSortMode()
		return ws, nil

	// ===== VIEW =====

	case RefreshAction:
		return ws, ws.RefreshActiveSplit()

	case YankPathAction:
		_, err := ws.YankSelected()
		return ws, err
	}

	return ws, nil
}
