package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}
type EnterDirectoryAction struct{}
type GoUpAction struct{}

// ===== LAYOUT ACTIONS =====

type SwitchPaneAction struct{}
type CycleSortAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type RefreshAction struct{}
type YankPathAction struct{}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
