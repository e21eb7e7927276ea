package state

// Pane tags one of the two window slots of a Split.
type Pane int

const (
	PaneFirst Pane = iota
	PaneSecond
)

// Opposite returns the other pane.
func (p Pane) Opposite() Pane {
	if p == PaneFirst {
		return PaneSecond
	}
	return PaneFirst
}

func (p Pane) String() string {
	if p == PaneSecond {
		return "second"
	}
	return "first"
}

// Split lays out one or two windows and tracks which one receives input.
type Split struct {
	first  *Window
	second *Window
	active Pane
}

// NewSingleSplit shows one window; the second pane appears on first toggle.
func NewSingleSplit(w *Window) *Split {
	return &Split{first: w, active: PaneFirst}
}

// NewPairSplit shows two windows side by side with the first one active.
func NewPairSplit(first, second *Window) *Split {
	return &Split{first: first, second: second, active: PaneFirst}
}

// ToggleActive switches the active pane. A single-pane split first gets a
// copy of its window, so both panes start on the same directory.
func (s *Split) ToggleActive() {
	if s.second == nil {
		s.second = s.first.Clone()
	}
	s.active = s.active.Opposite()
}

// ActivePane reports the pane receiving input.
func (s *Split) ActivePane() Pane {
	if s.second == nil {
		return PaneFirst
	}
	return s.active
}

// Active returns the window receiving input, falling back to the first one
// when there is no second pane.
func (s *Split) Active() *Window {
	if s.second != nil && s.active == PaneSecond {
		return s.second
	}
	return s.first
}

func (s *Split) First() *Window { return s.first }

// Second returns nil for a single-pane split.
func (s *Split) Second() *Window { return s.second }

func (s *Split) IsDual() bool { return s.second != nil }

// Windows returns the panes left to right.
func (s *Split) Windows() []*Window {
	if s.second == nil {
		return []*Window{s.first}
	}
	return []*Window{s.first, s.second}
}
