package state

import (
	"path/filepath"

	fsutil "github.com/kk-code-lab/dirsplit/internal/fs"
)

// Listing is a snapshot of one directory: its entries, the selection,
// the scroll position and the sort mode.
type Listing struct {
	readOrder    []FileEntry // entries as returned by the reader
	entries      []FileEntry // readOrder sorted by sortMode
	selected     int
	scrollOffset int
	sortMode     SortMode
	label        string
}

// Viewport is the slice of a listing that fits into a pane.
type Viewport struct {
	Offset  int
	Entries []FileEntry
}

// NewListing creates an empty listing using the given sort mode.
func NewListing(mode SortMode) *Listing {
	return &Listing{sortMode: mode}
}

// Refresh replaces the entries with a fresh read of path, which must already
// be canonical. The listing is left untouched when the read fails.
func (l *Listing) Refresh(reader fsutil.Reader, path string) error {
	entries, err := reader.ReadDir(path)
	if err != nil {
		return err
	}

	l.readOrder = entries
	l.entries = sortEntries(entries, l.sortMode)
	l.label = DirectoryLabel(path)
	l.scrollOffset = 0
	l.clampSelection()
	return nil
}

func (l *Listing) clampSelection() {
	if len(l.entries) == 0 {
		l.selected = 0
		return
	}
	if l.selected >= len(l.entries) {
		l.selected = len(l.entries) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
}

// DirectoryLabel returns the display name of a directory: its last path
// segment, or the root itself.
func DirectoryLabel(path string) string {
	clean := filepath.Clean(path)
	volume := filepath.VolumeName(clean)
	rest := clean[len(volume):]
	if rest == "" || rest == string(filepath.Separator) {
		return volume + string(filepath.Separator)
	}
	return filepath.Base(clean)
}

// MoveSelection moves the selection by delta, saturating at both ends.
// It reports whether the selection changed.
func (l *Listing) MoveSelection(delta int) bool {
	if len(l.entries) == 0 || delta == 0 {
		return false
	}
	next := l.selected + delta
	if next < 0 {
		next = 0
	}
	if next > len(l.entries)-1 {
		next = len(l.entries) - 1
	}
	if next == l.selected {
		return false
	}
	l.selected = next
	return true
}

// Select moves the selection to index when it is in range.
func (l *Listing) Select(index int) bool {
	if index < 0 || index >= len(l.entries) {
		return false
	}
	l.selected = index
	return true
}

// SelectName selects the first entry called name, matching either the
// display name or the name on disk.
func (l *Listing) SelectName(name string) bool {
	for i, e := range l.entries {
		if e.Name == name || e.DiskName() == name {
			l.selected = i
			return true
		}
	}
	return false
}

// SetSortMode re-sorts in place. The selected index is kept as a position,
// so the entry under the cursor may change.
func (l *Listing) SetSortMode(mode SortMode) {
	l.sortMode = mode
	l.entries = sortEntries(l.readOrder, mode)
}

// CycleSortMode switches to the next sort mode and returns it.
func (l *Listing) CycleSortMode() SortMode {
	l.SetSortMode(l.sortMode.Next())
	return l.sortMode
}

// VisibleWindow computes which entries fit into capacity rows without
// changing the listing. The offset moves only as far as needed to keep the
// selection inside the band.
func (l *Listing) VisibleWindow(capacity int) Viewport {
	total := len(l.entries)
	offset := l.scrollOffset
	if offset > total-1 {
		offset = total - 1
	}
	if offset < 0 {
		offset = 0
	}
	if capacity <= 0 || total == 0 {
		return Viewport{Offset: offset}
	}

	lastVisible := offset + capacity - 1
	if lastVisible > total-1 {
		lastVisible = total - 1
	}
	if l.selected > lastVisible {
		offset += l.selected - lastVisible
	}
	if l.selected < offset {
		offset = l.selected
	}

	end := offset + capacity
	if end > total {
		end = total
	}

	visible := make([]FileEntry, end-offset)
	copy(visible, l.entries[offset:end])
	return Viewport{Offset: offset, Entries: visible}
}

// ScrollToSelection commits the offset computed by VisibleWindow.
func (l *Listing) ScrollToSelection(capacity int) Viewport {
	vp := l.VisibleWindow(capacity)
	l.scrollOffset = vp.Offset
	return vp
}

// Clone returns an independent copy of the listing.
func (l *Listing) Clone() *Listing {
	clone := *l
	clone.readOrder = append([]FileEntry(nil), l.readOrder...)
	clone.entries = append([]FileEntry(nil), l.entries...)
	return &clone
}

func (l *Listing) Entries() []FileEntry {
	return append([]FileEntry(nil), l.entries...)
}

func (l *Listing) Len() int { return len(l.entries) }

func (l *Listing) SelectedIndex() int { return l.selected }

func (l *Listing) ScrollOffset() int { return l.scrollOffset }

func (l *Listing) SortMode() SortMode { return l.sortMode }

func (l *Listing) Label() string { return l.label }

// SelectedEntry returns the entry under the cursor.
func (l *Listing) SelectedEntry() (FileEntry, bool) {
	if l.selected < 0 || l.selected >= len(l.entries) {
		return FileEntry{}, false
	}
	return l.entries[l.selected], true
}
