package state

import (
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	fsutil "github.com/kk-code-lab/dirsplit/internal/fs"
)

// DefaultHistorySize bounds how many directories remember their last selection.
const DefaultHistorySize = 256

// WindowOptions configures the collaborators and defaults of a Window.
type WindowOptions struct {
	Reader        fsutil.Reader
	Canonicalizer fsutil.Canonicalizer
	SortMode      SortMode
	// HistorySize bounds the per-path stored selection; zero disables it.
	HistorySize int
}

// Window is a listing bound to a canonical directory path.
type Window struct {
	path    string
	listing *Listing
	reader  fsutil.Reader
	canon   fsutil.Canonicalizer
	history *lru.Cache[string, int] // canonical path -> last selected index
	size    int
}

// OpenWindow canonicalizes path and reads it. No window is returned on failure.
func OpenWindow(path string, opts WindowOptions) (*Window, error) {
	w := &Window{
		reader:  opts.Reader,
		canon:   opts.Canonicalizer,
		listing: NewListing(opts.SortMode),
	}
	if w.reader == nil {
		w.reader = fsutil.OSReader{}
	}
	if w.canon == nil {
		w.canon = fsutil.OSCanonicalizer{}
	}
	if opts.HistorySize > 0 {
		history, err := lru.New[string, int](opts.HistorySize)
		if err != nil {
			return nil, err
		}
		w.history = history
		w.size = opts.HistorySize
	}

	canonical, err := w.canon.Canonicalize(path)
	if err != nil {
		return nil, err
	}
	if err := w.listing.Refresh(w.reader, canonical); err != nil {
		return nil, err
	}
	w.path = canonical
	return w, nil
}

// Path returns the canonical directory shown by the window.
func (w *Window) Path() string { return w.path }

// Listing exposes the directory snapshot.
func (w *Window) Listing() *Listing { return w.listing }

// Refresh rereads the current directory.
func (w *Window) Refresh() error {
	canonical, err := w.canon.Canonicalize(w.path)
	if err != nil {
		return err
	}
	if err := w.listing.Refresh(w.reader, canonical); err != nil {
		return err
	}
	w.path = canonical
	return nil
}

// Ascend moves to the parent directory and selects the directory just left.
// At the filesystem root it does nothing.
func (w *Window) Ascend() error {
	parent, err := w.canon.Canonicalize(fsutil.JoinRaw(w.path, ".."))
	if err != nil {
		return err
	}
	if parent == w.path {
		return nil
	}

	leaving := w.path
	leavingName := filepath.Base(w.path)
	leavingIndex := w.listing.SelectedIndex()

	if err := w.listing.Refresh(w.reader, parent); err != nil {
		return err
	}
	w.path = parent

	if w.history != nil {
		w.history.Add(leaving, leavingIndex)
	}
	if !w.listing.SelectName(leavingName) {
		w.listing.Select(0)
	}
	return nil
}

// Descend enters the selected entry when it is a directory, restoring the
// selection last used there. It does nothing for files or empty listings.
func (w *Window) Descend() error {
	entry, ok := w.listing.SelectedEntry()
	if !ok || !entry.IsDir {
		return nil
	}

	target, err := w.canon.Canonicalize(fsutil.JoinRaw(w.path, entry.DiskName()))
	if err != nil {
		return err
	}
	if err := w.listing.Refresh(w.reader, target); err != nil {
		return err
	}
	w.path = target

	restore := 0
	if w.history != nil {
		if idx, ok := w.history.Get(target); ok && idx < w.listing.Len() {
			restore = idx
		}
	}
	w.listing.Select(restore)
	return nil
}

// CanDescend reports whether the selected entry is a directory.
func (w *Window) CanDescend() bool {
	entry, ok := w.listing.SelectedEntry()
	return ok && entry.IsDir
}

// SelectedPath returns the absolute path of the entry under the cursor.
func (w *Window) SelectedPath() (string, error) {
	base, err := w.canon.Canonicalize(w.path)
	if err != nil {
		return "", err
	}
	entry, ok := w.listing.SelectedEntry()
	if !ok {
		return "", ErrEmptyListing
	}
	return filepath.Join(base, entry.DiskName()), nil
}

// StoredSelection returns the remembered index for a canonical path.
func (w *Window) StoredSelection(path string) (int, bool) {
	if w.history == nil {
		return 0, false
	}
	return w.history.Peek(path)
}

// Clone duplicates the window from its last snapshot without touching the disk.
func (w *Window) Clone() *Window {
	clone := &Window{
		path:    w.path,
		listing: w.listing.Clone(),
		reader:  w.reader,
		canon:   w.canon,
		size:    w.size,
	}
	if w.history != nil {
		// size is positive whenever history is set, so New cannot fail.
		history, _ := lru.New[string, int](w.size)
		for _, key := range w.history.Keys() {
			if idx, ok := w.history.Peek(key); ok {
				history.Add(key, idx)
			}
		}
		clone.history = history
	}
	return clone
}
