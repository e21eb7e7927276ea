package state

import (
	iofs "io/fs"
	"path/filepath"
	"testing"

	fsutil "github.com/kk-code-lab/dirsplit/internal/fs"
	"github.com/stretchr/testify/require"
)

// memFS is an in-memory directory tree implementing both filesystem collaborators.
type memFS struct {
	dirs      map[string][]FileEntry
	readErrs  map[string]error
	canonErrs map[string]error
	reads     int
}

func newMemFS() *memFS {
	return &memFS{
		dirs:      make(map[string][]FileEntry),
		readErrs:  make(map[string]error),
		canonErrs: make(map[string]error),
	}
}

func p(path string) string {
	return filepath.FromSlash(path)
}

func (m *memFS) dir(path string, entries ...FileEntry) *memFS {
	path = p(path)
	for i := range entries {
		entries[i].FullPath = filepath.Join(path, entries[i].Name)
	}
	m.dirs[path] = entries
	return m
}

func (m *memFS) ReadDir(path string) ([]FileEntry, error) {
	m.reads++
	if err, ok := m.readErrs[path]; ok {
		return nil, &fsutil.IOError{Op: fsutil.OpReadDir, Path: path, Err: err}
	}
	entries, ok := m.dirs[path]
	if !ok {
		return nil, &fsutil.IOError{Op: fsutil.OpReadDir, Path: path, Err: iofs.ErrNotExist}
	}
	return append([]FileEntry(nil), entries...), nil
}

func (m *memFS) Canonicalize(path string) (string, error) {
	clean := filepath.Clean(path)
	if err, ok := m.canonErrs[clean]; ok {
		return "", &fsutil.IOError{Op: fsutil.OpCanonicalize, Path: path, Err: err}
	}
	if _, ok := m.dirs[clean]; !ok {
		return "", &fsutil.IOError{Op: fsutil.OpCanonicalize, Path: path, Err: iofs.ErrNotExist}
	}
	return clean, nil
}

func dirEntry(name string) FileEntry {
	return FileEntry{Name: name, IsDir: true}
}

func fileEntry(name string) FileEntry {
	return FileEntry{Name: name}
}

func names(entries []FileEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func openMemWindow(t *testing.T, fsys *memFS, path string) *Window {
	t.Helper()
	w, err := OpenWindow(p(path), WindowOptions{
		Reader:        fsys,
		Canonicalizer: fsys,
		HistorySize:   DefaultHistorySize,
	})
	require.NoError(t, err)
	return w
}

func listingOf(t *testing.T, mode SortMode, entries ...FileEntry) *Listing {
	t.Helper()
	fsys := newMemFS().dir("/list", entries...)
	l := NewListing(mode)
	require.NoError(t, l.Refresh(fsys, p("/list")))
	return l
}
