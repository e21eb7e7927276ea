package fs

import (
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

// Reader lists the immediate children of a directory.
type Reader interface {
	ReadDir(path string) ([]Entry, error)
}

// Overridable in tests.
var (
	osReadDir  = os.ReadDir
	osStat     = os.Stat
	osReadlink = os.Readlink
)

// OSReader reads directories from the local filesystem.
type OSReader struct{}

var _ Reader = OSReader{}

// ReadDir returns the children of path in the order the OS reports them.
// Any metadata failure aborts the whole read so callers never see a partial listing.
func (OSReader) ReadDir(path string) ([]Entry, error) {
	dirEntries, err := osReadDir(path)
	if err != nil {
		return nil, &IOError{Op: OpReadDir, Path: path, Err: err}
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		rawName := e.Name()
		fullPath := filepath.Join(path, rawName)

		if ShouldHideFromListing(fullPath, rawName) {
			continue
		}

		info, err := e.Info()
		if err != nil {
			return nil, &IOError{Op: OpStat, Path: fullPath, Err: err}
		}

		isDir := e.IsDir()
		isSymlink := info.Mode()&os.ModeSymlink != 0

		// Symlinked directories are navigable; broken links stay plain entries.
		if isSymlink {
			if target, err := osStat(fullPath); err == nil {
				isDir = target.IsDir()
			}
		}

		entries = append(entries, Entry{
			Name:      norm.NFC.String(rawName),
			FullPath:  fullPath,
			IsDir:     isDir,
			IsSymlink: isSymlink,
			Size:      info.Size(),
			Modified:  info.ModTime(),
			Mode:      info.Mode(),
		})
	}

	return entries, nil
}

// LinkTarget returns where the symlink at path points, as stored in the link.
func LinkTarget(path string) (string, error) {
	target, err := osReadlink(path)
	if err != nil {
		return "", &IOError{Op: OpReadLink, Path: path, Err: err}
	}
	return target, nil
}
