package fs

import (
	"os"
	"path/filepath"
	"time"
)

// Entry is a point-in-time snapshot of one directory child.
type Entry struct {
	Name      string
	FullPath  string
	IsDir     bool
	IsSymlink bool
	Size      int64
	Modified  time.Time
	Mode      os.FileMode
}

// IsHidden reports whether the entry should be drawn as hidden.
func (e Entry) IsHidden() bool {
	return IsHidden(e.FullPath, e.Name)
}

// DiskName returns the name as stored on disk. Name is normalised for
// display and may differ in its byte form.
func (e Entry) DiskName() string {
	if e.FullPath == "" {
		return e.Name
	}
	return filepath.Base(e.FullPath)
}
