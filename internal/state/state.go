package state

import (
	"errors"

	fsutil "github.com/kk-code-lab/dirsplit/internal/fs"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// ErrEmptyListing is returned when a selected path is requested from a
// directory with no entries.
var ErrEmptyListing = errors.New("directory is empty")
