package fs

import (
	"os"
	"path/filepath"
	"strings"
)

// Canonicalizer resolves a path to its absolute, symlink-free form.
type Canonicalizer interface {
	Canonicalize(path string) (string, error)
}

// Overridable in tests.
var (
	osGetwd      = os.Getwd
	evalSymlinks = filepath.EvalSymlinks
)

// OSCanonicalizer resolves paths against the local filesystem.
type OSCanonicalizer struct{}

var _ Canonicalizer = OSCanonicalizer{}

func (OSCanonicalizer) Canonicalize(path string) (string, error) {
	return Canonicalize(path)
}

// Canonicalize returns the absolute form of path with every symlink and ".."
// resolved against the real filesystem. Relative paths are joined to the
// working directory without lexical cleaning, so "link/.." resolves to the
// parent of the link target rather than to the working directory.
func Canonicalize(path string) (string, error) {
	if path == "" {
		path = "."
	}

	if !filepath.IsAbs(path) {
		cwd, err := osGetwd()
		if err != nil {
			return "", &IOError{Op: OpCanonicalize, Path: path, Err: err}
		}
		path = JoinRaw(cwd, path)
	}

	resolved, err := evalSymlinks(path)
	if err != nil {
		return "", &IOError{Op: OpCanonicalize, Path: path, Err: err}
	}

	if !filepath.IsAbs(resolved) {
		return "", &IOError{Op: OpCanonicalize, Path: path, Err: os.ErrInvalid}
	}
	return resolved, nil
}

// JoinRaw appends name to base with a single separator and no cleaning.
func JoinRaw(base, name string) string {
	sep := string(filepath.Separator)
	if strings.HasSuffix(base, sep) {
		return base + name
	}
	return base + sep + name
}
