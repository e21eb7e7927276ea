package fs

import "fmt"

// Op names the filesystem operation that failed.
type Op string

const (
	OpReadDir      Op = "read directory"
	OpStat         Op = "stat entry"
	OpCanonicalize Op = "canonicalize"
	OpReadLink     Op = "read link"
)

// IOError reports a failed directory read, metadata fetch or path resolution.
type IOError struct {
	Op   Op
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cannot %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
