//go:build !windows

package fs

// IsHidden follows the dot-file convention.
func IsHidden(_ string, name string) bool {
	return len(name) > 0 && name[0] == '.'
}

// ShouldHideFromListing never drops entries outside Windows.
func ShouldHideFromListing(_, _ string) bool {
	return false
}
