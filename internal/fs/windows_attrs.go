//go:build windows

package fs

import (
	"os"

	"golang.org/x/sys/windows"
)

const (
	fileAttributeHidden       = windows.FILE_ATTRIBUTE_HIDDEN
	fileAttributeSystem       = windows.FILE_ATTRIBUTE_SYSTEM
	fileAttributeReparsePoint = windows.FILE_ATTRIBUTE_REPARSE_POINT
)

// getFileAttributes reads Windows attributes for fullPath, retrying with the
// bare name when the full path does not resolve.
func getFileAttributes(fullPath, name string) (uint32, error) {
	candidates := []string{fullPath}
	if name != "" && name != fullPath {
		candidates = append(candidates, name)
	}

	lastErr := error(os.ErrInvalid)
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		ptr, err := windows.UTF16PtrFromString(candidate)
		if err != nil {
			return 0, err
		}
		attrs, err := windows.GetFileAttributes(ptr)
		if err == nil {
			return attrs, nil
		}
		lastErr = err
		if !os.IsNotExist(err) {
			break
		}
	}
	return 0, lastErr
}
