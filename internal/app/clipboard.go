package app

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable is returned when no clipboard utility was found.
var ErrClipboardUnavailable = errors.New("no clipboard utility available")

// Clipboard receives yanked paths.
type Clipboard interface {
	WriteAll(text string) error
}

// ClipboardError reports a path that was yanked but could not be copied.
type ClipboardError struct {
	Path string
	Err  error
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ClipboardError) Unwrap() error {
	return e.Err
}

type systemClipboard struct{}

// SystemClipboard writes to the OS clipboard through the platform utility
// (pbcopy, xclip, xsel, wl-copy or the Windows API).
func SystemClipboard() Clipboard {
	return systemClipboard{}
}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	return clipboard.WriteAll(text)
}

// ClipboardAvailable reports whether SystemClipboard can work at all.
func ClipboardAvailable() bool {
	return !clipboard.Unsupported
}

func normalizeClipboardPath(inputPath string, goos string) string {
	if strings.EqualFold(goos, "windows") {
		cleaned := filepath.Clean(inputPath)
		return strings.ReplaceAll(cleaned, "/", `\`)
	}
	return path.Clean(filepath.ToSlash(inputPath))
}

func copyToClipboard(cb Clipboard, yanked string) error {
	if err := cb.WriteAll(normalizeClipboardPath(yanked, runtime.GOOS)); err != nil {
		return &ClipboardError{Path: yanked, Err: err}
	}
	return nil
}
