// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

const (
	// Navigation
	OpOpenDirectory    Op = "open directory"
	OpRefreshDirectory Op = "refresh directory"
	OpEnterDirectory   Op = "enter directory"
	OpParentDirectory  Op = "go to parent directory"

	// Yank
	OpYankPath      Op = "yank path"
	OpCopyClipboard Op = "copy to clipboard"

	// Startup
	OpInitialize Op = "initialize application"
	OpOpenLog    Op = "open log file"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message naming the subject of the operation.
func FormatWith(op Op, subject string, err error) string {
	if err == nil {
		return ""
	}
	if subject == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, subject, err)
}

// Wrap returns err with the same text as Format, keeping err in the chain.
func Wrap(op Op, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("Failed to %s: %w", op, err)
}

// WrapWith is Wrap naming the subject of the operation.
func WrapWith(op Op, subject string, err error) error {
	if err == nil {
		return nil
	}
	if subject == "" {
		return Wrap(op, err)
	}
	return fmt.Errorf("Failed to %s '%s': %w", op, subject, err)
}
