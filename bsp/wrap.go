package bsp

import "fmt"

// wrapf wraps sentinel with a formatted message, preserving errors.Is
// resolution to sentinel at any recursion depth.
func wrapf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
