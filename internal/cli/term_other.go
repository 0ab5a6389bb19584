//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !windows

package cli

// IsTerminal always reports false on platforms without terminal support.
func IsTerminal(fd uintptr) bool {
	return false
}
