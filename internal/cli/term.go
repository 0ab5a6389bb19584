package cli

import (
	"os"
)

// ColorEnabled reports whether colored output should be written to f for
// the given color mode. In "auto" mode color is used only when f is a
// terminal and NO_COLOR is unset.
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	if f == nil {
		return false
	}
	return IsTerminal(f.Fd())
}
