// Package termio holds the terminal-facing helpers minparse leaves to its
// callers: detecting the wrap width, printing errors and building loggers.
package termio

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

const (
	// DefaultWidth is used when neither the terminal nor $COLUMNS report a width
	DefaultWidth = 80

	// safeArea keeps wrapped text off the last terminal columns
	safeArea = 2
)

// IsTerminal reports whether f is connected to a terminal
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the column count help text should be wrapped to for output
// going to f: the terminal width minus a small safe area, falling back to
// $COLUMNS and finally DefaultWidth.
func Width(f *os.File) int {
	if IsTerminal(f) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > safeArea {
			return w - safeArea
		}
	}
	if w := columnsFromEnv(); w > safeArea {
		return w - safeArea
	}
	return DefaultWidth
}

func columnsFromEnv() int {
	c := os.Getenv("COLUMNS")
	if c == "" {
		return 0
	}
	n, err := strconv.Atoi(c)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
