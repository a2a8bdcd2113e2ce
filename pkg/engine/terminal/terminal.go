// Package terminal answers questions about the terminal the host runs in.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsInteractive returns true if f is attached to a terminal. Colour and
// redraws are only worth doing when it is.
func IsInteractive(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Fits reports whether a block of cols x rows character cells, plus
// reserved lines for the status area, fits in a terminal of the given size
func Fits(width, height, cols, rows, reserved int) bool {
	return cols <= width && rows+reserved <= height
}
