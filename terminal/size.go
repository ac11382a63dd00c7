package terminal

import (
	"os"

	"golang.org/x/term"
)

// Dimensions reports the terminal size of standard output in character
// cells, or ok=false when stdout is not a terminal or the size cannot be
// read.
func Dimensions() (cols, rows int, ok bool) {
	return fdSize(int(os.Stdout.Fd()))
}

func fdSize(fd int) (cols, rows int, ok bool) {
	if !term.IsTerminal(fd) {
		return 0, 0, false
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil || cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	return cols, rows, true
}
