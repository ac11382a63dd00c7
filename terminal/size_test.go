package terminal

import (
	"os"
	"testing"

	"github.com/creack/pty"
)

func TestFdSizeReportsPtyWindow(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: 80}); err != nil {
		t.Fatalf("Setsize: %v", err)
	}

	cols, rows, ok := fdSize(int(tty.Fd()))
	if !ok {
		t.Fatalf("fdSize reported no terminal on a pty")
	}
	if cols != 80 || rows != 24 {
		t.Fatalf("fdSize = %dx%d, want 80x24", cols, rows)
	}
}

func TestFdSizeRejectsNonTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	if _, _, ok := fdSize(int(r.Fd())); ok {
		t.Fatalf("fdSize claimed a pipe is a terminal")
	}
}
