// Package terminal owns the terminal surface: setup and guaranteed teardown
// of cursor/wrap/echo state, the inline save-restore protocol, and size
// discovery.
package terminal

import (
	"bufio"
	"io"
	"strconv"
)

// Surface wraps the output stream and the escape-sequence protocol around
// frame emission. All methods buffer; Flush pushes bytes to the terminal.
type Surface struct {
	out         *bufio.Writer
	inline      bool
	noPadding   bool
	lineEnd     string
	restoreEcho func()
	restored    bool
}

// NewSurface builds a surface over w. In inline mode frames are drawn at the
// saved cursor position instead of the top-left corner of the screen;
// noPadding additionally skips the scroll-reserving newlines (meaningful only
// inline). lineEnd is written once on teardown.
func NewSurface(w io.Writer, inline, noPadding bool, lineEnd string) *Surface {
	return &Surface{
		out:       bufio.NewWriterSize(w, 64*1024),
		inline:    inline,
		noPadding: noPadding,
		lineEnd:   lineEnd,
	}
}

// Setup hides the cursor and disables auto-wrap, then prepares the drawing
// area: full-screen mode clears the screen, inline mode reserves rows
// character rows (scrolling if needed) and saves the cursor position that
// every frame later restores.
func (s *Surface) Setup(rows int) {
	s.out.WriteString("\x1b[?25l\x1b[?7l")
	if !s.inline {
		s.out.WriteString("\x1b[2J")
		return
	}
	if !s.noPadding && rows > 0 {
		for i := 0; i < rows; i++ {
			s.out.WriteByte('\n')
		}
		s.out.WriteString("\x1b[" + strconv.Itoa(rows) + "A")
	}
	s.out.WriteString("\x1b[s")
}

// SuppressEcho turns off terminal echo on fd, best effort: refusal (not a
// terminal, unsupported platform) is silently ignored. The previous state is
// restored by Restore.
func (s *Surface) SuppressEcho(fd int) {
	if restore, err := disableEcho(fd); err == nil {
		s.restoreEcho = restore
	}
}

// BeginFrame positions the cursor for the next frame: restore in inline
// mode, home in full-screen mode.
func (s *Surface) BeginFrame() {
	if s.inline {
		s.out.WriteString("\x1b[u")
	} else {
		s.out.WriteString("\x1b[1;1H")
	}
}

// ClearScreen erases the visible screen (used when the window canvas is
// reallocated after a resize).
func (s *Surface) ClearScreen() {
	s.out.WriteString("\x1b[2J")
}

func (s *Surface) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Surface) Flush() error {
	return s.out.Flush()
}

// Restore undoes Setup: SGR reset, cursor shown, auto-wrap re-enabled, the
// configured line terminator written, echo restored. Idempotent, so it is
// safe on every exit path.
func (s *Surface) Restore() error {
	if s.restored {
		return nil
	}
	s.restored = true
	s.out.WriteString("\x1b[0m\x1b[?25h\x1b[?7h")
	s.out.WriteString(s.lineEnd)
	if s.restoreEcho != nil {
		s.restoreEcho()
		s.restoreEcho = nil
	}
	return s.out.Flush()
}
