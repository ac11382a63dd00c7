package render

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"
)

func newFrame(w, h int, pixels ...color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i, c := range pixels {
		img.SetNRGBA(i%w, i/w, c)
	}
	return img
}

func encode(t *testing.T, prev, curr *image.NRGBA, fullWidth bool) string {
	t.Helper()
	var buf bytes.Buffer
	FrameDelta(prev, curr, 127, fullWidth, &buf)
	return buf.String()
}

var (
	red    = color.NRGBA{R: 255, A: 255}
	green  = color.NRGBA{G: 255, A: 255}
	blue   = color.NRGBA{B: 255, A: 255}
	yellow = color.NRGBA{R: 255, G: 255, A: 255}
)

func TestFrameDeltaFirstPaint(t *testing.T) {
	curr := newFrame(2, 2, red, green, blue, yellow)
	prev := image.NewNRGBA(image.Rect(0, 0, 2, 2))

	got := encode(t, prev, curr, false)
	want := "\x1b[48;2;255;0;0m\x1b[38;2;0;0;255m▄" +
		"\x1b[48;2;0;255;0m\x1b[38;2;255;255;0m▄" +
		"\x1b[0m"
	if got != want {
		t.Fatalf("encoded %q, want %q", got, want)
	}
}

func TestFrameDeltaIdenticalFramesEmitOnlyPadding(t *testing.T) {
	frame := newFrame(2, 2, red, green, blue, yellow)

	got := encode(t, frame, frame, false)
	if got != "\x1b[0m\x1b[2C" {
		t.Fatalf("identity encode produced %q, want reset and cursor padding only", got)
	}
	if strings.Contains(got, "▀") || strings.Contains(got, "▄") || strings.Contains(got, "█") {
		t.Fatalf("identity encode painted glyphs: %q", got)
	}
}

func TestFrameDeltaEmptyFrame(t *testing.T) {
	empty := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	if got := encode(t, empty, empty, false); got != "" {
		t.Fatalf("empty frame encoded %q, want empty output", got)
	}
}

func TestFrameDeltaSkipsUnchangedColumns(t *testing.T) {
	prev := newFrame(4, 2,
		red, red, red, red,
		red, red, red, red)
	curr := newFrame(4, 2,
		red, red, green, red,
		red, red, green, red)

	got := encode(t, prev, curr, false)
	want := "\x1b[2C\x1b[38;2;0;255;0m█\x1b[0m\x1b[C"
	if got != want {
		t.Fatalf("encoded %q, want %q", got, want)
	}
}

func TestFrameDeltaReusesActiveColors(t *testing.T) {
	prev := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	curr := newFrame(3, 2,
		red, red, red,
		blue, blue, blue)

	got := encode(t, prev, curr, false)
	// First cell sets bg/fg, the rest ride on the active SGR state.
	want := "\x1b[48;2;255;0;0m\x1b[38;2;0;0;255m▄▄▄\x1b[0m"
	if got != want {
		t.Fatalf("encoded %q, want %q", got, want)
	}
}

func TestFrameDeltaSwappedColorsFlipGlyph(t *testing.T) {
	prev := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	curr := newFrame(2, 2,
		red, blue,
		blue, red)

	got := encode(t, prev, curr, false)
	// Cell 1 reuses both colors by flipping ▄ to ▀.
	want := "\x1b[48;2;255;0;0m\x1b[38;2;0;0;255m▄▀\x1b[0m"
	if got != want {
		t.Fatalf("encoded %q, want %q", got, want)
	}
}

func TestFrameDeltaTransparentRunAfterOpaque(t *testing.T) {
	transparent := color.NRGBA{}
	prev := newFrame(3, 2,
		green, green, green,
		green, green, green)
	curr := newFrame(3, 2,
		red, transparent, transparent,
		red, transparent, transparent)

	got := encode(t, prev, curr, false)
	// One reset when entering the transparent run, bare spaces after.
	want := "\x1b[38;2;255;0;0m█\x1b[0m  \x1b[0m"
	if got != want {
		t.Fatalf("encoded %q, want %q", got, want)
	}
}

func TestFrameDeltaHalfTransparentCell(t *testing.T) {
	transparent := color.NRGBA{}
	prev := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	curr := newFrame(1, 2,
		transparent,
		blue)

	got := encode(t, prev, curr, false)
	want := "\x1b[0m\x1b[38;2;0;0;255m▄\x1b[0m"
	if got != want {
		t.Fatalf("encoded %q, want %q", got, want)
	}
}

func TestFrameDeltaOddHeightFinalRow(t *testing.T) {
	prev := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	curr := newFrame(2, 3,
		red, red,
		red, red,
		green, green)

	got := encode(t, prev, curr, false)
	want := "\x1b[38;2;255;0;0m█\x1b[38;2;255;0;0m█\x1b[0m" + // paired row
		"\x1b[2D\x1b[B" + // move to row 1 start
		"\x1b[38;2;0;255;0m▀▀\x1b[0m" // final odd row, upper halves only
	if got != want {
		t.Fatalf("encoded %q, want %q", got, want)
	}
}

func TestFrameDeltaAlphaThresholdBoundary(t *testing.T) {
	almost := color.NRGBA{R: 10, G: 20, B: 30, A: 126}
	exactly := color.NRGBA{R: 10, G: 20, B: 30, A: 127}
	prev := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	curr := newFrame(2, 2,
		almost, exactly,
		almost, exactly)

	got := encode(t, prev, curr, false)
	// A=126 is transparent at threshold 127, A=127 is opaque.
	want := " \x1b[38;2;10;20;30m█\x1b[0m"
	if got != want {
		t.Fatalf("encoded %q, want %q", got, want)
	}
}

func TestFrameDeltaFullWidthKeepsCursorOnLastColumn(t *testing.T) {
	prev := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	curr := newFrame(2, 2, red, red, red, red)

	got := encode(t, prev, curr, true)
	// The terminal never advanced past the last column, so one final pad.
	want := "\x1b[38;2;255;0;0m█\x1b[38;2;255;0;0m█\x1b[0m\x1b[C"
	if got != want {
		t.Fatalf("encoded %q, want %q", got, want)
	}

	got = encode(t, prev, curr, false)
	want = "\x1b[38;2;255;0;0m█\x1b[38;2;255;0;0m█\x1b[0m"
	if got != want {
		t.Fatalf("without fullWidth encoded %q, want %q", got, want)
	}
}

func TestFrameDeltaColumnMonotonicity(t *testing.T) {
	prev := newFrame(6, 2,
		red, red, red, red, red, red,
		red, red, red, red, red, red)
	curr := newFrame(6, 2,
		red, green, red, blue, red, green,
		red, green, red, blue, red, green)

	got := encode(t, prev, curr, false)
	// Changed cells sit at x = 1, 3, 5: every move must be forward.
	if strings.Contains(got, "D") {
		t.Fatalf("row scan moved the cursor backwards: %q", got)
	}
	want := "\x1b[C\x1b[38;2;0;255;0m█\x1b[C\x1b[38;2;0;0;255m█\x1b[C\x1b[38;2;0;255;0m█\x1b[0m"
	if got != want {
		t.Fatalf("encoded %q, want %q", got, want)
	}
}

func TestFrameDeltaParksCursorBottomRight(t *testing.T) {
	prev := newFrame(3, 4,
		red, red, red,
		red, red, red,
		red, red, red,
		red, red, red)
	curr := newFrame(3, 4,
		green, red, red,
		green, red, red,
		red, red, red,
		red, red, red)

	got := encode(t, prev, curr, false)
	// Only (0,0) painted; the cursor must end on the bottom-right corner.
	want := "\x1b[38;2;0;255;0m█\x1b[0m" + "\x1b[2C\x1b[B"
	if got != want {
		t.Fatalf("encoded %q, want %q", got, want)
	}
}
