package cli

import (
	"image/color"
	"testing"
)

func TestParseCanvasSize(t *testing.T) {
	cases := []struct {
		input string
		want  CanvasSize
	}{
		{"window", CanvasSize{Kind: CanvasWindow}},
		{"WINDOW", CanvasSize{Kind: CanvasWindow}},
		{"image", CanvasSize{Kind: CanvasImage}},
		{"80 24", CanvasSize{Kind: CanvasExact, W: 80, H: 24}},
		{"  80\t24 ", CanvasSize{Kind: CanvasExact, W: 80, H: 24}},
		{"0 0", CanvasSize{Kind: CanvasExact}},
	}
	for _, tc := range cases {
		got, err := ParseCanvasSize(tc.input)
		if err != nil {
			t.Fatalf("ParseCanvasSize(%q): %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseCanvasSize(%q) = %+v, want %+v", tc.input, got, tc.want)
		}
	}
}

func TestParseCanvasSizeRejects(t *testing.T) {
	for _, input := range []string{"", "80", "80 24 7", "-80 24", "80 x", "big small"} {
		if _, err := ParseCanvasSize(input); err == nil {
			t.Fatalf("ParseCanvasSize(%q) succeeded, want error", input)
		}
	}
}

func TestParseBackground(t *testing.T) {
	bg, err := ParseBackground("transparent")
	if err != nil || bg.Solid {
		t.Fatalf("transparent parsed as %+v (err %v)", bg, err)
	}
	if bg.Pixel() != (color.NRGBA{}) {
		t.Fatalf("transparent fill pixel = %+v", bg.Pixel())
	}

	bg, err = ParseBackground("#1a2B3c")
	if err != nil {
		t.Fatalf("ParseBackground: %v", err)
	}
	want := color.NRGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 255}
	if !bg.Solid || bg.Color != want {
		t.Fatalf("parsed %+v, want solid %+v", bg, want)
	}
	if bg.String() != "#1a2b3c" {
		t.Fatalf("String() = %q", bg.String())
	}
}

func TestParseBackgroundRejects(t *testing.T) {
	for _, input := range []string{"", "#fff", "#11223", "#1122334", "112233", "#11223g", "red"} {
		if _, err := ParseBackground(input); err == nil {
			t.Fatalf("ParseBackground(%q) succeeded, want error", input)
		}
	}
}

func TestParseLineEnd(t *testing.T) {
	cases := map[string]LineEnd{
		"cr": CR, "CR": CR,
		"lf": LF, "Lf": LF,
		"crlf": CRLF, "cr-lf": CRLF,
	}
	for input, want := range cases {
		got, err := ParseLineEnd(input)
		if err != nil {
			t.Fatalf("ParseLineEnd(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseLineEnd(%q) = %v, want %v", input, got, want)
		}
	}
	if _, err := ParseLineEnd("newline"); err == nil {
		t.Fatalf("ParseLineEnd(\"newline\") succeeded, want error")
	}
	if CRLF.Terminator() != "\r\n" || CR.Terminator() != "\r" || LF.Terminator() != "\n" {
		t.Fatalf("unexpected terminators")
	}
}
