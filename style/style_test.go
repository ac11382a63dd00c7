package style

import "testing"

func TestParseSimpleStyles(t *testing.T) {
	cases := map[string]Kind{
		"center":        Center,
		"tile":          Tile,
		"cover":         Cover,
		"contain":       Contain,
		"shrink-to-fit": ShrinkToFit,
		"shrinktofit":   ShrinkToFit,
		"CENTER":        Center,
		"  Cover  ":     Cover,
	}
	for input, kind := range cases {
		s, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", input, err)
		}
		if s.Kind != kind {
			t.Fatalf("Parse(%q) = kind %v, want %v", input, s.Kind, kind)
		}
	}
}

func TestParsePositionForms(t *testing.T) {
	cases := []struct {
		input string
		want  Style
	}{
		{"3 4", Style{Kind: Position, X: Coord{Value: 3}, Y: Coord{Value: 4}, Size: Size{Kind: SizeScale, Zoom: 1}}},
		{"position 3 4", Style{Kind: Position, X: Coord{Value: 3}, Y: Coord{Value: 4}, Size: Size{Kind: SizeScale, Zoom: 1}}},
		{"* *", Style{Kind: Position, X: Coord{Center: true}, Y: Coord{Center: true}, Size: Size{Kind: SizeScale, Zoom: 1}}},
		{"-5 +10 2", Style{Kind: Position, X: Coord{Value: -5}, Y: Coord{Value: 10}, Size: Size{Kind: SizeScale, Zoom: 2}}},
		{"* * 1/3", Style{Kind: Position, X: Coord{Center: true}, Y: Coord{Center: true}, Size: Size{Kind: SizeScale, Zoom: -3}}},
		{"0 0 * *", Style{Kind: Position, Size: Size{Kind: SizeScale, Zoom: 1}}},
		{"0 0 80 *", Style{Kind: Position, Size: Size{Kind: SizeWidth, W: 80}}},
		{"0 0 * 24", Style{Kind: Position, Size: Size{Kind: SizeHeight, H: 24}}},
		{"0 0 80 24", Style{Kind: Position, Size: Size{Kind: SizeExact, W: 80, H: 24}}},
		{"1 2 1 / 4", Style{Kind: Position, X: Coord{Value: 1}, Y: Coord{Value: 2}, Size: Size{Kind: SizeScale, Zoom: -4}}},
	}
	for _, tc := range cases {
		got, err := Parse(tc.input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %+v, want %+v", tc.input, got, tc.want)
		}
	}
}

func TestParseRejectsMalformedStyles(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"bogus",
		"center tile",
		"3",
		"3 4 0",
		"3 4 -1",
		"3 4 -2 5",
		"3 4 2 / 3",
		"3 4 1 / 0",
		"3 4 1 /",
		"3 4 5 6 7",
		"99999999999 0",
		"2147483648 0",
		"- 3 4",
		"+ 3 4",
		"3 4 *",
		"/ 3",
	}
	for _, input := range inputs {
		if _, err := Parse(input); err == nil {
			t.Fatalf("Parse(%q) succeeded, want error", input)
		}
	}
}

func TestParseAcceptsMaxInt32(t *testing.T) {
	s, err := Parse("2147483647 -2147483647")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.X.Value != 2147483647 || s.Y.Value != -2147483647 {
		t.Fatalf("parsed coordinates %d %d", s.X.Value, s.Y.Value)
	}
}

func TestStyleStringRoundTrip(t *testing.T) {
	canonical := []string{
		"center",
		"tile",
		"cover",
		"contain",
		"shrink-to-fit",
		"3 4 1",
		"* * 1/3",
		"-5 10 2",
		"* 7 1",
		"0 0 10 20",
		"3 4 100 *",
		"3 4 * 100",
	}
	for _, input := range canonical {
		s, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", input, err)
		}
		if got := s.String(); got != input {
			t.Fatalf("Parse(%q).String() = %q", input, got)
		}
		again, err := Parse(s.String())
		if err != nil {
			t.Fatalf("reparse of %q: %v", s.String(), err)
		}
		if again != s {
			t.Fatalf("round trip of %q changed value: %+v != %+v", input, again, s)
		}
	}
}
