// Package style implements the placement language behind --style and the
// compositor that paints a source image onto a canvas according to it.
package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind selects the placement algorithm.
type Kind int

const (
	Center Kind = iota
	Tile
	Position
	Cover
	Contain
	ShrinkToFit
)

// Coord is a Position coordinate: an explicit pixel offset, or the
// center-on-canvas sentinel written as "*".
type Coord struct {
	Center bool
	Value  int
}

// Style describes how a source image is placed and scaled on the canvas.
// X, Y and Size are meaningful only when Kind is Position.
type Style struct {
	Kind Kind
	X, Y Coord
	Size Size
}

// Default is the placement used when --style is not given.
func Default() Style {
	return Style{Kind: ShrinkToFit}
}

// Parse reads a style expression:
//
//	center | tile | cover | contain | shrink-to-fit
//	[position] <x> <y> [<z> | 1/<n> | <w> <h>]
//
// where x, y, w and h each may be "*". The whole input must be consumed.
func Parse(value string) (Style, error) {
	tz := &tokenizer{src: value}

	tok, ok, err := tz.next()
	if err != nil {
		return Style{}, err
	}
	if !ok {
		return Style{}, ErrSyntax
	}

	switch tok.kind {
	case tokCenter:
		return Style{Kind: Center}, tz.expectEnd()
	case tokTile:
		return Style{Kind: Tile}, tz.expectEnd()
	case tokCover:
		return Style{Kind: Cover}, tz.expectEnd()
	case tokContain:
		return Style{Kind: Contain}, tz.expectEnd()
	case tokShrinkToFit:
		return Style{Kind: ShrinkToFit}, tz.expectEnd()
	case tokPosition:
		x, err := tz.expectIntOrAsterisk()
		if err != nil {
			return Style{}, err
		}
		return parsePositionRest(x, tz)
	case tokInt:
		return parsePositionRest(Coord{Value: tok.value}, tz)
	case tokAsterisk:
		return parsePositionRest(Coord{Center: true}, tz)
	}
	return Style{}, ErrSyntax
}

func parsePositionRest(x Coord, tz *tokenizer) (Style, error) {
	y, err := tz.expectIntOrAsterisk()
	if err != nil {
		return Style{}, err
	}

	tok1, ok, err := tz.next()
	if err != nil {
		return Style{}, err
	}
	if !ok {
		return Style{Kind: Position, X: x, Y: y, Size: Size{Kind: SizeScale, Zoom: 1}}, nil
	}

	tok2, ok, err := tz.next()
	if err != nil {
		return Style{}, err
	}
	if !ok {
		if tok1.kind != tokInt || tok1.value < 1 {
			return Style{}, ErrSyntax
		}
		return Style{Kind: Position, X: x, Y: y, Size: Size{Kind: SizeScale, Zoom: tok1.value}}, nil
	}

	var size Size
	switch {
	case tok1.kind == tokAsterisk && tok2.kind == tokAsterisk:
		size = Size{Kind: SizeScale, Zoom: 1}
	case tok1.kind == tokAsterisk && tok2.kind == tokInt:
		if tok2.value < 0 {
			return Style{}, ErrSyntax
		}
		size = Size{Kind: SizeHeight, H: tok2.value}
	case tok1.kind == tokInt && tok2.kind == tokAsterisk:
		if tok1.value < 0 {
			return Style{}, ErrSyntax
		}
		size = Size{Kind: SizeWidth, W: tok1.value}
	case tok1.kind == tokInt && tok2.kind == tokInt:
		if tok1.value < 0 || tok2.value < 0 {
			return Style{}, ErrSyntax
		}
		size = Size{Kind: SizeExact, W: tok1.value, H: tok2.value}
	case tok1.kind == tokInt && tok1.value == 1 && tok2.kind == tokSlash:
		divisor, err := tz.expectInt()
		if err != nil {
			return Style{}, err
		}
		if divisor < 1 {
			return Style{}, ErrSyntax
		}
		size = Size{Kind: SizeScale, Zoom: -divisor}
	default:
		return Style{}, ErrSyntax
	}

	if err := tz.expectEnd(); err != nil {
		return Style{}, err
	}
	return Style{Kind: Position, X: x, Y: y, Size: size}, nil
}

// String renders the canonical display form; Parse(s.String()) == s for every
// valid style.
func (s Style) String() string {
	switch s.Kind {
	case Center:
		return "center"
	case Tile:
		return "tile"
	case Cover:
		return "cover"
	case Contain:
		return "contain"
	case ShrinkToFit:
		return "shrink-to-fit"
	}

	var sb strings.Builder
	writeCoord(&sb, s.X)
	sb.WriteByte(' ')
	writeCoord(&sb, s.Y)
	switch s.Size.Kind {
	case SizeScale:
		if s.Size.Zoom < 0 {
			fmt.Fprintf(&sb, " 1/%d", -s.Size.Zoom)
		} else {
			fmt.Fprintf(&sb, " %d", s.Size.Zoom)
		}
	case SizeExact:
		fmt.Fprintf(&sb, " %d %d", s.Size.W, s.Size.H)
	case SizeWidth:
		fmt.Fprintf(&sb, " %d *", s.Size.W)
	case SizeHeight:
		fmt.Fprintf(&sb, " * %d", s.Size.H)
	}
	return sb.String()
}

func writeCoord(sb *strings.Builder, c Coord) {
	if c.Center {
		sb.WriteByte('*')
	} else {
		sb.WriteString(strconv.Itoa(c.Value))
	}
}
