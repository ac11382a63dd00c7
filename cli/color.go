package cli

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrColor is returned for a malformed --background-color value.
var ErrColor = errors.New("illegal color value")

// Background is the canvas fill: transparent, or a solid opaque color.
type Background struct {
	Solid bool
	Color color.NRGBA
}

// ParseBackground reads "transparent" or "#RRGGBB".
func ParseBackground(value string) (Background, error) {
	if strings.EqualFold(value, "transparent") {
		return Background{}, nil
	}
	if len(value) != 7 || value[0] != '#' {
		return Background{}, ErrColor
	}
	for i := 1; i < len(value); i++ {
		if !strings.ContainsRune("0123456789abcdefABCDEF", rune(value[i])) {
			return Background{}, ErrColor
		}
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return Background{}, ErrColor
	}
	r, g, b := c.RGB255()
	return Background{Solid: true, Color: color.NRGBA{R: r, G: g, B: b, A: 255}}, nil
}

// Pixel returns the fill value: fully transparent black unless Solid.
func (b Background) Pixel() color.NRGBA {
	if b.Solid {
		return b.Color
	}
	return color.NRGBA{}
}

func (b Background) String() string {
	if !b.Solid {
		return "transparent"
	}
	return fmt.Sprintf("#%02x%02x%02x", b.Color.R, b.Color.G, b.Color.B)
}
