package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrCanvasSize is returned for a malformed --canvas-size value.
var ErrCanvasSize = errors.New("illegal canvas size")

// CanvasKind selects how the drawing canvas is sized.
type CanvasKind int

const (
	CanvasWindow CanvasKind = iota // track the terminal size
	CanvasImage                    // the image is its own canvas
	CanvasExact                    // fixed columns × character rows
)

// CanvasSize is the parsed --canvas-size value. W and H are set for
// CanvasExact only; H counts character rows, so the pixel height is 2·H.
type CanvasSize struct {
	Kind CanvasKind
	W, H int
}

// ParseCanvasSize reads "window", "image", or "<width> <height>".
func ParseCanvasSize(value string) (CanvasSize, error) {
	if strings.EqualFold(value, "window") {
		return CanvasSize{Kind: CanvasWindow}, nil
	}
	if strings.EqualFold(value, "image") {
		return CanvasSize{Kind: CanvasImage}, nil
	}
	fields := strings.Fields(value)
	if len(fields) != 2 {
		return CanvasSize{}, ErrCanvasSize
	}
	w, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return CanvasSize{}, ErrCanvasSize
	}
	h, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return CanvasSize{}, ErrCanvasSize
	}
	return CanvasSize{Kind: CanvasExact, W: int(w), H: int(h)}, nil
}

func (c CanvasSize) String() string {
	switch c.Kind {
	case CanvasWindow:
		return "window"
	case CanvasImage:
		return "image"
	default:
		return fmt.Sprintf("%d %d", c.W, c.H)
	}
}
