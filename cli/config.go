// Package cli holds the validated run configuration and the small grammars
// behind the --canvas-size, --background-color and --line-end options.
package cli

import "ansimg/style"

// Config is the fully validated option set the player consumes.
type Config struct {
	// LoopCount is how often an animation repeats; negative means forever.
	LoopCount int64

	Style      style.Style
	CanvasSize CanvasSize

	// AlphaThreshold is the alpha value below which a pixel counts as
	// transparent.
	AlphaThreshold uint8

	Filter     style.Filter
	Background Background
	LineEnd    LineEnd

	// Inline renders at the current cursor position instead of clearing the
	// screen; NoPadding additionally skips the scroll-reserving newlines and
	// is meaningful only with Inline.
	Inline    bool
	NoPadding bool

	Path string
}
