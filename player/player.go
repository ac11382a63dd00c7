// Package player drives playback: frame disposal, canvas management, delta
// emission and deadline-based pacing.
package player

import (
	"bytes"
	"image"
	"image/draw"
	"math"
	"time"

	"ansimg/cli"
	"ansimg/decode"
	"ansimg/render"
	"ansimg/style"
	"ansimg/terminal"
)

// Run plays img according to cfg, writing frames through surf until the
// animation ends or stop is raised. It performs the surface setup; teardown
// is the caller's responsibility so it runs on every exit path.
func Run(cfg *cli.Config, img *decode.Image, surf *terminal.Surface, stop *Stop) error {
	imgW, imgH := img.Size()

	termCanvas, windowed := newTermCanvas(cfg, imgW, imgH)

	targetH := imgH
	if termCanvas != nil {
		targetH = termCanvas.Rect.Dy()
	}
	surf.Setup((targetH + 1) / 2)

	var prevFrame *image.NRGBA
	if termCanvas != nil {
		prevFrame = image.NewNRGBA(termCanvas.Rect)
	} else {
		prevFrame = image.NewNRGBA(image.Rect(0, 0, imgW, imgH))
	}

	scaler := cfg.Filter.Scaler()
	linebuf := &bytes.Buffer{}

	if !img.Animated() {
		target := img.Still
		if termCanvas != nil {
			cfg.Style.Paint(img.Still, termCanvas, scaler)
			target = termCanvas
		}
		render.FrameDelta(prevFrame, target, cfg.AlphaThreshold, windowed, linebuf)
		surf.BeginFrame()
		surf.Write(linebuf.Bytes())
		return surf.Flush()
	}

	if len(img.Frames) == 0 {
		return nil
	}

	frameCanvas := image.NewNRGBA(image.Rect(0, 0, imgW, imgH))
	loopCount := cfg.LoopCount
	infinite := loopCount < 0
	deadline := time.Now()

	for (infinite || loopCount > 0) && !stop.Raised() {
		for i := range img.Frames {
			if stop.Raised() {
				break
			}
			frame := &img.Frames[i]

			composeFrame(frameCanvas, frame, cfg.Background)

			target := frameCanvas
			if termCanvas != nil {
				if windowed {
					if cols, rows, ok := terminal.Dimensions(); ok &&
						(cols != termCanvas.Rect.Dx() || rows*2 != termCanvas.Rect.Dy()) {
						termCanvas = render.NewCanvas(cols, rows*2, cfg.Background.Pixel())
						prevFrame = image.NewNRGBA(termCanvas.Rect)
						surf.ClearScreen()
					} else {
						render.Fill(termCanvas, cfg.Background.Pixel())
					}
				} else {
					render.Fill(termCanvas, cfg.Background.Pixel())
				}
				cfg.Style.Paint(frameCanvas, termCanvas, scaler)
				target = termCanvas
			}

			render.FrameDelta(prevFrame, target, cfg.AlphaThreshold, windowed, linebuf)
			surf.BeginFrame()
			surf.Write(linebuf.Bytes())
			// Best effort: a failed flush drops the frame, not the loop.
			_ = surf.Flush()

			if termCanvas != nil {
				prevFrame, termCanvas = termCanvas, prevFrame
			} else {
				prevFrame, frameCanvas = frameCanvas, prevFrame
			}

			var wait time.Duration
			wait, deadline = nextDelay(deadline, time.Now(), frame.Delay)
			if wait > 0 && !stop.Sleep(wait) {
				stop.Raise()
				break
			}
		}
		if !infinite {
			loopCount--
		}
	}

	return nil
}

// composeFrame builds the full animation canvas for one frame. A solid
// background is laid down first and the frame blended over it; with a
// transparent background the canvas is cleared whenever the frame does not
// cover it entirely (restore-to-background disposal) and the frame's pixels
// are copied verbatim.
func composeFrame(canvas *image.NRGBA, frame *decode.Frame, bg cli.Background) {
	rect := frame.Pixels.Rect.Sub(frame.Pixels.Rect.Min).
		Add(image.Point{X: frame.DX, Y: frame.DY}).
		Add(canvas.Rect.Min)

	if bg.Solid {
		render.Fill(canvas, bg.Color)
		draw.Draw(canvas, rect, frame.Pixels, frame.Pixels.Rect.Min, draw.Over)
		return
	}

	if frame.Pixels.Rect.Dx() != canvas.Rect.Dx() ||
		frame.Pixels.Rect.Dy() != canvas.Rect.Dy() ||
		frame.DX != 0 || frame.DY != 0 {
		render.Fill(canvas, bg.Pixel())
	}
	draw.Draw(canvas, rect, frame.Pixels, frame.Pixels.Rect.Min, draw.Src)
}

// nextDelay advances the frame deadline and returns how long to sleep.
// Deadlines accumulate the declared delays exactly, so scheduling never
// drifts; elapsed time is clamped at zero against clock oddities.
func nextDelay(deadline, now time.Time, frameDelay time.Duration) (time.Duration, time.Time) {
	elapsed := now.Sub(deadline)
	if elapsed < 0 {
		elapsed = 0
	}
	next := deadline.Add(frameDelay)
	if frameDelay > elapsed {
		return frameDelay - elapsed, next
	}
	return 0, next
}

func saturate32(v int64) int {
	if v < 0 {
		return 0
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}

// newTermCanvas allocates the terminal canvas per the configured canvas
// mode, prefilled with the background. A nil canvas means frames feed the
// encoder directly. windowed reports that the canvas tracks the terminal
// size (and that frames span the full terminal width).
func newTermCanvas(cfg *cli.Config, imgW, imgH int) (canvas *image.NRGBA, windowed bool) {
	bg := cfg.Background.Pixel()

	switch cfg.CanvasSize.Kind {
	case cli.CanvasExact:
		return render.NewCanvas(cfg.CanvasSize.W, cfg.CanvasSize.H*2, bg), false

	case cli.CanvasWindow:
		if cols, rows, ok := terminal.Dimensions(); ok {
			return render.NewCanvas(cols, rows*2, bg), true
		}
		// Size unknown: fall back to the image as its own canvas.
		return nil, false

	default: // cli.CanvasImage
		if cfg.Style.Kind == style.Position {
			w, h := cfg.Style.Size.Resolve(imgW, imgH)
			var x, y int
			if !cfg.Style.X.Center {
				x = cfg.Style.X.Value
			}
			if !cfg.Style.Y.Center {
				y = cfg.Style.Y.Value
			}
			return render.NewCanvas(
				saturate32(int64(w)+int64(x)),
				saturate32(int64(h)+int64(y)), bg), false
		}
		if cfg.Background.Solid {
			return render.NewCanvas(imgW, imgH, bg), false
		}
		return nil, false
	}
}
