package decode

import (
	"image"
	"image/draw"
	"image/gif"
	"io"
	"time"
)

// decodeGIF coalesces a GIF into full-canvas frames, honoring per-frame
// disposal so the player's restore-to-background model holds for any input.
func decodeGIF(r io.Reader) (*Image, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, err
	}

	width, height := g.Config.Width, g.Config.Height
	for _, src := range g.Image {
		if src.Rect.Max.X > width {
			width = src.Rect.Max.X
		}
		if src.Rect.Max.Y > height {
			height = src.Rect.Max.Y
		}
	}

	im := &Image{Width: width, Height: height}
	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))

	for i, src := range g.Image {
		var snapshot *image.NRGBA
		if i < len(g.Disposal) && g.Disposal[i] == gif.DisposalPrevious {
			snapshot = cloneNRGBA(canvas)
		}

		draw.Draw(canvas, src.Rect, src, src.Rect.Min, draw.Over)

		delay := time.Duration(0)
		if i < len(g.Delay) {
			delay = time.Duration(g.Delay[i]) * 10 * time.Millisecond
		}
		im.Frames = append(im.Frames, Frame{Pixels: cloneNRGBA(canvas), Delay: delay})

		if i < len(g.Disposal) {
			switch g.Disposal[i] {
			case gif.DisposalBackground:
				clearRect(canvas, src.Rect)
			case gif.DisposalPrevious:
				canvas = snapshot
			}
		}
	}

	return collapse(im), nil
}

// clearRect zeroes the pixels of r within img.
func clearRect(img *image.NRGBA, r image.Rectangle) {
	r = r.Intersect(img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := img.PixOffset(r.Min.X, y)
		clear(img.Pix[i : i+r.Dx()*4])
	}
}
