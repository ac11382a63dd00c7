package decode

import (
	"image"
	"image/draw"
	"io"
	"time"

	"github.com/kettek/apng"
)

// decodeAPNG handles both plain PNGs (single default frame) and APNG
// animations, coalescing frames per their dispose and blend operations.
func decodeAPNG(r io.Reader) (*Image, error) {
	a, err := apng.DecodeAll(r)
	if err != nil {
		return nil, err
	}

	var width, height int
	animated := 0
	for _, fr := range a.Frames {
		if fr.IsDefault {
			b := fr.Image.Bounds()
			if b.Dx() > width {
				width = b.Dx()
			}
			if b.Dy() > height {
				height = b.Dy()
			}
			continue
		}
		animated++
		b := fr.Image.Bounds()
		if fr.XOffset+b.Dx() > width {
			width = fr.XOffset + b.Dx()
		}
		if fr.YOffset+b.Dy() > height {
			height = fr.YOffset + b.Dy()
		}
	}

	if animated <= 1 {
		for _, fr := range a.Frames {
			if !fr.IsDefault {
				return &Image{Still: toNRGBA(fr.Image)}, nil
			}
		}
		return &Image{Still: toNRGBA(a.Frames[0].Image)}, nil
	}

	im := &Image{Width: width, Height: height}
	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))

	for _, fr := range a.Frames {
		if fr.IsDefault {
			continue
		}

		b := fr.Image.Bounds()
		rect := image.Rect(0, 0, b.Dx(), b.Dy()).
			Add(image.Point{X: fr.XOffset, Y: fr.YOffset})

		var snapshot *image.NRGBA
		if fr.DisposeOp == apng.DISPOSE_OP_PREVIOUS {
			snapshot = cloneNRGBA(canvas)
		}

		op := draw.Over
		if fr.BlendOp == apng.BLEND_OP_SOURCE {
			op = draw.Src
		}
		draw.Draw(canvas, rect, fr.Image, b.Min, op)

		im.Frames = append(im.Frames, Frame{Pixels: cloneNRGBA(canvas), Delay: frameDelay(fr)})

		switch fr.DisposeOp {
		case apng.DISPOSE_OP_BACKGROUND:
			clearRect(canvas, rect)
		case apng.DISPOSE_OP_PREVIOUS:
			canvas = snapshot
		}
	}

	return collapse(im), nil
}

func frameDelay(fr apng.Frame) time.Duration {
	den := int64(fr.DelayDenominator)
	if den == 0 {
		den = 100
	}
	return time.Duration(int64(fr.DelayNumerator) * int64(time.Second) / den)
}
