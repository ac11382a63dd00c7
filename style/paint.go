package style

import (
	"image"

	"golang.org/x/image/draw"
)

// Paint composites src onto dst according to the style. dst is written in
// place; pixels outside the placed image are left untouched. The scaler is
// consulted only when a resize is actually needed.
func (s Style) Paint(src, dst *image.NRGBA, scaler draw.Scaler) {
	srcW, srcH := src.Rect.Dx(), src.Rect.Dy()
	dstW, dstH := dst.Rect.Dx(), dst.Rect.Dy()
	if srcW == 0 || srcH == 0 || dstW == 0 || dstH == 0 {
		return
	}

	switch s.Kind {
	case Center:
		drawCenter(src, dst)

	case Tile:
		for y := 0; y < dstH; y += srcH {
			for x := 0; x < dstW; x += srcW {
				overlay(dst, src, int64(x), int64(y))
			}
		}

	case Position:
		w, h := s.Size.Resolve(srcW, srcH)

		var x, y int64
		if s.X.Center {
			x = (int64(dstW) - int64(w)) / 2
		} else {
			x = int64(s.X.Value)
		}
		if s.Y.Center {
			y = (int64(dstH) - int64(h)) / 2
		} else {
			y = int64(s.Y.Value)
		}

		if w > 0 && h > 0 {
			if w == srcW && h == srcH {
				overlay(dst, src, x, y)
			} else {
				overlay(dst, resize(src, w, h, scaler), x, y)
			}
		}

	case Cover:
		if srcW == dstW && srcH == dstH {
			overlay(dst, src, 0, 0)
			return
		}
		width := dstW
		height := int(int64(srcH) * int64(dstW) / int64(srcW))
		var x, y int64
		if height < dstH {
			height = dstH
			width = int(int64(srcW) * int64(dstH) / int64(srcH))
			x = (int64(dstW) - int64(width)) / 2
		} else {
			y = (int64(dstH) - int64(height)) / 2
		}
		overlay(dst, resize(src, width, height, scaler), x, y)

	case Contain:
		drawContain(src, dst, scaler)

	case ShrinkToFit:
		if srcW <= dstW && srcH <= dstH {
			drawCenter(src, dst)
		} else {
			drawContain(src, dst, scaler)
		}
	}
}

func drawCenter(src, dst *image.NRGBA) {
	x := (int64(dst.Rect.Dx()) - int64(src.Rect.Dx())) / 2
	y := (int64(dst.Rect.Dy()) - int64(src.Rect.Dy())) / 2
	overlay(dst, src, x, y)
}

func drawContain(src, dst *image.NRGBA, scaler draw.Scaler) {
	srcW, srcH := src.Rect.Dx(), src.Rect.Dy()
	dstW, dstH := dst.Rect.Dx(), dst.Rect.Dy()
	if srcW == dstW && srcH == dstH {
		overlay(dst, src, 0, 0)
		return
	}
	width := dstW
	height := int(int64(srcH) * int64(dstW) / int64(srcW))
	var x, y int64
	if height > dstH {
		height = dstH
		width = int(int64(srcW) * int64(dstH) / int64(srcH))
		x = (int64(dstW) - int64(width)) / 2
	} else {
		y = (int64(dstH) - int64(height)) / 2
	}
	overlay(dst, resize(src, width, height, scaler), x, y)
}

// overlay alpha-blends src onto dst with its top-left at (x, y) in dst-local
// coordinates. Placements partially or fully outside dst clip.
func overlay(dst, src *image.NRGBA, x, y int64) {
	// A placement past the 32-bit range cannot intersect a real canvas.
	if x > int64(dst.Rect.Dx()) || y > int64(dst.Rect.Dy()) ||
		x < -int64(src.Rect.Dx()) || y < -int64(src.Rect.Dy()) {
		return
	}
	r := image.Rect(0, 0, src.Rect.Dx(), src.Rect.Dy()).
		Add(image.Point{X: int(x), Y: int(y)}).
		Add(dst.Rect.Min)
	sp := src.Rect.Min
	if clipped := r.Intersect(dst.Rect); clipped != r {
		sp = sp.Add(clipped.Min.Sub(r.Min))
		r = clipped
	}
	draw.Draw(dst, r, src, sp, draw.Over)
}

func resize(src *image.NRGBA, w, h int, scaler draw.Scaler) *image.NRGBA {
	if w == src.Rect.Dx() && h == src.Rect.Dy() {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	scaler.Scale(dst, dst.Rect, src, src.Rect, draw.Src, nil)
	return dst
}
