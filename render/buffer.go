package render

import (
	"image"
	"image/color"
)

// Fill sets every pixel of img to c in one pass.
func Fill(img *image.NRGBA, c color.NRGBA) {
	if len(img.Pix) == 0 {
		return
	}
	if c == (color.NRGBA{}) {
		clear(img.Pix)
		return
	}
	img.Pix[0] = c.R
	img.Pix[1] = c.G
	img.Pix[2] = c.B
	img.Pix[3] = c.A
	for i := 4; i < len(img.Pix); i *= 2 {
		copy(img.Pix[i:], img.Pix[:i])
	}
}

// NewCanvas allocates a w×h buffer prefilled with c. The zero color yields a
// fully transparent canvas.
func NewCanvas(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if c != (color.NRGBA{}) {
		Fill(img, c)
	}
	return img
}
