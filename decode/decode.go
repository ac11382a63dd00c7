// Package decode loads image files into the RGBA frame sequences the player
// consumes. Animated GIF and APNG inputs are coalesced into full-canvas
// frames; everything else decodes as a still.
package decode

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"time"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Frame is one fully decoded animation frame. DX/DY give the frame's
// top-left within the animation canvas; coalesced decoders emit full-canvas
// frames at (0, 0).
type Frame struct {
	Pixels *image.NRGBA
	DX, DY int
	Delay  time.Duration
}

// Image is a decoded input: either a single still or an ordered frame
// sequence with a declared canvas size.
type Image struct {
	Still         *image.NRGBA
	Width, Height int
	Frames        []Frame
}

// Animated reports whether the image carries more than one frame.
func (im *Image) Animated() bool {
	return im.Still == nil
}

// Size returns the canvas dimensions in pixels.
func (im *Image) Size() (int, int) {
	if im.Still != nil {
		return im.Still.Rect.Dx(), im.Still.Rect.Dy()
	}
	return im.Width, im.Height
}

var (
	gifMagic = []byte("GIF8")
	pngMagic = []byte("\x89PNG\r\n\x1a\n")
)

// File decodes the image at path. GIF and PNG files go through the
// animation-aware decoders; a one-frame animation collapses to a still.
func File(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var magic [8]byte
	n, err := io.ReadFull(f, magic[:])
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	var im *Image
	switch {
	case bytes.HasPrefix(magic[:n], gifMagic):
		im, err = decodeGIF(f)
	case bytes.HasPrefix(magic[:n], pngMagic):
		im, err = decodeAPNG(f)
	default:
		im, err = decodeStill(f)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return im, nil
}

func decodeStill(r io.Reader) (*Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return &Image{Still: toNRGBA(img)}, nil
}

// toNRGBA converts any decoded image to a zero-origin straight-alpha buffer.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	return dst
}

func cloneNRGBA(img *image.NRGBA) *image.NRGBA {
	dup := image.NewNRGBA(img.Rect)
	copy(dup.Pix, img.Pix)
	return dup
}

// collapse turns a one-frame animation into a still.
func collapse(im *Image) *Image {
	if len(im.Frames) == 1 {
		return &Image{Still: im.Frames[0].Pixels}
	}
	return im
}
