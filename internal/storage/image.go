package storage

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Fit scales img down so its width is at most maxWidth, preserving the
// aspect ratio. Smaller images pass through untouched.
func Fit(img image.Image, maxWidth int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= maxWidth {
		return img
	}

	height := bounds.Dy() * maxWidth / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst
}
