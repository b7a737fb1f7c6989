package image

import (
	"image"

	"github.com/esimov/colorquant"
)

// Quantizer reduces an image to at most n colors.
type Quantizer interface {
	Quantize(img *image.RGBA, n int) *image.RGBA
}

// ColorQuant is the default Quantizer, backed by colorquant without
// dithering.
type ColorQuant struct{}

// Quantize runs colorquant over img and expands the paletted result back
// to full RGB.
func (q ColorQuant) Quantize(img *image.RGBA, n int) *image.RGBA {
	b := img.Bounds()
	o := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))

	colorquant.NoDither.Quantize(img, o, n, false, true)

	return ToRGBA(o)
}

// Reduce quantizes img to at most n colors with q. Images that already
// fit in n colors come back as they are.
func Reduce(img *image.RGBA, n int, q Quantizer) *image.RGBA {
	if CountDistinct(img, n) <= n {
		return img
	}
	if q == nil {
		q = ColorQuant{}
	}

	return q.Quantize(img, n)
}
