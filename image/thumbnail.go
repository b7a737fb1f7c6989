package image

import (
	"image"

	"golang.org/x/image/draw"
)

// Thumbnail shrinks img to fit inside a size x size box, keeping its
// aspect ratio. Images that already fit, and non-positive sizes, leave
// img untouched.
func Thumbnail(img *image.RGBA, size int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if size <= 0 || (w <= size && h <= size) {
		return img
	}

	nw, nh := size, size
	if w > h {
		nh = max(h*size/w, 1)
	} else {
		nw = max(w*size/h, 1)
	}

	o := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.ApproxBiLinear.Scale(o, o.Bounds(), img, b, draw.Src, nil)

	return o
}
