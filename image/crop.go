package image

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// BoundingBox returns the smallest rectangle holding every pixel of img
// that differs from bg. ok is false when the whole image is bg.
func BoundingBox(img *image.RGBA, bg color.RGBA) (r image.Rectangle, ok bool) {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == bg {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < minX {
		return image.Rectangle{}, false
	}

	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// AutoCrop crops away a uniform border of bg. An image made only of bg
// is returned unchanged.
func AutoCrop(img *image.RGBA, bg color.RGBA) *image.RGBA {
	r, ok := BoundingBox(img, bg)
	if !ok || r == img.Bounds() {
		return img
	}

	o := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(o, o.Bounds(), img, r.Min, draw.Src)

	return o
}
