package image

import (
	"image"
	"image/color"
	"sort"

	"golang.org/x/image/draw"
)

// ColorCount is an opaque color and the number of pixels it occupies.
type ColorCount struct {
	Color color.RGBA
	Count int
}

// ColorCountList sorts by descending count.
type ColorCountList []ColorCount

func (ccl ColorCountList) Len() int           { return len(ccl) }
func (ccl ColorCountList) Less(i, j int) bool { return ccl[i].Count > ccl[j].Count }
func (ccl ColorCountList) Swap(i, j int)      { ccl[i], ccl[j] = ccl[j], ccl[i] }

// ToRGBA copies img into an opaque RGBA image anchored at the origin.
// Alpha is discarded rather than composited, so a half transparent red
// pixel stays red.
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	o := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	if src, ok := img.(*image.RGBA); ok && src.Opaque() {
		draw.Draw(o, o.Bounds(), src, b.Min, draw.Src)
		return o
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			o.SetRGBA(x-b.Min.X, y-b.Min.Y, color.RGBA{c.R, c.G, c.B, 255})
		}
	}

	return o
}

// GetColors returns every distinct color of img with its pixel count,
// in the order each color is first met scanning row by row.
func GetColors(img *image.RGBA) ColorCountList {
	idx := make(map[color.RGBA]int)
	var ccl ColorCountList

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if i, ok := idx[c]; ok {
				ccl[i].Count++
				continue
			}
			idx[c] = len(ccl)
			ccl = append(ccl, ColorCount{c, 1})
		}
	}

	return ccl
}

// RankColors sorts ccl by descending count. Equal counts keep their
// relative order.
func RankColors(ccl ColorCountList) ColorCountList {
	sort.Stable(ccl)
	return ccl
}

// Histogram is GetColors followed by RankColors.
func Histogram(img *image.RGBA) ColorCountList {
	return RankColors(GetColors(img))
}

// CountDistinct returns the number of distinct colors in img, giving up
// once more than limit have been seen.
func CountDistinct(img *image.RGBA, limit int) int {
	seen := make(map[color.RGBA]struct{})

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			seen[img.RGBAAt(x, y)] = struct{}{}
			if len(seen) > limit {
				return len(seen)
			}
		}
	}

	return len(seen)
}
