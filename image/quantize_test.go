package image

import (
	"image"
	"image/color"
	"testing"
)

type countingQuantizer struct {
	calls int
}

func (q *countingQuantizer) Quantize(img *image.RGBA, n int) *image.RGBA {
	q.calls++
	return img
}

func TestReduceSkipsSmallPalettes(t *testing.T) {
	img := fill(4, 4, func(x, y int) color.RGBA {
		if x < 2 {
			return red
		}
		return blue
	})
	q := &countingQuantizer{}

	if got := Reduce(img, 2, q); got != img {
		t.Error("Reduce() replaced an image that already fits")
	}
	if q.calls != 0 {
		t.Errorf("quantizer called %d times", q.calls)
	}

	Reduce(img, 1, q)
	if q.calls != 1 {
		t.Errorf("quantizer called %d times, want 1", q.calls)
	}
}

func TestColorQuant(t *testing.T) {
	img := fill(32, 32, func(x, y int) color.RGBA {
		return color.RGBA{uint8(x * 8), uint8(y * 8), 96, 255}
	})

	got := Reduce(img, 16, nil)
	if got.Bounds() != img.Bounds() {
		t.Fatalf("bounds = %v, want %v", got.Bounds(), img.Bounds())
	}
	if n := CountDistinct(got, 16); n > 16 {
		t.Errorf("quantized image has %d colors, want at most 16", n)
	}
}
