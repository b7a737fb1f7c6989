package image

import (
	"image"
	"image/color"
	"testing"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
	white = color.RGBA{255, 255, 255, 255}
)

func fill(w, h int, f func(x, y int) color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, f(x, y))
		}
	}
	return img
}

func TestGetColors(t *testing.T) {
	// row 0: blue red red; row 1: green green green
	img := fill(3, 2, func(x, y int) color.RGBA {
		switch {
		case y == 1:
			return green
		case x == 0:
			return blue
		}
		return red
	})

	got := GetColors(img)
	want := ColorCountList{{blue, 1}, {red, 2}, {green, 3}}
	if len(got) != len(want) {
		t.Fatalf("GetColors() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("GetColors()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRankColorsStable(t *testing.T) {
	ccl := ColorCountList{{red, 1}, {green, 3}, {blue, 1}, {white, 3}}

	got := RankColors(ccl)
	want := []color.RGBA{green, white, red, blue}
	for i, c := range want {
		if got[i].Color != c {
			t.Errorf("RankColors()[%d] = %v, want %v", i, got[i].Color, c)
		}
	}
}

func TestHistogramTotals(t *testing.T) {
	img := fill(10, 7, func(x, y int) color.RGBA {
		return color.RGBA{uint8(x * 20), uint8(y * 30), 0, 255}
	})

	total := 0
	for _, cc := range Histogram(img) {
		total += cc.Count
	}
	if total != 70 {
		t.Errorf("histogram counts sum to %d, want 70", total)
	}
}

func TestToRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	src.SetNRGBA(5, 5, color.NRGBA{255, 0, 0, 128})
	src.SetNRGBA(6, 5, color.NRGBA{0, 0, 255, 255})

	got := ToRGBA(src)
	if got.Bounds() != image.Rect(0, 0, 2, 1) {
		t.Fatalf("bounds = %v, want origin anchored 2x1", got.Bounds())
	}
	if c := got.RGBAAt(0, 0); c != red {
		t.Errorf("semi transparent red = %v, want %v", c, red)
	}
	if c := got.RGBAAt(1, 0); c != blue {
		t.Errorf("blue = %v, want %v", c, blue)
	}
}

func TestToRGBAOpaqueCopy(t *testing.T) {
	src := fill(4, 4, func(x, y int) color.RGBA { return green })

	got := ToRGBA(src)
	if got == src {
		t.Fatal("ToRGBA returned its input")
	}
	if c := got.RGBAAt(3, 3); c != green {
		t.Errorf("pixel = %v, want %v", c, green)
	}
}

func TestCountDistinct(t *testing.T) {
	img := fill(16, 16, func(x, y int) color.RGBA {
		return color.RGBA{uint8(x), uint8(y), 0, 255}
	})

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"under limit", 1000, 256},
		{"stops past limit", 10, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountDistinct(img, tt.limit); got != tt.want {
				t.Errorf("CountDistinct(%d) = %d, want %d", tt.limit, got, tt.want)
			}
		})
	}
}
