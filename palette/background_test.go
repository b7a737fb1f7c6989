package palette

import (
	"image"
	"testing"

	cwimage "github.com/mmuldo/colorweave/image"
)

func fill(w, h int, f func(x, y int) RGB) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, f(x, y).ToStdColor())
		}
	}
	return img
}

func aggregate(t *testing.T, img *image.RGBA) ([]Color, map[RGB]RGB) {
	t.Helper()
	dist, err := DistanceFor(DefaultMetric)
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	return Aggregate(cwimage.Histogram(img), b.Dx()*b.Dy(), dist, 10)
}

func rgbs(colors []Color) []RGB {
	out := make([]RGB, len(colors))
	for i, c := range colors {
		out[i] = c.RGB
	}
	return out
}

func equalRGBs(a, b []RGB) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDetectBackgroundDominant(t *testing.T) {
	// 60% red, 40% blue
	img := fill(10, 10, func(x, y int) RGB {
		if x < 6 {
			return red
		}
		return blue
	})
	colors, canonical := aggregate(t, img)

	rest, bg := DetectBackground(img, colors, canonical)
	if bg == nil || bg.RGB != red {
		t.Fatalf("background = %v, want %v", bg, red)
	}
	if got := rgbs(rest); !equalRGBs(got, []RGB{blue}) {
		t.Errorf("remaining colors = %v, want [%v]", got, blue)
	}
}

func TestDetectBackgroundBorder(t *testing.T) {
	// thirds of red, green and blue with white corners: no color covers
	// half the image but four of the eight border samples are white
	img := fill(9, 9, func(x, y int) RGB {
		switch {
		case (x == 0 || x == 8) && (y == 0 || y == 8):
			return White
		case x < 3:
			return red
		case x < 6:
			return green
		}
		return blue
	})
	colors, canonical := aggregate(t, img)
	if colors[0].Prominence >= BackgroundProminence {
		t.Fatalf("top color %v too prominent for this test", colors[0])
	}

	rest, bg := DetectBackground(img, colors, canonical)
	if bg == nil || bg.RGB != White {
		t.Fatalf("background = %v, want %v", bg, White)
	}
	if len(rest) != len(colors)-1 {
		t.Errorf("%d colors left, want %d", len(rest), len(colors)-1)
	}
	for _, c := range rest {
		if c.RGB == White {
			t.Error("white left among the colors")
		}
	}
}

func TestDetectBackgroundCanonicalVotes(t *testing.T) {
	// the corners are almost white and were folded into white
	nearWhite := RGB{254, 254, 253}
	img := fill(9, 9, func(x, y int) RGB {
		switch {
		case (x == 0 || x == 8) && (y == 0 || y == 8):
			return nearWhite
		case x == 4 && y == 0:
			return White
		case x < 3:
			return red
		case x < 6:
			return green
		}
		return blue
	})
	colors, canonical := aggregate(t, img)
	if canonical[nearWhite] != White {
		t.Fatalf("%v folded into %v, want %v", nearWhite, canonical[nearWhite], White)
	}

	_, bg := DetectBackground(img, colors, canonical)
	if bg == nil || bg.RGB != White {
		t.Fatalf("background = %v, want %v", bg, White)
	}
	if bg.Count != 5 {
		t.Errorf("background count = %d, want 5", bg.Count)
	}
}

func TestDetectBackgroundNone(t *testing.T) {
	// five colors in diagonal bands; no border color gets three votes
	bands := []RGB{red, green, blue, yellow, magenta}
	img := fill(9, 9, func(x, y int) RGB {
		return bands[(x+2*y)%5]
	})
	colors, canonical := aggregate(t, img)

	rest, bg := DetectBackground(img, colors, canonical)
	if bg != nil {
		t.Errorf("background = %v, want none", bg)
	}
	if !equalRGBs(rgbs(rest), rgbs(colors)) {
		t.Errorf("colors changed: %v, want %v", rgbs(rest), rgbs(colors))
	}
}

func TestDetectBackgroundEmpty(t *testing.T) {
	img := fill(2, 2, func(x, y int) RGB { return red })
	rest, bg := DetectBackground(img, nil, nil)
	if len(rest) != 0 || bg != nil {
		t.Errorf("DetectBackground(nil) = %v, %v", rest, bg)
	}
}

func TestBorderPoints(t *testing.T) {
	got := borderPoints(image.Rect(10, 20, 15, 31))
	want := [8]image.Point{
		{10, 20}, {10, 25}, {10, 30}, {12, 30},
		{14, 30}, {14, 25}, {14, 20}, {12, 20},
	}
	if got != want {
		t.Errorf("borderPoints() = %v, want %v", got, want)
	}
}
