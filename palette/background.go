package palette

import "image"

const (
	// BackgroundProminence is the share of the image above which the top
	// color is the background outright.
	BackgroundProminence = 0.5
	// BackgroundVotes is how many of the eight border samples must agree
	// on a color for it to be the background.
	BackgroundVotes = 3
)

// borderPoints returns the four corners and four edge midpoints of r,
// walking from the top-left corner down the left edge and round.
func borderPoints(r image.Rectangle) [8]image.Point {
	x0, y0 := r.Min.X, r.Min.Y
	x1, y1 := r.Max.X-1, r.Max.Y-1
	mx, my := x0+r.Dx()/2, y0+r.Dy()/2

	return [8]image.Point{
		{x0, y0}, {x0, my}, {x0, y1}, {mx, y1},
		{x1, y1}, {x1, my}, {x1, y0}, {mx, y0},
	}
}

// DetectBackground splits the background color out of colors, which must
// be ranked by prominence. canonical maps raw pixel colors of img to the
// aggregated color in colors they were folded into. When no background is
// found colors comes back unchanged with a nil background.
func DetectBackground(img image.Image, colors []Color, canonical map[RGB]RGB) ([]Color, *Color) {
	if len(colors) == 0 {
		return colors, nil
	}

	// more than half the image means background
	if colors[0].Prominence >= BackgroundProminence {
		bg := colors[0]
		return colors[1:], &bg
	}

	b := img.Bounds()
	if b.Empty() {
		return colors, nil
	}

	var order []RGB
	votes := make(map[RGB]int)
	for _, p := range borderPoints(b) {
		c := FromColor(img.At(p.X, p.Y))
		if cc, ok := canonical[c]; ok {
			c = cc
		}
		if votes[c] == 0 {
			order = append(order, c)
		}
		votes[c]++
	}

	var majority RGB
	most := 0
	for _, c := range order {
		if votes[c] > most {
			majority, most = c, votes[c]
		}
	}
	if most < BackgroundVotes {
		return colors, nil
	}

	for i, c := range colors {
		if c.RGB != majority {
			continue
		}
		rest := make([]Color, 0, len(colors)-1)
		rest = append(rest, colors[:i]...)
		rest = append(rest, colors[i+1:]...)
		return rest, &c
	}

	return colors, nil
}
