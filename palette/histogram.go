package palette

import (
	"image"
	"sort"

	cwimage "github.com/mmuldo/colorweave/image"
)

// Aggregate folds the counted colors of hist, which must be ranked by
// count, into canonical colors. A color exactly matching a canonical
// color adds to it; otherwise it joins the nearest canonical color when
// that is closer than minDistance, the earliest one winning ties, and
// becomes canonical itself when not. White and black are always
// available as merge targets.
//
// The result is ranked by prominence (count/total). canonical maps every
// color of hist to the color it was folded into.
func Aggregate(hist cwimage.ColorCountList, total int, dist DistanceFunc, minDistance float64) (colors []Color, canonical map[RGB]RGB) {
	canonical = map[RGB]RGB{White: White, Black: Black}
	aggregated := []RGB{White, Black}
	counts := map[RGB]int{White: 0, Black: 0}

	for _, cc := range hist {
		c := FromColor(cc.Color)
		if _, ok := counts[c]; ok {
			// exact match
			counts[c] += cc.Count
			continue
		}

		nearest, d := aggregated[0], dist(c, aggregated[0])
		for _, alt := range aggregated[1:] {
			if da := dist(c, alt); da < d {
				nearest, d = alt, da
			}
		}

		if d < minDistance {
			counts[nearest] += cc.Count
			canonical[c] = nearest
		} else {
			aggregated = append(aggregated, c)
			counts[c] = cc.Count
			canonical[c] = c
		}
	}

	for _, c := range aggregated {
		n := counts[c]
		if n == 0 {
			// unused anchor
			continue
		}
		colors = append(colors, Color{RGB: c, Count: n, Prominence: float64(n) / float64(total)})
	}
	sort.SliceStable(colors, func(i, j int) bool {
		return colors[i].Prominence > colors[j].Prominence
	})

	return colors, canonical
}

func isAnchor(c RGB) bool {
	return c == White || c == Black
}

// ExtractHistogram finds the dominant colors of img by quantizing it,
// merging perceptually close colors and ranking what is left by
// prominence. A background color, when one is detected, is reported
// apart from the palette.
func ExtractHistogram(img image.Image, cfg Config) (*Palette, error) {
	if e := cfg.Validate(); e != nil {
		return nil, e
	}
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	dist, e := DistanceFor(cfg.Metric)
	if e != nil {
		return nil, e
	}
	log := cfg.logger().Named("histogram")

	rgba := cwimage.ToRGBA(img)
	if cfg.AutoCrop {
		rgba = cwimage.AutoCrop(rgba, cfg.CropColor.ToStdColor())
	}
	rgba = cwimage.Reduce(rgba, cfg.QuantizeColors, cfg.Quantizer)

	hist := cwimage.Histogram(rgba)
	b := rgba.Bounds()
	total := b.Dx() * b.Dy()
	log.Debug("quantized", "width", b.Dx(), "height", b.Dy(), "colors", len(hist))

	colors, canonical := Aggregate(hist, total, dist, cfg.MinDistance)
	log.Debug("aggregated", "colors", len(colors), "metric", string(cfg.Metric))

	colors, bg := DetectBackground(rgba, colors, canonical)
	detected := bg

	// keep any color which meets the minimum saturation
	var sat []Color
	for _, c := range colors {
		if c.Saturation() > cfg.MinSaturation {
			sat = append(sat, c)
		}
	}
	if bg != nil && !isAnchor(bg.RGB) && bg.Saturation() <= cfg.MinSaturation {
		log.Debug("background rejected", "color", bg.Hex(), "saturation", bg.Saturation())
		bg = nil
	}
	switch {
	case len(sat) > 0:
		colors = sat
	case len(colors) > 0:
		// keep at least one color
		colors = colors[:1]
	default:
		// the background was all there was
		colors = []Color{*detected}
	}
	if bg != nil {
		log.Debug("background", "color", bg.Hex(), "prominence", bg.Prominence)
	}

	floor := colors[0].Prominence * cfg.MinProminence
	final := make([]Color, 0, cfg.MaxColors)
	for _, c := range colors {
		if len(final) == cfg.MaxColors {
			break
		}
		if c.Prominence >= floor {
			final = append(final, c)
		}
	}

	return &Palette{Colors: final, Background: bg}, nil
}
