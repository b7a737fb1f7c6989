// Package palette extracts the dominant colors of an image, either by
// aggregating a quantized color histogram or by k-means clustering of
// its distinct colors.
//
// Both extractors are synchronous and keep no state between calls, so
// concurrent calls on separate images are safe.
package palette

import (
	"fmt"
	"image"
)

// Extract runs the extractor cfg.Mode selects.
func Extract(img image.Image, cfg Config) (*Palette, error) {
	mode, e := ParseMode(string(cfg.Mode))
	if e != nil {
		return nil, e
	}

	switch mode {
	case ModeKMeans:
		return ExtractKMeans(img, cfg)
	case ModeHistogram:
		return ExtractHistogram(img, cfg)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Mode)
}
