package palette

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

var (
	White = RGB{255, 255, 255}
	Black = RGB{0, 0, 0}
)

// NewRGB builds an RGB from integer channels, rejecting values outside
// [0,255].
func NewRGB(r, g, b int) (RGB, error) {
	for _, c := range [...]int{r, g, b} {
		if c < 0 || c > 255 {
			return RGB{}, fmt.Errorf("%w: channel %d outside [0,255]", ErrInvalidColor, c)
		}
	}
	return RGB{uint8(r), uint8(g), uint8(b)}, nil
}

// ParseHex parses "#rgb" or "#rrggbb".
func ParseHex(s string) (RGB, error) {
	c, e := colorful.Hex(s)
	if e != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return RGB{r, g, b}, nil
}

// FromColor drops alpha from c.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{n.R, n.G, n.B}
}

// ToStdColor returns c as an opaque color.RGBA.
func (c RGB) ToStdColor() color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 255}
}

func (c RGB) toColorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Hex renders c as "#rrggbb".
func (c RGB) Hex() string {
	return c.toColorful().Hex()
}

// Saturation is the HSV saturation of c on a 0-1 scale.
func (c RGB) Saturation() float64 {
	_, s, _ := c.toColorful().Hsv()
	return s
}

func (c RGB) String() string {
	return c.Hex()
}

// Color is a palette entry: a color, the number of pixels it stands for
// and the fraction of the image those pixels cover. Prominence is left at
// zero by the k-means extractor.
type Color struct {
	RGB
	Count      int
	Prominence float64
}

// Palette is the result of one extraction. Colors are ordered, most
// prominent first for the histogram extractor and by cluster for k-means.
type Palette struct {
	Colors     []Color
	Background *Color
}

// Hex returns the palette colors as hex strings.
func (p *Palette) Hex() []string {
	hs := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		hs[i] = c.Hex()
	}
	return hs
}
