package palette

import (
	"fmt"
	"math"
	"strings"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
)

// Metric names a perceptual color difference formula.
type Metric string

const (
	CMC     Metric = "delta_e_cmc"
	CIE1976 Metric = "delta_e_cie1976"
	CIE1994 Metric = "delta_e_cie1994"
	CIE2000 Metric = "delta_e_cie2000"

	DefaultMetric = CIE2000
)

// Metrics lists the supported metrics.
var Metrics = []Metric{CMC, CIE1976, CIE1994, CIE2000}

// ParseMetric accepts a metric identifier with or without its
// "delta_e_" prefix, in any case.
func ParseMetric(s string) (Metric, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(name, "delta_e_") {
		name = "delta_e_" + name
	}
	for _, m := range Metrics {
		if Metric(name) == m {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}

var (
	// for RGB-to-Lab conversion
	targetIlluminant = &chromath.IlluminantRefD50
	rgb2Xyz          = chromath.NewRGBTransformer(
		&chromath.SpaceSRGB,
		&chromath.AdaptationBradford,
		targetIlluminant,
		&chromath.Scaler8bClamping,
		1.0,
		nil,
	)
	lab2Xyz = chromath.NewLabTransformer(targetIlluminant)
	klch    = &deltae.KLChDefault
)

// ToLab converts c to CIELAB under a D50 reference white.
func ToLab(c RGB) chromath.Lab {
	rgb := chromath.RGB{float64(c.R), float64(c.G), float64(c.B)}
	xyz := rgb2Xyz.Convert(rgb)
	return lab2Xyz.Invert(xyz)
}

// DistanceFunc measures how different two colors look. Zero means
// identical.
type DistanceFunc func(a, b RGB) float64

// DistanceFor resolves m to its DistanceFunc.
func DistanceFor(m Metric) (DistanceFunc, error) {
	var f func(std, sample chromath.Lab) float64

	switch m {
	case CMC:
		f = deltaCMC
	case CIE1976:
		f = deltaCIE1976
	case CIE1994:
		f = deltaCIE1994
	case CIE2000:
		f = func(std, sample chromath.Lab) float64 {
			return deltae.CIE2000(std, sample, klch)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, string(m))
	}

	return func(a, b RGB) float64 {
		if a == b {
			return 0
		}
		return f(ToLab(a), ToLab(b))
	}, nil
}

// Distance is the perceptual distance from a to b under m. Only CMC
// depends on argument order; a is its reference color.
func Distance(a, b RGB, m Metric) (float64, error) {
	f, e := DistanceFor(m)
	if e != nil {
		return 0, e
	}
	return f(a, b), nil
}

func chroma(lab chromath.Lab) float64 {
	return math.Hypot(lab.A(), lab.B())
}

func deltaCIE1976(std, sample chromath.Lab) float64 {
	dl := std.L() - sample.L()
	da := std.A() - sample.A()
	db := std.B() - sample.B()
	return math.Sqrt(dl*dl + da*da + db*db)
}

// graphic arts weights
const (
	cie94KL = 1.0
	cie94K1 = 0.045
	cie94K2 = 0.015
)

// deltaCIE1994 weights chroma and hue by the geometric mean chroma of
// both colors.
func deltaCIE1994(std, sample chromath.Lab) float64 {
	c1, c2 := chroma(std), chroma(sample)
	dl := std.L() - sample.L()
	dc := c1 - c2
	da := std.A() - sample.A()
	db := std.B() - sample.B()
	dh2 := math.Max(da*da+db*db-dc*dc, 0)

	c := math.Sqrt(c1 * c2)
	sc := 1 + cie94K1*c
	sh := 1 + cie94K2*c

	l := dl / cie94KL
	return math.Sqrt(l*l + (dc/sc)*(dc/sc) + dh2/(sh*sh))
}

// CMC l:c weights, 2:1 for acceptability.
const (
	cmcL = 2.0
	cmcC = 1.0
)

func deltaCMC(std, sample chromath.Lab) float64 {
	l1 := std.L()
	c1, c2 := chroma(std), chroma(sample)
	dl := l1 - sample.L()
	dc := c1 - c2
	da := std.A() - sample.A()
	db := std.B() - sample.B()
	dh2 := math.Max(da*da+db*db-dc*dc, 0)

	h1 := math.Atan2(std.B(), std.A()) * 180 / math.Pi
	if h1 < 0 {
		h1 += 360
	}

	var t float64
	if h1 >= 164 && h1 <= 345 {
		t = 0.56 + math.Abs(0.2*math.Cos((h1+168)*math.Pi/180))
	} else {
		t = 0.36 + math.Abs(0.4*math.Cos((h1+35)*math.Pi/180))
	}

	c14 := c1 * c1 * c1 * c1
	f := math.Sqrt(c14 / (c14 + 1900))

	sl := 0.511
	if l1 >= 16 {
		sl = 0.040975 * l1 / (1 + 0.01765*l1)
	}
	sc := 0.0638*c1/(1+0.0131*c1) + 0.638
	sh := sc * (f*t + 1 - f)

	l := dl / (cmcL * sl)
	c := dc / (cmcC * sc)
	return math.Sqrt(l*l + c*c + dh2/(sh*sh))
}
