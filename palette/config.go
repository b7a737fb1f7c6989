package palette

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	cwimage "github.com/mmuldo/colorweave/image"
)

// Mode selects the extraction algorithm.
type Mode string

const (
	ModeHistogram Mode = "histogram"
	ModeKMeans    Mode = "kmeans"
)

// ParseMode accepts "histogram" (or an empty string) and "kmeans" or
// "k-means".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "histogram":
		return ModeHistogram, nil
	case "kmeans", "k-means":
		return ModeKMeans, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Config tunes an extraction. Start from DefaultConfig.
type Config struct {
	Mode   Mode
	Metric Metric

	// histogram extractor
	QuantizeColors int     // adaptive palette size before aggregation
	MinDistance    float64 // colors closer than this are merged
	MinProminence  float64 // relative to the most prominent kept color
	MinSaturation  float64 // HSV saturation, 0-1
	MaxColors      int
	AutoCrop       bool
	CropColor      RGB
	Quantizer      cwimage.Quantizer

	// k-means extractor
	Clusters      int
	Convergence   float64 // largest centroid move, in RGB units, that ends the run
	ThumbnailSize int     // 0 disables thumbnailing
	Workers       int
	Seed          int64      // used when Rand is nil; 0 seeds from the clock
	Rand          *rand.Rand // initial centroid sampling

	Logger hclog.Logger
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Mode:           ModeHistogram,
		Metric:         DefaultMetric,
		QuantizeColors: 100,
		MinDistance:    10.0,
		MinProminence:  0.01,
		MinSaturation:  0.05,
		MaxColors:      5,
		AutoCrop:       true,
		CropColor:      White,
		Clusters:       5,
		Convergence:    10.0,
		ThumbnailSize:  200,
		Workers:        1,
	}
}

// Validate reports the first configuration error in c.
func (c Config) Validate() error {
	if _, e := ParseMode(string(c.Mode)); e != nil {
		return e
	}
	if _, e := DistanceFor(c.Metric); e != nil {
		return e
	}

	switch {
	case c.MaxColors < 1:
		return invalid("max colors", c.MaxColors)
	case c.QuantizeColors < 1:
		return invalid("quantize colors", c.QuantizeColors)
	case c.QuantizeColors > 256:
		// colorquant works on an 8-bit palette
		return invalid("quantize colors", c.QuantizeColors)
	case c.MinDistance < 0:
		return invalid("min distance", c.MinDistance)
	case c.MinProminence < 0:
		return invalid("min prominence", c.MinProminence)
	case c.MinSaturation < 0 || c.MinSaturation > 1:
		return invalid("min saturation", c.MinSaturation)
	case c.Clusters < 1:
		return invalid("clusters", c.Clusters)
	case c.Convergence <= 0:
		return invalid("convergence", c.Convergence)
	case c.ThumbnailSize < 0:
		return invalid("thumbnail size", c.ThumbnailSize)
	case c.Workers < 0:
		return invalid("workers", c.Workers)
	}

	return nil
}

func invalid(name string, v interface{}) error {
	return fmt.Errorf("%w: %s = %v", ErrInvalidParameter, name, v)
}

func (c Config) logger() hclog.Logger {
	if c.Logger == nil {
		return hclog.NewNullLogger()
	}
	return c.Logger
}

func (c Config) newRand() *rand.Rand {
	if c.Rand != nil {
		return c.Rand
	}
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
