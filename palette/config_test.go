package palette

import (
	"errors"
	"math/rand"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "", want: ModeHistogram},
		{input: "histogram", want: ModeHistogram},
		{input: "KMeans", want: ModeKMeans},
		{input: "k-means", want: ModeKMeans},
		{input: "octree", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownMode) {
				t.Errorf("ParseMode(%q) error = %v, want %v", tt.input, err, ErrUnknownMode)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseMode(%q) = %v, %v, want %v", tt.input, got, err, tt.want)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
		want error
	}{
		{"unknown mode", func(c *Config) { c.Mode = "octree" }, ErrUnknownMode},
		{"unknown metric", func(c *Config) { c.Metric = "delta_e_hunter" }, ErrUnknownMetric},
		{"max colors", func(c *Config) { c.MaxColors = 0 }, ErrInvalidParameter},
		{"quantize too many", func(c *Config) { c.QuantizeColors = 257 }, ErrInvalidParameter},
		{"negative distance", func(c *Config) { c.MinDistance = -1 }, ErrInvalidParameter},
		{"negative prominence", func(c *Config) { c.MinProminence = -0.1 }, ErrInvalidParameter},
		{"saturation above one", func(c *Config) { c.MinSaturation = 1.5 }, ErrInvalidParameter},
		{"zero clusters", func(c *Config) { c.Clusters = 0 }, ErrInvalidParameter},
		{"zero convergence", func(c *Config) { c.Convergence = 0 }, ErrInvalidParameter},
		{"negative thumbnail", func(c *Config) { c.ThumbnailSize = -1 }, ErrInvalidParameter},
		{"negative workers", func(c *Config) { c.Workers = -2 }, ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.edit(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.want) || !errors.Is(err, ErrConfig) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestConfigRand(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	if got := (Config{Rand: r}).newRand(); got != r {
		t.Error("newRand() ignored Config.Rand")
	}

	a := Config{Seed: 5}.newRand().Int63()
	b := Config{Seed: 5}.newRand().Int63()
	if a != b {
		t.Errorf("seed 5 gave %d then %d", a, b)
	}
}
