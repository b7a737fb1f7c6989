package cmd

import (
	"context"
	"io"
	"runtime"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mmuldo/colorweave/format"
	"github.com/mmuldo/colorweave/image"
	"github.com/mmuldo/colorweave/palette"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <path|url>",
	Short: "Extracts a color palette from an image",
	Long: `Extracts a color palette from an image file or an http(s) URL.

In histogram mode (the default) the image is quantized, perceptually close
colors are merged and the most prominent saturated colors are printed, along
with the background color when one is detected. In kmeans mode the image's
colors are clustered and the cluster centers are printed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(cmd.Context(), cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	d := palette.DefaultConfig()
	f := extractCmd.Flags()
	f.IntP("colors", "n", d.MaxColors, "maximum palette size; also the cluster count in kmeans mode unless --clusters is set")
	f.String("mode", string(d.Mode), "extraction mode (histogram, kmeans)")
	f.StringP("format", "f", "", "color naming (hex, css3, css21, full, fullest)")
	f.StringP("output", "o", string(format.Text), "output type (text, json)")
	f.String("template", "", "pongo2 template file for text output")
	f.Bool("swatch", false, "show a terminal color swatch next to each color")

	f.Int("quantize", d.QuantizeColors, "adaptive palette size used before merging colors")
	f.Float64("min-distance", d.MinDistance, "colors closer than this are merged")
	f.Float64("min-prominence", d.MinProminence, "drop colors less prominent than this fraction of the top color")
	f.Float64("min-saturation", d.MinSaturation, "drop colors whose saturation does not exceed this")
	f.Bool("no-crop", false, "do not crop a uniform border before quantizing")
	f.String("crop-color", d.CropColor.Hex(), "border color cropped before quantizing")

	f.Int("clusters", 0, "cluster count in kmeans mode")
	f.Float64("convergence", d.Convergence, "stop clustering once no center moves this far")
	f.Int("thumbnail", d.ThumbnailSize, "shrink images to fit this size before clustering (0 disables)")
	f.Int("workers", runtime.NumCPU(), "goroutines assigning points to clusters")
	f.Int64("seed", 0, "random seed for initial centers (0 picks one)")

	f.VisitAll(func(fl *pflag.Flag) {
		viper.BindPFlag(fl.Name, fl)
	})
}

// extractConfig builds the engine and output configuration from flags,
// environment and config file.
func extractConfig() (palette.Config, format.Options, error) {
	cfg := palette.DefaultConfig()
	var opts format.Options

	mode, e := palette.ParseMode(viper.GetString("mode"))
	if e != nil {
		return cfg, opts, e
	}
	metric, e := palette.ParseMetric(viper.GetString("metric"))
	if e != nil {
		return cfg, opts, e
	}
	crop, e := palette.ParseHex(viper.GetString("crop-color"))
	if e != nil {
		return cfg, opts, errors.Wrap(e, "crop color")
	}

	cfg.Mode = mode
	cfg.Metric = metric
	cfg.MaxColors = viper.GetInt("colors")
	cfg.Clusters = cfg.MaxColors
	if n := viper.GetInt("clusters"); n != 0 {
		cfg.Clusters = n
	}
	cfg.QuantizeColors = viper.GetInt("quantize")
	cfg.MinDistance = viper.GetFloat64("min-distance")
	cfg.MinProminence = viper.GetFloat64("min-prominence")
	cfg.MinSaturation = viper.GetFloat64("min-saturation")
	cfg.AutoCrop = !viper.GetBool("no-crop")
	cfg.CropColor = crop
	cfg.Convergence = viper.GetFloat64("convergence")
	cfg.ThumbnailSize = viper.GetInt("thumbnail")
	cfg.Workers = viper.GetInt("workers")
	cfg.Seed = viper.GetInt64("seed")
	cfg.Logger = logger

	if opts.Format, e = format.ParseFormat(viper.GetString("format")); e != nil {
		return cfg, opts, e
	}
	if opts.Output, e = format.ParseOutput(viper.GetString("output")); e != nil {
		return cfg, opts, e
	}
	opts.Template = viper.GetString("template")
	opts.Swatch = viper.GetBool("swatch")

	return cfg, opts, cfg.Validate()
}

func runExtract(ctx context.Context, w io.Writer, src string) error {
	cfg, opts, e := extractConfig()
	if e != nil {
		return e
	}

	logger.Debug("loading image", "source", src)
	img, e := image.Load(ctx, src)
	if e != nil {
		return e
	}

	p, e := palette.Extract(img, cfg)
	if e != nil {
		return errors.Wrapf(e, "extracting colors from %s", src)
	}

	return format.Render(w, p, opts)
}
