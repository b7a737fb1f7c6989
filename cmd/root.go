/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/colorweave/palette"
)

var (
	cfgFile string
	logger  = hclog.NewNullLogger()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "colorweave",
	Short: "Extracts the dominant colors of an image",
	Long: `colorweave finds the handful of colors that dominate an image, either by
merging a quantized color histogram with a perceptual distance metric or by
k-means clustering of the image's colors.

Options can also be set in $HOME/.colorweave.yaml or through COLORWEAVE_*
environment variables, e.g. COLORWEAVE_MIN_DISTANCE=12.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if e := readConfig(); e != nil {
			return e
		}
		logger = newLogger(viper.GetBool("verbose"))
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debug("using config file", "path", f)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.colorweave.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log extraction steps to stderr")
	rootCmd.PersistentFlags().StringP("metric", "m", string(palette.DefaultMetric), "perceptual distance metric (cmc, cie1976, cie1994, cie2000)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("metric", rootCmd.PersistentFlags().Lookup("metric"))

	viper.SetEnvPrefix("colorweave")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// readConfig reads the config file, if any. A missing default config
// file is not an error; a missing --config file is.
func readConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, e := homedir.Dir()
		if e != nil {
			return errors.Wrap(e, "locating home directory")
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".colorweave")
	}

	if e := viper.ReadInConfig(); e != nil {
		if _, ok := e.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil
		}
		return errors.Wrap(e, "reading config")
	}
	return nil
}

func newLogger(verbose bool) hclog.Logger {
	if !verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "colorweave",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "colorweave",
		Output: os.Stderr,
		Level:  hclog.Debug,
	})
}
