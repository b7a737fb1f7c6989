package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/colorweave/palette"
)

var allMetrics bool

// distanceCmd represents the distance command
var distanceCmd = &cobra.Command{
	Use:   "distance <color> <color>",
	Short: "Prints the perceptual distance between two colors",
	Long: `Prints the perceptual distance between two hex colors. The first color is
the reference, which only matters for the asymmetric cmc metric.

  colorweave distance '#ff0000' '#fe0a05' --metric cie1994`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, e := palette.ParseHex(args[0])
		if e != nil {
			return e
		}
		b, e := palette.ParseHex(args[1])
		if e != nil {
			return e
		}

		metrics := palette.Metrics
		if !allMetrics {
			m, e := palette.ParseMetric(viper.GetString("metric"))
			if e != nil {
				return e
			}
			metrics = []palette.Metric{m}
		}

		for _, m := range metrics {
			d, e := palette.Distance(a, b, m)
			if e != nil {
				return e
			}
			if allMetrics {
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %.4f\n", m, d)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", d)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(distanceCmd)

	distanceCmd.Flags().BoolVarP(&allMetrics, "all", "a", false, "print the distance under every metric")
}
