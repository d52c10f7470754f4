package commands

import (
	"fmt"

	"bioeff-mcp/internal/efficiency"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	fitPour   float64
	fitMean   float64
	fitLowerP float64
	fitLowerX float64
	fitUpperP float64
	fitUpperX float64
)

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit beta shape parameters from an elicited mean and two percentiles",
	Long: `Fits the recovery-efficiency beta distribution for one empirical case.
Elicited values are given before pour adjustment; they are normalized by the
pour fraction so the fitted parameters describe the fraction-agnostic
distribution suitable for the scenario catalog.`,
	Run: func(cmd *cobra.Command, args []string) {
		mean, err := efficiency.Normalize(fitMean, fitPour)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid pour fraction")
		}
		lowerX, err := efficiency.Normalize(fitLowerX, fitPour)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid pour fraction")
		}
		upperX, err := efficiency.Normalize(fitUpperX, fitPour)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid pour fraction")
		}

		params, err := efficiency.Fit(efficiency.FitInput{
			Mean:  mean,
			Lower: efficiency.ElicitedObservation{Percentile: fitLowerP, Value: lowerX},
			Upper: efficiency.ElicitedObservation{Percentile: fitUpperP, Value: upperX},
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Fit failed")
		}

		summary := efficiency.Summarize(params, fitLowerP, fitUpperP)
		fmt.Printf("alpha: %.12g\nbeta:  %.12g\n", params.Alpha, params.Beta)
		fmt.Printf("implied mean: %.6g  (%.6g, %.6g)\n",
			summary.Mean, summary.LowerQuantile, summary.UpperQuantile)
	},
}

func init() {
	fitCmd.Flags().Float64Var(&fitPour, "pour-fraction", 1.0, "pour fraction in (0,1]")
	fitCmd.Flags().Float64Var(&fitMean, "mean", 0, "elicited mean efficiency before adjustment")
	fitCmd.Flags().Float64Var(&fitLowerP, "lower-p", 0.025, "lower percentile")
	fitCmd.Flags().Float64Var(&fitLowerX, "lower-x", 0, "elicited efficiency at the lower percentile")
	fitCmd.Flags().Float64Var(&fitUpperP, "upper-p", 0.975, "upper percentile")
	fitCmd.Flags().Float64Var(&fitUpperX, "upper-x", 0, "elicited efficiency at the upper percentile")
	_ = fitCmd.MarkFlagRequired("mean")
	_ = fitCmd.MarkFlagRequired("lower-x")
	_ = fitCmd.MarkFlagRequired("upper-x")

	rootCmd.AddCommand(fitCmd)
}
