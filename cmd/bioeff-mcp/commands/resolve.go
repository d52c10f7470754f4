package commands

import (
	"fmt"

	"bioeff-mcp/internal/catalog"
	"bioeff-mcp/internal/efficiency"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <device> <device-type> <technique>",
	Short: "Resolve the recovery-efficiency distribution for a sampling scenario",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		device, deviceType, technique := args[0], args[1], args[2]
		if !catalog.KnownScenario(device, deviceType, technique) {
			log.Warn().
				Str("device", device).
				Str("deviceType", deviceType).
				Str("technique", technique).
				Msg("Scenario outside the published enumeration; trying the loaded catalog anyway")
		}

		key := catalog.Tag(device, deviceType, technique)
		params, fraction, err := efficiency.NewResolver(table).Resolve(key)
		if err != nil {
			log.Fatal().Err(err).Msg("Resolution failed")
		}

		summary := efficiency.Summarize(params, 0.025, 0.975)
		scenarioMean, err := efficiency.Denormalize(summary.Mean, fraction)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid catalog fraction")
		}

		fmt.Printf("scenario: %s\n", key)
		fmt.Printf("alpha: %.12g\nbeta:  %.12g\n", params.Alpha, params.Beta)
		fmt.Printf("default pour fraction: %g\n", fraction)
		fmt.Printf("normalized mean: %.6g  (%.6g, %.6g)\n",
			summary.Mean, summary.LowerQuantile, summary.UpperQuantile)
		fmt.Printf("scenario mean: %.6g\n", scenarioMean)
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
