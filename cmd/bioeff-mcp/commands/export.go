package commands

import (
	"fmt"
	"os"

	"bioeff-mcp/internal/catalog"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export-catalog",
	Short: "Write the loaded scenario catalog as JSON",
	Long: `Writes the active scenario catalog (embedded or CATALOG_PATH) in the
catalog file format, as a starting point for operator edits.`,
	Run: func(cmd *cobra.Command, args []string) {
		data, err := catalog.Dump(table)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to render catalog")
		}

		if exportOut == "" {
			fmt.Println(string(data))
			return
		}
		if err := os.WriteFile(exportOut, data, 0644); err != nil {
			log.Fatal().Err(err).Str("path", exportOut).Msg("Failed to write catalog")
		}
		log.Info().Str("path", exportOut).Int("entries", len(table)).Msg("Catalog exported")
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
