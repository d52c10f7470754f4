package commands

import (
	"bioeff-mcp/internal/catalog"
	"bioeff-mcp/internal/config"
	"bioeff-mcp/internal/efficiency"
	"bioeff-mcp/internal/logging"
	"bioeff-mcp/internal/mcp"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig
	table   efficiency.Table
)

var rootCmd = &cobra.Command{
	Use:   "bioeff-mcp",
	Short: "Bioeff-MCP is a recovery-efficiency MCP server for bioburden sampling",
	Long: `A specialized MCP server that fits and resolves recovery-efficiency beta
distributions for bioburden sampling scenarios (sampling device, device type,
processing technique) and runs Monte-Carlo bioburden posterior estimation.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		// Load configuration
		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		// Load the scenario catalog: operator-supplied file or the embedded
		// published table.
		if cfg.CatalogPath != "" {
			table, err = catalog.Load(cfg.CatalogPath)
			if err != nil {
				log.Fatal().Err(err).Str("path", cfg.CatalogPath).Msg("Failed to load scenario catalog")
			}
			log.Info().Str("path", cfg.CatalogPath).Int("entries", len(table)).Msg("Loaded scenario catalog")
		} else {
			table = catalog.Default()
		}

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("Bioeff-MCP starting")
	},
	Run: func(cmd *cobra.Command, args []string) {
		log.Info().Msg("MCP Server starting Stdio loop")
		server := mcp.NewServer(table)
		if err := server.Serve(); err != nil {
			log.Fatal().Err(err).Msg("MCP server terminated")
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
