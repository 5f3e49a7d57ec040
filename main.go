package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/researchaccelerator-hub/youtube-catalog-sync/client"
	"github.com/researchaccelerator-hub/youtube-catalog-sync/common"
	"github.com/researchaccelerator-hub/youtube-catalog-sync/store"
	"github.com/researchaccelerator-hub/youtube-catalog-sync/sync"
)

var rootCmd = &cobra.Command{
	Use:   "youtube-catalog-sync",
	Short: "Synchronize a local CSV catalog with a YouTube channel's uploads",
	Long: `youtube-catalog-sync keeps a flat CSV file in step with one channel's
uploads on YouTube. Each run discovers videos not yet in the file,
refreshes view and like counts for the ones already there, and rewrites
the file sorted by publish date, newest first.

The API key comes from YTCS_API_KEY or YOUTUBE_API_KEY (a .env file in
the working directory is honored).`,
	RunE: runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg := common.LoadConfig()

	if ch, _ := cmd.Flags().GetString("channel"); ch != "" {
		cfg.ChannelID = ch
	}
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		cfg.CatalogPath = out
	}
	if key, _ := cmd.Flags().GetString("api-key"); key != "" {
		cfg.APIKey = key
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	ytClient, err := client.NewYouTubeCatalogClient(cfg.APIKey)
	if err != nil {
		return err
	}

	runner := sync.NewRunner(cfg, ytClient, store.NewCatalogStore(cfg.CatalogPath))
	return runner.Run(cmd.Context())
}

func init() {
	rootCmd.Flags().String("channel", "", "Channel ID or @handle to synchronize")
	rootCmd.Flags().String("out", "", "Path of the CSV catalog file")
	rootCmd.Flags().String("api-key", "", "YouTube Data API key")
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Pick up an API key from .env when present; absence is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Catalog sync failed")
		os.Exit(1)
	}
}
