// Package common holds the run configuration and small helpers shared
// across the sync tool.
package common

import (
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// Defaults for the zero-argument run. Channel and catalog path are
// compiled in; flags and environment variables override them.
const (
	DefaultChannelID   = "UC_x5XG1OV2P6uZZ5FSM9Ttw"
	DefaultCatalogPath = "videos.csv"
	DefaultLogLevel    = "info"
)

// Config holds everything one sync run needs.
type Config struct {
	ChannelID   string // channel whose uploads are synchronized
	CatalogPath string // location of the CSV catalog file
	APIKey      string // YouTube Data API key; without it every remote call fails
	LogLevel    string
}

// LoadConfig builds the configuration from defaults, an optional config
// file in the working directory, and environment variables. The API key is
// also read from YOUTUBE_API_KEY so the tool works with the variable the
// API console documentation suggests.
func LoadConfig() Config {
	v := viper.New()

	v.SetDefault("channel_id", DefaultChannelID)
	v.SetDefault("catalog_path", DefaultCatalogPath)
	v.SetDefault("log_level", DefaultLogLevel)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("YTCS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	_ = v.BindEnv("api_key", "YTCS_API_KEY", "YOUTUBE_API_KEY")

	// A missing config file is fine; env and defaults carry the run.
	_ = v.ReadInConfig()

	return Config{
		ChannelID:   v.GetString("channel_id"),
		CatalogPath: v.GetString("catalog_path"),
		APIKey:      v.GetString("api_key"),
		LogLevel:    v.GetString("log_level"),
	}
}

// GenerateSyncID generates a unique identifier for one sync run, used to
// correlate log lines.
func GenerateSyncID() string {
	return uuid.New().String()
}
