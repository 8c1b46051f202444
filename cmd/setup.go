package cmd

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/swiftvietnam/swiftvn/internal/config"
	"github.com/swiftvietnam/swiftvn/internal/feed"
	"github.com/swiftvietnam/swiftvn/internal/logging"
)

// loadConfig applies command-line overrides on top of the config file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagURL != "" {
		if err := config.ValidateFeedURL(flagURL); err != nil {
			return nil, fmt.Errorf("invalid --url: %w", err)
		}
		cfg.FeedURL = flagURL
	}
	if flagLogLevel != "" {
		if err := config.ValidateLogLevel(flagLogLevel); err != nil {
			return nil, fmt.Errorf("invalid --log-level: %w", err)
		}
		cfg.LogLevel = flagLogLevel
	}
	return cfg, nil
}

func newLoader(cfg *config.Config) feed.Loader {
	if flagDemo {
		return feed.StaticLoader{}
	}
	return feed.NewRSSLoader(cfg.FeedURL)
}

func newLogger(cfg *config.Config) (*log.Logger, io.Closer, error) {
	lg, closer, err := logging.New(config.LogPath(), cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("setting up logging: %w", err)
	}
	return lg, closer, nil
}
