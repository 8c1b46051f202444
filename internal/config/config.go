package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

type Config struct {
	FeedURL     string `yaml:"feed_url"`
	LogLevel    string `yaml:"log_level"`
	OpenBrowser *bool  `yaml:"open_browser,omitempty"`
}

// ShouldOpenBrowser defaults to true when the key is absent.
func (c *Config) ShouldOpenBrowser() bool {
	if c.OpenBrowser == nil {
		return true
	}
	return *c.OpenBrowser
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "swiftvn", "config.yaml")
}

func LogPath() string {
	return filepath.Join(xdg.StateHome, "swiftvn", "swiftvn.log")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Non-fatal: the embedded defaults still apply
			_ = writeDefaults(path)
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	mergeDefaults(&cfg, defaults)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func mergeDefaults(cfg, defaults *Config) {
	if cfg.FeedURL == "" {
		cfg.FeedURL = defaults.FeedURL
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	if cfg.OpenBrowser == nil {
		cfg.OpenBrowser = defaults.OpenBrowser
	}
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

// ValidateFeedURL accepts absolute http and https URLs only.
func ValidateFeedURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("feed_url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid feed_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("feed_url scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("feed_url %q has no host", raw)
	}
	return nil
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// ValidateLogLevel accepts debug, info, warn and error.
func ValidateLogLevel(level string) error {
	if !validLevels[level] {
		return fmt.Errorf("unknown log_level %q (valid: debug, info, warn, error)", level)
	}
	return nil
}

func validate(cfg *Config) error {
	if err := ValidateFeedURL(cfg.FeedURL); err != nil {
		return err
	}
	return ValidateLogLevel(cfg.LogLevel)
}
