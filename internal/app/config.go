package app

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "SHOP"

// Config holds runtime configuration for the shop console.
type Config struct {
	CatalogPath string `envconfig:"CATALOG_PATH" default:"products.txt"`
	InvoiceDir  string `envconfig:"INVOICE_DIR" default:"."`

	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn"`
}

// LoadConfig reads configuration from SHOP_* environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.CatalogPath) == "" {
		return nil, errors.New("catalog path must be provided")
	}
	if strings.TrimSpace(cfg.InvoiceDir) == "" {
		cfg.InvoiceDir = "."
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.LogFormat)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Level parses LogLevel into a slog.Level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c == nil || c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
