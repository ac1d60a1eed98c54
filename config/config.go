package config

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// Config holds the default paths and logging settings. Command line flags
// take precedence over it.
type Config struct {
	MetricsPath  string `env:"SEGMET_METRICS"`
	PositivePath string `env:"SEGMET_POSITIVE"`
	NegativePath string `env:"SEGMET_NEGATIVE"`
	VerbsPath    string `env:"SEGMET_VERBS"`
	WordsPath    string `env:"SEGMET_WORDS"`
	DocPath      string `env:"SEGMET_DOC_PATH"`
	DBPath       string `env:"SEGMET_DB"`

	LogLevel  string `env:"LOG_LEVEL" default:"warn"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", cfg.LogLevel)
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	return nil
}
