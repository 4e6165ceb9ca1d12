package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"VIC_ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Log controls diagnostics written to stderr
	Log struct {
		// Level is the minimum level logged: debug, info, warn or error
		Level string `env:"VIC_LOG_LEVEL" env-default:"warn" yaml:"level"`
	} `yaml:"log"`

	// Metrics controls run metrics export
	Metrics struct {
		// File is where the Prometheus text dump is written after each run; empty disables it
		File string `env:"VIC_METRICS_FILE" yaml:"file"`
	} `yaml:"metrics"`
}

// Load returns a filled Config. When configPath is empty only environment
// variables and defaults are used; otherwise the file at configPath is read
// first and environment variables override it.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
