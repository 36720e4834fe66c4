package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrMissingAPIKey means no provider credential was found in the config
// file or the environment.
var ErrMissingAPIKey = errors.New("provider.api_key is required (set ALPHA_VANTAGE_API_KEY)")

// Config holds all application configuration.
type Config struct {
	Provider struct {
		Name           string `yaml:"name"`
		BaseURL        string `yaml:"base_url"`
		APIKey         string `yaml:"api_key"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"provider"`
	Report struct {
		Symbol string `yaml:"symbol"`
	} `yaml:"report"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is fine; everything has an override or a
// default except the API key.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("STOCKVOL_PROVIDER"); v != "" {
		cfg.Provider.Name = v
	}
	if v := os.Getenv("ALPHA_VANTAGE_API_KEY"); v != "" {
		cfg.Provider.APIKey = v
	}
	if v := os.Getenv("STOCKVOL_BASE_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v := os.Getenv("STOCKVOL_SYMBOL"); v != "" {
		cfg.Report.Symbol = v
	}
	if v := os.Getenv("STOCKVOL_CRON"); v != "" {
		cfg.Schedule.Cron = v
	}

	// Defaults
	if cfg.Provider.Name == "" {
		cfg.Provider.Name = "alphavantage"
	}
	if cfg.Provider.TimeoutSeconds == 0 {
		cfg.Provider.TimeoutSeconds = 10
	}
	if cfg.Schedule.Cron == "" {
		cfg.Schedule.Cron = "0 30 17 * * 1-5"
	}

	return cfg, nil
}

// ProviderTimeout returns the HTTP timeout as a duration.
func (c *Config) ProviderTimeout() time.Duration {
	return time.Duration(c.Provider.TimeoutSeconds) * time.Second
}

// Validate checks that all required fields are set. Only Alpha Vantage
// needs a credential; the Yahoo chart endpoint is public.
func (c *Config) Validate() error {
	switch c.Provider.Name {
	case "alphavantage":
		if c.Provider.APIKey == "" {
			return ErrMissingAPIKey
		}
	case "yahoo":
	default:
		return fmt.Errorf("unknown provider %q (want alphavantage or yahoo)", c.Provider.Name)
	}
	if c.Provider.TimeoutSeconds <= 0 {
		return fmt.Errorf("provider.timeout_seconds must be positive")
	}
	if c.Schedule.Cron == "" {
		return fmt.Errorf("schedule.cron is required")
	}
	return nil
}
