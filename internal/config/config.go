// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath           = "config.yaml"
	defaultMaxUploadBytes = 1 << 20
)

type Config struct {
	App struct {
		Name                   string `yaml:"name"`
		Environment            string `yaml:"environment"`
		Port                   int    `yaml:"port"`
		BaseURL                string `yaml:"base_url"`
		ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout_seconds"`
	} `yaml:"app"`

	Upload struct {
		MaxBytes int64 `yaml:"max_bytes"`
	} `yaml:"upload"`

	RateLimit struct {
		MaxPerWindow  int  `yaml:"max_per_window"`
		WindowSeconds int  `yaml:"window_seconds"`
		TrustProxy    bool `yaml:"trust_proxy"`
	} `yaml:"rate_limit"`

	Palette struct {
		DefaultPreset string `yaml:"default_preset"`
	} `yaml:"palette"`
}

// Default returns the configuration used when no YAML file exists.
func Default() *Config {
	var cfg Config
	cfg.App.Name = "Theme Studio"
	cfg.App.Environment = "development"
	cfg.App.Port = 8080
	cfg.App.ShutdownTimeoutSeconds = 30
	cfg.Upload.MaxBytes = defaultMaxUploadBytes
	cfg.RateLimit.MaxPerWindow = 30
	cfg.RateLimit.WindowSeconds = 60
	return &cfg
}

// Load loads both .env and yaml configuration. Values missing from the YAML
// file keep their defaults; a missing file yields Default(). PORT and
// ENVIRONMENT override the file.
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	cfg := Default()

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("error reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if value, ok := os.LookupEnv("PORT"); ok {
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("PORT must be an integer: %w", err)
		}
		c.App.Port = port
	}
	if value, ok := os.LookupEnv("ENVIRONMENT"); ok && value != "" {
		c.App.Environment = value
	}
	return nil
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("app port must be between 1 and 65535")
	}
	if c.App.ShutdownTimeoutSeconds <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}
	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("upload max_bytes must be positive")
	}
	if c.RateLimit.MaxPerWindow < 0 {
		return fmt.Errorf("rate_limit max_per_window must not be negative")
	}
	if c.RateLimit.MaxPerWindow > 0 && c.RateLimit.WindowSeconds <= 0 {
		return fmt.Errorf("rate_limit window_seconds is required when limiting is enabled")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.App.Port)
}

func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.App.ShutdownTimeoutSeconds) * time.Second
}

func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimit.WindowSeconds) * time.Second
}
