// Package config provides application configuration loaded from environment variables.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	API    APIConfig
	App    AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string `env:"PORT" envDefault:"8080"`
	ReadTimeout  int    `env:"SERVER_READ_TIMEOUT" envDefault:"15"`  // seconds
	WriteTimeout int    `env:"SERVER_WRITE_TIMEOUT" envDefault:"60"` // seconds
	IdleTimeout  int    `env:"SERVER_IDLE_TIMEOUT" envDefault:"60"`  // seconds
}

// APIConfig holds the settings of the DUERP REST API the frontend talks to.
type APIConfig struct {
	BaseURL string        `env:"DUERP_API_URL" envDefault:"http://localhost:5000/api"`
	Timeout time.Duration `env:"DUERP_API_TIMEOUT" envDefault:"30s"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Dev         bool   `env:"DEV" envDefault:"false"`
	Environment string `env:"GO_APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	DefaultLang string `env:"DEFAULT_LANG" envDefault:"fr"`
	Metrics     bool   `env:"METRICS_ENABLED" envDefault:"true"`
}

// LoadEnv loads the given dotenv files, skipping the ones that do not exist.
// It returns how many files were loaded.
func LoadEnv(files ...string) (int, error) {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if fi, err := os.Stat(f); err == nil && !fi.IsDir() {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	return len(existing), godotenv.Load(existing...)
}

// Load reads configuration from .env files and environment variables.
// It uses sensible defaults for local development.
func Load() (*Config, error) {
	if _, err := LoadEnv(".env", ".env.local"); err != nil {
		return nil, fmt.Errorf("config: load dotenv: %w", err)
	}
	return Parse()
}

// Parse reads configuration from the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: DUERP_API_URL must be an absolute URL, got %q", c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("config: DUERP_API_TIMEOUT must be positive, got %s", c.API.Timeout)
	}
	if c.App.DefaultLang != "fr" && c.App.DefaultLang != "en" {
		return fmt.Errorf("config: DEFAULT_LANG must be 'fr' or 'en', got %q", c.App.DefaultLang)
	}
	return nil
}

// Addr returns the listen address of the HTTP server.
func (s ServerConfig) Addr() string { return ":" + s.Port }
