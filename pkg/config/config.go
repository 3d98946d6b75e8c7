package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultRankAPIBaseURL is the fallback base URL for the ranking/crawling
// backend when RANK_API_URL is not set.
const DefaultRankAPIBaseURL = "https://api.seobandwagon.com"

// Config holds all configuration for the seobw-home engine.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values for fields that support both.
// Secrets (session secret, database URL) must only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"3000"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	BaseURL  string `yaml:"base_url" env:"BASE_URL" env-default:""` // Auto-derived from Port if empty
	Version  string `yaml:"-"`                                      // Set at load time, not from config

	// SignInPath is where unauthenticated requests to protected pages are sent.
	SignInPath string `yaml:"sign_in_path" env:"SIGN_IN_PATH" env-default:"/signin"`

	// CookieDomain is the domain for session cookies (optional).
	// If empty, it will be auto-derived from BaseURL.
	CookieDomain string `yaml:"cookie_domain" env:"COOKIE_DOMAIN" env-default:""`

	// SessionSecret signs session cookies and bearer tokens.
	// Server will fail to start if this is not set.
	SessionSecret string `yaml:"-" env:"SESSION_SECRET"` // Secret - not in YAML

	// Database configuration (PostgreSQL)
	Database DatabaseConfig `yaml:"database"`

	// RankAPI is the external ranking/crawling backend.
	RankAPI RankAPIConfig `yaml:"rank_api"`
}

// DatabaseConfig holds PostgreSQL configuration.
// The store is owned by an external collaborator; this service only reads
// from it, and runs in a degraded mode when URL is empty.
type DatabaseConfig struct {
	URL                    string `yaml:"-" env:"DATABASE_URL"` // Secret - not in YAML
	MaxConnections         int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"25"`
	MaxConnLifetimeMinutes int    `yaml:"max_conn_lifetime_minutes" env:"PGMAX_CONN_LIFETIME_MINUTES" env-default:"60"`
	MaxConnIdleMinutes     int    `yaml:"max_conn_idle_minutes" env:"PGMAX_CONN_IDLE_MINUTES" env-default:"30"`
}

// Configured reports whether the backing store is provisioned.
func (c *DatabaseConfig) Configured() bool {
	return c.URL != ""
}

// RankAPIConfig holds the ranking backend endpoint configuration.
type RankAPIConfig struct {
	BaseURL string `yaml:"base_url" env:"RANK_API_URL" env-default:""`
}

// Load reads configuration from config.yaml with environment variable overrides.
// The config file is optional; when absent, configuration comes entirely from
// the environment. The version parameter is injected at build time.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET must be set")
	}

	if cfg.RankAPI.BaseURL == "" {
		cfg.RankAPI.BaseURL = DefaultRankAPIBaseURL
	}

	// Auto-derive BaseURL from Port if not explicitly set
	if cfg.BaseURL == "" {
		cfg.BaseURL = (&url.URL{
			Scheme: "http",
			Host:   "localhost:" + cfg.Port,
		}).String()
	}

	return cfg, nil
}
