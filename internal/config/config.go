package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/vadimtrunov/MovieSearch/internal/catalog"
	"github.com/vadimtrunov/MovieSearch/internal/omdb"
)

// Config represents the main application configuration
type Config struct {
	// Metadata provider
	OMDb OMDbConfig `yaml:"omdb"`

	// Search behavior
	Search SearchConfig `yaml:"search"`

	// Frontends
	Web      WebConfig       `yaml:"web"`
	Telegram *TelegramConfig `yaml:"telegram,omitempty"`

	// Application settings
	App AppConfig `yaml:"app"`
}

// OMDbConfig holds OMDb API configuration
type OMDbConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url,omitempty"`
}

// SearchConfig holds search defaults
type SearchConfig struct {
	FallbackTerm string `yaml:"fallback_term,omitempty"` // Searched when the query is empty
}

// WebConfig holds web frontend configuration
type WebConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	BotToken       string  `yaml:"bot_token"`
	AllowedUserIDs []int64 `yaml:"allowed_user_ids,omitempty"`
}

// AppConfig holds application-level settings
type AppConfig struct {
	LogLevel string `yaml:"log_level"`          // "debug", "info", "warn", "error"
	LogFile  string `yaml:"log_file,omitempty"` // Empty logs to stderr
}

const defaultWebAddr = ":8080"

var validLogLevels = []string{"debug", "info", "warn", "warning", "error"}

// Load loads configuration from a YAML file with environment variable overrides.
// A missing file is not an error so that environment-only setups work.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyEnvOverrides overrides config values with environment variables
func (c *Config) applyEnvOverrides() {
	// OMDb
	if v := os.Getenv("MOVIESEARCH_OMDB_API_KEY"); v != "" {
		c.OMDb.APIKey = v
	}
	if v := os.Getenv("MOVIESEARCH_OMDB_BASE_URL"); v != "" {
		c.OMDb.BaseURL = v
	}

	// Search
	if v := os.Getenv("MOVIESEARCH_FALLBACK_TERM"); v != "" {
		c.Search.FallbackTerm = v
	}

	// Web
	if v := os.Getenv("MOVIESEARCH_WEB_ADDR"); v != "" {
		c.Web.Addr = v
	}

	// Telegram; a token alone is enough to enable the bot
	if v := os.Getenv("MOVIESEARCH_TELEGRAM_BOT_TOKEN"); v != "" {
		if c.Telegram == nil {
			c.Telegram = &TelegramConfig{}
		}
		c.Telegram.BotToken = v
	}

	// App
	if v := os.Getenv("MOVIESEARCH_LOG_LEVEL"); v != "" {
		c.App.LogLevel = v
	}
	if v := os.Getenv("MOVIESEARCH_LOG_FILE"); v != "" {
		c.App.LogFile = v
	}
}

// Validate validates the configuration and fills in defaults
func (c *Config) Validate() error {
	if c.OMDb.APIKey == "" {
		return fmt.Errorf("omdb.api_key is required (or set MOVIESEARCH_OMDB_API_KEY)")
	}
	if c.OMDb.BaseURL != "" {
		if err := validateURL("omdb.base_url", c.OMDb.BaseURL); err != nil {
			return err
		}
	}

	if c.Telegram != nil && c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required when telegram is configured")
	}

	if c.App.LogLevel != "" && !isValidLogLevel(c.App.LogLevel) {
		return fmt.Errorf("app.log_level must be one of %s", strings.Join(validLogLevels, ", "))
	}

	c.setDefaults()
	return nil
}

func (c *Config) setDefaults() {
	if c.OMDb.BaseURL == "" {
		c.OMDb.BaseURL = omdb.DefaultBaseURL
	}
	if strings.TrimSpace(c.Search.FallbackTerm) == "" {
		c.Search.FallbackTerm = catalog.DefaultFallbackTerm
	}
	if c.Web.Addr == "" {
		c.Web.Addr = defaultWebAddr
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
}

// validateURL checks that raw is an absolute http(s) URL with a host.
func validateURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https", field)
	}
	if u.Host == "" {
		return fmt.Errorf("%s is missing host", field)
	}
	return nil
}

func isValidLogLevel(level string) bool {
	level = strings.ToLower(level)
	for _, l := range validLogLevels {
		if l == level {
			return true
		}
	}
	return false
}
