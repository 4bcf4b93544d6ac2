package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validateCase struct {
	name    string
	modify  func(*Config)
	wantErr string
}

// validConfig returns a minimal Config that passes Validate().
func validConfig() Config {
	return Config{
		OMDb: OMDbConfig{APIKey: "omdb-key"},
		App:  AppConfig{LogLevel: "info"},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []validateCase{
		{"valid_minimal", nil, ""},
		{"missing_api_key", func(c *Config) { c.OMDb.APIKey = "" }, "omdb.api_key is required"},
		{"base_url_bad_scheme", func(c *Config) { c.OMDb.BaseURL = "ftp://omdb" }, "must use http or https"},
		{"base_url_no_host", func(c *Config) { c.OMDb.BaseURL = "http://" }, "missing host"},
		{"base_url_custom", func(c *Config) { c.OMDb.BaseURL = "http://localhost:9999/" }, ""},
		{"telegram_no_token", func(c *Config) { c.Telegram = &TelegramConfig{} }, "telegram.bot_token is required"},
		{"telegram_ok", func(c *Config) { c.Telegram = &TelegramConfig{BotToken: "1:A"} }, ""},
		{"invalid_log_level", func(c *Config) { c.App.LogLevel = "trace" }, "app.log_level must be one of"},
		{"warning_accepted", func(c *Config) { c.App.LogLevel = "WARNING" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			if tt.modify != nil {
				tt.modify(&cfg)
			}
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_Defaults(t *testing.T) {
	t.Parallel()
	cfg := Config{OMDb: OMDbConfig{APIKey: "k"}}

	require.NoError(t, cfg.Validate())

	assert.Equal(t, "https://www.omdbapi.com/", cfg.OMDb.BaseURL)
	assert.Equal(t, "Avengers", cfg.Search.FallbackTerm)
	assert.Equal(t, ":8080", cfg.Web.Addr)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Nil(t, cfg.Telegram)
}

const fullYAML = `
omdb:
  api_key: "file-key"
  base_url: "http://omdb.local/"
search:
  fallback_term: "Star Wars"
web:
  addr: "127.0.0.1:9000"
telegram:
  bot_token: "123:ABC"
  allowed_user_ids: [10, 20]
app:
  log_level: "debug"
  log_file: "/tmp/moviesearch.log"
`

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "moviesearch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Full(t *testing.T) {
	cfg, err := Load(writeTempYAML(t, fullYAML))
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.OMDb.APIKey)
	assert.Equal(t, "http://omdb.local/", cfg.OMDb.BaseURL)
	assert.Equal(t, "Star Wars", cfg.Search.FallbackTerm)
	assert.Equal(t, "127.0.0.1:9000", cfg.Web.Addr)
	require.NotNil(t, cfg.Telegram)
	assert.Equal(t, "123:ABC", cfg.Telegram.BotToken)
	assert.Equal(t, []int64{10, 20}, cfg.Telegram.AllowedUserIDs)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "/tmp/moviesearch.log", cfg.App.LogFile)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("invalid_yaml", func(t *testing.T) {
		_, err := Load(writeTempYAML(t, "omdb: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("missing_key", func(t *testing.T) {
		_, err := Load(writeTempYAML(t, "app:\n  log_level: info\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "omdb.api_key is required")
	})

	t.Run("path_is_directory", func(t *testing.T) {
		_, err := Load(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})
}

func TestLoad_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("MOVIESEARCH_OMDB_API_KEY", "env-key")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.OMDb.APIKey)
	assert.Equal(t, "https://www.omdbapi.com/", cfg.OMDb.BaseURL)
}

func TestEnvOverrides(t *testing.T) {
	path := writeTempYAML(t, fullYAML)
	t.Setenv("MOVIESEARCH_OMDB_API_KEY", "env-key")
	t.Setenv("MOVIESEARCH_OMDB_BASE_URL", "https://mirror.example/")
	t.Setenv("MOVIESEARCH_FALLBACK_TERM", "Alien")
	t.Setenv("MOVIESEARCH_WEB_ADDR", ":7070")
	t.Setenv("MOVIESEARCH_TELEGRAM_BOT_TOKEN", "999:ENV")
	t.Setenv("MOVIESEARCH_LOG_LEVEL", "warn")
	t.Setenv("MOVIESEARCH_LOG_FILE", "/var/log/ms.log")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.OMDb.APIKey)
	assert.Equal(t, "https://mirror.example/", cfg.OMDb.BaseURL)
	assert.Equal(t, "Alien", cfg.Search.FallbackTerm)
	assert.Equal(t, ":7070", cfg.Web.Addr)
	assert.Equal(t, "999:ENV", cfg.Telegram.BotToken)
	assert.Equal(t, []int64{10, 20}, cfg.Telegram.AllowedUserIDs)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "/var/log/ms.log", cfg.App.LogFile)
}

func TestEnvOverrides_TelegramCreatedFromEnv(t *testing.T) {
	path := writeTempYAML(t, "omdb:\n  api_key: k\n")
	t.Setenv("MOVIESEARCH_TELEGRAM_BOT_TOKEN", "1:TOKEN")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Telegram)
	assert.Equal(t, "1:TOKEN", cfg.Telegram.BotToken)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestNewLogger_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn")
	defer slog.SetDefault(DiscardLogger())

	logger.Info("hidden")
	logger.Warn("shown", slog.String("k", "v"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.Contains(out, `"msg":"shown"`), out)
	assert.Contains(t, out, `"k":"v"`)
}

func TestSetupLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	defer slog.SetDefault(DiscardLogger())

	logger, err := SetupLogger("info", path)
	require.NoError(t, err)
	logger.Info("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
