package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spv_wallet_summary/internal/config"
	"spv_wallet_summary/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: ":9090"
  read_timeout_seconds: 5
logger:
  level: debug
  backend: zap
summaries:
  max_rows: 200
  default_currency: BSV
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadTimeoutSeconds)
	assert.Equal(t, config.DefaultServerWriteTimeoutSeconds, cfg.Server.WriteTimeoutSeconds)
	assert.Equal(t, config.LogLevelDebug, cfg.Logger.Level)
	assert.Equal(t, config.DefaultLoggerFormat, cfg.Logger.Format)
	assert.Equal(t, config.LogBackendZap, cfg.Logger.Backend)
	assert.Equal(t, 200, cfg.Summaries.MaxRows)
	assert.Equal(t, "BSV", cfg.Summaries.DefaultCurrency)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_EmptyValuesFallBack(t *testing.T) {
	path := writeConfig(t, `
server:
  port: ""
summaries:
  default_currency: ""
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, config.DefaultSummariesCurrency, cfg.Summaries.DefaultCurrency)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [unterminated")

	_, err := config.LoadConfig(path)
	assert.Error(t, err)
}

func TestDefault_CurrencyIsBCH(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "BCH", cfg.Summaries.DefaultCurrency)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_CurrencyError(t *testing.T) {
	cfg := config.Default()
	cfg.Summaries.DefaultCurrency = "DOGE"
	assert.ErrorIs(t, cfg.Validate(), domain.ErrUnsupportedCurrency)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*config.Config) {}, wantErr: false},
		{name: "lowercase currency", mutate: func(c *config.Config) { c.Summaries.DefaultCurrency = "btc" }, wantErr: false},
		{name: "bare colon port", mutate: func(c *config.Config) { c.Server.Port = ":" }, wantErr: true},
		{name: "bad level", mutate: func(c *config.Config) { c.Logger.Level = "trace" }, wantErr: true},
		{name: "bad format", mutate: func(c *config.Config) { c.Logger.Format = "xml" }, wantErr: true},
		{name: "bad backend", mutate: func(c *config.Config) { c.Logger.Backend = "logrus" }, wantErr: true},
		{name: "negative timeout", mutate: func(c *config.Config) { c.Server.IdleTimeoutSeconds = -1 }, wantErr: true},
		{name: "negative max rows", mutate: func(c *config.Config) { c.Summaries.MaxRows = -5 }, wantErr: true},
		{name: "unknown currency", mutate: func(c *config.Config) { c.Summaries.DefaultCurrency = "ETH" }, wantErr: true},
		{name: "blank currency", mutate: func(c *config.Config) { c.Summaries.DefaultCurrency = "  " }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
