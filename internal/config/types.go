package config

import (
	"errors"
	"fmt"
	"strings"

	"spv_wallet_summary/internal/core/domain"
)

// Default config values.
const (
	DefaultConfigFile                     = "config/config.yml"
	DefaultServerPort                     = ":8080"
	DefaultLoggerLevel                    = LogLevelInfo
	DefaultLoggerFormat                   = LogFormatJSON
	DefaultLoggerBackend                  = LogBackendSlog
	DefaultServerReadTimeoutSeconds       = 30
	DefaultServerWriteTimeoutSeconds      = 30
	DefaultServerIdleTimeoutSeconds       = 60
	DefaultServerReadHeaderTimeoutSeconds = 30
	DefaultSummariesMaxRows               = 0 // 0 means unlimited
	DefaultSummariesCurrency              = "BCH"
)

// LogLevel defines the type for logger levels.
type LogLevel string

// LogFormat defines the type for logger output formats.
type LogFormat string

// LogBackend selects the logging library behind the application logger.
type LogBackend string

// Defines the supported logger levels.
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Defines the supported logger output formats.
const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// Defines the supported logger backends.
const (
	LogBackendSlog LogBackend = "slog"
	LogBackendZap  LogBackend = "zap"
)

// Config holds all configuration for the application.
type Config struct {
	Server    ServerConfig  `yaml:"server"`
	Logger    LoggerConfig  `yaml:"logger"`
	Summaries SummaryConfig `yaml:"summaries"`
}

// ServerConfig holds all configuration related to the HTTP server.
type ServerConfig struct {
	Port                     string `yaml:"port"`
	ReadTimeoutSeconds       int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds      int    `yaml:"write_timeout_seconds"`
	IdleTimeoutSeconds       int    `yaml:"idle_timeout_seconds"`
	ReadHeaderTimeoutSeconds int    `yaml:"read_header_timeout_seconds"`
}

// LoggerConfig holds all configuration related to logging.
type LoggerConfig struct {
	Level   LogLevel   `yaml:"level"`
	Format  LogFormat  `yaml:"format"`
	Backend LogBackend `yaml:"backend"`
}

// SummaryConfig holds configuration for the transaction summary service.
type SummaryConfig struct {
	MaxRows         int    `yaml:"max_rows"`
	DefaultCurrency string `yaml:"default_currency"`
}

// Default returns a configuration populated with default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:                     DefaultServerPort,
			ReadTimeoutSeconds:       DefaultServerReadTimeoutSeconds,
			WriteTimeoutSeconds:      DefaultServerWriteTimeoutSeconds,
			IdleTimeoutSeconds:       DefaultServerIdleTimeoutSeconds,
			ReadHeaderTimeoutSeconds: DefaultServerReadHeaderTimeoutSeconds,
		},
		Logger: LoggerConfig{
			Level:   DefaultLoggerLevel,
			Format:  DefaultLoggerFormat,
			Backend: DefaultLoggerBackend,
		},
		Summaries: SummaryConfig{
			MaxRows:         DefaultSummariesMaxRows,
			DefaultCurrency: DefaultSummariesCurrency,
		},
	}
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	if c.Server.Port == "" || (strings.HasPrefix(c.Server.Port, ":") && len(c.Server.Port) == 1) {
		return errors.New("server port (config key: server.port) cannot be empty or just ':'")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(string(c.Logger.Level))] {
		return fmt.Errorf(
			"invalid logger level (config key: logger.level): '%s', must be one of: debug, info, warn, error",
			c.Logger.Level,
		)
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[strings.ToLower(string(c.Logger.Format))] {
		return fmt.Errorf(
			"invalid logger format (config key: logger.format): '%s', must be one of: json, text",
			c.Logger.Format,
		)
	}
	validBackends := map[string]bool{"slog": true, "zap": true}
	if !validBackends[strings.ToLower(string(c.Logger.Backend))] {
		return fmt.Errorf(
			"invalid logger backend (config key: logger.backend): '%s', must be one of: slog, zap",
			c.Logger.Backend,
		)
	}

	if c.Server.ReadTimeoutSeconds < 0 {
		return errors.New("server read timeout seconds (config key: server.read_timeout_seconds) cannot be negative")
	}
	if c.Server.WriteTimeoutSeconds < 0 {
		return errors.New("server write timeout seconds (config key: server.write_timeout_seconds) cannot be negative")
	}
	if c.Server.IdleTimeoutSeconds < 0 {
		return errors.New("server idle timeout seconds (config key: server.idle_timeout_seconds) cannot be negative")
	}
	if c.Server.ReadHeaderTimeoutSeconds < 0 {
		return errors.New(
			"server read header timeout seconds (config key: server.read_header_timeout_seconds) cannot be negative",
		)
	}

	if c.Summaries.MaxRows < 0 {
		return errors.New("max rows (config key: summaries.max_rows) cannot be negative")
	}
	if _, err := domain.ParseCurrency(c.Summaries.DefaultCurrency); err != nil {
		return fmt.Errorf("invalid default currency (config key: summaries.default_currency): %w", err)
	}

	return nil
}
