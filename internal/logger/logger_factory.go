package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"spv_wallet_summary/internal/config"
)

// NewAppLogger creates a new AppLogger for the configured backend, level and output format.
func NewAppLogger(cfg config.LoggerConfig) (AppLogger, error) {
	switch config.LogBackend(strings.ToLower(string(cfg.Backend))) {
	case config.LogBackendSlog, "":
		return newSlogLogger(cfg, os.Stdout)
	case config.LogBackendZap:
		return newZapLogger(cfg)
	default:
		return nil, fmt.Errorf("logger setup failed: unsupported backend: %s", cfg.Backend)
	}
}

func newSlogLogger(cfg config.LoggerConfig, out io.Writer) (AppLogger, error) {
	level, err := toSlogLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logger setup failed: %w", err)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler, err := toSlogHandler(cfg.Format, out, opts)
	if err != nil {
		return nil, fmt.Errorf("logger setup failed: %w", err)
	}

	slogLogger := slog.New(handler)
	slog.SetDefault(slogLogger)

	return newSlogAdapter(slogLogger, out), nil
}

func newZapLogger(cfg config.LoggerConfig) (AppLogger, error) {
	level, err := toZapLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logger setup failed: %w", err)
	}
	encoding, err := toZapEncoding(cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("logger setup failed: %w", err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.Encoding = encoding
	zapCfg.OutputPaths = []string{"stdout"}
	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	zapLogger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logger setup failed: %w", err)
	}
	return NewZapAdapter(zapLogger), nil
}

// toSlogLevel converts a config.LogLevel to a slog.Level.
func toSlogLevel(level config.LogLevel) (slog.Level, error) {
	switch config.LogLevel(strings.ToLower(string(level))) {
	case config.LogLevelDebug:
		return slog.LevelDebug, nil
	case config.LogLevelInfo:
		return slog.LevelInfo, nil
	case config.LogLevelWarn:
		return slog.LevelWarn, nil
	case config.LogLevelError:
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unsupported logger level: %s", level)
	}
}

// toZapLevel converts a config.LogLevel to a zapcore.Level.
func toZapLevel(level config.LogLevel) (zapcore.Level, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(strings.ToLower(string(level)))); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("unsupported logger level: %s", level)
	}
	return zapLevel, nil
}

// toSlogHandler creates a slog.Handler based on the config.LogFormat.
func toSlogHandler(format config.LogFormat, out io.Writer, opts *slog.HandlerOptions) (slog.Handler, error) {
	switch config.LogFormat(strings.ToLower(string(format))) {
	case config.LogFormatJSON:
		return slog.NewJSONHandler(out, opts), nil
	case config.LogFormatText:
		return slog.NewTextHandler(out, opts), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// toZapEncoding maps a config.LogFormat to a zap encoder name.
func toZapEncoding(format config.LogFormat) (string, error) {
	switch config.LogFormat(strings.ToLower(string(format))) {
	case config.LogFormatJSON:
		return "json", nil
	case config.LogFormatText:
		return "console", nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}
