package logger

import (
	"go.uber.org/zap"
)

// zapAdapter is an implementation of AppLogger backed by a sugared zap logger.
type zapAdapter struct {
	adaptee *zap.SugaredLogger
}

var (
	_ AppLogger = (*zapAdapter)(nil)
	_ syncer    = (*zapAdapter)(nil)
)

// NewZapAdapter creates a new AppLogger that wraps the given *zap.Logger.
func NewZapAdapter(zapLogger *zap.Logger) AppLogger {
	if zapLogger == nil {
		zapLogger = zap.NewNop()
	}
	return &zapAdapter{adaptee: zapLogger.Sugar()}
}

// Debug logs a message at DebugLevel.
func (z *zapAdapter) Debug(msg string, args ...any) {
	z.adaptee.Debugw(msg, args...)
}

// Info logs a message at InfoLevel.
func (z *zapAdapter) Info(msg string, args ...any) {
	z.adaptee.Infow(msg, args...)
}

// Warn logs a message at WarnLevel.
func (z *zapAdapter) Warn(msg string, args ...any) {
	z.adaptee.Warnw(msg, args...)
}

// Error logs a message at ErrorLevel.
func (z *zapAdapter) Error(msg string, args ...any) {
	z.adaptee.Errorw(msg, args...)
}

// With returns a new AppLogger with the given arguments added to the context.
func (z *zapAdapter) With(args ...any) AppLogger {
	return &zapAdapter{adaptee: z.adaptee.With(args...)}
}

// Sync flushes buffered log entries.
func (z *zapAdapter) Sync() error {
	return z.adaptee.Sync()
}
