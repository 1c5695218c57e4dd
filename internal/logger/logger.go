// Package logger defines the application logging interface and its slog and zap backends.
package logger

// AppLogger defines the contract for logging in the application.
type AppLogger interface {
	// Debug logs a message at DebugLevel.
	Debug(msg string, args ...any)

	// Info logs a message at InfoLevel.
	Info(msg string, args ...any)

	// Warn logs a message at WarnLevel.
	Warn(msg string, args ...any)

	// Error logs a message at ErrorLevel.
	Error(msg string, args ...any)

	// With returns a new logger with the given key-value pairs added to its context.
	With(args ...any) AppLogger
}

// syncer is implemented by backends that buffer entries.
type syncer interface {
	Sync() error
}

// Sync flushes the logger if its backend buffers entries.
func Sync(l AppLogger) error {
	if s, ok := l.(syncer); ok {
		return s.Sync()
	}
	return nil
}
