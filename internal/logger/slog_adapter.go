package logger

import (
	"errors"
	"io"
	"log/slog"
	"syscall"
)

// slogAdapter is an implementation of AppLogger backed by a *slog.Logger.
// out is the handler's destination; it is flushed on Sync when it supports it.
type slogAdapter struct {
	adaptee *slog.Logger
	out     io.Writer
}

var (
	_ AppLogger = (*slogAdapter)(nil)
	_ syncer    = (*slogAdapter)(nil)
)

// NewSlogAdapter creates a new AppLogger that wraps the given *slog.Logger.
// A nil logger falls back to slog.Default.
func NewSlogAdapter(slogLogger *slog.Logger) AppLogger {
	return newSlogAdapter(slogLogger, nil)
}

func newSlogAdapter(slogLogger *slog.Logger, out io.Writer) *slogAdapter {
	if slogLogger == nil {
		slogLogger = slog.Default()
	}
	return &slogAdapter{adaptee: slogLogger, out: out}
}

func (s *slogAdapter) Debug(msg string, args ...any) {
	s.adaptee.Debug(msg, args...)
}

func (s *slogAdapter) Info(msg string, args ...any) {
	s.adaptee.Info(msg, args...)
}

func (s *slogAdapter) Warn(msg string, args ...any) {
	s.adaptee.Warn(msg, args...)
}

func (s *slogAdapter) Error(msg string, args ...any) {
	s.adaptee.Error(msg, args...)
}

// With returns a child logger writing to the same destination.
func (s *slogAdapter) With(args ...any) AppLogger {
	return &slogAdapter{adaptee: s.adaptee.With(args...), out: s.out}
}

// Sync flushes the destination if it is a file-like writer.
// Terminals and pipes reject fsync, which is not reported as a failure.
func (s *slogAdapter) Sync() error {
	f, ok := s.out.(syncer)
	if !ok {
		return nil
	}
	if err := f.Sync(); err != nil && !errors.Is(err, syscall.EINVAL) && !errors.Is(err, syscall.ENOTTY) {
		return err
	}
	return nil
}
