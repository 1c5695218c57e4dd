package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"spv_wallet_summary/internal/config"
)

func TestNewAppLogger_Backends(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LoggerConfig
		wantErr bool
	}{
		{name: "slog json", cfg: config.LoggerConfig{Level: "info", Format: "json", Backend: "slog"}},
		{name: "slog text default backend", cfg: config.LoggerConfig{Level: "debug", Format: "text"}},
		{name: "zap json", cfg: config.LoggerConfig{Level: "warn", Format: "json", Backend: "zap"}},
		{name: "zap console", cfg: config.LoggerConfig{Level: "ERROR", Format: "text", Backend: "ZAP"}},
		{name: "unknown backend", cfg: config.LoggerConfig{Level: "info", Format: "json", Backend: "logrus"}, wantErr: true},
		{name: "bad level", cfg: config.LoggerConfig{Level: "loud", Format: "json", Backend: "slog"}, wantErr: true},
		{name: "bad zap format", cfg: config.LoggerConfig{Level: "info", Format: "xml", Backend: "zap"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewAppLogger(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, l)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestSlogAdapter_WithAddsContext(t *testing.T) {
	var buf bytes.Buffer
	l, err := newSlogLogger(config.LoggerConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	l.With("component", "summary-service").Info("recorded", "txid", "ab")
	l.Debug("filtered out")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "recorded", entry["msg"])
	assert.Equal(t, "summary-service", entry["component"])
	assert.Equal(t, "ab", entry["txid"])
}

func TestZapAdapter_WithAddsContext(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewZapAdapter(zap.New(core))

	child := l.With("component", "summary-service")
	child.Info("recorded", "txid", "ab")
	child.Debug("filtered out")
	l.Error("failed", "error", "boom")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "recorded", entries[0].Message)
	assert.Equal(t, map[string]any{"component": "summary-service", "txid": "ab"}, entries[0].ContextMap())
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestSync(t *testing.T) {
	slogLogger, err := newSlogLogger(config.LoggerConfig{Level: "info", Format: "text"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.NoError(t, Sync(slogLogger))

	core, _ := observer.New(zapcore.InfoLevel)
	assert.NoError(t, Sync(NewZapAdapter(zap.New(core))))
}

type syncWriter struct {
	io.Writer
	syncs   int
	syncErr error
}

func (w *syncWriter) Sync() error {
	w.syncs++
	return w.syncErr
}

func TestSlogAdapter_SyncFlushesDestination(t *testing.T) {
	w := &syncWriter{Writer: io.Discard}
	l, err := newSlogLogger(config.LoggerConfig{Level: "info", Format: "json"}, w)
	require.NoError(t, err)

	require.NoError(t, Sync(l))
	require.NoError(t, Sync(l.With("component", "summary-service")))
	assert.Equal(t, 2, w.syncs)
}

func TestSlogAdapter_SyncErrors(t *testing.T) {
	tests := []struct {
		name    string
		syncErr error
		wantErr bool
	}{
		{name: "pipe rejects fsync", syncErr: fmt.Errorf("sync /dev/stdout: %w", syscall.EINVAL)},
		{name: "terminal rejects fsync", syncErr: syscall.ENOTTY},
		{name: "disk error", syncErr: errors.New("input/output error"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newSlogAdapter(slog.New(slog.NewTextHandler(io.Discard, nil)), &syncWriter{Writer: io.Discard, syncErr: tt.syncErr})
			err := Sync(l)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewSlogAdapter_NilFallsBackToDefault(t *testing.T) {
	l := NewSlogAdapter(nil)
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Debug("discarded") })
	assert.NoError(t, Sync(l))
}
