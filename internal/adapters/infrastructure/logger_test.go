package infrastructure

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"steadyday.app/internal/ports"
)

func TestSlogLoggerAdapter_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerAdapter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	logger.Warn("Operation degraded", ports.F("operation", "psi"), ports.F("cause", "missing_data"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "Operation degraded", entry["msg"])
	assert.Equal(t, "psi", entry["operation"])
	assert.Equal(t, "missing_data", entry["cause"])
}

func TestSlogLoggerAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerAdapter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

	logger.Debug("hidden")
	assert.Zero(t, buf.Len())

	logger.Error("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestSlogLoggerAdapter_NilUsesDefault(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(previous)

	NewSlogLoggerAdapter(nil).Info("through default", ports.F("region", "west"))

	assert.Contains(t, buf.String(), "through default")
	assert.Contains(t, buf.String(), "region=west")
}
