package commands

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecureHandler(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	logger := slog.New(NewSecureHandler(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug})))
	logger.Debug("request",
		slog.String("api_key", "secret-value"),
		slog.String("url", "https://example.com/regions?api_key=secret-value&page=1"),
		slog.Group("request", slog.String("token", "secret-value")),
		slog.String("path", "/regions/south"),
	)

	logged := out.String()
	assert.NotContains(t, logged, "secret-value")
	assert.Contains(t, logged, "api_key=***&page=1")
	assert.Contains(t, logged, "/regions/south")
}

func TestSecureHandler_WithAttrs(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	logger := slog.New(NewSecureHandler(slog.NewTextHandler(&out, nil))).With("password", "hunter2")
	logger.Info("hello")

	assert.NotContains(t, out.String(), "hunter2")
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("quiet logger drops debug", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		NewLogger(&out, false).Debug("HTTP Request", map[string]interface{}{"path": "/regions"})
		assert.Empty(t, out.String())
	})

	t.Run("verbose logger writes debug with masked fields", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		NewLogger(&out, true).Debug("HTTP Request", map[string]interface{}{
			"path":    "/regions",
			"api_key": "abc123",
		})
		assert.Contains(t, out.String(), "HTTP Request")
		assert.Contains(t, out.String(), "path=/regions")
		assert.NotContains(t, out.String(), "abc123")
	})

	t.Run("warnings always written", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		NewLogger(&out, false).Warn("slow", nil)
		assert.Contains(t, out.String(), "slow")
	})
}
