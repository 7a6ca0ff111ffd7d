package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platformkit/platformkit/pkg/logger"
)

func TestNewJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("service", "platformkit")),
	)

	log.Info("token refreshed", logger.UserID("user-123"), logger.TenantID("tenant-456"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "token refreshed", record["msg"])
	assert.Equal(t, "platformkit", record["service"])
	assert.Equal(t, "user-123", record["user_id"])
	assert.Equal(t, "tenant-456", record["tenant_id"])
}

func TestNewTextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatText),
		logger.WithLevel(slog.LevelDebug),
	)

	log.Debug("resolving role", logger.Role("manager"))
	assert.Contains(t, buf.String(), "role=manager")
}

func TestLevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))

	log.Info("dropped")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestInvalidFormatPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("yaml")))
	})
}

func TestErrorAttr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))
	log.Error("request failed", logger.Error(errors.New("boom")), logger.Status(502))

	out := buf.String()
	assert.True(t, strings.Contains(out, "boom"))
	assert.True(t, strings.Contains(out, "502"))
}
