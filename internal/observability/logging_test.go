package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/mazekit/internal/config"
)

func TestNewLogger_JSON(t *testing.T) {
	cfg := config.LoggingConfig{Level: "info", Format: "json"}
	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewLogger_Console(t *testing.T) {
	cfg := config.LoggingConfig{Level: "debug", Format: "console"}
	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	cfg := config.LoggingConfig{Level: "trace", Format: "json"}
	_, err := NewLogger(cfg)
	assert.Error(t, err)
}

func TestNewLogger_InvalidFormat(t *testing.T) {
	cfg := config.LoggingConfig{Level: "info", Format: "xml"}
	_, err := NewLogger(cfg)
	assert.Error(t, err)
}

func TestNewLogger_AllLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := config.LoggingConfig{Level: level, Format: "json"}
		logger, err := NewLogger(cfg)
		require.NoError(t, err, "level %q should be valid", level)
		assert.NotNil(t, logger)
	}
}

func TestNewWriterLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWriterLogger(config.LoggingConfig{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Info("make room", zap.Int("room", 1))
	logger.Warn("build door failed", zap.Int("from", 1), zap.Int("to", 3))
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.NotContains(t, out, "make room")
	assert.Contains(t, out, `"msg":"build door failed"`)
	assert.Contains(t, out, `"to":3`)
}

func TestNewWriterLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWriterLogger(config.LoggingConfig{Level: "debug", Format: "console"}, &buf)
	require.NoError(t, err)

	logger.Debug("build start")
	require.NoError(t, logger.Sync())
	assert.Contains(t, buf.String(), "build start")
	assert.Contains(t, buf.String(), "DEBUG")
}

func TestNewWriterLogger_Invalid(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewWriterLogger(config.LoggingConfig{Level: "trace", Format: "json"}, &buf)
	assert.Error(t, err)
	_, err = NewWriterLogger(config.LoggingConfig{Level: "info", Format: "xml"}, &buf)
	assert.Error(t, err)
}
