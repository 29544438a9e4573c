package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/srgjo27/seat_selection/internal/platform/logging"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("verbose"))
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, "warn")

	logger.Info("hidden")
	logger.Warn("shown", "seat_id", "A-1-01")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "seat_id=A-1-01")
}
