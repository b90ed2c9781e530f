package sl_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/athena/internal/lib/logger/sl"
	"github.com/stretchr/testify/assert"
)

func TestErr(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{}))

	logger.Warn("wrapped", sl.Err(fmt.Errorf("failed to list employees: %w", assert.AnError)))

	assert.Contains(t, logBuf.String(), `error="failed to list employees: `+assert.AnError.Error()+`"`)
}

func TestErr_Nil(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{}))

	logger.Info("no error", sl.Err(nil))

	assert.Equal(t, slog.Attr{}, sl.Err(nil))
	assert.NotContains(t, logBuf.String(), "error=")
}
