package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/agentstation/cinemap/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	original := *logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	logging.SetDefault(logger)

	logging.Info().Msg("info message")
	logging.Warn().Msg("warning message")

	output := buf.String()
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warning message")
}

func TestTestLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	testLogger.Info().Str("movie", "Up").Msg("added")
	testLogger.Warn().Int("line", 3).Msg("skipped")

	assert.Equal(t, 2, testLogger.Count())
	assert.True(t, testLogger.Contains(`"movie":"Up"`))
	testLogger.AssertContains(t, `"line":3`)

	testLogger.Clear()
	assert.Equal(t, 0, testLogger.Count())
	assert.Empty(t, testLogger.Lines())
}

func TestCaptureLoggingForTest(t *testing.T) {
	captured := logging.CaptureLoggingForTest(t)

	logging.Error().Msg("captured error")

	assert.True(t, captured.Contains("captured error"))
}

func TestContextLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithPath(ctx, "myvideos.txt")
	ctx = logging.WithMovie(ctx, "Matrix")
	ctx = logging.WithOperation(ctx, "load")

	logging.FromContext(ctx).Info().Msg("context message")

	output := testLogger.Output()
	for _, want := range []string{`"path":"myvideos.txt"`, `"movie":"Matrix"`, `"operation":"load"`, "context message"} {
		assert.True(t, strings.Contains(output, want), "missing %s in %s", want, output)
	}
}

func TestNopLogger(t *testing.T) {
	logger := logging.NewNopLogger()
	assert.NotNil(t, logger)
	logger.Info().Msg("discarded")
}
