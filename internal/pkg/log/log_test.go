package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestDebugLogger_Levels(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	logger := NewDebugLogger()
	logger.Debug(ctx, "debug")
	logger.Info(ctx, "info")
	logger.Warnf(ctx, "warn %d", 1)
	logger.Errorf(ctx, "error %s", "msg")

	assert.Equal(t, "DEBUG  debug\nINFO  info\nWARN  warn 1\nERROR  error msg\n", logger.AllMessages())
	assert.Equal(t, "DEBUG  debug\n", logger.DebugMessages())
	assert.Equal(t, "INFO  info\n", logger.InfoMessages())
	assert.Equal(t, "WARN  warn 1\n", logger.WarnMessages())
	assert.Equal(t, "ERROR  error msg\n", logger.ErrorMessages())

	logger.Truncate()
	assert.Empty(t, logger.AllMessages())
}

func TestDebugLogger_WithComponent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	logger := NewDebugLogger()
	logger.
		WithComponent("remote").
		With(attribute.String("path", "/docs")).
		WithComponent("rename").
		Info(ctx, "message")

	assert.Equal(t, "INFO  message  {\"path\": \"/docs\", \"component\": \"remote.rename\"}\n", logger.AllMessages())
}

func TestCliLogger_VerboseFalse(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var stdout, stderr bytes.Buffer
	logger := NewCliLogger(&stdout, &stderr, LogFormatConsole, false)
	logger.Debug(ctx, "Debug msg")
	logger.Info(ctx, "Info msg")
	logger.Warn(ctx, "Warn msg")
	logger.Error(ctx, "Error msg")

	// info      -> stdout
	// warn, err -> stderr
	assert.Equal(t, "Info msg\n", stdout.String())
	assert.Equal(t, "Warn msg\nError msg\n", stderr.String())
}

func TestCliLogger_VerboseTrue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var stdout, stderr bytes.Buffer
	logger := NewCliLogger(&stdout, &stderr, LogFormatConsole, true)
	logger.Debug(ctx, "Debug msg")
	logger.Info(ctx, "Info msg")
	logger.Warn(ctx, "Warn msg")
	logger.Error(ctx, "Error msg")

	assert.Equal(t, "DEBUG\tDebug msg\nINFO\tInfo msg\n", stdout.String())
	assert.Equal(t, "WARN\tWarn msg\nERROR\tError msg\n", stderr.String())
}

func TestCliLogger_JSON(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	logger := NewCliLogger(&stdout, &stderr, LogFormatJSON, false)
	logger.Info(context.Background(), "Info msg")
	assert.Contains(t, stdout.String(), `"level":"info"`)
	assert.Contains(t, stdout.String(), `"message":"Info msg"`)
	assert.Empty(t, stderr.String())
}

func TestNewLogFormat(t *testing.T) {
	t.Parallel()
	format, err := NewLogFormat("json")
	assert.NoError(t, err)
	assert.Equal(t, LogFormatJSON, format)

	format, err = NewLogFormat("xml")
	if assert.Error(t, err) {
		assert.Equal(t, `log format must be "console" or "json", found "xml"`, err.Error())
	}
	assert.Equal(t, LogFormatConsole, format)
}

func TestSanitize(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `foo\nbar\nbaz`, Sanitize("foo\nbar\r\nbaz"))
}
