package errors

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithStack_Nil(t *testing.T) {
	t.Parallel()
	assert.NoError(t, WithStack(nil))
}

func TestIs_ThroughWrappers(t *testing.T) {
	t.Parallel()
	err := Wrap(Errorf("request failed: %w", WithStack(context.DeadlineExceeded)), "cannot move")
	assert.True(t, Is(err, context.DeadlineExceeded))
	assert.Equal(t, "cannot move", err.Error())
}

func TestFormatWithStack(t *testing.T) {
	t.Parallel()
	err := New("some error")
	assert.Regexp(t, `^some error \[.+/errors_test\.go:\d+\]$`, Format(err, FormatWithStack()))
	assert.Equal(t, "some error", Format(err))
}

func TestFormatWithStack_CallSite(t *testing.T) {
	t.Parallel()

	for _, err := range []error{
		New("some error"),
		Errorf("some error: %w", New("cause")),
		Wrap(New("cause"), "some error"),
		WithStack(context.Canceled),
	} {
		var tracer stackTracer
		require.True(t, As(err, &tracer))
		frame, _ := runtime.CallersFrames(tracer.StackTrace()).Next()
		assert.True(t, strings.HasSuffix(frame.File, "/errors_test.go"), frame.File)

		// The location points to the test, not to the "errors" package of the standard library
		formatted := Format(err, FormatWithStack())
		assert.Contains(t, formatted, fmt.Sprintf("[%s:%d]", frame.File, frame.Line))
		assert.NotContains(t, formatted, "/src/errors/")
	}
}

func TestStackTrace_Frames(t *testing.T) {
	t.Parallel()
	err := New("some error")

	var tracer stackTracer
	if assert.True(t, As(err, &tracer)) {
		frames := tracer.StackTrace().Frames()
		assert.NotEmpty(t, frames)
		assert.Contains(t, frames[0], "TestStackTrace_Frames")
	}
}

func TestMultiError_ErrorOrNil(t *testing.T) {
	t.Parallel()
	errs := NewMultiError()
	errs.Append(nil)
	assert.NoError(t, errs.ErrorOrNil())

	errs.Append(New("foo"))
	other := NewMultiError()
	other.Append(New("bar"), New("baz"))
	errs.Append(other)
	assert.Equal(t, 3, errs.Len())
	assert.Equal(t, "- foo\n- bar\n- baz", errs.ErrorOrNil().Error())
}

func TestNestedError_LongMessage(t *testing.T) {
	t.Parallel()
	err := NewNestedError(
		New("cannot rename remote file"),
		New(`destination "/docs/archive/report-final-version.txt" already exists`),
	)
	expected := "cannot rename remote file:\n- destination \"/docs/archive/report-final-version.txt\" already exists"
	assert.Equal(t, expected, err.Error())
}
