package errors

import (
	"fmt"
	"runtime"
	"strings"
)

type FormatConfig struct {
	// WithStack appends "[file:line]" of the place where the error was created.
	WithStack bool
	// WithUnwrap prints also wrapped errors and their types.
	WithUnwrap bool
}

type FormatOption func(c *FormatConfig)

func FormatWithStack() FormatOption {
	return func(c *FormatConfig) {
		c.WithStack = true
	}
}

func FormatWithUnwrap() FormatOption {
	return func(c *FormatConfig) {
		c.WithUnwrap = true
	}
}

// Format converts the error to a string, multi and nested errors are formatted as a bullet list.
func Format(err error, opts ...FormatOption) string {
	config := FormatConfig{}
	for _, o := range opts {
		o(&config)
	}
	w := &writer{config: config}
	w.writeError(0, err, nil)
	return w.String()
}

func formatMessage(msg string, trace StackTrace, config FormatConfig) string {
	if config.WithStack && len(trace) > 0 {
		// The whole trace is passed, so inlined frames are resolved correctly
		frame, _ := runtime.CallersFrames(trace).Next()
		if frame.File != "" {
			msg = fmt.Sprintf("%s [%s:%d]", msg, frame.File, frame.Line)
		}
	}
	return msg
}

func formatPrefix(prefix string) string {
	return strings.TrimRight(prefix, ".,:") + ":"
}
