package errors

import (
	"bufio"
	"fmt"
	"strings"
)

const (
	Indent = "  "
	Bullet = "- "
)

type writer struct {
	config FormatConfig
	out    strings.Builder
}

func (w *writer) writeError(level int, err error, trace StackTrace) {
	if err == nil {
		panic("error cannot be nil")
	}

	// Prefer the trace of the error itself over the parent trace
	if v, ok := err.(stackTracer); ok { // nolint: errorlint
		trace = v.StackTrace()
	}

	// nolint: errorlint
	switch v := err.(type) {
	case nestedErrorGetter:
		w.writeNestedError(level, v.MainError(), v.WrappedErrors(), trace)
	case multiErrorGetter:
		w.writeErrorsList(level, v.WrappedErrors())
	case *withStack:
		w.writeError(level, v.error, trace)
	default:
		msg := formatMessage(v.Error(), trace, w.config)
		if w.config.WithUnwrap {
			if subErr := Unwrap(v); subErr != nil {
				w.write(fmt.Sprintf("%s (%T):", msg, err))
				w.writeNewLine()
				w.writeIndent(level)
				w.writeBullet()
				w.writeError(level+1, subErr, nil)
				return
			}
		}

		// Align all lines of a multi-line message
		scanner := bufio.NewScanner(strings.NewReader(msg))
		scanner.Scan()
		w.write(scanner.Text())
		for scanner.Scan() {
			w.writeNewLine()
			w.writeIndent(level)
			w.write(scanner.Text())
		}
	}
}

func (w *writer) writeNestedError(level int, main error, errs []error, trace StackTrace) {
	mainWriter := w.clone()
	mainWriter.writeError(level, main, trace)
	mainStr := mainWriter.String()

	if len(errs) == 0 {
		w.write(mainStr)
		return
	}

	mainStr = formatPrefix(mainStr)
	subWriter := w.clone()
	subWriter.writeErrorsList(level, errs)
	subStr := subWriter.String()

	// Break the line if there are more errors or the message is too long
	w.write(mainStr)
	if len(errs) > 1 || len(mainStr)+len(subStr) > 60 || strings.Contains(subStr, "\n") {
		w.writeNewLine()
		if len(errs) == 1 {
			w.writeIndent(level)
			w.writeBullet()
			w.writeError(level+1, errs[0], nil)
		} else {
			w.writeErrorsList(level, errs)
		}
	} else {
		w.write(" ")
		w.write(subStr)
	}
}

func (w *writer) writeErrorsList(level int, errs []error) {
	bullets := len(errs) > 1
	last := len(errs) - 1
	for i, err := range errs {
		if bullets {
			w.writeIndent(level)
			w.writeBullet()
		}
		w.writeError(level+1, err, nil)
		if i != last {
			w.writeNewLine()
		}
	}
}

func (w *writer) writeIndent(level int) {
	w.write(strings.Repeat(Indent, level))
}

func (w *writer) writeBullet() {
	w.write(Bullet)
}

func (w *writer) writeNewLine() {
	w.write("\n")
}

func (w *writer) write(s string) {
	_, _ = w.out.WriteString(s)
}

func (w *writer) String() string {
	return w.out.String()
}

func (w *writer) clone() *writer {
	return &writer{config: w.config}
}
