// nolint:forbidigo // allow usage of the "zap" package
package log

import (
	"bytes"
	"strings"
	"sync"

	"go.uber.org/zap/zapcore"
)

type debugLogger struct {
	*zapLogger
	buffer *syncBuffer
}

type syncBuffer struct {
	lock sync.Mutex
	buf  bytes.Buffer
}

// NewDebugLogger logs all levels to a memory buffer, each line is formatted as "LEVEL  message".
func NewDebugLogger() DebugLogger {
	buffer := &syncBuffer{}
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: "  ",
	})
	core := zapcore.NewCore(encoder, buffer, DebugLevel)
	return &debugLogger{zapLogger: loggerFromZapCore(core), buffer: buffer}
}

func (l *debugLogger) Truncate() {
	l.buffer.Reset()
}

func (l *debugLogger) AllMessages() string {
	return l.buffer.String()
}

func (l *debugLogger) DebugMessages() string {
	return l.messages("DEBUG")
}

func (l *debugLogger) InfoMessages() string {
	return l.messages("INFO")
}

func (l *debugLogger) WarnMessages() string {
	return l.messages("WARN")
}

func (l *debugLogger) ErrorMessages() string {
	return l.messages("ERROR")
}

func (l *debugLogger) messages(level string) string {
	var out strings.Builder
	for _, line := range strings.SplitAfter(l.buffer.String(), "\n") {
		if strings.HasPrefix(line, level+"  ") {
			out.WriteString(line)
		}
	}
	return out.String()
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Sync() error {
	return nil
}

func (b *syncBuffer) String() string {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Reset() {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.buf.Reset()
}
