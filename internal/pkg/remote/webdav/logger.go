package webdav

import (
	"context"
	"fmt"

	"github.com/umisama/go-regexpcache"

	"github.com/keboola/remote-files/internal/pkg/log"
)

const restyLoggerPrefix = "HTTP%s\t"

// restyLogger logs messages of the resty client as debug messages without secrets.
type restyLogger struct {
	logger log.Logger
}

func newRestyLogger(logger log.Logger) *restyLogger {
	return &restyLogger{logger: logger}
}

func (l *restyLogger) Debugf(format string, v ...any) {
	l.logWithoutSecrets("", format, v...)
}

func (l *restyLogger) Warnf(format string, v ...any) {
	l.logWithoutSecrets("-WARN", format, v...)
}

func (l *restyLogger) Errorf(format string, v ...any) {
	l.logWithoutSecrets("-ERROR", format, v...)
}

func (l *restyLogger) logWithoutSecrets(level string, format string, v ...any) {
	msg := fmt.Sprintf(restyLoggerPrefix, level) + fmt.Sprintf(format, v...)
	l.logger.Debug(context.Background(), hideSecrets(msg))
}

func hideSecrets(msg string) string {
	msg = regexpcache.MustCompile(`(?i)(authorization:?\s*(basic|bearer)?\s*)[^\s]+`).ReplaceAllString(msg, "$1*****")
	msg = regexpcache.MustCompile(`(?i)((token|password)\s*[:=]?\s*)[^\s&]+`).ReplaceAllString(msg, "$1*****")
	return msg
}
