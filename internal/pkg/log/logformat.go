package log

import (
	"github.com/keboola/remote-files/internal/pkg/utils/errors"
)

type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// NewLogFormat creates LogFormat from string.
// On invalid value Console is used as default with an error.
func NewLogFormat(format string) (LogFormat, error) {
	switch v := LogFormat(format); v {
	case LogFormatConsole, LogFormatJSON:
		return v, nil
	default:
		return LogFormatConsole, errors.Errorf(`log format must be "%s" or "%s", found "%s"`, LogFormatConsole, LogFormatJSON, format)
	}
}
