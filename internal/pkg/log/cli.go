// nolint:forbidigo // allow usage of the "zap" package
package log

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewCliLogger logs info messages to stdout, warnings and errors to stderr.
// Debug messages and level prefixes are enabled by the verbose flag.
func NewCliLogger(stdout io.Writer, stderr io.Writer, format LogFormat, verbose bool) Logger {
	return loggerFromZapCore(zapcore.NewTee(
		stdoutCore(stdout, format, verbose),
		stderrCore(stderr, format, verbose),
	))
}

func stdoutCore(stdout io.Writer, format LogFormat, verbose bool) zapcore.Core {
	levels := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		if verbose {
			return l == DebugLevel || l == InfoLevel
		}
		return l == InfoLevel
	})
	return zapcore.NewCore(newEncoder(format, verbose), zapcore.AddSync(stdout), levels)
}

func stderrCore(stderr io.Writer, format LogFormat, verbose bool) zapcore.Core {
	return zapcore.NewCore(newEncoder(format, verbose), zapcore.AddSync(stderr), WarnLevel)
}

func newEncoder(format LogFormat, verbose bool) zapcore.Encoder {
	if format == LogFormatJSON {
		return zapcore.NewJSONEncoder(zapcore.EncoderConfig{
			TimeKey:     "time",
			LevelKey:    "level",
			MessageKey:  "message",
			EncodeLevel: zapcore.LowercaseLevelEncoder,
			EncodeTime:  zapcore.ISO8601TimeEncoder,
		})
	}

	// Prefix messages with level only when verbose enabled
	levelKey := ""
	if verbose {
		levelKey = "level"
	}
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         levelKey,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: "\t",
	})
}
