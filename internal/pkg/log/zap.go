// nolint:forbidigo // allow usage of the "zap" package
package log

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const componentKey = "component"

// zapLogger is default implementation of the Logger interface.
// It is wrapped zap.SugaredLogger.
type zapLogger struct {
	base      *zap.SugaredLogger
	sugar     *zap.SugaredLogger
	fields    []any
	component string
}

func loggerFromZapCore(core zapcore.Core) *zapLogger {
	base := zap.New(core).Sugar()
	return &zapLogger{base: base, sugar: base}
}

// clone builds the child from the base logger, so the component field is never duplicated.
func (l *zapLogger) clone(fields []any, component string) *zapLogger {
	all := append([]any{}, fields...)
	if component != "" {
		all = append(all, zap.String(componentKey, component))
	}
	return &zapLogger{base: l.base, sugar: l.base.With(all...), fields: fields, component: component}
}

func (l *zapLogger) Debug(_ context.Context, message string) {
	l.sugar.Debug(message)
}

func (l *zapLogger) Info(_ context.Context, message string) {
	l.sugar.Info(message)
}

func (l *zapLogger) Warn(_ context.Context, message string) {
	l.sugar.Warn(message)
}

func (l *zapLogger) Error(_ context.Context, message string) {
	l.sugar.Error(message)
}

func (l *zapLogger) Debugf(_ context.Context, template string, args ...any) {
	l.sugar.Debugf(template, args...)
}

func (l *zapLogger) Infof(_ context.Context, template string, args ...any) {
	l.sugar.Infof(template, args...)
}

func (l *zapLogger) Warnf(_ context.Context, template string, args ...any) {
	l.sugar.Warnf(template, args...)
}

func (l *zapLogger) Errorf(_ context.Context, template string, args ...any) {
	l.sugar.Errorf(template, args...)
}

func (l *zapLogger) Sync() error {
	return l.sugar.Sync()
}

func (l *zapLogger) With(attrs ...attribute.KeyValue) Logger {
	fields := append([]any{}, l.fields...)
	for _, attr := range attrs {
		fields = append(fields, zap.Any(string(attr.Key), attr.Value.AsInterface()))
	}
	return l.clone(fields, l.component)
}

func (l *zapLogger) WithComponent(component string) Logger {
	if l.component != "" {
		component = l.component + "." + component
	}
	return l.clone(l.fields, component)
}
