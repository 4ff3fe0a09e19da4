// Package telemetry wraps OpenTelemetry tracing and metrics used by remote operations.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/metric"
	metricNoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	traceNoop "go.opentelemetry.io/otel/trace/noop"
)

const appName = "github.com/keboola/remote-files"

type ctxKey string

type Telemetry interface {
	TracerProvider() trace.TracerProvider
	MeterProvider() metric.MeterProvider
	Tracer() Tracer
	Meter() Meter
}

type Tracer interface {
	Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, Span)
}

type Meter interface {
	Counter(name, desc, unit string, opts ...metric.Int64CounterOption) metric.Int64Counter
	Histogram(name, desc, unit string, opts ...metric.Float64HistogramOption) metric.Float64Histogram
}

type telemetry struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	tracer         *tracer
	meter          *meter
}

type tracer struct {
	tracer trace.Tracer
}

type meter struct {
	meter metric.Meter
}

func New(tp trace.TracerProvider, mp metric.MeterProvider) Telemetry {
	if tp == nil {
		tp = traceNoop.NewTracerProvider()
	}
	if mp == nil {
		mp = metricNoop.NewMeterProvider()
	}
	return &telemetry{
		tracerProvider: tp,
		meterProvider:  mp,
		tracer:         &tracer{tracer: tp.Tracer(appName)},
		meter:          &meter{meter: mp.Meter(appName)},
	}
}

func NewNop() Telemetry {
	return New(nil, nil)
}

func (t *telemetry) TracerProvider() trace.TracerProvider {
	return t.tracerProvider
}

func (t *telemetry) MeterProvider() metric.MeterProvider {
	return t.meterProvider
}

func (t *telemetry) Tracer() Tracer {
	return t.tracer
}

func (t *telemetry) Meter() Meter {
	return t.meter
}

func (t *tracer) Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, Span) {
	if IsTracingDisabled(ctx) {
		return ctx, &span{span: trace.SpanFromContext(ctx), noop: true}
	}
	ctx, s := t.tracer.Start(ctx, spanName, opts...)
	return ctx, &span{span: s}
}
