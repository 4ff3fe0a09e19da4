package telemetry

import "go.opentelemetry.io/otel/metric"

func (m *meter) Counter(name, desc, unit string, opts ...metric.Int64CounterOption) metric.Int64Counter {
	opts = append([]metric.Int64CounterOption{metric.WithDescription(desc), metric.WithUnit(unit)}, opts...)
	return mustInstrument(m.meter.Int64Counter(name, opts...))
}

func (m *meter) Histogram(name, desc, unit string, opts ...metric.Float64HistogramOption) metric.Float64Histogram {
	opts = append([]metric.Float64HistogramOption{metric.WithDescription(desc), metric.WithUnit(unit)}, opts...)
	return mustInstrument(m.meter.Float64Histogram(name, opts...))
}

func mustInstrument[T any](instrument T, err error) T {
	if err != nil {
		panic(err)
	}
	return instrument
}
