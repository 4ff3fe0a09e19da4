package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// ForTest records spans and metrics in memory.
type ForTest interface {
	Telemetry
	Spans() tracetest.SpanStubs
	Metrics(t *testing.T) []metricdata.Metrics
	// CounterDataPoints returns data points of the Int64 counter, nil if the counter has not been recorded.
	CounterDataPoints(t *testing.T, name string) []metricdata.DataPoint[int64]
	HistogramDataPoints(t *testing.T, name string) []metricdata.HistogramDataPoint[float64]
}

type forTest struct {
	Telemetry
	spans  *tracetest.SpanRecorder
	reader *sdkmetric.ManualReader
}

func NewForTest(t *testing.T) ForTest {
	t.Helper()

	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	t.Cleanup(func() {
		ctx := context.Background()
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
	})

	return &forTest{Telemetry: New(tp, mp), spans: spans, reader: reader}
}

func (v *forTest) Spans() tracetest.SpanStubs {
	return tracetest.SpanStubsFromReadOnlySpans(v.spans.Ended())
}

func (v *forTest) Metrics(t *testing.T) []metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, v.reader.Collect(context.Background(), &rm))

	var out []metricdata.Metrics
	for _, scope := range rm.ScopeMetrics {
		out = append(out, scope.Metrics...)
	}
	return out
}

func (v *forTest) CounterDataPoints(t *testing.T, name string) []metricdata.DataPoint[int64] {
	t.Helper()

	for _, m := range v.Metrics(t) {
		if m.Name != name {
			continue
		}
		sum, ok := m.Data.(metricdata.Sum[int64])
		require.True(t, ok, `metric "%s" is not an Int64 counter`, name)
		return sum.DataPoints
	}
	return nil
}

func (v *forTest) HistogramDataPoints(t *testing.T, name string) []metricdata.HistogramDataPoint[float64] {
	t.Helper()

	for _, m := range v.Metrics(t) {
		if m.Name != name {
			continue
		}
		histogram, ok := m.Data.(metricdata.Histogram[float64])
		require.True(t, ok, `metric "%s" is not a Float64 histogram`, name)
		return histogram.DataPoints
	}
	return nil
}
