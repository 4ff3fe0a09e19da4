package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/keboola/remote-files/internal/pkg/telemetry"
	"github.com/keboola/remote-files/internal/pkg/utils/errors"
)

func TestSpan_End(t *testing.T) {
	t.Parallel()
	tel := telemetry.NewForTest(t)
	ctx := context.Background()

	_, span1 := tel.Tracer().Start(ctx, "span.ok")
	span1.SetAttributes(attribute.String("path", "/docs"))
	var okErr error
	span1.End(&okErr)

	_, span2 := tel.Tracer().Start(ctx, "span.error")
	failErr := errors.New("some error")
	span2.End(&failErr)

	_, span3 := tel.Tracer().Start(ctx, "span.unset")
	span3.End(nil)

	spans := tel.Spans()
	require.Len(t, spans, 3)

	assert.Equal(t, "span.ok", spans[0].Name)
	assert.Equal(t, codes.Ok, spans[0].Status.Code)
	assert.Equal(t, []attribute.KeyValue{attribute.String("path", "/docs")}, spans[0].Attributes)

	assert.Equal(t, "span.error", spans[1].Name)
	assert.Equal(t, codes.Error, spans[1].Status.Code)
	assert.Equal(t, "some error", spans[1].Status.Description)
	require.Len(t, spans[1].Events, 1)
	assert.Equal(t, "exception", spans[1].Events[0].Name)

	assert.Equal(t, codes.Unset, spans[2].Status.Code)
}

func TestTracer_DisabledTracing(t *testing.T) {
	t.Parallel()
	tel := telemetry.NewForTest(t)

	ctx := telemetry.ContextWithDisabledTracing(context.Background())
	assert.True(t, telemetry.IsTracingDisabled(ctx))

	_, span := tel.Tracer().Start(ctx, "span.disabled")
	span.SetAttributes(attribute.Bool("ignored", true))
	span.End(nil)

	assert.Empty(t, tel.Spans())
}

func TestMeter_Counter(t *testing.T) {
	t.Parallel()
	tel := telemetry.NewForTest(t)
	ctx := context.Background()

	counter := tel.Meter().Counter("test.counter", "Test counter.", "{call}")
	counter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "ok")))
	counter.Add(ctx, 2, metric.WithAttributes(attribute.String("outcome", "ok")))
	counter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "noop")))

	points := tel.CounterDataPoints(t, "test.counter")
	require.Len(t, points, 2)

	values := make(map[string]int64)
	for _, p := range points {
		outcome, _ := p.Attributes.Value("outcome")
		values[outcome.AsString()] = p.Value
	}
	assert.Equal(t, map[string]int64{"ok": 3, "noop": 1}, values)
	assert.Nil(t, tel.CounterDataPoints(t, "missing.counter"))
}

func TestNewNop(t *testing.T) {
	t.Parallel()
	tel := telemetry.NewNop()

	_, span := tel.Tracer().Start(context.Background(), "nop")
	span.End(nil)
	tel.Meter().Counter("nop.counter", "", "").Add(context.Background(), 1)
	tel.Meter().Histogram("nop.histogram", "", "s").Record(context.Background(), 1.5)
}
