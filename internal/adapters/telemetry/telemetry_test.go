package telemetry_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/sectx/internal/adapters/telemetry"
	"go.trai.ch/sectx/internal/core/domain"
)

func TestOTelTracer_RecordsSpans(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := telemetry.NewOTelTracerWithProvider(tp, telemetry.InstrumentationName)

	ctx, parent := tracer.Start(context.Background(), "resolve")
	parent.SetAttribute("heading_path", "A / B")
	parent.SetAttribute("depth", 2)
	parent.SetAttribute("exact", false)
	parent.SetAttribute("files", []string{"/a", "/b"})
	parent.SetAttribute("variant", domain.VariantSummary)

	_, child := tracer.Start(ctx, "summarize")
	child.RecordError(errors.New("model unavailable"))
	child.RecordError(nil)
	child.End()
	parent.End()

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "summarize", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())

	assert.Equal(t, "resolve", spans[1].Name())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("heading_path", "A / B"),
		attribute.Int("depth", 2),
		attribute.Bool("exact", false),
		attribute.StringSlice("files", []string{"/a", "/b"}),
		attribute.String("variant", "summary"),
	}, spans[1].Attributes())
}

func TestSetup_ExportsToWriter(t *testing.T) {
	var buf bytes.Buffer
	shutdown, err := telemetry.Setup(&buf)
	require.NoError(t, err)

	tracer := telemetry.NewOTelTracer(telemetry.InstrumentationName)
	_, span := tracer.Start(context.Background(), "build")
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), `"Name": "build"`)
}

func TestNoOpTracer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	got, span := telemetry.NewNoOpTracer().Start(ctx, "anything")
	assert.Equal(t, ctx, got)
	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
}
