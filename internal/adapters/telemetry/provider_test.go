package telemetry_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/crab/internal/adapters/telemetry"
	"go.trai.ch/crab/internal/core/ports"
	"go.trai.ch/crab/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func setupRecorder() (*tracetest.SpanRecorder, *trace.TracerProvider) {
	sr := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	return sr, tp
}

func TestOTelTracer_EmitPlan(t *testing.T) {
	sr, tp := setupRecorder()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRenderer := mocks.NewMockRenderer(ctrl)
	mockRenderer.EXPECT().OnPlanEmit([]string{"app/Cargo.toml", "lib/Cargo.toml"}).Times(1)

	tracer := telemetry.NewOTelTracer("test-tracer").WithRenderer(mockRenderer)
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	ctx, span := tp.Tracer("test").Start(context.Background(), "root")
	tracer.EmitPlan(ctx, []string{"app/Cargo.toml", "lib/Cargo.toml"})
	span.End()

	_ = tp.ForceFlush(ctx)
	spans := sr.Ended()
	require.Len(t, spans, 1)

	events := spans[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "plan_emitted", events[0].Name)
}

func TestOTelTracer_EmitPlan_NoRenderer(t *testing.T) {
	_, tp := setupRecorder()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := telemetry.NewOTelTracer("test-tracer")
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	// Must not panic without a renderer or a recording span.
	tracer.EmitPlan(context.Background(), []string{"app/Cargo.toml"})
}

func TestOTelTracer_StartAppliesAttributes(t *testing.T) {
	sr, tp := setupRecorder()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := telemetry.NewOTelTracer("test-tracer")
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	ctx, span := tracer.Start(context.Background(), "app/Cargo.toml",
		ports.WithAttribute("asset", "/abs/app/Cargo.toml"),
	)
	span.End()

	_ = tp.ForceFlush(ctx)
	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "app/Cargo.toml", spans[0].Name())
}

func TestOTelSpan_SetAttribute(t *testing.T) {
	sr, tp := setupRecorder()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := telemetry.NewOTelTracer("test-tracer")
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	ctx, span := tracer.Start(context.Background(), "attr-test")

	span.SetAttribute("str", "val")
	span.SetAttribute("int", 123)
	span.SetAttribute("int64", int64(456))
	span.SetAttribute("float", 3.14)
	span.SetAttribute("bool", true)
	span.SetAttribute("slice", []string{"a", "b"})
	span.SetAttribute("unknown", struct{}{})

	span.End()

	_ = tp.ForceFlush(ctx)
	spans := sr.Ended()
	require.Len(t, spans, 1)

	attrMap := make(map[string]any)
	for _, a := range spans[0].Attributes() {
		switch a.Value.Type() {
		case attribute.STRING:
			attrMap[string(a.Key)] = a.Value.AsString()
		case attribute.INT64:
			attrMap[string(a.Key)] = a.Value.AsInt64()
		case attribute.FLOAT64:
			attrMap[string(a.Key)] = a.Value.AsFloat64()
		case attribute.BOOL:
			attrMap[string(a.Key)] = a.Value.AsBool()
		case attribute.STRINGSLICE:
			attrMap[string(a.Key)] = a.Value.AsStringSlice()
		}
	}

	assert.Equal(t, "val", attrMap["str"])
	assert.Equal(t, int64(123), attrMap["int"])
	assert.Equal(t, int64(456), attrMap["int64"])
	assert.InEpsilon(t, 3.14, attrMap["float"], 0.001)
	assert.Equal(t, true, attrMap["bool"])
	assert.Equal(t, []string{"a", "b"}, attrMap["slice"])
	assert.Equal(t, "{}", attrMap["unknown"])
}

func TestOTelSpan_Write_NoRenderer(t *testing.T) {
	sr, tp := setupRecorder()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := telemetry.NewOTelTracer("test-tracer")
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	ctx, span := tracer.Start(context.Background(), "log-test")
	n, err := span.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	span.End()

	_ = tp.ForceFlush(ctx)
	spans := sr.Ended()
	require.Len(t, spans, 1)

	events := spans[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "log", events[0].Name)
	assert.Equal(t, "hello", events[0].Attributes[0].Value.AsString())
}

func TestOTelSpan_Write_StreamsToRenderer(t *testing.T) {
	_, tp := setupRecorder()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	received := make(chan []byte, 10)
	mockRenderer := mocks.NewMockRenderer(ctrl)
	mockRenderer.EXPECT().
		OnBuildLog(gomock.Any(), gomock.Any()).
		Do(func(_ string, data []byte) {
			received <- data
		}).
		MinTimes(1)

	tracer := telemetry.NewOTelTracer("test-tracer").WithRenderer(mockRenderer)
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	_, span := tracer.Start(context.Background(), "stream-test")
	_, err := span.Write([]byte("Compiling app v0.1.0\n"))
	require.NoError(t, err)
	span.End() // closes the batcher, flushing the remainder

	select {
	case data := <-received:
		assert.Contains(t, string(data), "Compiling app")
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for streamed build output")
	}
}
