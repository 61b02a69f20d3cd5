package telemetry

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestSetup_NoEndpointIsNop(t *testing.T) {
	p, err := Setup(context.Background(), Config{ServiceName: "textrealm"})
	require.NoError(t, err)

	_, span := p.TracerProvider.Tracer("test").Start(context.Background(), "span")
	assert.False(t, span.SpanContext().IsValid())
	span.End()

	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestSetup_WithEndpoint(t *testing.T) {
	p, err := Setup(context.Background(), Config{
		ServiceName:  "textrealm",
		OTLPEndpoint: "localhost:4318",
		Insecure:     true,
	})
	require.NoError(t, err)
	defer func() { _ = p.Shutdown(context.Background()) }()
	_, ok := p.TracerProvider.(*sdktrace.TracerProvider)
	assert.True(t, ok)
}

func TestLogWithTrace(t *testing.T) {
	base := slog.Default()
	assert.Same(t, base, LogWithTrace(context.Background(), base))

	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()
	ctx, span := tp.Tracer("test").Start(context.Background(), "span")
	defer span.End()

	assert.NotSame(t, base, LogWithTrace(ctx, base))
}
