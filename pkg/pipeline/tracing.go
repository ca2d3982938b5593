package pipeline

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ib-77/fluentutils/pkg/monad"
)

const (
	// TracerName is the instrumentation name of the pipeline tracer.
	TracerName = "github.com/ib-77/fluentutils/pkg/pipeline"

	DefaultServiceName = "fluentutils"
)

// Tracer wraps an OpenTelemetry tracer for pipeline requests.
type Tracer struct {
	tracer      trace.Tracer
	serviceName string
}

type TracerOption func(*Tracer)

func WithTracerProvider(tp trace.TracerProvider) TracerOption {
	return func(t *Tracer) {
		t.tracer = tp.Tracer(TracerName)
	}
}

func WithServiceName(name string) TracerOption {
	return func(t *Tracer) {
		t.serviceName = name
	}
}

// NewTracer creates a Tracer on the global TracerProvider unless
// WithTracerProvider is given.
func NewTracer(opts ...TracerOption) *Tracer {
	t := &Tracer{
		tracer:      otel.Tracer(TracerName),
		serviceName: DefaultServiceName,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracer) ServiceName() string {
	return t.serviceName
}

// Traced wraps every request in a span named request.<name>.
func Traced[Req, Res any](t *Tracer) Behaviour[Req, Res] {
	return func(next Handler[Req, Res]) Handler[Req, Res] {
		return func(ctx context.Context, req Req) monad.Result[Res] {
			name := RequestName(req)

			ctx, span := t.tracer.Start(ctx, fmt.Sprintf("request.%s", name),
				trace.WithSpanKind(trace.SpanKindInternal))
			defer span.End()

			attrs := []attribute.KeyValue{
				attribute.String("fluentutils.service", t.serviceName),
				attribute.String("fluentutils.request.name", name),
				attribute.String("fluentutils.request.origin", OriginFromContext(ctx)),
			}
			if id, ok := RequestIDFromContext(ctx); ok {
				attrs = append(attrs, attribute.String("fluentutils.request.id", id.String()))
			}
			span.SetAttributes(attrs...)

			res := next(ctx, req)

			if !res.IsOk() {
				err := res.Err()
				span.RecordError(err)
				span.SetStatus(codes.Error, err.String())
				span.SetAttributes(attribute.String("fluentutils.error.code", err.Code.String()))
				return res
			}

			span.SetStatus(codes.Ok, "")
			return res
		}
	}
}
