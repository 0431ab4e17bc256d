package domain

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName identifies spans emitted by this package. Spans are no-ops
// unless the host installs a tracer provider.
const TracerName = "github.com/mouse-blink/party/internal/domain"

func tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	span.End()
}
