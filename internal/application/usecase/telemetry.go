package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/midhunrajcharles/SyndicateIQ/internal/application/usecase"

var tracer = otel.Tracer(instrumentationName)

// evaluationCounter counts scored entities per operation and tier. Instruments
// from the global meter forward to a provider installed later.
func evaluationCounter() metric.Int64Counter {
	c, err := otel.Meter(instrumentationName).Int64Counter(
		"syndicateiq.risk.evaluations",
		metric.WithDescription("Number of entities classified into a risk tier"),
		metric.WithUnit("{entity}"),
	)
	if err != nil {
		otel.Handle(err)
	}
	return c
}

func recordTiers(ctx context.Context, c metric.Int64Counter, operation string, low, medium, high int) {
	if c == nil {
		return
	}
	for tier, n := range map[string]int{"low": low, "medium": medium, "high": high} {
		if n == 0 {
			continue
		}
		c.Add(ctx, int64(n), metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("tier", tier),
		))
	}
}

func failSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
