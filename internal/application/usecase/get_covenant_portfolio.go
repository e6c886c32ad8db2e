package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/midhunrajcharles/SyndicateIQ/internal/application/dto"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/event"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/model"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/port"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/service"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/valueobject"
)

// GetCovenantPortfolio is the use case behind the covenant monitoring view.
type GetCovenantPortfolio struct {
	source      port.PortfolioSource
	publisher   port.EventPublisher
	logger      *slog.Logger
	evaluations metric.Int64Counter
}

// NewGetCovenantPortfolio creates a new GetCovenantPortfolio use case.
func NewGetCovenantPortfolio(
	source port.PortfolioSource,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *GetCovenantPortfolio {
	return &GetCovenantPortfolio{
		source:      source,
		publisher:   publisher,
		logger:      logger,
		evaluations: evaluationCounter(),
	}
}

// Execute loads the loan book, aggregates it and lists the loans matching the
// requested tier. A HighRiskLoansDetected event is published whenever the book
// holds high tier loans; publishing failures are logged and do not fail the call.
func (uc *GetCovenantPortfolio) Execute(ctx context.Context, req dto.GetCovenantPortfolioRequest) (dto.CovenantPortfolioResponse, error) {
	filter, err := valueobject.TierFilterFromString(req.Tier)
	if err != nil {
		return dto.CovenantPortfolioResponse{}, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}

	ctx, span := tracer.Start(ctx, "GetCovenantPortfolio")
	defer span.End()
	span.SetAttributes(attribute.String("tier_filter", filter.String()))

	loans, err := uc.source.CovenantLoans(ctx)
	if err != nil {
		return dto.CovenantPortfolioResponse{}, failSpan(span, fmt.Errorf("failed to load covenant loans: %w", err))
	}

	portfolio := service.SummarizeCovenants(loans, filter)
	agg := portfolio.Aggregate
	recordTiers(ctx, uc.evaluations, "covenants", agg.LowCount, agg.MediumCount, agg.HighCount)
	span.SetAttributes(
		attribute.Int("loans.total", agg.Total),
		attribute.Int("loans.high", agg.HighCount),
	)

	if agg.HighCount > 0 {
		uc.publishHighRisk(ctx, loans, portfolio)
	}

	return dto.FromCovenantPortfolio(portfolio, filter.String()), nil
}

func (uc *GetCovenantPortfolio) publishHighRisk(ctx context.Context, loans []*model.CovenantLoan, p service.CovenantPortfolio) {
	high := service.FilterByTier(loans, valueobject.TierFilterHigh)
	ids := make([]string, 0, len(high))
	for _, l := range high {
		ids = append(ids, l.ID())
	}

	evt := event.NewHighRiskLoansDetected(ids, p.Aggregate.HighCount, p.Aggregate.Total, p.HighRiskConcentration, p.Aggregate.AverageScore)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		uc.logger.Warn("failed to publish high risk event",
			slog.String("event_type", evt.EventType()),
			slog.String("error", err.Error()),
		)
	}
}
