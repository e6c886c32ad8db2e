package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/midhunrajcharles/SyndicateIQ/internal/application/dto"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/port"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/service"
)

// GetESGOverview is the use case behind the ESG monitoring view.
type GetESGOverview struct {
	source      port.PortfolioSource
	evaluations metric.Int64Counter
}

// NewGetESGOverview creates a new GetESGOverview use case.
func NewGetESGOverview(source port.PortfolioSource) *GetESGOverview {
	return &GetESGOverview{source: source, evaluations: evaluationCounter()}
}

// Execute summarizes every ESG profile and returns the detail of the selected
// loan, or of the first profile when no loan is named. An empty book yields
// the zero overview with no selected profile.
func (uc *GetESGOverview) Execute(ctx context.Context, req dto.GetESGOverviewRequest) (dto.ESGOverviewResponse, error) {
	ctx, span := tracer.Start(ctx, "GetESGOverview")
	defer span.End()
	span.SetAttributes(attribute.String("loan_id", req.LoanID))

	profiles, err := uc.source.ESGProfiles(ctx)
	if err != nil {
		return dto.ESGOverviewResponse{}, failSpan(span, fmt.Errorf("failed to load esg profiles: %w", err))
	}

	selected, ok := service.FindProfile(profiles, req.LoanID)
	if !ok && req.LoanID != "" {
		return dto.ESGOverviewResponse{}, failSpan(span, fmt.Errorf("%w: %q", ErrProfileNotFound, req.LoanID))
	}

	overview := service.SummarizeESG(profiles)
	exp := overview.Exposure
	recordTiers(ctx, uc.evaluations, "esg", exp.LowCount, exp.MediumCount, exp.HighCount)

	return dto.FromESGOverview(overview, profiles, selected), nil
}
