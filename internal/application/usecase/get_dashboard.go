package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"

	"github.com/midhunrajcharles/SyndicateIQ/internal/application/dto"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/port"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/service"
)

// GetDashboard is the use case behind the portfolio intelligence hub.
type GetDashboard struct {
	source      port.PortfolioSource
	evaluations metric.Int64Counter
}

// NewGetDashboard creates a new GetDashboard use case.
func NewGetDashboard(source port.PortfolioSource) *GetDashboard {
	return &GetDashboard{source: source, evaluations: evaluationCounter()}
}

// Execute loads loans, ESG profiles and documents and builds the dashboard.
func (uc *GetDashboard) Execute(ctx context.Context) (dto.DashboardResponse, error) {
	ctx, span := tracer.Start(ctx, "GetDashboard")
	defer span.End()

	loans, err := uc.source.CovenantLoans(ctx)
	if err != nil {
		return dto.DashboardResponse{}, failSpan(span, fmt.Errorf("failed to load covenant loans: %w", err))
	}
	profiles, err := uc.source.ESGProfiles(ctx)
	if err != nil {
		return dto.DashboardResponse{}, failSpan(span, fmt.Errorf("failed to load esg profiles: %w", err))
	}
	docs, err := uc.source.LoanDocuments(ctx)
	if err != nil {
		return dto.DashboardResponse{}, failSpan(span, fmt.Errorf("failed to load loan documents: %w", err))
	}

	d := service.BuildDashboard(loans, profiles, docs)
	recordTiers(ctx, uc.evaluations, "dashboard", d.Covenants.LowCount, d.Covenants.MediumCount, d.Covenants.HighCount)

	return dto.FromDashboard(d), nil
}
