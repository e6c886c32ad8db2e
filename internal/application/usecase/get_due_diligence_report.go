package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/midhunrajcharles/SyndicateIQ/internal/application/dto"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/port"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/service"
)

// GetDueDiligenceReport is the use case behind the due diligence checklist.
type GetDueDiligenceReport struct {
	source port.PortfolioSource
}

// NewGetDueDiligenceReport creates a new GetDueDiligenceReport use case.
func NewGetDueDiligenceReport(source port.PortfolioSource) *GetDueDiligenceReport {
	return &GetDueDiligenceReport{source: source}
}

// Execute summarizes the full checklist and lists the items of the requested
// category. An unknown category yields an empty item list.
func (uc *GetDueDiligenceReport) Execute(ctx context.Context, req dto.GetDueDiligenceReportRequest) (dto.DueDiligenceReportResponse, error) {
	category := req.Category
	if category == "" {
		category = service.AllCategories
	}

	ctx, span := tracer.Start(ctx, "GetDueDiligenceReport")
	defer span.End()
	span.SetAttributes(attribute.String("category", category))

	items, err := uc.source.VerificationItems(ctx)
	if err != nil {
		return dto.DueDiligenceReportResponse{}, failSpan(span, fmt.Errorf("failed to load verification items: %w", err))
	}

	summary := service.SummarizeDueDiligence(items)
	return dto.FromDueDiligence(summary, category, service.FilterByCategory(items, category)), nil
}
