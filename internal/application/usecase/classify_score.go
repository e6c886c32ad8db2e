package usecase

import (
	"context"

	"go.opentelemetry.io/otel/metric"

	"github.com/midhunrajcharles/SyndicateIQ/internal/application/dto"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/service"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/valueobject"
)

// ClassifyScore maps a single score to its risk tier.
type ClassifyScore struct {
	evaluations metric.Int64Counter
}

// NewClassifyScore creates a new ClassifyScore use case.
func NewClassifyScore() *ClassifyScore {
	return &ClassifyScore{evaluations: evaluationCounter()}
}

// Execute classifies the score. It performs no I/O and cannot fail.
func (uc *ClassifyScore) Execute(ctx context.Context, req dto.ClassifyScoreRequest) dto.ClassifyScoreResponse {
	tier := service.Classify(req.Score)

	var low, medium, high int
	switch tier {
	case valueobject.RiskTierHigh:
		high = 1
	case valueobject.RiskTierMedium:
		medium = 1
	default:
		low = 1
	}
	recordTiers(ctx, uc.evaluations, "classify", low, medium, high)

	return dto.ClassifyScoreResponse{Score: req.Score, Tier: tier.String()}
}
