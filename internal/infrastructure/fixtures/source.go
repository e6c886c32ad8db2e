package fixtures

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/model"
)

// Source implements port.PortfolioSource over a built-in sample loan book.
// It is the default source for development and demos.
type Source struct {
	loans    []*model.CovenantLoan
	profiles []*model.ESGProfile
	docs     []*model.LoanDocument
	items    []model.VerificationItem
}

// NewSource builds the sample book, validating every record through the
// domain constructors.
func NewSource(logger *slog.Logger) (*Source, error) {
	loans, err := covenantLoans()
	if err != nil {
		return nil, fmt.Errorf("failed to build covenant loans: %w", err)
	}
	profiles, err := esgProfiles()
	if err != nil {
		return nil, fmt.Errorf("failed to build esg profiles: %w", err)
	}
	docs, err := loanDocuments()
	if err != nil {
		return nil, fmt.Errorf("failed to build loan documents: %w", err)
	}
	items := verificationItems()
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return nil, err
		}
	}

	logger.Debug("fixture portfolio loaded",
		slog.Int("covenant_loans", len(loans)),
		slog.Int("esg_profiles", len(profiles)),
		slog.Int("documents", len(docs)),
		slog.Int("verification_items", len(items)),
	)

	return &Source{loans: loans, profiles: profiles, docs: docs, items: items}, nil
}

// CovenantLoans returns the sample covenant book.
func (s *Source) CovenantLoans(ctx context.Context) ([]*model.CovenantLoan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.loans, nil
}

// ESGProfiles returns the sample ESG profiles.
func (s *Source) ESGProfiles(ctx context.Context) ([]*model.ESGProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.profiles, nil
}

// LoanDocuments returns the sample facility agreements.
func (s *Source) LoanDocuments(ctx context.Context) ([]*model.LoanDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.docs, nil
}

// VerificationItems returns the sample due diligence checklist.
func (s *Source) VerificationItems(ctx context.Context) ([]model.VerificationItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.items, nil
}

// Ping always succeeds while the context is live.
func (s *Source) Ping(ctx context.Context) error {
	return ctx.Err()
}
