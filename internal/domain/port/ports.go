package port

import (
	"context"

	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/model"
	"github.com/midhunrajcharles/SyndicateIQ/pkg/events"
)

// PortfolioSource is the read-only port for the loan book. Implementations
// return records in a stable order; that order is what filters preserve.
type PortfolioSource interface {
	// CovenantLoans returns every loan under covenant monitoring.
	CovenantLoans(ctx context.Context) ([]*model.CovenantLoan, error)

	// ESGProfiles returns the ESG profile of every monitored loan.
	ESGProfiles(ctx context.Context) ([]*model.ESGProfile, error)

	// LoanDocuments returns the uploaded facility agreements.
	LoanDocuments(ctx context.Context) ([]*model.LoanDocument, error)

	// VerificationItems returns the due diligence checklist.
	VerificationItems(ctx context.Context) ([]model.VerificationItem, error)

	// Ping reports whether the source is reachable.
	Ping(ctx context.Context) error
}

// EventPublisher defines the port for publishing domain events.
type EventPublisher interface {
	// Publish sends one or more domain events to the messaging infrastructure.
	Publish(ctx context.Context, evts ...events.DomainEvent) error
}
