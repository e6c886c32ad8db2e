package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/model"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/valueobject"
	"github.com/midhunrajcharles/SyndicateIQ/pkg/events"
)

// mockSource is a hand-written mock implementing port.PortfolioSource.
type mockSource struct {
	loans    []*model.CovenantLoan
	profiles []*model.ESGProfile
	docs     []*model.LoanDocument
	items    []model.VerificationItem
	err      error
}

func (m *mockSource) CovenantLoans(_ context.Context) ([]*model.CovenantLoan, error) {
	return m.loans, m.err
}

func (m *mockSource) ESGProfiles(_ context.Context) ([]*model.ESGProfile, error) {
	return m.profiles, m.err
}

func (m *mockSource) LoanDocuments(_ context.Context) ([]*model.LoanDocument, error) {
	return m.docs, m.err
}

func (m *mockSource) VerificationItems(_ context.Context) ([]model.VerificationItem, error) {
	return m.items, m.err
}

func (m *mockSource) Ping(_ context.Context) error {
	return m.err
}

// mockPublisher is a hand-written mock implementing port.EventPublisher.
type mockPublisher struct {
	published []events.DomainEvent
	err       error
}

func (m *mockPublisher) Publish(_ context.Context, evts ...events.DomainEvent) error {
	m.published = append(m.published, evts...)
	return m.err
}

func newLoan(t *testing.T, id string, score float64, alerts ...model.Alert) *model.CovenantLoan {
	t.Helper()
	loan, err := model.NewCovenantLoan(id, "Borrower "+id, score, score*0.9, 90,
		[]model.CovenantStatus{{Type: "Leverage", CurrentValue: 3.2, Limit: 3.5, Cushion: 8.6, Trend: valueobject.TrendStable}},
		alerts,
	)
	require.NoError(t, err)
	return loan
}

func newProfile(t *testing.T, id string, level valueobject.RiskTier, transparency float64, flags ...string) *model.ESGProfile {
	t.Helper()
	p, err := model.NewESGProfile(id, "Borrower "+id, true,
		model.Emissions{Reported: 1200, Verified: 1150, BaselineYear: 2021},
		model.ESGReporting{Frequency: "Quarterly", Completeness: 85},
		model.GreenwashingRisk{Level: level, TransparencyScore: transparency, Flags: flags},
		model.LMACompliance{GreenLoanPrinciples: true},
	)
	require.NoError(t, err)
	return p
}

func newDoc(t *testing.T, id string, status valueobject.DocumentStatus, amount string) *model.LoanDocument {
	t.Helper()
	doc, err := model.NewLoanDocument(id, id+".pdf", time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), 2*time.Minute, status,
		model.FacilityTerms{Borrower: "Borrower", Amount: decimal.RequireFromString(amount), Currency: "USD"})
	require.NoError(t, err)
	return doc
}

func bookSource(t *testing.T) *mockSource {
	t.Helper()
	critical := model.Alert{Severity: valueobject.SeverityCritical, Message: "Leverage cushion below 5%"}
	return &mockSource{
		loans: []*model.CovenantLoan{
			newLoan(t, "LN-1", 72, critical),
			newLoan(t, "LN-2", 45),
			newLoan(t, "LN-3", 18),
			newLoan(t, "LN-4", 65),
		},
		profiles: []*model.ESGProfile{
			newProfile(t, "LN-1", valueobject.RiskTierHigh, 42, "Scope 3 emissions omitted"),
			newProfile(t, "LN-2", valueobject.RiskTierLow, 91),
		},
		docs: []*model.LoanDocument{
			newDoc(t, "DOC-1", valueobject.DocumentComplete, "250000000"),
			newDoc(t, "DOC-2", valueobject.DocumentProcessing, "125000000.50"),
		},
		items: []model.VerificationItem{
			{ID: "fin-001", Category: "Financial", Status: valueobject.CheckPass},
			{ID: "legal-001", Category: "Legal & Compliance", Status: valueobject.CheckFail},
			{ID: "fin-002", Category: "Financial", Status: valueobject.CheckPending},
		},
	}
}
