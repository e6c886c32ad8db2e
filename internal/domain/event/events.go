package event

import (
	"github.com/midhunrajcharles/SyndicateIQ/pkg/events"
)

const (
	// EventTypeHighRiskLoansDetected is emitted when a covenant portfolio view
	// contains at least one high tier loan.
	EventTypeHighRiskLoansDetected = "portfolio.high_risk.detected"

	// PortfolioAggregateID identifies the single covenant book this service serves.
	PortfolioAggregateID = "covenant-portfolio"
)

// HighRiskLoansDetected is published when high tier loans are found while
// summarizing the covenant book.
type HighRiskLoansDetected struct {
	events.BaseEvent
	LoanIDs       []string `json:"loan_ids"`
	HighCount     int      `json:"high_count"`
	Total         int      `json:"total"`
	Concentration int      `json:"concentration_pct"`
	AverageScore  int      `json:"average_score"`
}

// NewHighRiskLoansDetected builds the event with a fresh envelope.
func NewHighRiskLoansDetected(loanIDs []string, highCount, total, concentration, averageScore int) HighRiskLoansDetected {
	return HighRiskLoansDetected{
		BaseEvent:     events.NewBaseEvent(EventTypeHighRiskLoansDetected, PortfolioAggregateID),
		LoanIDs:       loanIDs,
		HighCount:     highCount,
		Total:         total,
		Concentration: concentration,
		AverageScore:  averageScore,
	}
}
