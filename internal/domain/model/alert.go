package model

import (
	"time"

	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/valueobject"
)

// Alert is a notification attached to a scored entity.
type Alert struct {
	Severity valueobject.AlertSeverity
	Message  string
	// TriggeredAt is nil when the source carries no timestamp.
	TriggeredAt *time.Time
	Resolved    bool
}

// ScoredEntity is any record carrying a 0-100 risk score and a list of alerts.
type ScoredEntity interface {
	ID() string
	Name() string
	RiskScore() float64
	Alerts() []Alert
}

// PortfolioAggregate is a summary computed fresh from a collection of scored
// entities. It is never stored.
type PortfolioAggregate struct {
	LowCount     int
	MediumCount  int
	HighCount    int
	Total        int
	AverageScore int
	TotalAlerts  int
}
