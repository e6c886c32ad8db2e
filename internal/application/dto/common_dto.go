package dto

import (
	"time"

	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/model"
)

// AggregateResponse is the wire form of a portfolio aggregate.
type AggregateResponse struct {
	LowCount     int `json:"low_count"`
	MediumCount  int `json:"medium_count"`
	HighCount    int `json:"high_count"`
	Total        int `json:"total"`
	AverageScore int `json:"average_score"`
	TotalAlerts  int `json:"total_alerts"`
}

// AlertResponse is the wire form of an alert.
type AlertResponse struct {
	TriggeredAt *time.Time `json:"triggered_at,omitempty"`
	EntityID    string     `json:"entity_id,omitempty"`
	Borrower    string     `json:"borrower,omitempty"`
	Severity    string     `json:"severity"`
	Message     string     `json:"message"`
	Resolved    bool       `json:"resolved"`
}

// FromAggregate maps a domain aggregate to its response DTO.
func FromAggregate(a model.PortfolioAggregate) AggregateResponse {
	return AggregateResponse{
		LowCount:     a.LowCount,
		MediumCount:  a.MediumCount,
		HighCount:    a.HighCount,
		Total:        a.Total,
		AverageScore: a.AverageScore,
		TotalAlerts:  a.TotalAlerts,
	}
}

// FromAlerts maps domain alerts to response DTOs. The result is never nil.
func FromAlerts(alerts []model.Alert) []AlertResponse {
	out := make([]AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, fromAlert(a))
	}
	return out
}

func fromAlert(a model.Alert) AlertResponse {
	return AlertResponse{
		Severity:    string(a.Severity),
		Message:     a.Message,
		TriggeredAt: a.TriggeredAt,
		Resolved:    a.Resolved,
	}
}
