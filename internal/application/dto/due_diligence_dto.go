package dto

import (
	"time"

	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/model"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/service"
)

// GetDueDiligenceReportRequest selects a verification category. Empty or
// "all" returns every item.
type GetDueDiligenceReportRequest struct {
	Category string `json:"category"`
}

// VerificationItemResponse is one due diligence check.
type VerificationItemResponse struct {
	LastChecked time.Time `json:"last_checked"`
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Item        string    `json:"item"`
	Status      string    `json:"status"`
	Details     string    `json:"details"`
	Priority    string    `json:"priority"`
}

// DueDiligenceReportResponse is the output DTO of GetDueDiligenceReport.
// Summary figures cover the full checklist; Items honours the category.
type DueDiligenceReportResponse struct {
	Categories   []string                   `json:"categories"`
	Items        []VerificationItemResponse `json:"items"`
	Category     string                     `json:"category"`
	TotalItems   int                        `json:"total_items"`
	PassedItems  int                        `json:"passed_items"`
	WarningItems int                        `json:"warning_items"`
	FailedItems  int                        `json:"failed_items"`
	PendingItems int                        `json:"pending_items"`
	PassRate     int                        `json:"pass_rate_pct"`
}

// FromDueDiligence maps a summary and the filtered items to the response DTO.
func FromDueDiligence(s service.DueDiligenceSummary, category string, items []model.VerificationItem) DueDiligenceReportResponse {
	out := make([]VerificationItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, VerificationItemResponse{
			LastChecked: it.LastChecked,
			ID:          it.ID,
			Category:    it.Category,
			Item:        it.Item,
			Status:      string(it.Status),
			Details:     it.Details,
			Priority:    string(it.Priority),
		})
	}
	return DueDiligenceReportResponse{
		Categories:   s.Categories,
		Items:        out,
		Category:     category,
		TotalItems:   s.TotalItems,
		PassedItems:  s.PassedItems,
		WarningItems: s.WarningItems,
		FailedItems:  s.FailedItems,
		PendingItems: s.PendingItems,
		PassRate:     s.PassRate,
	}
}
