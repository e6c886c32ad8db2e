package service

import (
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/model"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/valueobject"
)

// AllCategories is the identity selector for FilterByCategory.
const AllCategories = "all"

// DueDiligenceSummary counts verification outcomes.
type DueDiligenceSummary struct {
	TotalItems   int
	PassedItems  int
	WarningItems int
	FailedItems  int
	PendingItems int
	PassRate     int
	Categories   []string
}

// FilterByCategory keeps items of one category in their original order.
// "all" and the empty string return every item.
func FilterByCategory(items []model.VerificationItem, category string) []model.VerificationItem {
	out := make([]model.VerificationItem, 0, len(items))
	for _, it := range items {
		if category == "" || category == AllCategories || it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// SummarizeDueDiligence counts items per status and lists categories in
// first-seen order.
func SummarizeDueDiligence(items []model.VerificationItem) DueDiligenceSummary {
	s := DueDiligenceSummary{TotalItems: len(items), Categories: []string{}}
	seen := make(map[string]struct{})

	for _, it := range items {
		switch it.Status {
		case valueobject.CheckPass:
			s.PassedItems++
		case valueobject.CheckWarning:
			s.WarningItems++
		case valueobject.CheckFail:
			s.FailedItems++
		case valueobject.CheckPending:
			s.PendingItems++
		}
		if _, ok := seen[it.Category]; !ok {
			seen[it.Category] = struct{}{}
			s.Categories = append(s.Categories, it.Category)
		}
	}
	s.PassRate = percentOf(s.PassedItems, s.TotalItems)

	return s
}
