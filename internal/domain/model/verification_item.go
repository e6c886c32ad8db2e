package model

import (
	"fmt"
	"time"

	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/valueobject"
)

// VerificationItem is one due diligence check on a borrower.
type VerificationItem struct {
	ID          string
	Category    string
	Item        string
	Status      valueobject.CheckStatus
	Details     string
	Priority    valueobject.Priority
	LastChecked time.Time
}

// Validate checks the required fields of a verification item.
func (v VerificationItem) Validate() error {
	switch {
	case v.ID == "":
		return fmt.Errorf("verification item ID is required")
	case v.Category == "":
		return fmt.Errorf("verification item %s: category is required", v.ID)
	case v.Status == "":
		return fmt.Errorf("verification item %s: status is required", v.ID)
	}
	return nil
}
