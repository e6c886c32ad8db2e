package model

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/valueobject"
)

// FacilityTerms are the headline terms extracted from a loan agreement.
type FacilityTerms struct {
	Borrower     string
	Amount       decimal.Decimal
	Currency     string
	InterestRate string
	MaturityDate string
	FacilityType string
	Lenders      []string
	Agent        string
}

// LoanDocument is an uploaded facility agreement and its extracted terms.
type LoanDocument struct {
	id             string
	fileName       string
	uploadedAt     time.Time
	processingTime time.Duration
	status         valueobject.DocumentStatus
	terms          FacilityTerms
}

// NewLoanDocument validates and builds a LoanDocument.
func NewLoanDocument(
	id string,
	fileName string,
	uploadedAt time.Time,
	processingTime time.Duration,
	status valueobject.DocumentStatus,
	terms FacilityTerms,
) (*LoanDocument, error) {
	if id == "" {
		return nil, fmt.Errorf("document ID is required")
	}
	if fileName == "" {
		return nil, fmt.Errorf("file name is required")
	}
	if status == "" {
		return nil, fmt.Errorf("document status is required")
	}
	if terms.Amount.IsNegative() {
		return nil, fmt.Errorf("facility amount must not be negative")
	}
	if terms.Currency == "" {
		return nil, fmt.Errorf("currency is required")
	}

	terms.Lenders = slices.Clone(terms.Lenders)

	return &LoanDocument{
		id:             id,
		fileName:       fileName,
		uploadedAt:     uploadedAt,
		processingTime: processingTime,
		status:         status,
		terms:          terms,
	}, nil
}

func (d *LoanDocument) ID() string                         { return d.id }
func (d *LoanDocument) FileName() string                   { return d.fileName }
func (d *LoanDocument) UploadedAt() time.Time              { return d.uploadedAt }
func (d *LoanDocument) ProcessingTime() time.Duration      { return d.processingTime }
func (d *LoanDocument) Status() valueobject.DocumentStatus { return d.status }

// Terms returns the extracted facility terms with a copy of the lender list.
func (d *LoanDocument) Terms() FacilityTerms {
	t := d.terms
	t.Lenders = slices.Clone(t.Lenders)
	return t
}
