package model

import (
	"fmt"
	"slices"
	"time"

	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/valueobject"
)

// Emissions holds reported and verified emissions for a green loan.
type Emissions struct {
	Reported         float64
	Verified         float64
	VerificationDate *time.Time
	BaselineYear     int
	TargetReduction  float64
	CurrentReduction float64
}

// ESGReporting tracks the borrower's sustainability reporting discipline.
type ESGReporting struct {
	Frequency     string
	LastSubmitted *time.Time
	MissedReports int
	Completeness  float64
}

// GreenwashingRisk is the assessed greenwashing exposure of a borrower.
// Level is the label supplied with the record, not derived from the score.
type GreenwashingRisk struct {
	Level             valueobject.RiskTier
	TransparencyScore float64
	Flags             []string
}

// LMACompliance records alignment with the LMA Green Loan Principles.
type LMACompliance struct {
	GreenLoanPrinciples       bool
	SustainabilityCoordinator bool
	ReportingAligned          bool
}

// ESGProfile is the ESG monitoring record for one loan.
type ESGProfile struct {
	loanID        string
	borrowerName  string
	greenLoan     bool
	emissions     Emissions
	reporting     ESGReporting
	greenwashing  GreenwashingRisk
	lmaCompliance LMACompliance
}

// NewESGProfile validates and builds an ESGProfile.
func NewESGProfile(
	loanID string,
	borrowerName string,
	greenLoan bool,
	emissions Emissions,
	reporting ESGReporting,
	greenwashing GreenwashingRisk,
	lmaCompliance LMACompliance,
) (*ESGProfile, error) {
	if loanID == "" {
		return nil, fmt.Errorf("loan ID is required")
	}
	if borrowerName == "" {
		return nil, fmt.Errorf("borrower name is required")
	}
	if greenwashing.Level.IsZero() {
		return nil, fmt.Errorf("greenwashing risk level is required")
	}
	if err := validateScore("transparency score", greenwashing.TransparencyScore); err != nil {
		return nil, err
	}
	if err := validateScore("reporting completeness", reporting.Completeness); err != nil {
		return nil, err
	}

	greenwashing.Flags = slices.Clone(greenwashing.Flags)

	return &ESGProfile{
		loanID:        loanID,
		borrowerName:  borrowerName,
		greenLoan:     greenLoan,
		emissions:     emissions,
		reporting:     reporting,
		greenwashing:  greenwashing,
		lmaCompliance: lmaCompliance,
	}, nil
}

func (p *ESGProfile) ID() string                   { return p.loanID }
func (p *ESGProfile) Name() string                 { return p.borrowerName }
func (p *ESGProfile) IsGreenLoan() bool            { return p.greenLoan }
func (p *ESGProfile) Emissions() Emissions         { return p.emissions }
func (p *ESGProfile) Reporting() ESGReporting      { return p.reporting }
func (p *ESGProfile) LMACompliance() LMACompliance { return p.lmaCompliance }

// Greenwashing returns the greenwashing assessment with a copy of its flags.
func (p *ESGProfile) Greenwashing() GreenwashingRisk {
	g := p.greenwashing
	g.Flags = slices.Clone(g.Flags)
	return g
}

// RiskScore is the greenwashing exposure: the complement of the transparency score.
func (p *ESGProfile) RiskScore() float64 {
	return 100 - p.greenwashing.TransparencyScore
}

// Alerts turns each greenwashing flag into an unresolved alert. Flags on a
// high greenwashing label are critical, all others are warnings.
func (p *ESGProfile) Alerts() []Alert {
	severity := valueobject.SeverityWarning
	if p.greenwashing.Level.Equal(valueobject.RiskTierHigh) {
		severity = valueobject.SeverityCritical
	}

	alerts := make([]Alert, 0, len(p.greenwashing.Flags))
	for _, flag := range p.greenwashing.Flags {
		alerts = append(alerts, Alert{Severity: severity, Message: flag})
	}
	return alerts
}
