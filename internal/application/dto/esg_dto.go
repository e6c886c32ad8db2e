package dto

import (
	"time"

	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/model"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/service"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/valueobject"
)

// GetESGOverviewRequest optionally selects one loan's ESG detail. An empty
// LoanID selects the first profile.
type GetESGOverviewRequest struct {
	LoanID string `json:"loan_id"`
}

// ESGLoanSummary is one row of the ESG loan list.
type ESGLoanSummary struct {
	LoanID           string `json:"loan_id"`
	BorrowerName     string `json:"borrower_name"`
	GreenwashingRisk string `json:"greenwashing_risk"`
	GreenLoan        bool   `json:"green_loan"`
}

// ESGProfileResponse is the full ESG detail of one loan.
type ESGProfileResponse struct {
	VerificationDate          *time.Time      `json:"verification_date,omitempty"`
	LastSubmitted             *time.Time      `json:"last_submitted,omitempty"`
	Flags                     []string        `json:"flags"`
	Alerts                    []AlertResponse `json:"alerts"`
	LoanID                    string          `json:"loan_id"`
	BorrowerName              string          `json:"borrower_name"`
	ReportingFrequency        string          `json:"reporting_frequency"`
	GreenwashingRisk          string          `json:"greenwashing_risk"`
	TransparencyBand          string          `json:"transparency_band"`
	ExposureTier              string          `json:"exposure_tier"`
	ReportedEmissions         float64         `json:"reported_emissions"`
	VerifiedEmissions         float64         `json:"verified_emissions"`
	TargetReduction           float64         `json:"target_reduction"`
	CurrentReduction          float64         `json:"current_reduction"`
	Completeness              float64         `json:"reporting_completeness"`
	TransparencyScore         float64         `json:"transparency_score"`
	BaselineYear              int             `json:"baseline_year"`
	MissedReports             int             `json:"missed_reports"`
	GreenLoan                 bool            `json:"green_loan"`
	GreenLoanPrinciples       bool            `json:"green_loan_principles"`
	SustainabilityCoordinator bool            `json:"sustainability_coordinator"`
	ReportingAligned          bool            `json:"reporting_aligned"`
}

// ESGOverviewResponse is the output DTO of GetESGOverview. Selected is nil
// only for an empty book.
type ESGOverviewResponse struct {
	Loans               []ESGLoanSummary    `json:"loans"`
	Selected            *ESGProfileResponse `json:"selected"`
	Exposure            AggregateResponse   `json:"exposure"`
	TotalLoans          int                 `json:"total_loans"`
	GreenLoans          int                 `json:"green_loans"`
	HighRiskFlags       int                 `json:"high_risk_flags"`
	AverageTransparency int                 `json:"average_transparency"`
}

// FromESGOverview maps the overview, the profile list and the selected profile.
// A nil selected profile maps to a nil Selected.
func FromESGOverview(o service.ESGOverview, profiles []*model.ESGProfile, selected *model.ESGProfile) ESGOverviewResponse {
	var detail *ESGProfileResponse
	if selected != nil {
		r := FromESGProfile(selected)
		detail = &r
	}

	loans := make([]ESGLoanSummary, 0, len(profiles))
	for _, p := range profiles {
		loans = append(loans, ESGLoanSummary{
			LoanID:           p.ID(),
			BorrowerName:     p.Name(),
			GreenwashingRisk: p.Greenwashing().Level.String(),
			GreenLoan:        p.IsGreenLoan(),
		})
	}
	return ESGOverviewResponse{
		Loans:               loans,
		Selected:            detail,
		Exposure:            FromAggregate(o.Exposure),
		TotalLoans:          o.TotalLoans,
		GreenLoans:          o.GreenLoans,
		HighRiskFlags:       o.HighRiskFlags,
		AverageTransparency: o.AverageTransparency,
	}
}

// FromESGProfile maps an ESG profile to its response DTO.
func FromESGProfile(p *model.ESGProfile) ESGProfileResponse {
	em := p.Emissions()
	rep := p.Reporting()
	gw := p.Greenwashing()
	lma := p.LMACompliance()

	flags := gw.Flags
	if flags == nil {
		flags = []string{}
	}

	return ESGProfileResponse{
		VerificationDate:          em.VerificationDate,
		LastSubmitted:             rep.LastSubmitted,
		Flags:                     flags,
		Alerts:                    FromAlerts(p.Alerts()),
		LoanID:                    p.ID(),
		BorrowerName:              p.Name(),
		ReportingFrequency:        rep.Frequency,
		GreenwashingRisk:          gw.Level.String(),
		TransparencyBand:          string(valueobject.TransparencyBandFromScore(gw.TransparencyScore)),
		ExposureTier:              service.Classify(p.RiskScore()).String(),
		ReportedEmissions:         em.Reported,
		VerifiedEmissions:         em.Verified,
		TargetReduction:           em.TargetReduction,
		CurrentReduction:          em.CurrentReduction,
		Completeness:              rep.Completeness,
		TransparencyScore:         gw.TransparencyScore,
		BaselineYear:              em.BaselineYear,
		MissedReports:             rep.MissedReports,
		GreenLoan:                 p.IsGreenLoan(),
		GreenLoanPrinciples:       lma.GreenLoanPrinciples,
		SustainabilityCoordinator: lma.SustainabilityCoordinator,
		ReportingAligned:          lma.ReportingAligned,
	}
}
