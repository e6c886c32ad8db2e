package dto

import (
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/model"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/service"
)

// GetCovenantPortfolioRequest selects which loans are listed. Tier is one of
// all, low, medium or high; empty means all.
type GetCovenantPortfolioRequest struct {
	Tier string `json:"tier"`
}

// CovenantResponse is one covenant reading.
type CovenantResponse struct {
	Type         string  `json:"type"`
	Trend        string  `json:"trend"`
	CurrentValue float64 `json:"current_value"`
	Limit        float64 `json:"limit"`
	Cushion      float64 `json:"cushion"`
}

// CovenantLoanResponse is a monitored loan with its derived tiers.
type CovenantLoanResponse struct {
	Covenants         []CovenantResponse `json:"covenants"`
	Alerts            []AlertResponse    `json:"alerts"`
	LoanID            string             `json:"loan_id"`
	BorrowerName      string             `json:"borrower_name"`
	Tier              string             `json:"tier"`
	BreachBand        string             `json:"breach_band"`
	RiskScore         float64            `json:"risk_score"`
	BreachProbability float64            `json:"breach_probability"`
	ForecastPeriod    int                `json:"forecast_period_days"`
}

// CovenantPortfolioResponse is the output DTO of GetCovenantPortfolio.
type CovenantPortfolioResponse struct {
	Loans                 []CovenantLoanResponse `json:"loans"`
	Filter                string                 `json:"filter"`
	Aggregate             AggregateResponse      `json:"aggregate"`
	HighRiskConcentration int                    `json:"high_risk_concentration_pct"`
	OpenAlerts            int                    `json:"open_alerts"`
}

// FromCovenantPortfolio maps the domain portfolio view to its response DTO.
func FromCovenantPortfolio(p service.CovenantPortfolio, filter string) CovenantPortfolioResponse {
	loans := make([]CovenantLoanResponse, 0, len(p.Loans))
	for _, lr := range p.Loans {
		resp := FromCovenantLoan(lr.Loan)
		resp.Tier = lr.Tier.String()
		resp.BreachBand = lr.BreachBand.String()
		loans = append(loans, resp)
	}
	return CovenantPortfolioResponse{
		Loans:                 loans,
		Filter:                filter,
		Aggregate:             FromAggregate(p.Aggregate),
		HighRiskConcentration: p.HighRiskConcentration,
		OpenAlerts:            p.OpenAlerts,
	}
}

// FromCovenantLoan maps a covenant loan to its response DTO.
func FromCovenantLoan(l *model.CovenantLoan) CovenantLoanResponse {
	covenants := make([]CovenantResponse, 0, len(l.Covenants()))
	for _, c := range l.Covenants() {
		covenants = append(covenants, CovenantResponse{
			Type:         c.Type,
			Trend:        string(c.Trend),
			CurrentValue: c.CurrentValue,
			Limit:        c.Limit,
			Cushion:      c.Cushion,
		})
	}
	return CovenantLoanResponse{
		Covenants:         covenants,
		Alerts:            FromAlerts(l.Alerts()),
		LoanID:            l.ID(),
		BorrowerName:      l.Name(),
		Tier:              service.Classify(l.RiskScore()).String(),
		BreachBand:        service.Classify(l.BreachProbability()).String(),
		RiskScore:         l.RiskScore(),
		BreachProbability: l.BreachProbability(),
		ForecastPeriod:    l.ForecastPeriod(),
	}
}
