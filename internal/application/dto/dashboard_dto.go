package dto

import (
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/service"
)

// FlaggedESGResponse is a borrower with a high greenwashing label.
type FlaggedESGResponse struct {
	Flags        []string `json:"flags"`
	LoanID       string   `json:"loan_id"`
	BorrowerName string   `json:"borrower_name"`
}

// DashboardResponse is the output DTO of GetDashboard.
type DashboardResponse struct {
	HighRiskLoans      []CovenantLoanResponse `json:"high_risk_loans"`
	ESGFlags           []FlaggedESGResponse   `json:"esg_flags"`
	RecentAlerts       []AlertResponse        `json:"recent_alerts"`
	PortfolioValue     string                 `json:"portfolio_value"`
	Covenants          AggregateResponse      `json:"covenants"`
	ProcessedDocuments int                    `json:"processed_documents"`
}

// FromDashboard maps the domain dashboard to its response DTO.
func FromDashboard(d service.Dashboard) DashboardResponse {
	loans := make([]CovenantLoanResponse, 0, len(d.HighRiskLoans))
	for _, l := range d.HighRiskLoans {
		loans = append(loans, FromCovenantLoan(l))
	}

	flags := make([]FlaggedESGResponse, 0, len(d.ESGFlags))
	for _, p := range d.ESGFlags {
		f := p.Greenwashing().Flags
		if f == nil {
			f = []string{}
		}
		flags = append(flags, FlaggedESGResponse{Flags: f, LoanID: p.ID(), BorrowerName: p.Name()})
	}

	alerts := make([]AlertResponse, 0, len(d.RecentAlerts))
	for _, v := range d.RecentAlerts {
		a := fromAlert(v.Alert)
		a.EntityID = v.EntityID
		a.Borrower = v.Borrower
		alerts = append(alerts, a)
	}

	return DashboardResponse{
		HighRiskLoans:      loans,
		ESGFlags:           flags,
		RecentAlerts:       alerts,
		PortfolioValue:     d.PortfolioValue.StringFixed(2),
		Covenants:          FromAggregate(d.Covenants),
		ProcessedDocuments: d.ProcessedDocuments,
	}
}
