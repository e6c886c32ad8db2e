package service

import (
	"github.com/shopspring/decimal"

	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/model"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/valueobject"
)

const (
	recentHighRiskLoans = 2
	recentESGFlags      = 1
)

// AlertView is an alert attributed to a borrower.
type AlertView struct {
	EntityID string
	Borrower string
	Alert    model.Alert
}

// Dashboard is the portfolio intelligence hub.
type Dashboard struct {
	Covenants          model.PortfolioAggregate
	HighRiskLoans      []*model.CovenantLoan
	ESGFlags           []*model.ESGProfile
	ProcessedDocuments int
	PortfolioValue     decimal.Decimal
	RecentAlerts       []AlertView
}

// BuildDashboard assembles the dashboard from the three source collections.
// Recent alerts are every alert of the first two high-risk loans followed by
// the first flag of the first flagged ESG profile, reported as a warning.
func BuildDashboard(loans []*model.CovenantLoan, profiles []*model.ESGProfile, docs []*model.LoanDocument) Dashboard {
	d := Dashboard{
		Covenants:      Aggregate(loans),
		HighRiskLoans:  FilterByTier(loans, valueobject.TierFilterHigh),
		ESGFlags:       FlaggedProfiles(profiles),
		PortfolioValue: decimal.Zero,
		RecentAlerts:   []AlertView{},
	}

	for _, doc := range docs {
		if doc.Status() == valueobject.DocumentComplete {
			d.ProcessedDocuments++
		}
		d.PortfolioValue = d.PortfolioValue.Add(doc.Terms().Amount)
	}

	for _, loan := range firstN(d.HighRiskLoans, recentHighRiskLoans) {
		for _, a := range loan.Alerts() {
			d.RecentAlerts = append(d.RecentAlerts, AlertView{EntityID: loan.ID(), Borrower: loan.Name(), Alert: a})
		}
	}
	for _, p := range firstN(d.ESGFlags, recentESGFlags) {
		flags := p.Greenwashing().Flags
		if len(flags) == 0 {
			continue
		}
		d.RecentAlerts = append(d.RecentAlerts, AlertView{
			EntityID: p.ID(),
			Borrower: p.Name(),
			Alert:    model.Alert{Severity: valueobject.SeverityWarning, Message: flags[0]},
		})
	}

	return d
}

func firstN[T any](s []T, n int) []T {
	if len(s) < n {
		return s
	}
	return s[:n]
}
