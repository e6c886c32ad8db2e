package service

import (
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/model"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/valueobject"
)

// LoanRisk is a covenant loan paired with its derived tiers.
type LoanRisk struct {
	Loan *model.CovenantLoan
	Tier valueobject.RiskTier
	// BreachBand reuses the tier thresholds on the breach probability.
	BreachBand valueobject.RiskTier
}

// CovenantPortfolio is the covenant monitoring view of a loan book.
type CovenantPortfolio struct {
	Aggregate             model.PortfolioAggregate
	HighRiskConcentration int
	OpenAlerts            int
	Loans                 []LoanRisk
}

// SummarizeCovenants aggregates the whole book and lists the loans that pass
// filter. Aggregates always cover the full book, not only the filtered loans.
func SummarizeCovenants(loans []*model.CovenantLoan, filter valueobject.TierFilter) CovenantPortfolio {
	agg := Aggregate(loans)

	open := 0
	for _, l := range loans {
		open += countOpen(l.Alerts())
	}

	filtered := FilterByTier(loans, filter)
	views := make([]LoanRisk, 0, len(filtered))
	for _, l := range filtered {
		views = append(views, LoanRisk{
			Loan:       l,
			Tier:       Classify(l.RiskScore()),
			BreachBand: Classify(l.BreachProbability()),
		})
	}

	return CovenantPortfolio{
		Aggregate:             agg,
		HighRiskConcentration: percentOf(agg.HighCount, agg.Total),
		OpenAlerts:            open,
		Loans:                 views,
	}
}

func countOpen(alerts []model.Alert) int {
	n := 0
	for _, a := range alerts {
		if !a.Resolved {
			n++
		}
	}
	return n
}
