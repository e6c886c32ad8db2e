package service

import (
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/model"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/valueobject"
)

// ESGOverview summarizes green loan compliance and greenwashing exposure.
type ESGOverview struct {
	TotalLoans          int
	GreenLoans          int
	HighRiskFlags       int
	AverageTransparency int
	Exposure            model.PortfolioAggregate
}

// SummarizeESG computes the ESG overview of a set of profiles.
func SummarizeESG(profiles []*model.ESGProfile) ESGOverview {
	overview := ESGOverview{
		TotalLoans: len(profiles),
		Exposure:   Aggregate(profiles),
	}

	var transparency float64
	for _, p := range profiles {
		if p.IsGreenLoan() {
			overview.GreenLoans++
		}
		gw := p.Greenwashing()
		if gw.Level.Equal(valueobject.RiskTierHigh) {
			overview.HighRiskFlags++
		}
		transparency += gw.TransparencyScore
	}
	if len(profiles) > 0 {
		overview.AverageTransparency = roundHalfUp(transparency / float64(len(profiles)))
	}

	return overview
}

// FlaggedProfiles returns the profiles whose greenwashing label is high, in order.
func FlaggedProfiles(profiles []*model.ESGProfile) []*model.ESGProfile {
	var out []*model.ESGProfile
	for _, p := range profiles {
		if p.Greenwashing().Level.Equal(valueobject.RiskTierHigh) {
			out = append(out, p)
		}
	}
	return out
}

// FindProfile returns the profile with the given loan ID. An empty ID selects
// the first profile. The boolean is false when nothing matches.
func FindProfile(profiles []*model.ESGProfile, loanID string) (*model.ESGProfile, bool) {
	if len(profiles) == 0 {
		return nil, false
	}
	if loanID == "" {
		return profiles[0], true
	}
	for _, p := range profiles {
		if p.ID() == loanID {
			return p, true
		}
	}
	return nil, false
}
