package service

import (
	"math"

	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/model"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/valueobject"
)

// Classify buckets a score into a risk tier: above 60 is high, 30 to 60
// inclusive is medium, below 30 is low. Out-of-range input is not rejected.
func Classify(score float64) valueobject.RiskTier {
	return valueobject.RiskTierFromScore(score)
}

// Aggregate summarizes a collection of scored entities. An empty collection
// yields a zero aggregate, including an average score of 0.
func Aggregate[E model.ScoredEntity](entities []E) model.PortfolioAggregate {
	var (
		agg model.PortfolioAggregate
		sum float64
	)

	for _, e := range entities {
		score := e.RiskScore()
		switch Classify(score) {
		case valueobject.RiskTierHigh:
			agg.HighCount++
		case valueobject.RiskTierMedium:
			agg.MediumCount++
		default:
			agg.LowCount++
		}
		sum += score
		agg.TotalAlerts += len(e.Alerts())
	}

	agg.Total = len(entities)
	if agg.Total > 0 {
		agg.AverageScore = roundHalfUp(sum / float64(agg.Total))
	}

	return agg
}

// FilterByTier returns the entities whose tier passes the filter, in their
// original order. The input slice is never modified.
func FilterByTier[E model.ScoredEntity](entities []E, filter valueobject.TierFilter) []E {
	out := make([]E, 0, len(entities))
	for _, e := range entities {
		if filter.Matches(Classify(e.RiskScore())) {
			out = append(out, e)
		}
	}
	return out
}

// roundHalfUp rounds to the nearest integer with .5 going towards +Inf.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// percentOf returns round(part/whole*100), or 0 when whole is 0.
func percentOf(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return roundHalfUp(float64(part) / float64(whole) * 100)
}
