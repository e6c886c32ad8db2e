package valueobject

import "fmt"

// TierFilter selects entities by risk tier. The zero value is not valid;
// use TierFilterAll for the identity filter.
type TierFilter struct {
	tier RiskTier
	all  bool
}

var (
	TierFilterAll    = TierFilter{all: true}
	TierFilterLow    = TierFilter{tier: RiskTierLow}
	TierFilterMedium = TierFilter{tier: RiskTierMedium}
	TierFilterHigh   = TierFilter{tier: RiskTierHigh}
)

// TierFilterFromString parses "all", "low", "medium" or "high". An empty
// string is treated as "all".
func TierFilterFromString(s string) (TierFilter, error) {
	if s == "" || s == "all" {
		return TierFilterAll, nil
	}
	tier, err := RiskTierFromString(s)
	if err != nil {
		return TierFilter{}, fmt.Errorf("invalid tier filter: %q", s)
	}
	return TierFilter{tier: tier}, nil
}

// Matches reports whether a tier passes the filter.
func (f TierFilter) Matches(tier RiskTier) bool {
	return f.all || f.tier.Equal(tier)
}

// IsAll reports whether this is the identity filter.
func (f TierFilter) IsAll() bool {
	return f.all
}

func (f TierFilter) String() string {
	if f.all {
		return "all"
	}
	return f.tier.String()
}
