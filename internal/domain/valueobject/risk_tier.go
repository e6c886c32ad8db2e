package valueobject

import "fmt"

// Tier boundaries. A score above HighTierFloor is high, a score below
// MediumTierFloor is low, and everything in between (both ends inclusive) is medium.
const (
	MediumTierFloor = 30.0
	HighTierFloor   = 60.0
)

// RiskTier is an immutable value object representing a risk classification.
type RiskTier struct {
	value string
}

var (
	RiskTierLow    = RiskTier{value: "low"}
	RiskTierMedium = RiskTier{value: "medium"}
	RiskTierHigh   = RiskTier{value: "high"}
)

// RiskTiers lists every tier from least to most severe.
func RiskTiers() []RiskTier {
	return []RiskTier{RiskTierLow, RiskTierMedium, RiskTierHigh}
}

// RiskTierFromString reconstructs a RiskTier from its string representation.
func RiskTierFromString(s string) (RiskTier, error) {
	switch s {
	case "low":
		return RiskTierLow, nil
	case "medium":
		return RiskTierMedium, nil
	case "high":
		return RiskTierHigh, nil
	default:
		return RiskTier{}, fmt.Errorf("invalid risk tier: %q", s)
	}
}

// RiskTierFromScore buckets a score into a tier. Input is not range checked:
// negative scores land in low, scores above 100 in high, and NaN (which fails
// every comparison) in low.
func RiskTierFromScore(score float64) RiskTier {
	switch {
	case score > HighTierFloor:
		return RiskTierHigh
	case score >= MediumTierFloor:
		return RiskTierMedium
	default:
		return RiskTierLow
	}
}

// String returns the string representation.
func (t RiskTier) String() string {
	return t.value
}

// IsZero returns true if the RiskTier has not been set.
func (t RiskTier) IsZero() bool {
	return t.value == ""
}

// Equal checks equality with another RiskTier.
func (t RiskTier) Equal(other RiskTier) bool {
	return t.value == other.value
}

// MarshalText implements encoding.TextMarshaler.
func (t RiskTier) MarshalText() ([]byte, error) {
	return []byte(t.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *RiskTier) UnmarshalText(b []byte) error {
	parsed, err := RiskTierFromString(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
