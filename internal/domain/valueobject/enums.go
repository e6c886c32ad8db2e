package valueobject

import "fmt"

// AlertSeverity is the urgency of an alert.
type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// AlertSeverityFromString validates a severity label.
func AlertSeverityFromString(s string) (AlertSeverity, error) {
	switch sev := AlertSeverity(s); sev {
	case SeverityInfo, SeverityWarning, SeverityCritical:
		return sev, nil
	default:
		return "", fmt.Errorf("invalid alert severity: %q", s)
	}
}

// Weight orders severities, higher is more urgent.
func (s AlertSeverity) Weight() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

// CovenantTrend is the direction a covenant metric is moving.
type CovenantTrend string

const (
	TrendImproving     CovenantTrend = "improving"
	TrendStable        CovenantTrend = "stable"
	TrendDeteriorating CovenantTrend = "deteriorating"
)

// CovenantTrendFromString validates a trend label.
func CovenantTrendFromString(s string) (CovenantTrend, error) {
	switch tr := CovenantTrend(s); tr {
	case TrendImproving, TrendStable, TrendDeteriorating:
		return tr, nil
	default:
		return "", fmt.Errorf("invalid covenant trend: %q", s)
	}
}

// DocumentStatus is the processing state of an uploaded loan document.
type DocumentStatus string

const (
	DocumentProcessing DocumentStatus = "processing"
	DocumentComplete   DocumentStatus = "complete"
	DocumentError      DocumentStatus = "error"
)

// DocumentStatusFromString validates a document status label.
func DocumentStatusFromString(s string) (DocumentStatus, error) {
	switch st := DocumentStatus(s); st {
	case DocumentProcessing, DocumentComplete, DocumentError:
		return st, nil
	default:
		return "", fmt.Errorf("invalid document status: %q", s)
	}
}

// CheckStatus is the outcome of a due diligence verification item.
type CheckStatus string

const (
	CheckPass    CheckStatus = "pass"
	CheckWarning CheckStatus = "warning"
	CheckFail    CheckStatus = "fail"
	CheckPending CheckStatus = "pending"
)

// CheckStatusFromString validates a check status label.
func CheckStatusFromString(s string) (CheckStatus, error) {
	switch st := CheckStatus(s); st {
	case CheckPass, CheckWarning, CheckFail, CheckPending:
		return st, nil
	default:
		return "", fmt.Errorf("invalid check status: %q", s)
	}
}

// Priority ranks verification items.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// PriorityFromString validates a priority label.
func PriorityFromString(s string) (Priority, error) {
	switch p := Priority(s); p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p, nil
	default:
		return "", fmt.Errorf("invalid priority: %q", s)
	}
}

// TransparencyBand groups ESG transparency scores.
type TransparencyBand string

const (
	TransparencyStrong   TransparencyBand = "strong"
	TransparencyModerate TransparencyBand = "moderate"
	TransparencyWeak     TransparencyBand = "weak"
)

// TransparencyBandFromScore buckets a transparency score: 80 and above is
// strong, 60 and above moderate, anything lower weak.
func TransparencyBandFromScore(score float64) TransparencyBand {
	switch {
	case score >= 80:
		return TransparencyStrong
	case score >= 60:
		return TransparencyModerate
	default:
		return TransparencyWeak
	}
}
