package model

import (
	"fmt"
	"slices"

	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/valueobject"
)

// CovenantStatus is the current reading of one financial covenant.
type CovenantStatus struct {
	Type         string
	CurrentValue float64
	Limit        float64
	Cushion      float64
	Trend        valueobject.CovenantTrend
}

// CovenantLoan is a monitored loan with its covenant readings and risk score.
type CovenantLoan struct {
	loanID            string
	borrowerName      string
	covenants         []CovenantStatus
	alerts            []Alert
	riskScore         float64
	breachProbability float64
	forecastPeriod    int
}

// NewCovenantLoan validates and builds a CovenantLoan. Slices are copied so the
// loan stays immutable.
func NewCovenantLoan(
	loanID string,
	borrowerName string,
	riskScore float64,
	breachProbability float64,
	forecastPeriod int,
	covenants []CovenantStatus,
	alerts []Alert,
) (*CovenantLoan, error) {
	if loanID == "" {
		return nil, fmt.Errorf("loan ID is required")
	}
	if borrowerName == "" {
		return nil, fmt.Errorf("borrower name is required")
	}
	if err := validateScore("risk score", riskScore); err != nil {
		return nil, err
	}
	if err := validateScore("breach probability", breachProbability); err != nil {
		return nil, err
	}
	if forecastPeriod < 0 {
		return nil, fmt.Errorf("forecast period must not be negative, got %d", forecastPeriod)
	}

	return &CovenantLoan{
		loanID:            loanID,
		borrowerName:      borrowerName,
		riskScore:         riskScore,
		breachProbability: breachProbability,
		forecastPeriod:    forecastPeriod,
		covenants:         slices.Clone(covenants),
		alerts:            slices.Clone(alerts),
	}, nil
}

func validateScore(field string, v float64) error {
	if !(v >= 0 && v <= 100) {
		return fmt.Errorf("%s must be between 0 and 100, got %v", field, v)
	}
	return nil
}

func (l *CovenantLoan) ID() string                  { return l.loanID }
func (l *CovenantLoan) Name() string                { return l.borrowerName }
func (l *CovenantLoan) RiskScore() float64          { return l.riskScore }
func (l *CovenantLoan) BreachProbability() float64  { return l.breachProbability }
func (l *CovenantLoan) ForecastPeriod() int         { return l.forecastPeriod }
func (l *CovenantLoan) Covenants() []CovenantStatus { return slices.Clone(l.covenants) }
func (l *CovenantLoan) Alerts() []Alert             { return slices.Clone(l.alerts) }
