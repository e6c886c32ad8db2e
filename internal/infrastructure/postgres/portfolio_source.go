package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/model"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/valueobject"
	pgpkg "github.com/midhunrajcharles/SyndicateIQ/pkg/postgres"
)

// DB is the subset of pgxpool.Pool the source needs.
type DB interface {
	pgpkg.Querier
	Ping(ctx context.Context) error
}

// PortfolioSource implements port.PortfolioSource using PostgreSQL. It only
// reads; rows are returned in ascending position order.
type PortfolioSource struct {
	db DB
}

// NewPortfolioSource creates a new PostgreSQL-backed portfolio source.
func NewPortfolioSource(db DB) *PortfolioSource {
	return &PortfolioSource{db: db}
}

// Ping checks database connectivity.
func (s *PortfolioSource) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// CovenantLoans loads every covenant loan with its readings and alerts.
func (s *PortfolioSource) CovenantLoans(ctx context.Context) ([]*model.CovenantLoan, error) {
	covenants, err := s.loadCovenants(ctx)
	if err != nil {
		return nil, err
	}
	alerts, err := s.loadAlerts(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT loan_id, borrower_name, risk_score, breach_probability, forecast_period_days
		FROM covenant_loans
		ORDER BY position, loan_id
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query covenant loans: %w", err)
	}
	defer rows.Close()

	var loans []*model.CovenantLoan
	for rows.Next() {
		var (
			loanID, borrower  string
			riskScore, breach float64
			forecast          int
		)
		if err := rows.Scan(&loanID, &borrower, &riskScore, &breach, &forecast); err != nil {
			return nil, fmt.Errorf("failed to scan covenant loan row: %w", err)
		}

		loan, err := model.NewCovenantLoan(loanID, borrower, riskScore, breach, forecast, covenants[loanID], alerts[loanID])
		if err != nil {
			return nil, fmt.Errorf("invalid covenant loan %s: %w", loanID, err)
		}
		loans = append(loans, loan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate covenant loans: %w", err)
	}

	return loans, nil
}

func (s *PortfolioSource) loadCovenants(ctx context.Context) (map[string][]model.CovenantStatus, error) {
	query := `
		SELECT loan_id, covenant_type, current_value, limit_value, cushion, trend
		FROM covenant_statuses
		ORDER BY loan_id, position
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query covenant statuses: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]model.CovenantStatus)
	for rows.Next() {
		var (
			loanID, trendStr string
			c                model.CovenantStatus
		)
		if err := rows.Scan(&loanID, &c.Type, &c.CurrentValue, &c.Limit, &c.Cushion, &trendStr); err != nil {
			return nil, fmt.Errorf("failed to scan covenant status row: %w", err)
		}
		if c.Trend, err = valueobject.CovenantTrendFromString(trendStr); err != nil {
			return nil, fmt.Errorf("failed to parse trend: %w", err)
		}
		out[loanID] = append(out[loanID], c)
	}

	return out, rows.Err()
}

func (s *PortfolioSource) loadAlerts(ctx context.Context) (map[string][]model.Alert, error) {
	query := `
		SELECT loan_id, severity, message, triggered_at, resolved
		FROM covenant_alerts
		ORDER BY loan_id, position
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query covenant alerts: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]model.Alert)
	for rows.Next() {
		var (
			loanID, severityStr string
			a                   model.Alert
		)
		if err := rows.Scan(&loanID, &severityStr, &a.Message, &a.TriggeredAt, &a.Resolved); err != nil {
			return nil, fmt.Errorf("failed to scan covenant alert row: %w", err)
		}
		if a.Severity, err = valueobject.AlertSeverityFromString(severityStr); err != nil {
			return nil, fmt.Errorf("failed to parse severity: %w", err)
		}
		out[loanID] = append(out[loanID], a)
	}

	return out, rows.Err()
}

// ESGProfiles loads every ESG profile.
func (s *PortfolioSource) ESGProfiles(ctx context.Context) ([]*model.ESGProfile, error) {
	query := `
		SELECT loan_id, borrower_name, green_loan,
			reported_emissions, verified_emissions, verification_date,
			baseline_year, target_reduction, current_reduction,
			reporting_frequency, last_submitted, missed_reports, reporting_completeness,
			greenwashing_level, transparency_score, flags,
			lma_green_loan_principles, lma_sustainability_coordinator, lma_reporting_aligned
		FROM esg_profiles
		ORDER BY position, loan_id
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query esg profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*model.ESGProfile
	for rows.Next() {
		profile, err := scanESGProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate esg profiles: %w", err)
	}

	return profiles, nil
}

func scanESGProfile(rows pgx.Rows) (*model.ESGProfile, error) {
	var (
		loanID, borrower string
		green            bool
		em               model.Emissions
		rep              model.ESGReporting
		levelStr         string
		gw               model.GreenwashingRisk
		lma              model.LMACompliance
	)

	err := rows.Scan(
		&loanID, &borrower, &green,
		&em.Reported, &em.Verified, &em.VerificationDate,
		&em.BaselineYear, &em.TargetReduction, &em.CurrentReduction,
		&rep.Frequency, &rep.LastSubmitted, &rep.MissedReports, &rep.Completeness,
		&levelStr, &gw.TransparencyScore, &gw.Flags,
		&lma.GreenLoanPrinciples, &lma.SustainabilityCoordinator, &lma.ReportingAligned,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan esg profile row: %w", err)
	}

	if gw.Level, err = valueobject.RiskTierFromString(levelStr); err != nil {
		return nil, fmt.Errorf("failed to parse greenwashing level: %w", err)
	}

	profile, err := model.NewESGProfile(loanID, borrower, green, em, rep, gw, lma)
	if err != nil {
		return nil, fmt.Errorf("invalid esg profile %s: %w", loanID, err)
	}
	return profile, nil
}

// LoanDocuments loads every uploaded facility agreement.
func (s *PortfolioSource) LoanDocuments(ctx context.Context) ([]*model.LoanDocument, error) {
	query := `
		SELECT id, file_name, uploaded_at, processing_time_ms, status,
			borrower, amount, currency, interest_rate, maturity_date,
			facility_type, lenders, agent
		FROM loan_documents
		ORDER BY position, id
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query loan documents: %w", err)
	}
	defer rows.Close()

	var docs []*model.LoanDocument
	for rows.Next() {
		var (
			id, fileName string
			uploadedAt   time.Time
			processingMS int64
			statusStr    string
			terms        model.FacilityTerms
			amount       decimal.Decimal
		)
		err := rows.Scan(
			&id, &fileName, &uploadedAt, &processingMS, &statusStr,
			&terms.Borrower, &amount, &terms.Currency, &terms.InterestRate, &terms.MaturityDate,
			&terms.FacilityType, &terms.Lenders, &terms.Agent,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan document row: %w", err)
		}
		terms.Amount = amount

		status, err := valueobject.DocumentStatusFromString(statusStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse document status: %w", err)
		}

		doc, err := model.NewLoanDocument(id, fileName, uploadedAt, time.Duration(processingMS)*time.Millisecond, status, terms)
		if err != nil {
			return nil, fmt.Errorf("invalid loan document %s: %w", id, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate loan documents: %w", err)
	}

	return docs, nil
}

// VerificationItems loads the due diligence checklist.
func (s *PortfolioSource) VerificationItems(ctx context.Context) ([]model.VerificationItem, error) {
	query := `
		SELECT id, category, item, status, details, priority, last_checked
		FROM verification_items
		ORDER BY position, id
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query verification items: %w", err)
	}
	defer rows.Close()

	var items []model.VerificationItem
	for rows.Next() {
		var (
			it                     model.VerificationItem
			statusStr, priorityStr string
		)
		if err := rows.Scan(&it.ID, &it.Category, &it.Item, &statusStr, &it.Details, &priorityStr, &it.LastChecked); err != nil {
			return nil, fmt.Errorf("failed to scan verification item row: %w", err)
		}
		if it.Status, err = valueobject.CheckStatusFromString(statusStr); err != nil {
			return nil, fmt.Errorf("failed to parse check status: %w", err)
		}
		if it.Priority, err = valueobject.PriorityFromString(priorityStr); err != nil {
			return nil, fmt.Errorf("failed to parse priority: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate verification items: %w", err)
	}

	return items, nil
}
