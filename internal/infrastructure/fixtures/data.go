package fixtures

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/model"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/valueobject"
)

func at(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr(t time.Time) *time.Time { return &t }

func alert(severity valueobject.AlertSeverity, message, triggered string, resolved bool) model.Alert {
	return model.Alert{
		Severity:    severity,
		Message:     message,
		TriggeredAt: ptr(at(triggered)),
		Resolved:    resolved,
	}
}

func covenantLoans() ([]*model.CovenantLoan, error) {
	var (
		loans []*model.CovenantLoan
		err   error
	)
	add := func(id, borrower string, score, breach float64, forecast int, covenants []model.CovenantStatus, alerts ...model.Alert) {
		if err != nil {
			return
		}
		var l *model.CovenantLoan
		if l, err = model.NewCovenantLoan(id, borrower, score, breach, forecast, covenants, alerts); err == nil {
			loans = append(loans, l)
		}
	}

	add("LN-2024-001", "Green Energy Corporation", 72, 68, 90,
		[]model.CovenantStatus{
			{Type: "Debt/EBITDA", CurrentValue: 2.85, Limit: 3.0, Cushion: 5.0, Trend: valueobject.TrendDeteriorating},
			{Type: "Interest Coverage", CurrentValue: 4.3, Limit: 4.0, Cushion: 7.5, Trend: valueobject.TrendStable},
		},
		alert(valueobject.SeverityCritical, "Debt/EBITDA cushion below 10%", "2026-01-07 09:15", false),
		alert(valueobject.SeverityWarning, "Q4 compliance certificate due in 5 days", "2026-01-06 08:00", false),
	)
	add("LN-2024-002", "Metro Infrastructure Partners", 45, 34, 90,
		[]model.CovenantStatus{
			{Type: "Leverage Ratio", CurrentValue: 2.1, Limit: 2.5, Cushion: 16.0, Trend: valueobject.TrendStable},
			{Type: "Current Ratio", CurrentValue: 1.7, Limit: 1.5, Cushion: 13.3, Trend: valueobject.TrendImproving},
		},
		alert(valueobject.SeverityInfo, "Annual budget submitted", "2026-01-02 11:30", true),
	)
	add("LN-2024-003", "Coastal Logistics Group", 18, 9, 180,
		[]model.CovenantStatus{
			{Type: "Debt/EBITDA", CurrentValue: 1.6, Limit: 3.5, Cushion: 54.3, Trend: valueobject.TrendImproving},
		},
	)
	add("LN-2024-004", "Northern Retail Holdings", 64, 57, 60,
		[]model.CovenantStatus{
			{Type: "Interest Coverage", CurrentValue: 2.2, Limit: 2.0, Cushion: 9.1, Trend: valueobject.TrendDeteriorating},
			{Type: "Minimum Liquidity", CurrentValue: 42, Limit: 40, Cushion: 4.8, Trend: valueobject.TrendDeteriorating},
		},
		alert(valueobject.SeverityCritical, "Minimum liquidity cushion below 5%", "2026-01-08 17:20", false),
	)
	add("LN-2024-005", "Pacific Healthcare Systems", 30, 21, 120,
		[]model.CovenantStatus{
			{Type: "Fixed Charge Coverage", CurrentValue: 1.45, Limit: 1.25, Cushion: 13.8, Trend: valueobject.TrendStable},
		},
		alert(valueobject.SeverityWarning, "Capex above plan for second quarter", "2026-01-05 10:00", false),
	)

	return loans, err
}

func esgProfiles() ([]*model.ESGProfile, error) {
	var (
		profiles []*model.ESGProfile
		err      error
	)
	add := func(id, borrower string, green bool, em model.Emissions, rep model.ESGReporting, gw model.GreenwashingRisk, lma model.LMACompliance) {
		if err != nil {
			return
		}
		var p *model.ESGProfile
		if p, err = model.NewESGProfile(id, borrower, green, em, rep, gw, lma); err == nil {
			profiles = append(profiles, p)
		}
	}

	add("LN-2024-001", "Green Energy Corporation", true,
		model.Emissions{Reported: 125000, Verified: 123800, VerificationDate: ptr(at("2025-11-30 00:00")), BaselineYear: 2022, TargetReduction: 30, CurrentReduction: 18},
		model.ESGReporting{Frequency: "Quarterly", LastSubmitted: ptr(at("2025-12-31 00:00")), Completeness: 96},
		model.GreenwashingRisk{Level: valueobject.RiskTierLow, TransparencyScore: 88},
		model.LMACompliance{GreenLoanPrinciples: true, SustainabilityCoordinator: true, ReportingAligned: true},
	)
	add("LN-2024-006", "Sunrise Manufacturing Ltd", true,
		model.Emissions{Reported: 310000, BaselineYear: 2021, TargetReduction: 40, CurrentReduction: 6},
		model.ESGReporting{Frequency: "Semi-annual", LastSubmitted: ptr(at("2025-07-15 00:00")), MissedReports: 1, Completeness: 58},
		model.GreenwashingRisk{
			Level:             valueobject.RiskTierHigh,
			TransparencyScore: 42,
			Flags: []string{
				"Emission reductions not independently verified",
				"Use of proceeds reporting incomplete",
			},
		},
		model.LMACompliance{GreenLoanPrinciples: true},
	)
	add("LN-2024-007", "Harbor Real Estate Trust", false,
		model.Emissions{Reported: 48000, Verified: 46500, VerificationDate: ptr(at("2025-10-01 00:00")), BaselineYear: 2020, TargetReduction: 25, CurrentReduction: 12},
		model.ESGReporting{Frequency: "Annual", LastSubmitted: ptr(at("2025-04-30 00:00")), Completeness: 81},
		model.GreenwashingRisk{
			Level:             valueobject.RiskTierMedium,
			TransparencyScore: 68,
			Flags:             []string{"Baseline year restated without explanation"},
		},
		model.LMACompliance{SustainabilityCoordinator: true, ReportingAligned: true},
	)

	return profiles, err
}

func loanDocuments() ([]*model.LoanDocument, error) {
	var (
		docs []*model.LoanDocument
		err  error
	)
	add := func(id, file, uploaded string, processing time.Duration, status valueobject.DocumentStatus, terms model.FacilityTerms) {
		if err != nil {
			return
		}
		var d *model.LoanDocument
		if d, err = model.NewLoanDocument(id, file, at(uploaded), processing, status, terms); err == nil {
			docs = append(docs, d)
		}
	}

	add("DOC-001", "green-energy-facility-agreement.pdf", "2026-01-08 09:12", 134*time.Second, valueobject.DocumentComplete,
		model.FacilityTerms{
			Borrower:     "Green Energy Corporation",
			Amount:       decimal.NewFromInt(250_000_000),
			Currency:     "USD",
			InterestRate: "SOFR + 2.1%",
			MaturityDate: "2031-12-15",
			FacilityType: "Term Loan Facility",
			Lenders:      []string{"Global Bank Ltd", "International Finance Corp", "Sustainable Investors Fund"},
			Agent:        "Global Bank Ltd",
		},
	)
	add("DOC-002", "metro-infrastructure-rcf.pdf", "2026-01-07 14:40", 182*time.Second, valueobject.DocumentComplete,
		model.FacilityTerms{
			Borrower:     "Metro Infrastructure Partners",
			Amount:       decimal.NewFromInt(175_000_000),
			Currency:     "USD",
			InterestRate: "SOFR + 1.75%",
			MaturityDate: "2029-06-30",
			FacilityType: "Revolving Credit Facility",
			Lenders:      []string{"Global Bank Ltd", "Continental Credit AG"},
			Agent:        "Continental Credit AG",
		},
	)
	add("DOC-003", "northern-retail-term-loan-b.pdf", "2026-01-08 16:05", 0, valueobject.DocumentProcessing,
		model.FacilityTerms{
			Borrower:     "Northern Retail Holdings",
			Amount:       decimal.RequireFromString("90000000.00"),
			Currency:     "USD",
			FacilityType: "Term Loan B",
		},
	)

	return docs, err
}

func verificationItems() []model.VerificationItem {
	item := func(id, category, name string, status valueobject.CheckStatus, details string, priority valueobject.Priority, checked string) model.VerificationItem {
		return model.VerificationItem{
			ID:          id,
			Category:    category,
			Item:        name,
			Status:      status,
			Details:     details,
			Priority:    priority,
			LastChecked: at(checked),
		}
	}

	const (
		financial   = "Financial"
		legal       = "Legal & Compliance"
		operational = "Operational"
		esg         = "ESG & Risk"
	)

	return []model.VerificationItem{
		item("fin-001", financial, "Financial Statements Verification", valueobject.CheckPass, "Q3 2025 financial statements audited and verified. All metrics within acceptable ranges.", valueobject.PriorityHigh, "2026-01-08 14:30"),
		item("fin-002", financial, "Cash Flow Analysis", valueobject.CheckPass, "Operating cash flow increased 15% YoY. Debt service coverage ratio at 2.3x.", valueobject.PriorityHigh, "2026-01-08 14:45"),
		item("fin-003", financial, "Debt Structure Review", valueobject.CheckWarning, "Total debt ratio at 3.8x, slightly above preferred 3.5x threshold.", valueobject.PriorityMedium, "2026-01-08 15:00"),
		item("fin-004", financial, "Revenue Recognition", valueobject.CheckPass, "Revenue recognition policies compliant with IFRS 15. No irregularities detected.", valueobject.PriorityMedium, "2026-01-08 15:15"),
		item("legal-001", legal, "Corporate Documentation", valueobject.CheckPass, "Articles of incorporation, bylaws, and board resolutions current and valid.", valueobject.PriorityHigh, "2026-01-08 16:00"),
		item("legal-002", legal, "Regulatory Licenses", valueobject.CheckPass, "All required licenses and permits valid. No regulatory violations found.", valueobject.PriorityHigh, "2026-01-08 16:15"),
		item("legal-003", legal, "Pending Litigation Review", valueobject.CheckWarning, "Two minor commercial disputes ongoing. Estimated exposure under $50K.", valueobject.PriorityMedium, "2026-01-08 16:30"),
		item("legal-004", legal, "Contract Compliance", valueobject.CheckFail, "Three major contracts missing standard compliance clauses. Immediate action required.", valueobject.PriorityHigh, "2026-01-08 16:45"),
		item("ops-001", operational, "Management Team Review", valueobject.CheckPass, "Key management personnel experienced and qualified. Low turnover rate.", valueobject.PriorityHigh, "2026-01-08 17:00"),
		item("ops-002", operational, "Supply Chain Analysis", valueobject.CheckPass, "Diverse supplier base with good redundancy. No single points of failure.", valueobject.PriorityMedium, "2026-01-08 17:15"),
		item("ops-003", operational, "IT Systems Assessment", valueobject.CheckWarning, "Core systems operational but cybersecurity framework needs updates.", valueobject.PriorityHigh, "2026-01-08 17:30"),
		item("ops-004", operational, "Quality Control Systems", valueobject.CheckPass, "ISO 9001 certified. Quality metrics consistently above industry average.", valueobject.PriorityMedium, "2026-01-08 17:45"),
		item("esg-001", esg, "Environmental Compliance", valueobject.CheckPass, "All environmental permits current. No violations in past 3 years.", valueobject.PriorityMedium, "2026-01-08 18:00"),
		item("esg-002", esg, "Social Impact Assessment", valueobject.CheckPass, "Strong community engagement programs. Employee satisfaction at 87%.", valueobject.PriorityLow, "2026-01-08 18:15"),
		item("esg-003", esg, "Climate Risk Analysis", valueobject.CheckWarning, "Climate risk exposure moderate. Transition plan being developed.", valueobject.PriorityMedium, "2026-01-08 18:30"),
		item("esg-004", esg, "Governance Structure", valueobject.CheckPass, "Board independence and oversight strong. ESG committee established.", valueobject.PriorityHigh, "2026-01-08 18:45"),
	}
}
