package fixtures_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/service"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/valueobject"
	"github.com/midhunrajcharles/SyndicateIQ/internal/infrastructure/fixtures"
)

func newSource(t *testing.T) *fixtures.Source {
	t.Helper()
	src, err := fixtures.NewSource(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return src
}

func TestSource_CovenantBook(t *testing.T) {
	src := newSource(t)
	loans, err := src.CovenantLoans(context.Background())
	require.NoError(t, err)

	agg := service.Aggregate(loans)
	assert.Equal(t, 5, agg.Total)
	assert.Equal(t, 2, agg.HighCount)
	assert.Equal(t, 2, agg.MediumCount)
	assert.Equal(t, 1, agg.LowCount)
	assert.Equal(t, 46, agg.AverageScore)
	assert.Equal(t, 5, agg.TotalAlerts)

	// 30 sits on the medium boundary.
	medium := service.FilterByTier(loans, valueobject.TierFilterMedium)
	require.Len(t, medium, 2)
	assert.Equal(t, "LN-2024-005", medium[1].ID())
}

func TestSource_DueDiligenceChecklist(t *testing.T) {
	src := newSource(t)
	items, err := src.VerificationItems(context.Background())
	require.NoError(t, err)

	s := service.SummarizeDueDiligence(items)
	assert.Equal(t, 16, s.TotalItems)
	assert.Equal(t, 11, s.PassedItems)
	assert.Equal(t, 4, s.WarningItems)
	assert.Equal(t, 1, s.FailedItems)
	assert.Zero(t, s.PendingItems)
	assert.Equal(t, 69, s.PassRate)
	assert.Equal(t, []string{"Financial", "Legal & Compliance", "Operational", "ESG & Risk"}, s.Categories)
}

func TestSource_Dashboard(t *testing.T) {
	src := newSource(t)
	ctx := context.Background()

	loans, err := src.CovenantLoans(ctx)
	require.NoError(t, err)
	profiles, err := src.ESGProfiles(ctx)
	require.NoError(t, err)
	docs, err := src.LoanDocuments(ctx)
	require.NoError(t, err)

	d := service.BuildDashboard(loans, profiles, docs)
	assert.Equal(t, 2, d.ProcessedDocuments)
	assert.Equal(t, "515000000", d.PortfolioValue.String())
	require.Len(t, d.ESGFlags, 1)
	assert.Equal(t, "LN-2024-006", d.ESGFlags[0].ID())
	// two alerts from LN-2024-001, one from LN-2024-004, one ESG flag
	assert.Len(t, d.RecentAlerts, 4)
}

func TestSource_CancelledContext(t *testing.T) {
	src := newSource(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.CovenantLoans(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, src.Ping(ctx), context.Canceled)
}
