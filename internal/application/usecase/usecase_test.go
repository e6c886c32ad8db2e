package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midhunrajcharles/SyndicateIQ/internal/application/dto"
	"github.com/midhunrajcharles/SyndicateIQ/internal/application/usecase"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/event"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClassifyScore_Execute(t *testing.T) {
	uc := usecase.NewClassifyScore()

	tests := []struct {
		score float64
		want  string
	}{
		{0, "low"},
		{29.5, "low"},
		{30, "medium"},
		{60, "medium"},
		{60.5, "high"},
		{100, "high"},
	}
	for _, tt := range tests {
		resp := uc.Execute(context.Background(), dto.ClassifyScoreRequest{Score: tt.score})
		assert.Equal(t, tt.want, resp.Tier, "score %v", tt.score)
		assert.Equal(t, tt.score, resp.Score)
	}
}

func TestGetCovenantPortfolio_Execute(t *testing.T) {
	t.Run("filters loans and aggregates the whole book", func(t *testing.T) {
		pub := &mockPublisher{}
		uc := usecase.NewGetCovenantPortfolio(bookSource(t), pub, discardLogger())

		resp, err := uc.Execute(context.Background(), dto.GetCovenantPortfolioRequest{Tier: "high"})

		require.NoError(t, err)
		assert.Equal(t, "high", resp.Filter)
		assert.Equal(t, 4, resp.Aggregate.Total)
		assert.Equal(t, 2, resp.Aggregate.HighCount)
		assert.Equal(t, 50, resp.Aggregate.AverageScore)
		assert.Equal(t, 50, resp.HighRiskConcentration)
		assert.Equal(t, 1, resp.OpenAlerts)

		require.Len(t, resp.Loans, 2)
		assert.Equal(t, "LN-1", resp.Loans[0].LoanID)
		assert.Equal(t, "LN-4", resp.Loans[1].LoanID)
		assert.Equal(t, "high", resp.Loans[0].Tier)
		require.Len(t, resp.Loans[0].Alerts, 1)
		assert.Equal(t, "critical", resp.Loans[0].Alerts[0].Severity)
	})

	t.Run("publishes one high risk event", func(t *testing.T) {
		pub := &mockPublisher{}
		uc := usecase.NewGetCovenantPortfolio(bookSource(t), pub, discardLogger())

		_, err := uc.Execute(context.Background(), dto.GetCovenantPortfolioRequest{Tier: "low"})
		require.NoError(t, err)

		require.Len(t, pub.published, 1)
		evt, ok := pub.published[0].(event.HighRiskLoansDetected)
		require.True(t, ok)
		assert.Equal(t, []string{"LN-1", "LN-4"}, evt.LoanIDs)
		assert.Equal(t, 2, evt.HighCount)
		assert.Equal(t, 4, evt.Total)
	})

	t.Run("no event without high tier loans", func(t *testing.T) {
		src := bookSource(t)
		src.loans = src.loans[1:3]
		pub := &mockPublisher{}
		uc := usecase.NewGetCovenantPortfolio(src, pub, discardLogger())

		_, err := uc.Execute(context.Background(), dto.GetCovenantPortfolioRequest{})
		require.NoError(t, err)
		assert.Empty(t, pub.published)
	})

	t.Run("publisher failure does not fail the call", func(t *testing.T) {
		pub := &mockPublisher{err: errors.New("broker down")}
		uc := usecase.NewGetCovenantPortfolio(bookSource(t), pub, discardLogger())

		resp, err := uc.Execute(context.Background(), dto.GetCovenantPortfolioRequest{Tier: "all"})
		require.NoError(t, err)
		assert.Len(t, resp.Loans, 4)
	})

	t.Run("rejects an unknown tier", func(t *testing.T) {
		uc := usecase.NewGetCovenantPortfolio(bookSource(t), &mockPublisher{}, discardLogger())

		_, err := uc.Execute(context.Background(), dto.GetCovenantPortfolioRequest{Tier: "severe"})
		require.Error(t, err)
		assert.ErrorIs(t, err, usecase.ErrInvalidFilter)
	})

	t.Run("wraps source errors", func(t *testing.T) {
		uc := usecase.NewGetCovenantPortfolio(&mockSource{err: errors.New("connection refused")}, &mockPublisher{}, discardLogger())

		_, err := uc.Execute(context.Background(), dto.GetCovenantPortfolioRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load covenant loans")
	})
}

func TestGetESGOverview_Execute(t *testing.T) {
	t.Run("defaults to the first profile", func(t *testing.T) {
		uc := usecase.NewGetESGOverview(bookSource(t))

		resp, err := uc.Execute(context.Background(), dto.GetESGOverviewRequest{})

		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalLoans)
		assert.Equal(t, 2, resp.GreenLoans)
		assert.Equal(t, 1, resp.HighRiskFlags)
		assert.Equal(t, 67, resp.AverageTransparency)
		assert.Len(t, resp.Loans, 2)
		require.NotNil(t, resp.Selected)
		assert.Equal(t, "LN-1", resp.Selected.LoanID)
		assert.Equal(t, "weak", resp.Selected.TransparencyBand)
		assert.Equal(t, "medium", resp.Selected.ExposureTier)
		require.Len(t, resp.Selected.Alerts, 1)
		assert.Equal(t, "critical", resp.Selected.Alerts[0].Severity)
	})

	t.Run("selects a named loan", func(t *testing.T) {
		uc := usecase.NewGetESGOverview(bookSource(t))

		resp, err := uc.Execute(context.Background(), dto.GetESGOverviewRequest{LoanID: "LN-2"})

		require.NoError(t, err)
		require.NotNil(t, resp.Selected)
		assert.Equal(t, "LN-2", resp.Selected.LoanID)
		assert.Equal(t, "strong", resp.Selected.TransparencyBand)
		assert.Empty(t, resp.Selected.Flags)
	})

	t.Run("unknown loan is not found", func(t *testing.T) {
		uc := usecase.NewGetESGOverview(bookSource(t))

		_, err := uc.Execute(context.Background(), dto.GetESGOverviewRequest{LoanID: "LN-99"})
		assert.ErrorIs(t, err, usecase.ErrProfileNotFound)
	})

	t.Run("empty book yields the zero overview", func(t *testing.T) {
		uc := usecase.NewGetESGOverview(&mockSource{})

		resp, err := uc.Execute(context.Background(), dto.GetESGOverviewRequest{})

		require.NoError(t, err)
		assert.Nil(t, resp.Selected)
		assert.Empty(t, resp.Loans)
		assert.Zero(t, resp.TotalLoans)
		assert.Zero(t, resp.AverageTransparency)
		assert.Equal(t, dto.AggregateResponse{}, resp.Exposure)
	})

	t.Run("named loan in an empty book is not found", func(t *testing.T) {
		uc := usecase.NewGetESGOverview(&mockSource{})

		_, err := uc.Execute(context.Background(), dto.GetESGOverviewRequest{LoanID: "LN-1"})
		assert.ErrorIs(t, err, usecase.ErrProfileNotFound)
	})
}

func TestGetDueDiligenceReport_Execute(t *testing.T) {
	uc := usecase.NewGetDueDiligenceReport(bookSource(t))

	resp, err := uc.Execute(context.Background(), dto.GetDueDiligenceReportRequest{Category: "Financial"})

	require.NoError(t, err)
	assert.Equal(t, "Financial", resp.Category)
	assert.Equal(t, 3, resp.TotalItems)
	assert.Equal(t, 33, resp.PassRate)
	assert.Equal(t, []string{"Financial", "Legal & Compliance"}, resp.Categories)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "fin-001", resp.Items[0].ID)
	assert.Equal(t, "fin-002", resp.Items[1].ID)

	resp, err = uc.Execute(context.Background(), dto.GetDueDiligenceReportRequest{})
	require.NoError(t, err)
	assert.Equal(t, "all", resp.Category)
	assert.Len(t, resp.Items, 3)
}

func TestGetDashboard_Execute(t *testing.T) {
	t.Run("builds the dashboard", func(t *testing.T) {
		uc := usecase.NewGetDashboard(bookSource(t))

		resp, err := uc.Execute(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 4, resp.Covenants.Total)
		assert.Len(t, resp.HighRiskLoans, 2)
		require.Len(t, resp.ESGFlags, 1)
		assert.Equal(t, "LN-1", resp.ESGFlags[0].LoanID)
		assert.Equal(t, 1, resp.ProcessedDocuments)
		assert.Equal(t, "375000000.50", resp.PortfolioValue)

		require.Len(t, resp.RecentAlerts, 2)
		assert.Equal(t, "LN-1", resp.RecentAlerts[0].EntityID)
		assert.Equal(t, "critical", resp.RecentAlerts[0].Severity)
		assert.Equal(t, "warning", resp.RecentAlerts[1].Severity)
		assert.Equal(t, "Scope 3 emissions omitted", resp.RecentAlerts[1].Message)
	})

	t.Run("wraps source errors", func(t *testing.T) {
		uc := usecase.NewGetDashboard(&mockSource{err: errors.New("timeout")})

		_, err := uc.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "timeout")
	})
}
