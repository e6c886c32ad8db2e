package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midhunrajcharles/SyndicateIQ/internal/application/dto"
	"github.com/midhunrajcharles/SyndicateIQ/internal/application/usecase"
	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/port"
	"github.com/midhunrajcharles/SyndicateIQ/internal/infrastructure/fixtures"
	"github.com/midhunrajcharles/SyndicateIQ/internal/infrastructure/messaging"
	"github.com/midhunrajcharles/SyndicateIQ/internal/presentation/rest"
	"github.com/midhunrajcharles/SyndicateIQ/pkg/observability"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func newServer(t *testing.T, pinger rest.Pinger) *httptest.Server {
	t.Helper()
	logger := discard()

	src, err := fixtures.NewSource(logger)
	require.NoError(t, err)
	var source port.PortfolioSource = src
	if pinger == nil {
		pinger = source
	}

	reg := prometheus.NewRegistry()
	api := rest.NewPortfolioHandler(
		usecase.NewClassifyScore(),
		usecase.NewGetCovenantPortfolio(source, messaging.NewLogPublisher(logger), logger),
		usecase.NewGetESGOverview(source),
		usecase.NewGetDueDiligenceReport(source),
		usecase.NewGetDashboard(source),
		logger,
	)
	mux := rest.NewRouter(
		rest.NewHealthHandler("syndicateiq", pinger, logger),
		api,
		observability.NewHTTPMetrics(reg, "syndicateiq"),
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	srv := newServer(t, nil)

	var health rest.HealthResponse
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/healthz", &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "syndicateiq", health.Service)

	var ready rest.ReadinessResponse
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/readyz", &ready))
	assert.Equal(t, "ready", ready.Status)
}

func TestReadyz_SourceDown(t *testing.T) {
	srv := newServer(t, pingFunc(func(context.Context) error { return errors.New("dial tcp: connection refused") }))

	var ready rest.ReadinessResponse
	assert.Equal(t, http.StatusServiceUnavailable, getJSON(t, srv.URL+"/readyz", &ready))
	assert.Equal(t, "not_ready", ready.Status)
	assert.Contains(t, ready.Checks["portfolio_source"], "connection refused")
}

func TestClassify(t *testing.T) {
	srv := newServer(t, nil)

	var out dto.ClassifyScoreResponse
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/v1/classify?score=60", &out))
	assert.Equal(t, "medium", out.Tier)

	var bad rest.ErrorResponse
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv.URL+"/api/v1/classify?score=abc", &bad))
	assert.Equal(t, "score must be a number", bad.Error)
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv.URL+"/api/v1/classify", &bad))
	assert.Equal(t, "score is required", bad.Error)

	for _, raw := range []string{"NaN", "Inf", "-Inf", "%2BInf"} {
		t.Run("non-finite "+raw, func(t *testing.T) {
			var bad rest.ErrorResponse
			assert.Equal(t, http.StatusBadRequest, getJSON(t, srv.URL+"/api/v1/classify?score="+raw, &bad))
			assert.Equal(t, "score must be a finite number", bad.Error)
		})
	}

	t.Run("out of range scores still classify", func(t *testing.T) {
		var out dto.ClassifyScoreResponse
		assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/v1/classify?score=-5", &out))
		assert.Equal(t, "low", out.Tier)
		assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/v1/classify?score=150", &out))
		assert.Equal(t, "high", out.Tier)
	})
}

func TestCovenants(t *testing.T) {
	srv := newServer(t, nil)

	var out dto.CovenantPortfolioResponse
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/v1/covenants?tier=low", &out))
	assert.Equal(t, "low", out.Filter)
	assert.Equal(t, 5, out.Aggregate.Total)
	assert.Equal(t, 46, out.Aggregate.AverageScore)
	require.Len(t, out.Loans, 1)
	assert.Equal(t, "LN-2024-003", out.Loans[0].LoanID)

	var bad rest.ErrorResponse
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv.URL+"/api/v1/covenants?tier=severe", &bad))
	assert.Contains(t, bad.Error, "invalid")
}

func TestESG(t *testing.T) {
	srv := newServer(t, nil)

	var out dto.ESGOverviewResponse
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/v1/esg", &out))
	assert.Equal(t, "LN-2024-001", out.Selected.LoanID)
	assert.Equal(t, 66, out.AverageTransparency)

	var missing rest.ErrorResponse
	assert.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/api/v1/esg?loan_id=LN-9", &missing))
}

func TestDueDiligence(t *testing.T) {
	srv := newServer(t, nil)

	var out dto.DueDiligenceReportResponse
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/v1/due-diligence?category=ESG+%26+Risk", &out))
	assert.Equal(t, "ESG & Risk", out.Category)
	assert.Len(t, out.Items, 4)
	assert.Equal(t, 69, out.PassRate)
}

func TestDashboard(t *testing.T) {
	srv := newServer(t, nil)

	var out dto.DashboardResponse
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/v1/dashboard", &out))
	assert.Equal(t, 2, out.ProcessedDocuments)
	assert.Len(t, out.RecentAlerts, 4)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newServer(t, nil)

	var out dto.ClassifyScoreResponse
	getJSON(t, srv.URL+"/api/v1/classify?score=10", &out)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.True(t, strings.Contains(string(body), `syndicateiq_http_requests_total{code="200",route="GET /api/v1/classify"} 1`))
}
