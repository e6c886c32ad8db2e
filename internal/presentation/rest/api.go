package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/midhunrajcharles/SyndicateIQ/internal/application/dto"
	"github.com/midhunrajcharles/SyndicateIQ/internal/application/usecase"
	"github.com/midhunrajcharles/SyndicateIQ/pkg/observability"
)

// PortfolioHandler exposes the portfolio use cases as JSON endpoints.
type PortfolioHandler struct {
	classifyScore         *usecase.ClassifyScore
	getCovenantPortfolio  *usecase.GetCovenantPortfolio
	getESGOverview        *usecase.GetESGOverview
	getDueDiligenceReport *usecase.GetDueDiligenceReport
	getDashboard          *usecase.GetDashboard
	logger                *slog.Logger
}

// NewPortfolioHandler creates a new REST portfolio handler.
func NewPortfolioHandler(
	classifyScore *usecase.ClassifyScore,
	getCovenantPortfolio *usecase.GetCovenantPortfolio,
	getESGOverview *usecase.GetESGOverview,
	getDueDiligenceReport *usecase.GetDueDiligenceReport,
	getDashboard *usecase.GetDashboard,
	logger *slog.Logger,
) *PortfolioHandler {
	return &PortfolioHandler{
		classifyScore:         classifyScore,
		getCovenantPortfolio:  getCovenantPortfolio,
		getESGOverview:        getESGOverview,
		getDueDiligenceReport: getDueDiligenceReport,
		getDashboard:          getDashboard,
		logger:                logger,
	}
}

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes registers the API endpoints, each instrumented by metrics.
func (h *PortfolioHandler) RegisterRoutes(mux *http.ServeMux, metrics *observability.HTTPMetrics) {
	routes := []struct {
		pattern string
		handler http.HandlerFunc
	}{
		{"GET /api/v1/classify", h.Classify},
		{"GET /api/v1/covenants", h.Covenants},
		{"GET /api/v1/esg", h.ESG},
		{"GET /api/v1/due-diligence", h.DueDiligence},
		{"GET /api/v1/dashboard", h.Dashboard},
	}
	for _, rt := range routes {
		mux.Handle(rt.pattern, metrics.Wrap(rt.pattern, rt.handler))
	}
}

// Classify handles GET /api/v1/classify?score=.
func (h *PortfolioHandler) Classify(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("score")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "score is required")
		return
	}
	score, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "score must be a number")
		return
	}
	if math.IsNaN(score) || math.IsInf(score, 0) {
		writeError(w, http.StatusBadRequest, "score must be a finite number")
		return
	}

	writeJSON(w, http.StatusOK, h.classifyScore.Execute(r.Context(), dto.ClassifyScoreRequest{Score: score}))
}

// Covenants handles GET /api/v1/covenants?tier=.
func (h *PortfolioHandler) Covenants(w http.ResponseWriter, r *http.Request) {
	resp, err := h.getCovenantPortfolio.Execute(r.Context(), dto.GetCovenantPortfolioRequest{
		Tier: r.URL.Query().Get("tier"),
	})
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ESG handles GET /api/v1/esg?loan_id=.
func (h *PortfolioHandler) ESG(w http.ResponseWriter, r *http.Request) {
	resp, err := h.getESGOverview.Execute(r.Context(), dto.GetESGOverviewRequest{
		LoanID: r.URL.Query().Get("loan_id"),
	})
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// DueDiligence handles GET /api/v1/due-diligence?category=.
func (h *PortfolioHandler) DueDiligence(w http.ResponseWriter, r *http.Request) {
	resp, err := h.getDueDiligenceReport.Execute(r.Context(), dto.GetDueDiligenceReportRequest{
		Category: r.URL.Query().Get("category"),
	})
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Dashboard handles GET /api/v1/dashboard.
func (h *PortfolioHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.getDashboard.Execute(r.Context())
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *PortfolioHandler) writeUseCaseError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidFilter):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrProfileNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// writeJSON encodes v before writing the header so an encoding failure can
// still be reported as a 500.
func writeJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		code = http.StatusInternalServerError
		body, _ = json.Marshal(ErrorResponse{Error: "internal error"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, ErrorResponse{Error: msg})
}
