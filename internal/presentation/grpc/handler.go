package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/midhunrajcharles/SyndicateIQ/internal/application/dto"
	"github.com/midhunrajcharles/SyndicateIQ/internal/application/usecase"
)

// Compile-time assertion that PortfolioServiceHandler implements PortfolioServiceServer.
var _ PortfolioServiceServer = (*PortfolioServiceHandler)(nil)

// PortfolioServiceHandler implements the gRPC PortfolioServiceServer interface.
type PortfolioServiceHandler struct {
	UnimplementedPortfolioServiceServer
	classifyScore         *usecase.ClassifyScore
	getCovenantPortfolio  *usecase.GetCovenantPortfolio
	getESGOverview        *usecase.GetESGOverview
	getDueDiligenceReport *usecase.GetDueDiligenceReport
	getDashboard          *usecase.GetDashboard
	logger                *slog.Logger
}

// NewPortfolioServiceHandler creates a new gRPC handler.
func NewPortfolioServiceHandler(
	classifyScore *usecase.ClassifyScore,
	getCovenantPortfolio *usecase.GetCovenantPortfolio,
	getESGOverview *usecase.GetESGOverview,
	getDueDiligenceReport *usecase.GetDueDiligenceReport,
	getDashboard *usecase.GetDashboard,
	logger *slog.Logger,
) *PortfolioServiceHandler {
	return &PortfolioServiceHandler{
		classifyScore:         classifyScore,
		getCovenantPortfolio:  getCovenantPortfolio,
		getESGOverview:        getESGOverview,
		getDueDiligenceReport: getDueDiligenceReport,
		getDashboard:          getDashboard,
		logger:                logger,
	}
}

// Proto-aligned request/response message types.

// ClassifyScoreRequest represents the proto ClassifyScoreRequest message.
type ClassifyScoreRequest struct {
	Score float64 `json:"score"`
}

// ClassifyScoreResponse represents the proto ClassifyScoreResponse message.
type ClassifyScoreResponse struct {
	Score float64 `json:"score"`
	Tier  string  `json:"tier"`
}

// GetCovenantPortfolioRequest represents the proto GetCovenantPortfolioRequest message.
type GetCovenantPortfolioRequest struct {
	Tier string `json:"tier"`
}

// GetCovenantPortfolioResponse represents the proto GetCovenantPortfolioResponse message.
type GetCovenantPortfolioResponse struct {
	Portfolio *dto.CovenantPortfolioResponse `json:"portfolio"`
}

// GetESGOverviewRequest represents the proto GetESGOverviewRequest message.
type GetESGOverviewRequest struct {
	LoanID string `json:"loan_id"`
}

// GetESGOverviewResponse represents the proto GetESGOverviewResponse message.
type GetESGOverviewResponse struct {
	Overview *dto.ESGOverviewResponse `json:"overview"`
}

// GetDueDiligenceReportRequest represents the proto GetDueDiligenceReportRequest message.
type GetDueDiligenceReportRequest struct {
	Category string `json:"category"`
}

// GetDueDiligenceReportResponse represents the proto GetDueDiligenceReportResponse message.
type GetDueDiligenceReportResponse struct {
	Report *dto.DueDiligenceReportResponse `json:"report"`
}

// GetDashboardRequest represents the proto GetDashboardRequest message.
type GetDashboardRequest struct{}

// GetDashboardResponse represents the proto GetDashboardResponse message.
type GetDashboardResponse struct {
	Dashboard *dto.DashboardResponse `json:"dashboard"`
}

// ClassifyScore maps a score to its risk tier.
func (h *PortfolioServiceHandler) ClassifyScore(ctx context.Context, req *ClassifyScoreRequest) (*ClassifyScoreResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result := h.classifyScore.Execute(ctx, dto.ClassifyScoreRequest{Score: req.Score})
	return &ClassifyScoreResponse{Score: result.Score, Tier: result.Tier}, nil
}

// GetCovenantPortfolio returns the covenant book filtered by tier.
func (h *PortfolioServiceHandler) GetCovenantPortfolio(ctx context.Context, req *GetCovenantPortfolioRequest) (*GetCovenantPortfolioResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.getCovenantPortfolio.Execute(ctx, dto.GetCovenantPortfolioRequest{Tier: req.Tier})
	if err != nil {
		return nil, h.toStatus("GetCovenantPortfolio", err)
	}
	return &GetCovenantPortfolioResponse{Portfolio: &result}, nil
}

// GetESGOverview returns the ESG overview and the selected loan's detail.
func (h *PortfolioServiceHandler) GetESGOverview(ctx context.Context, req *GetESGOverviewRequest) (*GetESGOverviewResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.getESGOverview.Execute(ctx, dto.GetESGOverviewRequest{LoanID: req.LoanID})
	if err != nil {
		return nil, h.toStatus("GetESGOverview", err)
	}
	return &GetESGOverviewResponse{Overview: &result}, nil
}

// GetDueDiligenceReport returns the due diligence checklist for a category.
func (h *PortfolioServiceHandler) GetDueDiligenceReport(ctx context.Context, req *GetDueDiligenceReportRequest) (*GetDueDiligenceReportResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.getDueDiligenceReport.Execute(ctx, dto.GetDueDiligenceReportRequest{Category: req.Category})
	if err != nil {
		return nil, h.toStatus("GetDueDiligenceReport", err)
	}
	return &GetDueDiligenceReportResponse{Report: &result}, nil
}

// GetDashboard returns the portfolio intelligence hub.
func (h *PortfolioServiceHandler) GetDashboard(ctx context.Context, _ *GetDashboardRequest) (*GetDashboardResponse, error) {
	result, err := h.getDashboard.Execute(ctx)
	if err != nil {
		return nil, h.toStatus("GetDashboard", err)
	}
	return &GetDashboardResponse{Dashboard: &result}, nil
}

// toStatus maps use case errors to gRPC status codes. Internal failures are
// logged and hidden from the caller.
func (h *PortfolioServiceHandler) toStatus(method string, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidFilter):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, usecase.ErrProfileNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		h.logger.Error("request failed",
			slog.String("method", method),
			slog.String("error", err.Error()),
		)
		return status.Error(codes.Internal, "internal error")
	}
}
