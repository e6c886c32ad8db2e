package rest

import (
	"net/http"

	"github.com/midhunrajcharles/SyndicateIQ/pkg/observability"
)

// NewRouter mounts health, API and metrics endpoints on one ServeMux.
func NewRouter(health *HealthHandler, api *PortfolioHandler, metrics *observability.HTTPMetrics, metricsHandler http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	health.RegisterRoutes(mux)
	api.RegisterRoutes(mux, metrics)
	mux.Handle("GET /metrics", metricsHandler)
	return mux
}
