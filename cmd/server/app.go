package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/diewo77/sales-insights/internal/config"
	"github.com/diewo77/sales-insights/internal/handlers"
	"github.com/diewo77/sales-insights/internal/middleware"
	"github.com/diewo77/sales-insights/internal/services"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux     *http.ServeMux
	handler http.Handler
	ih      *handlers.InsightHandler
}

// NewApp creates a new application with all routes configured.
func NewApp(svc *services.InsightService, log *zap.Logger, cfg config.ServerConfig) *App {
	app := &App{
		mux: http.NewServeMux(),
		ih:  handlers.NewInsightHandler(svc, log),
	}
	app.setupRoutes()
	app.handler = middleware.Chain(app.mux,
		middleware.RequestID,
		middleware.Logging(log),
		middleware.Metrics,
		middleware.CORS(cfg.CORSOrigins),
		middleware.Recover(log),
	)
	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

// setupRoutes configures all application routes.
func (a *App) setupRoutes() {
	// ─────────────────────────────────────────────────────────────────────────
	// Probes
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.HandleFunc("GET /api/health", a.ih.Health)
	a.mux.Handle("GET /metrics", promhttp.Handler())

	// ─────────────────────────────────────────────────────────────────────────
	// Questions and data
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.HandleFunc("POST /api/query", a.ih.Query)
	a.mux.HandleFunc("GET /api/data/summary", a.ih.Summary)

	// ─────────────────────────────────────────────────────────────────────────
	// Analytics and reports
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.HandleFunc("POST /api/analytics/advanced", a.ih.Advanced)
	a.mux.HandleFunc("POST /api/reports/text", a.ih.Report)
}
