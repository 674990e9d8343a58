package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/gobank/internal/adapter/http/handler"
	"github.com/iho/gobank/internal/adapter/http/middleware"
	"github.com/iho/gobank/internal/infrastructure/metrics"
	"github.com/iho/gobank/internal/usecase"
)

// ReportRouterConfig holds dependencies for the report service router.
type ReportRouterConfig struct {
	ReportHandler    *handler.ReportHandler
	StatementHandler *handler.StatementHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	Metrics          *metrics.Metrics
	Gatherer         prometheus.Gatherer
	Logger           zerolog.Logger
}

// CurrencyRouterConfig holds dependencies for the currency service router.
type CurrencyRouterConfig struct {
	CurrencyHandler *handler.CurrencyHandler
	HealthHandler   *handler.HealthHandler
	Metrics         *metrics.Metrics
	Gatherer        prometheus.Gatherer
	Logger          zerolog.Logger
}

// NewReportRouter creates the report service router.
func NewReportRouter(cfg ReportRouterConfig) http.Handler {
	r := newBaseRouter(cfg.HealthHandler, cfg.Metrics, cfg.Gatherer, cfg.Logger)

	r.Route("/api/report", func(r chi.Router) {
		r.Get("/transactions", cfg.ReportHandler.Transactions)
		r.Get("/transactions/history", cfg.ReportHandler.History)
		r.Get("/analytics/{accountId}", cfg.ReportHandler.Analytics)
		r.Get("/help/pdf", cfg.StatementHandler.Help)

		r.Get("/account/{accountId}", cfg.ReportHandler.Account)

		// Statement POSTs are replayed by Idempotency-Key.
		var statementMiddleware []func(http.Handler) http.Handler
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL, cfg.Metrics, cfg.Logger)
			statementMiddleware = append(statementMiddleware, idempotencyMiddleware.Wrap)
		}
		r.With(statementMiddleware...).Post("/account/{accountId}/statement", cfg.StatementHandler.Generate)
	})

	return r
}

// NewCurrencyRouter creates the currency service router.
func NewCurrencyRouter(cfg CurrencyRouterConfig) http.Handler {
	r := newBaseRouter(cfg.HealthHandler, cfg.Metrics, cfg.Gatherer, cfg.Logger)

	r.Route("/api/currency", func(r chi.Router) {
		r.Get("/convert/view", cfg.CurrencyHandler.Convert)
		r.Post("/convert", cfg.CurrencyHandler.Convert)
		r.Post("/select", cfg.CurrencyHandler.Select)
		r.Get("/rates", cfg.CurrencyHandler.Rates)
	})

	return r
}

func newBaseRouter(health *handler.HealthHandler, m *metrics.Metrics, gatherer prometheus.Gatherer, logger zerolog.Logger) chi.Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(logger).Wrap)
	r.Use(middleware.Recovery(logger))
	if m != nil {
		r.Use(middleware.Metrics(m))
	}

	// Health endpoints
	r.Get("/health", health.Liveness)
	r.Get("/ready", health.Readiness)

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return r
}
