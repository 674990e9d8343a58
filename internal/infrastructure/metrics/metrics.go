package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Conversion outcomes recorded by the currency client.
const (
	OutcomeOK       = "ok"
	OutcomeDegraded = "degraded"
	OutcomeInvalid  = "invalid"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	HTTPInFlight prometheus.Gauge

	// Currency conversion metrics
	CurrencyConversions *prometheus.CounterVec
	ConversionDuration  prometheus.Histogram

	// Statement metrics
	StatementsGenerated *prometheus.CounterVec
	StatementBytes      prometheus.Histogram
	RenderFailures      prometheus.Counter

	// Idempotency metrics
	IdempotencyReplays prometheus.Counter
}

// New creates all Prometheus metrics and registers them with reg.
// A nil reg registers with the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		// API metrics
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobank_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gobank_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		HTTPInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "gobank_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		}),

		// Currency conversion metrics
		CurrencyConversions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobank_currency_conversions_total",
				Help: "Currency service conversions by outcome",
			},
			[]string{"outcome"},
		),
		ConversionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gobank_currency_conversion_duration_seconds",
			Help:    "Duration of calls to the currency service",
			Buckets: prometheus.DefBuckets,
		}),

		// Statement metrics
		StatementsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobank_statements_generated_total",
				Help: "Total statements rendered",
			},
			[]string{"converted"},
		),
		StatementBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gobank_statement_size_bytes",
			Help:    "Size of rendered statements",
			Buckets: prometheus.ExponentialBuckets(512, 2, 8),
		}),
		RenderFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "gobank_render_failures_total",
			Help: "Total document rendering failures",
		}),

		// Idempotency metrics
		IdempotencyReplays: factory.NewCounter(prometheus.CounterOpts{
			Name: "gobank_idempotency_replays_total",
			Help: "Total responses served from the idempotency store",
		}),
	}
}
