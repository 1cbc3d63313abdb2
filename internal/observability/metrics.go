package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the dashboard.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec   // labels: route, status
	RequestDuration *prometheus.HistogramVec // labels: route

	// Dataset load metrics. The dataset is reloaded from disk on every
	// request, so load duration dominates request latency.
	LoadDuration prometheus.Histogram
	LoadFailures prometheus.Counter
	RowsSampled  prometheus.Histogram
	RowsDropped  *prometheus.CounterVec // labels: reason={duplicate,missing}

	FieldParseErrors prometheus.Counter
}

// NewMetrics creates and registers all dashboard metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "adas_dashboard",
			Name:      "requests_total",
			Help:      "Total HTTP requests by route and status code.",
		}, []string{"route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "adas_dashboard",
			Name:      "request_duration_seconds",
			Help:      "Duration of a complete load-normalize-aggregate-render cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"route"}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "adas_dashboard",
			Name:      "dataset_load_duration_seconds",
			Help:      "Duration of reading, cleaning, and sampling the source files.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}),
		LoadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "adas_dashboard",
			Name:      "dataset_load_failures_total",
			Help:      "Total dataset loads that failed with an IO or format error.",
		}),
		RowsSampled: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "adas_dashboard",
			Name:      "dataset_rows_sampled",
			Help:      "Rows remaining after dedup, null-dropping, and sampling.",
			Buckets:   []float64{10, 50, 100, 500, 1000, 5000, 10000, 50000},
		}),
		RowsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "adas_dashboard",
			Name:      "dataset_rows_dropped_total",
			Help:      "Rows dropped during cleaning, by reason.",
		}, []string{"reason"}),
		FieldParseErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "adas_dashboard",
			Name:      "field_parse_errors_total",
			Help:      "Date and time fields that failed to parse and became null.",
		}),
	}

	prometheus.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.LoadDuration,
		m.LoadFailures,
		m.RowsSampled,
		m.RowsDropped,
		m.FieldParseErrors,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RequestsTotal:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "adas_dashboard", Name: "requests_total"}, []string{"route", "status"}),
		RequestDuration:  prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "adas_dashboard", Name: "request_duration_seconds"}, []string{"route"}),
		LoadDuration:     prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "adas_dashboard", Name: "dataset_load_duration_seconds"}),
		LoadFailures:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "adas_dashboard", Name: "dataset_load_failures_total"}),
		RowsSampled:      prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "adas_dashboard", Name: "dataset_rows_sampled"}),
		RowsDropped:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "adas_dashboard", Name: "dataset_rows_dropped_total"}, []string{"reason"}),
		FieldParseErrors: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "adas_dashboard", Name: "field_parse_errors_total"}),
	}
}
