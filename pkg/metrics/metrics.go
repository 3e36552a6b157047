package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "planz_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	FilterEvaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planz_filter_evaluations_total",
			Help: "Total number of catalog filter evaluations by number of active dimensions",
		},
		[]string{"active_dimensions"},
	)

	FilterResultSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "planz_filter_result_size",
			Help:    "Number of events returned by a filter evaluation",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	CatalogRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planz_catalog_refreshes_total",
			Help: "Total number of catalog snapshot refreshes",
		},
		[]string{"status"},
	)

	CatalogEvents = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "planz_catalog_events",
			Help: "Number of events in the current catalog snapshot",
		},
	)

	CatalogCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planz_catalog_cache_lookups_total",
			Help: "Catalog snapshot cache lookups by result",
		},
		[]string{"result"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "planz_active_sessions",
			Help: "Number of open browsing sessions",
		},
	)
)
