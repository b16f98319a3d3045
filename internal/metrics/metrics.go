// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Link Cache Metrics
	LinkCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seedrio_link_cache_lookups_total",
			Help: "Link cache lookups by result",
		},
		[]string{"policy", "result"}, // result: "hit", "miss", "expired"
	)

	LinkCacheExtensions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seedrio_link_cache_ttl_extensions_total",
			Help: "Hot path TTL extensions applied on cache hits",
		},
	)

	LinkCacheCoalesced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seedrio_link_cache_coalesced_total",
			Help: "Link fetches that joined an in-flight fetch for the same file",
		},
	)

	CatalogShortcutHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seedrio_catalog_shortcut_hits_total",
			Help: "Stream requests answered from cached catalog records",
		},
	)

	// Reconciliation Metrics
	ReconcileRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seedrio_reconcile_runs_total",
			Help: "Cache reconciliation passes by outcome",
		},
		[]string{"outcome"}, // "success", "error"
	)

	ReconcileDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seedrio_reconcile_deleted_total",
			Help: "Cache records deleted because their file left Seedr",
		},
	)

	ReconcileDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "seedrio_reconcile_duration_seconds",
			Help:    "Duration of cache reconciliation passes",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	// Resolver Metrics
	StreamResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seedrio_stream_resolutions_total",
			Help: "Stream resolutions by identifier kind and outcome",
		},
		[]string{"kind", "outcome"}, // outcome: "found", "empty", "error", "shortcut"
	)

	StreamsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "seedrio_streams_per_request",
			Help:    "Number of streams returned per resolution",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 20},
		},
	)

	// Remote Call Metrics
	RemoteRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "seedrio_remote_request_duration_seconds",
			Help:    "Duration of outbound calls to Seedr and Cinemeta",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"service", "operation"},
	)

	RemoteRequestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seedrio_remote_request_errors_total",
			Help: "Failed outbound calls to Seedr and Cinemeta",
		},
		[]string{"service", "operation"},
	)

	MetadataMemo = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seedrio_metadata_memo_total",
			Help: "Cinemeta memo lookups by result",
		},
		[]string{"result"}, // "hit", "miss"
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks in-flight API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRemoteCall records an outbound call to service.
func RecordRemoteCall(service, operation string, duration time.Duration, err error) {
	RemoteRequestDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
	if err != nil {
		RemoteRequestErrors.WithLabelValues(service, operation).Inc()
	}
}

// RecordReconcile records one reconciliation pass.
func RecordReconcile(duration time.Duration, deleted int, err error) {
	ReconcileDuration.Observe(duration.Seconds())
	if err != nil {
		ReconcileRuns.WithLabelValues("error").Inc()
		return
	}
	ReconcileRuns.WithLabelValues("success").Inc()
	ReconcileDeleted.Add(float64(deleted))
}

// RecordResolution records the outcome of one stream resolution.
func RecordResolution(kind, outcome string, streams int) {
	StreamResolutions.WithLabelValues(kind, outcome).Inc()
	StreamsReturned.Observe(float64(streams))
}
