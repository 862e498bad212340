// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package metrics

import (
	"context"
	"errors"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// MongoDB Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mongo_query_duration_seconds",
			Help:    "Duration of MongoDB operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "collection"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mongo_query_errors_total",
			Help: "Total number of failed MongoDB operations",
		},
		[]string{"operation", "collection", "error_type"},
	)

	DBDocumentsReturned = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mongo_documents_returned",
			Help:    "Number of documents returned per list operation",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"collection"},
	)

	// DBUp is 1 while the last store health ping succeeded.
	DBUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mongo_up",
			Help: "Whether the last MongoDB ping succeeded (1) or failed (0)",
		},
	)

	DBPingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mongo_ping_duration_seconds",
			Help:    "Duration of MongoDB health pings in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	// CatalogEmptyFilterMatches counts song searches answered without
	// touching the songs collection because a related filter matched nothing.
	CatalogEmptyFilterMatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_empty_filter_matches_total",
			Help: "Song searches short-circuited because a related-entity filter matched no documents",
		},
		[]string{"collection"},
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

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordDBQuery records a MongoDB operation against a collection.
func RecordDBQuery(operation, collection string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, collection).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, collection, ErrorType(err)).Inc()
	}
}

// RecordDocumentsReturned records the size of a list result.
func RecordDocumentsReturned(collection string, n int) {
	DBDocumentsReturned.WithLabelValues(collection).Observe(float64(n))
}

// RecordPing records a health ping and updates mongo_up.
func RecordPing(duration time.Duration, err error) {
	DBPingDuration.Observe(duration.Seconds())
	if err != nil {
		DBUp.Set(0)
		return
	}
	DBUp.Set(1)
}

// RecordEmptyFilterMatch counts a song search short-circuited by collection.
func RecordEmptyFilterMatch(collection string) {
	CatalogEmptyFilterMatches.WithLabelValues(collection).Inc()
}

// ErrorType buckets a store error into a low-cardinality label value.
func ErrorType(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded), mongo.IsTimeout(err):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case mongo.IsNetworkError(err):
		return "network"
	case errors.Is(err, mongo.ErrClientDisconnected):
		return "disconnected"
	default:
		var cmdErr mongo.CommandError
		if errors.As(err, &cmdErr) {
			return "command"
		}
		return "other"
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// SetAppInfo publishes the build version. Call once at startup.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// UpdateUptime sets app_uptime_seconds relative to start.
func UpdateUptime(start time.Time) {
	AppUptime.Set(time.Since(start).Seconds())
}
