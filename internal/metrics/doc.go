// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package metrics provides Prometheus metrics collection and export for observability.

Collectors are registered on the default registry through promauto and exposed
at /metrics in Prometheus text format:

	curl http://localhost:3000/metrics

# Available Metrics

MongoDB:
  - mongo_query_duration_seconds: Operation latency (histogram)
    Labels: operation (find, findOne, aggregate, distinct), collection
  - mongo_query_errors_total: Failed operations (counter)
    Labels: operation, collection, error_type (timeout, canceled, network, disconnected, command, other)
  - mongo_documents_returned: Documents per list call (histogram)
    Labels: collection
  - mongo_up: Result of the most recent health ping (gauge)
  - mongo_ping_duration_seconds: Health ping latency (histogram)

Catalog:
  - catalog_empty_filter_matches_total: Song searches answered empty because
    an album, genre or artist filter matched nothing (counter)
    Labels: collection

HTTP:
  - api_requests_total: Requests by route pattern (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)

Circuit breaker:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: Labels: name, result (success, failure, rejected)
  - circuit_breaker_consecutive_failures (gauge)
  - circuit_breaker_state_transitions_total: Labels: name, from_state, to_state

Process:
  - app_info: Labels: version, go_version
  - app_uptime_seconds

# Example Queries

	# p95 latency per collection
	histogram_quantile(0.95, sum by (le, collection) (rate(mongo_query_duration_seconds_bucket[5m])))

	# 5xx ratio
	sum(rate(api_requests_total{status_code=~"5.."}[5m])) / sum(rate(api_requests_total[5m]))
*/
package metrics
