// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package middleware provides HTTP middleware components for the catalog API.

All middleware has the chi signature func(http.Handler) http.Handler and is
installed by api.SetupChi.

Key Components:

  - RequestID: X-Request-ID propagation and request/correlation ids in the logging context
  - AccessLog: one log line per request, warn level for slow requests
  - PrometheusMetrics: request count, latency and in-flight gauge labelled by chi route pattern
  - Compression: gzip for clients that accept it

Middleware Stack:

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog(time.Second))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)

Thread Safety:

All middleware is safe for concurrent use. Per-request state lives in
response writer wrappers and the request context; gzip writers are pooled.
*/
package middleware
