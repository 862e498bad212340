// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/cadence/internal/logging"
)

// DefaultSlowRequestThreshold is the latency above which requests are logged at warn.
const DefaultSlowRequestThreshold = time.Second

// AccessLog logs one line per request at debug level, or at warn when the
// request took longer than slowThreshold. A zero threshold uses
// DefaultSlowRequestThreshold. It must run after RequestID so the line
// carries the request and correlation ids.
func AccessLog(slowThreshold time.Duration) func(http.Handler) http.Handler {
	if slowThreshold <= 0 {
		slowThreshold = DefaultSlowRequestThreshold
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapper := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapper, r)

			duration := time.Since(start)
			logger := logging.Ctx(r.Context())
			event := logger.Debug()
			msg := "HTTP request"
			if duration > slowThreshold {
				event = logger.Warn().Dur("threshold", slowThreshold)
				msg = "Slow request detected"
			}
			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("route", routePattern(r)).
				Int("status", wrapper.statusCode).
				Dur("duration", duration).
				Str("remote_addr", r.RemoteAddr).
				Msg(msg)
		})
	}
}
