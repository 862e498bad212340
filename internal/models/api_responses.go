// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package models

import (
	"time"
)

// ErrorResponse is the body of every non-2xx catalog response.
//
// Example:
//
//	{"message": "Song not found"}
type ErrorResponse struct {
	Message string `json:"message"`
}

// HealthStatus is returned by GET /health.
//
// Status values:
//   - "healthy": MongoDB answered the ping
//   - "degraded": MongoDB is unreachable or the circuit breaker is open
type HealthStatus struct {
	Status            string    `json:"status"`
	Version           string    `json:"version"`
	Database          string    `json:"database"`
	DatabaseConnected bool      `json:"database_connected"`
	CircuitBreaker    string    `json:"circuit_breaker,omitempty"`
	Uptime            float64   `json:"uptime"`
	Timestamp         time.Time `json:"timestamp"`
}

// ProbeStatus is returned by the liveness and readiness probes.
type ProbeStatus struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}
