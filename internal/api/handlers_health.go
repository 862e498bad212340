// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/cadence/internal/logging"
	"github.com/tomtom215/cadence/internal/models"
)

// healthPingTimeout bounds the store ping done by the health probes.
const healthPingTimeout = 2 * time.Second

// breakerStater is implemented by catalogs wrapped in a circuit breaker.
type breakerStater interface {
	State() string
}

func (h *Handler) pingStore(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	return h.catalog.Ping(ctx)
}

func (h *Handler) breakerState() string {
	if b, ok := h.catalog.(breakerStater); ok {
		return b.State()
	}
	return ""
}

// Health handles health check requests
//
// @Summary Get service health
// @Description Reports MongoDB connectivity, circuit breaker state and uptime. Always 200; inspect status.
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthStatus
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	dbConnected := h.pingStore(r.Context()) == nil
	breaker := h.breakerState()

	status := "healthy"
	if !dbConnected || breaker == "open" {
		status = "degraded"
	}

	writeJSON(w, http.StatusOK, models.HealthStatus{
		Status:            status,
		Version:           Version,
		Database:          h.config.Database.DatabaseName(),
		DatabaseConnected: dbConnected,
		CircuitBreaker:    breaker,
		Uptime:            time.Since(h.startTime).Seconds(),
		Timestamp:         time.Now().UTC(),
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.ProbeStatus
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, models.ProbeStatus{Status: "alive"})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if MongoDB answers a ping
//
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.ProbeStatus
// @Failure 503 {object} models.ProbeStatus
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if err := h.pingStore(r.Context()); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Readiness check failed")
		writeJSON(w, http.StatusServiceUnavailable, models.ProbeStatus{Status: "not_ready", Reason: "database unreachable"})
		return
	}
	writeJSON(w, http.StatusOK, models.ProbeStatus{Status: "ready"})
}
