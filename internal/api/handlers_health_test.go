// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cadence/internal/models"
)

func TestHealth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		pingErr     error
		state       string
		wantStatus  string
		wantDB      bool
		wantBreaker string
	}{
		{"healthy", nil, "closed", "healthy", true, "closed"},
		{"store down", errors.New("connection refused"), "closed", "degraded", false, "closed"},
		{"breaker open", nil, "open", "degraded", true, "open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fake := newFakeCatalog()
			fake.pingErr = tt.pingErr
			fake.state = tt.state

			rec := doGet(t, newTestServer(t, breakerFake{fake}), "/health")
			if rec.Code != http.StatusOK {
				t.Fatalf("Expected status 200, got %d", rec.Code)
			}

			var health models.HealthStatus
			if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
				t.Fatalf("Failed to decode health: %v", err)
			}
			if health.Status != tt.wantStatus {
				t.Errorf("Expected status %q, got %q", tt.wantStatus, health.Status)
			}
			if health.DatabaseConnected != tt.wantDB {
				t.Errorf("Expected database_connected %v, got %v", tt.wantDB, health.DatabaseConnected)
			}
			if health.CircuitBreaker != tt.wantBreaker {
				t.Errorf("Expected circuit_breaker %q, got %q", tt.wantBreaker, health.CircuitBreaker)
			}
			if health.Database != "music" {
				t.Errorf("Expected database music, got %q", health.Database)
			}
		})
	}
}

func TestHealth_WithoutBreaker(t *testing.T) {
	t.Parallel()
	rec := doGet(t, newTestServer(t, newFakeCatalog()), "/health")

	var health models.HealthStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("Failed to decode health: %v", err)
	}
	if health.CircuitBreaker != "" {
		t.Errorf("Expected no breaker state, got %q", health.CircuitBreaker)
	}
}

func TestHealthLive(t *testing.T) {
	t.Parallel()
	fake := newFakeCatalog()
	fake.pingErr = errors.New("down")

	rec := doGet(t, newTestServer(t, fake), "/health/live")
	if rec.Code != http.StatusOK {
		t.Errorf("Liveness must not depend on the store, got %d", rec.Code)
	}
}

func TestHealthReady(t *testing.T) {
	t.Parallel()

	fake := newFakeCatalog()
	rec := doGet(t, newTestServer(t, fake), "/health/ready")
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	fake = newFakeCatalog()
	fake.pingErr = errors.New("down")
	rec = doGet(t, newTestServer(t, fake), "/health/ready")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", rec.Code)
	}

	var probe models.ProbeStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &probe); err != nil {
		t.Fatalf("Failed to decode probe: %v", err)
	}
	if probe.Status != "not_ready" {
		t.Errorf("Expected not_ready, got %q", probe.Status)
	}
}
