// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package api

import (
	"net/http"
	"strings"
	"testing"
)

func TestSetupChi_RegistersCatalogRoutes(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, newFakeCatalog())

	routes := []string{
		"/songs", "/song/" + knownID,
		"/artists", "/artist/" + knownID,
		"/albums", "/album/" + knownID,
		"/genres", "/genre/" + knownID,
		"/health", "/health/live", "/health/ready",
	}
	for _, route := range routes {
		if rec := doGet(t, srv, route); rec.Code != http.StatusOK {
			t.Errorf("GET %s: expected status 200, got %d", route, rec.Code)
		}
	}
}

func TestSetupChi_Metrics(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, newFakeCatalog())

	doGet(t, srv, "/genres")
	rec := doGet(t, srv, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "api_requests_total") {
		t.Error("Expected api_requests_total in metrics output")
	}
}

func TestSetupChi_SwaggerToggle(t *testing.T) {
	t.Parallel()

	rec := doGet(t, newTestServer(t, newFakeCatalog()), "/swagger/index.html")
	if rec.Code != http.StatusOK {
		t.Errorf("Expected swagger UI with swagger enabled, got %d", rec.Code)
	}

	cfg := testConfig()
	cfg.API.SwaggerEnabled = false
	srv := NewRouter(NewHandler(newFakeCatalog(), cfg)).SetupChi()
	rec = doGet(t, srv, "/swagger/index.html")
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 with swagger disabled, got %d", rec.Code)
	}
}

func TestSetupChi_RecoversFromPanic(t *testing.T) {
	t.Parallel()
	fake := newFakeCatalog()
	fake.songs = nil // GetSong indexes songs[0]

	rec := doGet(t, newTestServer(t, fake), "/song/"+knownID)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500 after panic, got %d", rec.Code)
	}
}
