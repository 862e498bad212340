// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tomtom215/cadence/internal/logging"
)

func TestRequestID_GeneratesNewID(t *testing.T) {
	var capturedID, correlationID string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedID = GetRequestID(r.Context())
		correlationID = logging.CorrelationIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/songs", nil))

	responseID := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(responseID); err != nil {
		t.Errorf("Response X-Request-ID is not a valid UUID: %v", err)
	}
	if capturedID != responseID {
		t.Errorf("Context ID (%s) doesn't match response header ID (%s)", capturedID, responseID)
	}
	if correlationID == "" {
		t.Error("Expected correlation ID in context")
	}
}

func TestRequestID_PreservesUpstreamID(t *testing.T) {
	var capturedID string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedID = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/songs", nil)
	req.Header.Set(RequestIDHeader, "proxy-abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if capturedID != "proxy-abc-123" {
		t.Errorf("Expected upstream ID to be preserved, got %s", capturedID)
	}
	if rec.Header().Get(RequestIDHeader) != "proxy-abc-123" {
		t.Errorf("Expected upstream ID in response, got %s", rec.Header().Get(RequestIDHeader))
	}
}

func TestRequestID_RejectsOversizedID(t *testing.T) {
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/songs", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLength+1))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if _, err := uuid.Parse(rec.Header().Get(RequestIDHeader)); err != nil {
		t.Errorf("Expected a generated UUID, got %q", rec.Header().Get(RequestIDHeader))
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		id := rec.Header().Get(RequestIDHeader)
		if seen[id] {
			t.Fatalf("Duplicate request ID: %s", id)
		}
		seen[id] = true
	}
}

func TestGetRequestID_WithoutID(t *testing.T) {
	if id := GetRequestID(context.Background()); id != "" {
		t.Errorf("Expected empty string, got %s", id)
	}
}
