// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cadence/internal/logging"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	original := logging.Logger()
	originalLevel := logging.GetLevel()
	t.Cleanup(func() {
		logging.SetLogger(original)
		logging.SetLevel(originalLevel)
	})
	logging.SetLogger(logging.NewTestLogger(&buf))
	logging.SetLevel(zerolog.DebugLevel)
	return &buf
}

func TestAccessLog_LogsRequest(t *testing.T) {
	buf := captureLogs(t)

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(AccessLog(time.Minute))
	r.Get("/album/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	req := httptest.NewRequest(http.MethodGet, "/album/nope", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	r.ServeHTTP(httptest.NewRecorder(), req)

	output := buf.String()
	for _, want := range []string{
		`"level":"debug"`,
		`"message":"HTTP request"`,
		`"path":"/album/nope"`,
		`"route":"/album/{id}"`,
		`"status":400`,
		`"request_id":"req-42"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
}

func TestAccessLog_SlowRequest(t *testing.T) {
	buf := captureLogs(t)

	handler := AccessLog(time.Nanosecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Millisecond)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/songs", nil))

	output := buf.String()
	if !strings.Contains(output, `"level":"warn"`) || !strings.Contains(output, "Slow request detected") {
		t.Errorf("expected slow request warning, got: %s", output)
	}
}
