// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cadence/internal/config"
	"github.com/tomtom215/cadence/internal/database"
)

// Version is reported by /health and exported as app_info.
var Version = "1.0.0"

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor, error adapter (this file)
//   - handlers_helpers.go: JSON encoding, ETag, query parsing
//   - handlers_catalog.go: the eight catalog routes
//   - handlers_health.go: health, liveness and readiness probes
type Handler struct {
	catalog   database.Catalog
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a handler serving catalog queries from the given store.
// The catalog is usually a *database.Store, optionally wrapped in a
// *database.BreakerCatalog.
//
// Example:
//
//	store := database.New(client, &cfg.Database)
//	handler := api.NewHandler(database.NewBreakerCatalog(store, database.DefaultBreakerSettings()), cfg)
//	router := api.NewRouter(handler)
func NewHandler(catalog database.Catalog, cfg *config.Config) *Handler {
	return &Handler{
		catalog:   catalog,
		config:    cfg,
		startTime: time.Now(),
	}
}

// StartTime returns when the handler was created, used for uptime.
func (h *Handler) StartTime() time.Time {
	return h.startTime
}

// handlerFunc is a route handler that reports failures by returning them.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to http.HandlerFunc, sending any returned error through writeError.
func handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			writeError(w, r, err)
		}
	}
}
