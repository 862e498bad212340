// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/cadence/internal/middleware"
)

// Router sets up HTTP routes using Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router for handler, taking CORS origins from its configuration.
func NewRouter(handler *Handler) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddlewareFromOrigins(handler.config.Security.CORSOrigins),
	}
}

// SetupChi configures all HTTP routes.
//
// Routes:
//
//	GET /songs, /song/{id}, /artists, /artist/{id}, /albums, /album/{id}, /genres, /genre/{id}
//	GET /health, /health/live, /health/ready
//	GET /metrics
//	GET /swagger/* (when api.swagger_enabled)
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog(middleware.DefaultSlowRequestThreshold))
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(chimiddleware.GetHead)

	r.NotFound(notFoundHandler)
	r.MethodNotAllowed(methodNotAllowedHandler)

	h := router.handler

	// ========================
	// Catalog Endpoints
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		r.Use(middleware.Compression)

		r.Get("/songs", handle(h.ListSongs))
		r.Get("/song/{id}", handle(h.GetSong))
		r.Get("/artists", handle(h.ListArtists))
		r.Get("/artist/{id}", handle(h.GetArtist))
		r.Get("/albums", handle(h.ListAlbums))
		r.Get("/album/{id}", handle(h.GetAlbum))
		r.Get("/genres", handle(h.ListGenres))
		r.Get("/genre/{id}", handle(h.GetGenre))
	})

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/health", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Get("/", h.Health)
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	if h.config.API.SwaggerEnabled {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
			httpSwagger.DeepLinking(true),
			httpSwagger.DocExpansion("list"),
			httpSwagger.DomID("swagger-ui"),
		))
	}

	return r
}
