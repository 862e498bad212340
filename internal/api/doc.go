// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package api provides the HTTP layer of Cadence, a read-only query API over a
MongoDB music catalog.

Routes:

	GET /songs          filter by original_name, album_title, album_code, genre_name, artist_name
	GET /song/{id}      one song with album, genre and artists expanded
	GET /artists        filter by name
	GET /artist/{id}
	GET /albums         filter by code, title, year
	GET /album/{id}
	GET /genres         filter by name
	GET /genre/{id}
	GET /health, /health/live, /health/ready
	GET /metrics
	GET /swagger/*

Every listing accepts limit (default api.default_page_size) and offset
(default 0). A value that is not an integer falls back to its default; an
integer out of range is rejected with 400. Text filters are case-insensitive
substring matches, except album_code on /songs which must match exactly.

Errors:

All failures are reported as {"message": "..."}. The mapping from error to
status lives in errors.go:

  - database.ErrInvalidID: 400 "Invalid ID format"
  - *database.NotFoundError: 404 "<Entity> not found"
  - validation failures: 400 with the validator messages
  - anything else: 500 with the error text

Handlers return errors instead of writing them, and are adapted with handle().

Successful responses carry an ETag; a matching If-None-Match yields 304.

Usage:

	handler := api.NewHandler(catalog, cfg)
	router := api.NewRouter(handler)
	server := &http.Server{Handler: router.SetupChi()}
*/
package api
