// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

// @title Cadence API
// @version 1.0
// @description Read-only query API over a MongoDB music catalog of songs, artists, albums and genres.
// @description
// @description ## Pagination
// @description
// @description Every listing accepts `limit` (default 10, 1..1000) and `offset` (default 0).
// @description Non-numeric values fall back to the defaults.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {"message": "Song not found"}
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/cadence/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3000
// @BasePath /
// @schemes http https
//
// @tag.name Songs
// @tag.description Songs with their album, genre and artists expanded
//
// @tag.name Artists
// @tag.name Albums
// @tag.name Genres
//
// @tag.name Health
// @tag.description Health, liveness and readiness probes
package main
