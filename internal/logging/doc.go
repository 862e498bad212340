// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

// Package logging provides centralized zerolog-based structured logging for Cadence.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("database", "catalog").Msg("Connected to MongoDB")
//	logging.Ctx(r.Context()).Debug().Int("results", n).Msg("Songs listed")
//
// # Configuration
//
// Environment variables (read by internal/config):
//
//	LOG_LEVEL         trace, debug, info, warn, error (default: info)
//	LOG_FORMAT        json, console (default: json)
//	LOG_CALLER        include caller file:line (default: false)
//	LOG_FILE          rotate logs into this file instead of stderr
//	LOG_MAX_SIZE_MB   rotation size (default: 100)
//	LOG_MAX_BACKUPS   rotated files kept (default: 3)
//	LOG_MAX_AGE_DAYS  days rotated files are kept (default: 28)
//
// # Request Context
//
// The HTTP layer stores a request ID and a short correlation ID in the
// request context. Ctx(ctx) returns a logger with both attached so every
// line written while serving a request can be grouped.
//
// # slog Bridge
//
// SlogHandler lets slog consumers, such as the sutureslog event hook used by
// the supervisor tree, write through the same zerolog output.
package logging
