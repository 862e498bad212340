// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package main is the entry point for the Cadence server.

Cadence serves read-only queries over a MongoDB music catalog: songs, artists,
albums and genres, with songs returned with their references expanded.

# Startup

 1. Configuration: Koanf v2 (defaults, config.yaml, .env, environment)
 2. Logging: zerolog, optionally rotated into a file by lumberjack
 3. MongoDB: connect and ping; failure here exits the process
 4. Catalog: database.Store, wrapped in a gobreaker circuit breaker unless
    MONGO_CIRCUIT_BREAKER=false
 5. HTTP: chi router with swagger, health probes and /metrics
 6. Supervision: suture tree with the store monitor and the HTTP server

# Configuration

	MONGO_URI=mongodb://localhost:27017/music   (required)
	MONGO_DATABASE=music                        (defaults to the URI path, then "test")
	HTTP_PORT=3000
	LOG_LEVEL=info
	CORS_ORIGINS=*
	ENABLE_SWAGGER=true

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
in-flight requests for up to 10s, then the MongoDB client disconnects.

# Example Usage

	export MONGO_URI=mongodb://localhost:27017/music
	./cadence
	curl 'http://localhost:3000/songs?genre_name=jazz&limit=5'
*/
package main
