// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package config provides centralized configuration management for Cadence.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file, then environment variables. A .env file in the working directory
is loaded into the environment first (github.com/joho/godotenv) without
overriding variables that are already set.

# Environment Variables

MongoDB (DatabaseConfig):
  - MONGO_URI: Connection string, mongodb:// or mongodb+srv:// (required)
  - MONGO_DATABASE: Database name (default: URI path, else "test")
  - MONGO_CONNECT_TIMEOUT: Initial connect and ping timeout (default: 10s)
  - MONGO_QUERY_TIMEOUT: Per-call deadline, 0 disables (default: 0)
  - MONGO_MAX_POOL_SIZE: Driver connection pool size (default: 100)
  - MONGO_CIRCUIT_BREAKER: Wrap store calls in a circuit breaker (default: true)
  - MONGO_HEALTH_INTERVAL: Store monitor ping interval (default: 30s)

HTTP Server (ServerConfig):
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 3000)
  - HTTP_TIMEOUT: Read and write timeout (default: 30s)
  - ENVIRONMENT: development, staging or production (default: development)

API (APIConfig, SecurityConfig):
  - API_DEFAULT_PAGE_SIZE: Default limit for listings (default: 10)
  - ENABLE_SWAGGER: Serve /swagger/* (default: true)
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include file:line (default: false)
  - LOG_FILE: Rotating log file path, empty for stderr only
  - LOG_MAX_SIZE_MB, LOG_MAX_BACKUPS, LOG_MAX_AGE_DAYS: Rotation limits

# Config File

CONFIG_PATH names a YAML file explicitly. Otherwise config.yaml, config.yml,
/etc/cadence/config.yaml and /etc/cadence/config.yml are tried in order.

	database:
	  uri: mongodb://localhost:27017/music
	server:
	  port: 3000
	logging:
	  level: debug
*/
package config
