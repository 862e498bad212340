// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package config

import (
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in values from defaultConfig()
//  2. Config File: optional YAML file (config.yaml or CONFIG_PATH)
//  3. Environment Variables: .env file first, then the process environment
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load configuration")
//	}
//	client, err := database.Connect(ctx, &cfg.Database)
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DatabaseConfig holds the MongoDB connection settings.
type DatabaseConfig struct {
	// URI is the MongoDB connection string (MONGO_URI). Required.
	URI string `koanf:"uri"`

	// Name is the database holding the catalog collections. When empty the
	// database named in the URI path is used, falling back to "test".
	Name string `koanf:"name"`

	ConnectTimeout time.Duration `koanf:"connect_timeout"`

	// QueryTimeout bounds each store call. Zero leaves calls unbounded.
	QueryTimeout time.Duration `koanf:"query_timeout"`

	MaxPoolSize uint64 `koanf:"max_pool_size"`

	// CircuitBreaker wraps every store call in a sony/gobreaker breaker.
	CircuitBreaker bool `koanf:"circuit_breaker"`

	// HealthInterval is how often the store monitor pings MongoDB.
	HealthInterval time.Duration `koanf:"health_interval"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging", "production"
}

// APIConfig holds query defaults for the catalog endpoints.
type APIConfig struct {
	DefaultPageSize int  `koanf:"default_page_size"`
	SwaggerEnabled  bool `koanf:"swagger_enabled"`
}

// SecurityConfig holds browser-facing HTTP settings.
type SecurityConfig struct {
	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`

	// File enables size-based log rotation into the given path.
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
}

// IsProduction reports whether the server runs with ENVIRONMENT=production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads configuration from defaults, an optional YAML file, a .env file
// and the environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
