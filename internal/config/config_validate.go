// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package config

import (
	"fmt"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateAPI(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateDatabase validates MongoDB connection settings
func (c *Config) validateDatabase() error {
	if c.Database.URI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if err := validateMongoURI(c.Database.URI, "MONGO_URI"); err != nil {
		return fmt.Errorf("MONGO_URI is invalid: %w", err)
	}
	if c.Database.ConnectTimeout < time.Second {
		return fmt.Errorf("MONGO_CONNECT_TIMEOUT must be at least 1s")
	}
	if c.Database.QueryTimeout < 0 {
		return fmt.Errorf("MONGO_QUERY_TIMEOUT must not be negative")
	}
	if c.Database.MaxPoolSize == 0 {
		return fmt.Errorf("MONGO_MAX_POOL_SIZE must be greater than 0")
	}
	if c.Database.HealthInterval < time.Second {
		return fmt.Errorf("MONGO_HEALTH_INTERVAL must be at least 1s")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be greater than 0")
	}
	return nil
}

// validateAPI validates catalog query defaults
func (c *Config) validateAPI() error {
	if c.API.DefaultPageSize < 1 || c.API.DefaultPageSize > MaxPageSize {
		return fmt.Errorf("API_DEFAULT_PAGE_SIZE must be between 1 and %d", MaxPageSize)
	}
	return nil
}

// MaxPageSize is the largest limit a catalog listing accepts.
const MaxPageSize = 1000

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	if c.Logging.File != "" && c.Logging.MaxSizeMB < 1 {
		return fmt.Errorf("LOG_MAX_SIZE_MB must be at least 1 when LOG_FILE is set")
	}
	return nil
}

// HasWildcardCORS reports whether any allowed origin is "*".
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
