// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/cadence/config.yaml",
	"/etc/cadence/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DotEnvFile is loaded into the process environment before the env layer.
// Variables already present in the environment are not overwritten.
var DotEnvFile = ".env"

func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			URI:            "",
			Name:           "",
			ConnectTimeout: 10 * time.Second,
			QueryTimeout:   0,
			MaxPoolSize:    100,
			CircuitBreaker: true,
			HealthInterval: 30 * time.Second,
		},
		Server: ServerConfig{
			Port:        3000,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		API: APIConfig{
			DefaultPageSize: 10,
			SwaggerEnabled:  true,
		},
		Security: SecurityConfig{
			CORSOrigins: []string{"*"},
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			Caller:     false,
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults
//  2. Config File (optional YAML)
//  3. Environment Variables, including those from a .env file
//
// Precedence is ENV > File > Defaults.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := loadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadDotEnv copies variables from path into the process environment.
// A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// findConfigFile returns the first config file found, or "" if none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are parsed as comma-separated lists when set from the environment.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
// Variables not listed here are ignored.
var envMappings = map[string]string{
	// MongoDB
	"mongo_uri":             "database.uri",
	"mongo_database":        "database.name",
	"mongo_connect_timeout": "database.connect_timeout",
	"mongo_query_timeout":   "database.query_timeout",
	"mongo_max_pool_size":   "database.max_pool_size",
	"mongo_circuit_breaker": "database.circuit_breaker",
	"mongo_health_interval": "database.health_interval",

	// HTTP server
	"http_host":    "server.host",
	"http_port":    "server.port",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	// API
	"api_default_page_size": "api.default_page_size",
	"enable_swagger":        "api.swagger_enabled",

	// Security
	"cors_origins": "security.cors_origins",

	// Logging
	"log_level":        "logging.level",
	"log_format":       "logging.format",
	"log_caller":       "logging.caller",
	"log_file":         "logging.file",
	"log_max_size_mb":  "logging.max_size_mb",
	"log_max_backups":  "logging.max_backups",
	"log_max_age_days": "logging.max_age_days",
}

// envTransformFunc maps environment variable names to koanf config paths.
//
// Examples:
//   - MONGO_URI -> database.uri
//   - HTTP_PORT -> server.port
//   - LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
