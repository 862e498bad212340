// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/cadence/docs" // Import generated swagger docs
	"github.com/tomtom215/cadence/internal/api"
	"github.com/tomtom215/cadence/internal/config"
	"github.com/tomtom215/cadence/internal/database"
	"github.com/tomtom215/cadence/internal/logging"
	"github.com/tomtom215/cadence/internal/metrics"
	"github.com/tomtom215/cadence/internal/supervisor"
	"github.com/tomtom215/cadence/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Caller:     cfg.Logging.Caller,
		Timestamp:  true,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
	})
	defer func() {
		if err := logging.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
	}()

	startTime := time.Now()
	logging.Info().
		Str("version", api.Version).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Cadence")

	logging.Info().
		Str("mongo_uri", cfg.Database.RedactedURI()).
		Str("database", cfg.Database.DatabaseName()).
		Bool("circuit_breaker", cfg.Database.CircuitBreaker).
		Msg("Configuration loaded")

	// A store that is unreachable at startup is fatal; later outages are
	// reported per request and by the store monitor.
	client, err := database.Connect(context.Background(), &cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		database.Disconnect(disconnectCtx, client)
	}()

	store := database.New(client, &cfg.Database)
	logging.Info().Str("database", store.Name()).Msg("Catalog store ready")

	var catalog database.Catalog = store
	if cfg.Database.CircuitBreaker {
		catalog = database.NewBreakerCatalog(catalog, database.DefaultBreakerSettings())
		logging.Info().Msg("Circuit breaker enabled for MongoDB queries")
	}

	metrics.SetAppInfo(api.Version)

	if cfg.IsProduction() && cfg.API.SwaggerEnabled {
		logging.Warn().Msg("Swagger UI is enabled in production (ENABLE_SWAGGER=false to disable)")
	}

	handler := api.NewHandler(catalog, cfg)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridges zerolog to slog for sutureslog
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddDataService(services.NewStoreMonitorService(catalog, services.StoreMonitorConfig{
		Interval:  cfg.Database.HealthInterval,
		StartTime: startTime,
	}, logging.Logger()))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		// A second signal falls through to the default handler and exits.
		signal.Stop(sigCh)
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Cadence stopped")
}
