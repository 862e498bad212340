// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/tomtom215/cadence/internal/config"
	"github.com/tomtom215/cadence/internal/logging"
)

// AppName identifies this service in MongoDB server logs and currentOp.
const AppName = "cadence"

// ClientOptions builds driver options from configuration.
func ClientOptions(cfg *config.DatabaseConfig) *options.ClientOptions {
	return options.Client().
		ApplyURI(cfg.URI).
		SetAppName(AppName).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout).
		SetMonitor(commandMonitor()).
		SetPoolMonitor(poolMonitor())
}

// Connect opens a client and pings the primary within ConnectTimeout.
// There are no retries: a failure here is meant to stop the process.
func Connect(ctx context.Context, cfg *config.DatabaseConfig) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, ClientOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		disconnectQuietly(client)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logging.Info().
		Str("uri", cfg.RedactedURI()).
		Str("database", cfg.DatabaseName()).
		Uint64("max_pool_size", cfg.MaxPoolSize).
		Msg("Connected to MongoDB")

	return client, nil
}

// Disconnect closes the client's connections, logging any error.
func Disconnect(ctx context.Context, client *mongo.Client) {
	if client == nil {
		return
	}
	if err := client.Disconnect(ctx); err != nil {
		logging.Warn().Err(err).Msg("Failed to disconnect from MongoDB")
		return
	}
	logging.Info().Msg("Disconnected from MongoDB")
}

func disconnectQuietly(client *mongo.Client) {
	_ = client.Disconnect(context.Background()) // best-effort cleanup after a failed ping
}

// commandMonitor logs failed commands at debug level and every command at trace level.
func commandMonitor() *event.CommandMonitor {
	return &event.CommandMonitor{
		Succeeded: func(ctx context.Context, e *event.CommandSucceededEvent) {
			logging.Ctx(ctx).Trace().
				Str("command", e.CommandName).
				Str("database", e.DatabaseName).
				Dur("duration", e.Duration).
				Msg("mongo command succeeded")
		},
		Failed: func(ctx context.Context, e *event.CommandFailedEvent) {
			logging.Ctx(ctx).Debug().
				Str("command", e.CommandName).
				Str("database", e.DatabaseName).
				Dur("duration", e.Duration).
				Str("failure", e.Failure).
				Msg("mongo command failed")
		},
	}
}

// poolMonitor logs connection pool lifecycle changes.
func poolMonitor() *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(e *event.PoolEvent) {
			switch e.Type {
			case event.PoolCleared:
				logging.Warn().Str("address", e.Address).Msg("MongoDB connection pool cleared")
			case event.ConnectionCreated, event.ConnectionClosed:
				logging.Trace().Str("address", e.Address).Str("type", e.Type).Uint64("connection_id", e.ConnectionID).Msg("MongoDB pool event")
			}
		},
	}
}
