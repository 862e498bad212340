// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultMongoImage is the MongoDB image used by integration tests.
const DefaultMongoImage = "mongo:7.0"

// MongoContainer is a running MongoDB server with a connected client.
type MongoContainer struct {
	*mongodb.MongoDBContainer
	URI    string
	Client *mongo.Client
}

// MongoOption configures the MongoDB container.
type MongoOption func(*mongoConfig)

type mongoConfig struct {
	image        string
	startTimeout time.Duration
}

// WithMongoImage sets a custom MongoDB Docker image.
func WithMongoImage(image string) MongoOption {
	return func(c *mongoConfig) {
		c.image = image
	}
}

// WithStartTimeout bounds container startup and the initial client ping.
func WithStartTimeout(timeout time.Duration) MongoOption {
	return func(c *mongoConfig) {
		c.startTimeout = timeout
	}
}

// NewMongoContainer starts MongoDB and connects a client to it.
//
// Example:
//
//	mc, err := testinfra.NewMongoContainer(ctx)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer mc.Terminate(ctx)
func NewMongoContainer(ctx context.Context, opts ...MongoOption) (*MongoContainer, error) {
	cfg := &mongoConfig{
		image:        DefaultMongoImage,
		startTimeout: 2 * time.Minute,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	startCtx, cancel := context.WithTimeout(ctx, cfg.startTimeout)
	defer cancel()

	container, err := mongodb.Run(startCtx, cfg.image)
	if err != nil {
		return nil, fmt.Errorf("create mongodb container: %w", err)
	}

	uri, err := container.ConnectionString(startCtx)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("mongodb connection string: %w", err)
	}

	client, err := mongo.Connect(startCtx, options.Client().ApplyURI(uri))
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("connect to mongodb container: %w", err)
	}
	if err := client.Ping(startCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("ping mongodb container: %w", err)
	}

	return &MongoContainer{MongoDBContainer: container, URI: uri, Client: client}, nil
}

// Terminate disconnects the client and stops the container.
func (m *MongoContainer) Terminate(ctx context.Context) error {
	if m.Client != nil {
		_ = m.Client.Disconnect(ctx)
	}
	return m.MongoDBContainer.Terminate(ctx)
}

// StartMongo starts a container for t and registers cleanup. It skips the
// test when integration tests cannot run.
func StartMongo(t *testing.T) *MongoContainer {
	t.Helper()
	RequireIntegration(t)

	ctx := context.Background()
	mc, err := NewMongoContainer(ctx)
	if err != nil {
		t.Fatalf("Failed to start MongoDB: %v", err)
	}
	t.Cleanup(func() {
		if err := mc.Terminate(ctx); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})
	return mc
}
