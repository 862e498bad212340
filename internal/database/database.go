// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/tomtom215/cadence/internal/config"
	"github.com/tomtom215/cadence/internal/logging"
	"github.com/tomtom215/cadence/internal/metrics"
	"github.com/tomtom215/cadence/internal/models"
)

// Catalog is the read-only query surface over the music catalog.
// Store implements it against MongoDB; BreakerCatalog wraps any Catalog
// with a circuit breaker.
type Catalog interface {
	ListSongs(ctx context.Context, f SongFilter) ([]models.SongView, error)
	GetSong(ctx context.Context, id string) (*models.SongView, error)

	ListArtists(ctx context.Context, f NameFilter) ([]models.Document, error)
	GetArtist(ctx context.Context, id string) (*models.Document, error)

	ListAlbums(ctx context.Context, f AlbumFilter) ([]models.Document, error)
	GetAlbum(ctx context.Context, id string) (*models.Document, error)

	ListGenres(ctx context.Context, f NameFilter) ([]models.Document, error)
	GetGenre(ctx context.Context, id string) (*models.Document, error)

	Ping(ctx context.Context) error
}

// Store reads the catalog collections through a shared *mongo.Client.
// It holds no mutable state and is safe for concurrent use.
type Store struct {
	client       *mongo.Client
	db           *mongo.Database
	queryTimeout time.Duration

	songs   *mongo.Collection
	artists *mongo.Collection
	albums  *mongo.Collection
	genres  *mongo.Collection
}

// New creates a Store on an already connected client. The client is owned
// by the caller, which must Disconnect it on shutdown.
func New(client *mongo.Client, cfg *config.DatabaseConfig) *Store {
	db := client.Database(cfg.DatabaseName())
	return &Store{
		client:       client,
		db:           db,
		queryTimeout: cfg.QueryTimeout,
		songs:        db.Collection(models.CollectionSongs),
		artists:      db.Collection(models.CollectionArtists),
		albums:       db.Collection(models.CollectionAlbums),
		genres:       db.Collection(models.CollectionGenres),
	}
}

// Name returns the database name the store queries.
func (s *Store) Name() string {
	return s.db.Name()
}

// Ping checks that the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	start := time.Now()
	err := s.client.Ping(ctx, readpref.Primary())
	metrics.RecordPing(time.Since(start), err)
	return err
}

// queryContext applies the configured per-call deadline, if any.
func (s *Store) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

// observe records metrics and a debug log line for one store operation.
func observe(ctx context.Context, operation, collection string, start time.Time, err error) {
	elapsed := time.Since(start)
	metrics.RecordDBQuery(operation, collection, elapsed, err)

	event := logging.Ctx(ctx).Debug()
	if err != nil {
		event = logging.Ctx(ctx).Warn().Err(err)
	}
	event.
		Str("operation", operation).
		Str("collection", collection).
		Dur("duration", elapsed).
		Msg("mongo query")
}
