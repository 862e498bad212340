// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tomtom215/cadence/internal/database/query"
	"github.com/tomtom215/cadence/internal/metrics"
	"github.com/tomtom215/cadence/internal/models"
)

// ListArtists returns artists whose name contains f.Name.
func (s *Store) ListArtists(ctx context.Context, f NameFilter) ([]models.Document, error) {
	filter := query.NewFilterBuilder().AddContains("name", f.Name).Build()
	return aggregatePage[models.Document](ctx, s, s.artists, query.Pipeline(filter, f.Offset, f.Limit))
}

// GetArtist returns the artist document with the given id.
func (s *Store) GetArtist(ctx context.Context, id string) (*models.Document, error) {
	return getByID[models.Document](ctx, s, s.artists, id, "Artist")
}

// ListAlbums returns albums matching code (substring), title (substring) and year (exact).
func (s *Store) ListAlbums(ctx context.Context, f AlbumFilter) ([]models.Document, error) {
	filter := query.NewFilterBuilder().
		AddContains("code", f.Code).
		AddContains("title", f.Title).
		AddInt("year", f.Year).
		Build()
	return aggregatePage[models.Document](ctx, s, s.albums, query.Pipeline(filter, f.Offset, f.Limit))
}

// GetAlbum returns the album document with the given id.
func (s *Store) GetAlbum(ctx context.Context, id string) (*models.Document, error) {
	return getByID[models.Document](ctx, s, s.albums, id, "Album")
}

// ListGenres returns genres whose name contains f.Name.
func (s *Store) ListGenres(ctx context.Context, f NameFilter) ([]models.Document, error) {
	filter := query.NewFilterBuilder().AddContains("name", f.Name).Build()
	return aggregatePage[models.Document](ctx, s, s.genres, query.Pipeline(filter, f.Offset, f.Limit))
}

// GetGenre returns the genre document with the given id.
func (s *Store) GetGenre(ctx context.Context, id string) (*models.Document, error) {
	return getByID[models.Document](ctx, s, s.genres, id, "Genre")
}

// aggregatePage runs a paginated pipeline and decodes the results. The result is never nil.
func aggregatePage[T any](ctx context.Context, s *Store, coll *mongo.Collection, pipeline mongo.Pipeline) ([]T, error) {
	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	start := time.Now()
	out, err := aggregateAll[T](ctx, coll, pipeline)
	observe(ctx, "aggregate", coll.Name(), start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}
	metrics.RecordDocumentsReturned(coll.Name(), len(out))
	return out, nil
}

func aggregateAll[T any](ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline) ([]T, error) {
	cur, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer closeCursor(ctx, cur, coll.Name())

	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func getByID[T any](ctx context.Context, s *Store, coll *mongo.Collection, id, entity string) (*T, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	return findOneByID[T](ctx, coll, oid, entity)
}
