// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tomtom215/cadence/internal/database/query"
	"github.com/tomtom215/cadence/internal/metrics"
	"github.com/tomtom215/cadence/internal/models"
)

// Fields loaded when a song reference is expanded.
var (
	albumSummaryFields  = []string{"code", "title", "year", "thumbnail300x300", "thumbnail"}
	genreSummaryFields  = []string{"name"}
	artistSummaryFields = []string{"name", "artists_thumbnail300x300", "artists_thumbnail"}
)

// ListSongs returns songs matching f with album, genre and artists expanded.
//
// Album, genre and artist criteria are resolved first into id sets from
// their own collections. A criterion that matches nothing yields an empty
// set, so the song query returns no results rather than ignoring it.
func (s *Store) ListSongs(ctx context.Context, f SongFilter) ([]models.SongView, error) {
	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	filter, err := s.songFilter(ctx, f)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(int64(f.Offset)).
		SetLimit(int64(f.Limit))

	start := time.Now()
	songs, err := findAll[models.Song](ctx, s.songs, filter, opts)
	observe(ctx, "find", models.CollectionSongs, start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to query songs: %w", err)
	}
	metrics.RecordDocumentsReturned(models.CollectionSongs, len(songs))

	return s.expandSongs(ctx, songs)
}

// GetSong returns one expanded song by id.
func (s *Store) GetSong(ctx context.Context, id string) (*models.SongView, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	song, err := findOneByID[models.Song](ctx, s.songs, oid, "Song")
	if err != nil {
		return nil, err
	}

	views, err := s.expandSongs(ctx, []models.Song{*song})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// songFilter builds the songs filter, running the related-collection lookups.
func (s *Store) songFilter(ctx context.Context, f SongFilter) (bson.D, error) {
	fb := query.NewFilterBuilder().AddContains("original_name", f.OriginalName)

	if f.hasAlbumCriteria() {
		albumFilter := query.NewFilterBuilder().
			AddContains("title", f.AlbumTitle).
			AddEquals("code", f.AlbumCode).
			Build()
		ids, err := s.matchIDs(ctx, s.albums, albumFilter)
		if err != nil {
			return nil, err
		}
		fb.AddIn("album", ids)
	}

	if f.GenreName != "" {
		ids, err := s.matchIDs(ctx, s.genres, query.NewFilterBuilder().AddContains("name", f.GenreName).Build())
		if err != nil {
			return nil, err
		}
		fb.AddIn("genre", ids)
	}

	if f.ArtistName != "" {
		ids, err := s.matchIDs(ctx, s.artists, query.NewFilterBuilder().AddContains("name", f.ArtistName).Build())
		if err != nil {
			return nil, err
		}
		fb.AddIn("artists", ids)
	}

	return fb.Build(), nil
}

// matchIDs returns the _id of every document in coll matching filter.
func (s *Store) matchIDs(ctx context.Context, coll *mongo.Collection, filter bson.D) ([]primitive.ObjectID, error) {
	type idOnly struct {
		ID primitive.ObjectID `bson:"_id"`
	}

	start := time.Now()
	docs, err := findAll[idOnly](ctx, coll, filter, options.Find().SetProjection(query.IDProjection()))
	observe(ctx, "find", coll.Name(), start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}

	ids := make([]primitive.ObjectID, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	if len(ids) == 0 {
		metrics.RecordEmptyFilterMatch(coll.Name())
	}
	return ids, nil
}

// expandSongs loads every album, genre and artist referenced by songs in one
// query per collection, then builds the views.
func (s *Store) expandSongs(ctx context.Context, songs []models.Song) ([]models.SongView, error) {
	refs := collectRefs(songs)

	albums, err := loadByIDs(ctx, s.albums, refs.albums, albumSummaryFields)
	if err != nil {
		return nil, err
	}
	genres, err := loadByIDs(ctx, s.genres, refs.genres, genreSummaryFields)
	if err != nil {
		return nil, err
	}
	artists, err := loadByIDs(ctx, s.artists, refs.artists, artistSummaryFields)
	if err != nil {
		return nil, err
	}

	return buildSongViews(songs, albums, genres, artists), nil
}

// songRefs holds the distinct ids referenced by a batch of songs.
type songRefs struct {
	albums  []primitive.ObjectID
	genres  []primitive.ObjectID
	artists []primitive.ObjectID
}

func collectRefs(songs []models.Song) songRefs {
	var refs songRefs
	seen := make(map[primitive.ObjectID]struct{})
	add := func(dst *[]primitive.ObjectID, id primitive.ObjectID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		*dst = append(*dst, id)
	}

	for i := range songs {
		if songs[i].Album != nil {
			add(&refs.albums, *songs[i].Album)
		}
		if songs[i].Genre != nil {
			add(&refs.genres, *songs[i].Genre)
		}
		for _, id := range songs[i].Artists {
			add(&refs.artists, id)
		}
	}
	return refs
}

// buildSongViews resolves references from the loaded maps. Missing album or
// genre documents leave the field nil; missing artists are skipped.
func buildSongViews(
	songs []models.Song,
	albums map[primitive.ObjectID]models.Document,
	genres map[primitive.ObjectID]models.Document,
	artists map[primitive.ObjectID]models.Document,
) []models.SongView {
	views := make([]models.SongView, len(songs))
	for i := range songs {
		song := &songs[i]
		view := models.NewSongView(song)

		if song.Album != nil {
			if a, ok := albums[*song.Album]; ok {
				view.Album = &a
			}
		}
		if song.Genre != nil {
			if g, ok := genres[*song.Genre]; ok {
				view.Genre = &g
			}
		}
		for _, id := range song.Artists {
			if a, ok := artists[id]; ok {
				view.Artists = append(view.Artists, a)
			}
		}
		views[i] = view
	}
	return views
}

// loadByIDs fetches the projected documents for ids and indexes them by id.
func loadByIDs(
	ctx context.Context,
	coll *mongo.Collection,
	ids []primitive.ObjectID,
	fields []string,
) (map[primitive.ObjectID]models.Document, error) {
	out := make(map[primitive.ObjectID]models.Document, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	filter := query.NewFilterBuilder().AddIn("_id", ids).Build()
	opts := options.Find().SetProjection(query.Projection(fields...))

	start := time.Now()
	docs, err := findAll[models.Document](ctx, coll, filter, opts)
	observe(ctx, "find", coll.Name(), start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", coll.Name(), err)
	}

	for _, d := range docs {
		out[d.ID()] = d
	}
	return out, nil
}

// findAll runs Find and decodes every document. The result is never nil.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.D, opts ...*options.FindOptions) ([]T, error) {
	cur, err := coll.Find(ctx, filter, opts...)
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

// findOneByID loads a single document, mapping "no documents" to *NotFoundError.
func findOneByID[T any](ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, entity string) (*T, error) {
	start := time.Now()
	var doc T
	err := coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		observe(ctx, "findOne", coll.Name(), start, nil)
		return nil, &NotFoundError{Entity: entity}
	}
	observe(ctx, "findOne", coll.Name(), start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}
	return &doc, nil
}
