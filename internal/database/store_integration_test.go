// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

//go:build integration

package database

import (
	"context"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tomtom215/cadence/internal/config"
	"github.com/tomtom215/cadence/internal/models"
	"github.com/tomtom215/cadence/internal/testinfra"
)

const testDBName = "music"

func setupStore(t *testing.T) (*Store, *testinfra.CatalogFixture) {
	t.Helper()

	mc := testinfra.StartMongo(t)
	ctx := context.Background()

	fx, err := testinfra.SeedCatalog(ctx, mc.Client.Database(testDBName))
	require.NoError(t, err)

	cfg := &config.DatabaseConfig{URI: mc.URI, Name: testDBName}
	return New(mc.Client, cfg), fx
}

func songNames(songs []models.SongView) []string {
	names := make([]string, len(songs))
	for i := range songs {
		names[i] = songs[i].OriginalName
	}
	return names
}

func page(limit, offset int) Page { return Page{Limit: limit, Offset: offset} }

func TestStoreIntegration_ListSongs(t *testing.T) {
	store, fx := setupStore(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter SongFilter
		want   []string
	}{
		{"no filters returns natural order", SongFilter{Page: page(10, 0)},
			[]string{"So What", "Blue in Green", "Blue Train", "Princes (a.k.a)", "Orphan"}},
		{"original name is case-insensitive substring", SongFilter{OriginalName: "BLUE", Page: page(10, 0)},
			[]string{"Blue in Green", "Blue Train"}},
		{"regex metacharacters match literally", SongFilter{OriginalName: "(a.k.a)", Page: page(10, 0)},
			[]string{"Princes (a.k.a)"}},
		{"dot does not act as wildcard", SongFilter{OriginalName: "a.k", Page: page(10, 0)},
			[]string{"Princes (a.k.a)"}},
		{"album code is exact", SongFilter{AlbumCode: "KOB", Page: page(10, 0)},
			[]string{"So What", "Blue in Green"}},
		{"album code is case-sensitive", SongFilter{AlbumCode: "kob", Page: page(10, 0)},
			[]string{}},
		{"album title substring", SongFilter{AlbumTitle: "kind of", Page: page(10, 0)},
			[]string{"So What", "Blue in Green", "Princes (a.k.a)"}},
		{"album title and code combine", SongFilter{AlbumTitle: "kind", AlbumCode: "KOB2", Page: page(10, 0)},
			[]string{"Princes (a.k.a)"}},
		{"genre name", SongFilter{GenreName: "rock", Page: page(10, 0)},
			[]string{"Princes (a.k.a)"}},
		{"artist name", SongFilter{ArtistName: "coltrane", Page: page(10, 0)},
			[]string{"So What", "Blue Train"}},
		{"criteria intersect", SongFilter{GenreName: "jazz", ArtistName: "miles", OriginalName: "green", Page: page(10, 0)},
			[]string{"Blue in Green"}},
		{"unmatched genre yields nothing", SongFilter{GenreName: "polka", Page: page(10, 0)},
			[]string{}},
		{"unmatched artist yields nothing", SongFilter{ArtistName: "nobody", Page: page(10, 0)},
			[]string{}},
		{"limit", SongFilter{Page: page(2, 0)},
			[]string{"So What", "Blue in Green"}},
		{"offset", SongFilter{Page: page(2, 3)},
			[]string{"Princes (a.k.a)", "Orphan"}},
		{"offset past end", SongFilter{Page: page(10, 50)},
			[]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			songs, err := store.ListSongs(ctx, tt.filter)
			require.NoError(t, err)
			require.NotNil(t, songs)
			assert.Equal(t, tt.want, songNames(songs))
		})
	}

	t.Run("expansion", func(t *testing.T) {
		songs, err := store.ListSongs(ctx, SongFilter{OriginalName: "So What", Page: page(10, 0)})
		require.NoError(t, err)
		require.Len(t, songs, 1)

		s := songs[0]
		assert.Equal(t, fx.SoWhat, s.ID)
		require.NotNil(t, s.Album)
		assert.Equal(t, "KOB", s.Album.StringField("code"))
		year, _ := s.Album.Lookup("year")
		assert.Equal(t, int32(1959), year)
		assert.Equal(t, "kob-300.jpg", s.Album.StringField("thumbnail300x300"))
		_, hasVersion := s.Album.Lookup("__v")
		assert.False(t, hasVersion, "expansion loads only the listed fields")
		require.NotNil(t, s.Genre)
		assert.Equal(t, "Jazz", s.Genre.StringField("name"))
		require.Len(t, s.Artists, 2)
		assert.Equal(t, "Miles Davis", s.Artists[0].StringField("name"))
		assert.Equal(t, "John Coltrane", s.Artists[1].StringField("name"))
		require.NotNil(t, s.Version)
	})

	t.Run("dangling references", func(t *testing.T) {
		songs, err := store.ListSongs(ctx, SongFilter{OriginalName: "Orphan", Page: page(10, 0)})
		require.NoError(t, err)
		require.Len(t, songs, 1)
		assert.Nil(t, songs[0].Album)
		assert.Nil(t, songs[0].Genre)
		assert.Empty(t, songs[0].Artists)
		assert.NotNil(t, songs[0].Artists)

		songs, err = store.ListSongs(ctx, SongFilter{OriginalName: "Blue in Green", Page: page(10, 0)})
		require.NoError(t, err)
		require.Len(t, songs, 1)
		require.Len(t, songs[0].Artists, 1)
		assert.Equal(t, fx.Miles, songs[0].Artists[0].ID())
	})
}

func TestStoreIntegration_GetSong(t *testing.T) {
	store, fx := setupStore(t)
	ctx := context.Background()

	song, err := store.GetSong(ctx, fx.BlueTrain.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Blue Train", song.OriginalName)
	require.NotNil(t, song.Album)
	assert.Equal(t, "BT", song.Album.StringField("code"))

	_, err = store.GetSong(ctx, fx.Missing.Hex())
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "Song not found", err.Error())

	_, err = store.GetSong(ctx, "not-an-id")
	assert.True(t, errors.Is(err, ErrInvalidID))

	_, err = store.GetSong(ctx, "abcdefghijkl")
	assert.True(t, IsNotFound(err), "a 12-byte id is well formed, got %v", err)
}

func TestStoreIntegration_ListAlbums(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	year := 1959
	missingYear := 2001

	tests := []struct {
		name   string
		filter AlbumFilter
		want   []string
	}{
		{"all", AlbumFilter{Page: page(10, 0)}, []string{"Kind of Blue", "Kind of Magic", "Blue Train"}},
		{"code is substring", AlbumFilter{Code: "kob", Page: page(10, 0)}, []string{"Kind of Blue", "Kind of Magic"}},
		{"title substring", AlbumFilter{Title: "blue", Page: page(10, 0)}, []string{"Kind of Blue", "Blue Train"}},
		{"year exact", AlbumFilter{Year: &year, Page: page(10, 0)}, []string{"Kind of Blue"}},
		{"year without match", AlbumFilter{Year: &missingYear, Page: page(10, 0)}, []string{}},
		{"pagination", AlbumFilter{Page: page(1, 1)}, []string{"Kind of Magic"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			albums, err := store.ListAlbums(ctx, tt.filter)
			require.NoError(t, err)
			titles := make([]string, len(albums))
			for i := range albums {
				titles[i] = albums[i].StringField("title")
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestStoreIntegration_ArtistsAndGenres(t *testing.T) {
	store, fx := setupStore(t)
	ctx := context.Background()

	artists, err := store.ListArtists(ctx, NameFilter{Name: "o", Page: page(10, 0)})
	require.NoError(t, err)
	require.Len(t, artists, 1)
	assert.Equal(t, "John Coltrane", artists[0].StringField("name"))

	artists, err = store.ListArtists(ctx, NameFilter{Page: page(2, 1)})
	require.NoError(t, err)
	require.Len(t, artists, 2)
	assert.Equal(t, "John Coltrane", artists[0].StringField("name"))

	genres, err := store.ListGenres(ctx, NameFilter{Name: "JA", Page: page(10, 0)})
	require.NoError(t, err)
	require.Len(t, genres, 1)
	assert.Equal(t, fx.Jazz, genres[0].ID())

	_, err = store.GetGenre(ctx, primitive.NewObjectID().Hex())
	assert.Equal(t, "Genre not found", err.Error())

	_, err = store.GetAlbum(ctx, "12345")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestStoreIntegration_DocumentsKeepStoredFields(t *testing.T) {
	store, fx := setupStore(t)
	ctx := context.Background()

	artist, err := store.GetArtist(ctx, fx.Queen.Hex())
	require.NoError(t, err)
	assert.Equal(t, "UK", artist.StringField("country"))

	data, err := json.Marshal(artist)
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"`+fx.Queen.Hex()+`","name":"Queen","country":"UK"}`, string(data))

	album, err := store.GetAlbum(ctx, fx.KindOfMagic.Hex())
	require.NoError(t, err)
	year, _ := album.Lookup("year")
	assert.Equal(t, "1986", year)
	assert.Equal(t, "EMI", album.StringField("label"))
	_, hasThumb := album.Lookup("thumbnail")
	assert.False(t, hasThumb)

	songs, err := store.ListSongs(ctx, SongFilter{OriginalName: "Princes", Page: page(10, 0)})
	require.NoError(t, err)
	require.Len(t, songs, 1)
	require.NotNil(t, songs[0].Album)
	year, _ = songs[0].Album.Lookup("year")
	assert.Equal(t, "1986", year)

	data, err = json.Marshal(songs[0])
	require.NoError(t, err)
	assert.NotContains(t, string(data), "thumbnail")
	assert.NotContains(t, string(data), "label", "expansion loads only the listed fields")
}

func TestStoreIntegration_Ping(t *testing.T) {
	store, _ := setupStore(t)
	require.NoError(t, store.Ping(context.Background()))
}
