// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names in the catalog database.
const (
	CollectionSongs   = "songs"
	CollectionArtists = "artists"
	CollectionAlbums  = "albums"
	CollectionGenres  = "genres"
)

// Song is a document in the songs collection. Album, Genre and Artists hold
// references into the other collections.
type Song struct {
	ID           primitive.ObjectID   `bson:"_id" json:"_id"`
	OriginalName string               `bson:"original_name" json:"original_name"`
	Title        string               `bson:"title,omitempty" json:"title,omitempty"`
	URL          string               `bson:"url,omitempty" json:"url,omitempty"`
	Lyrics       string               `bson:"lyrics,omitempty" json:"lyrics,omitempty"`
	Album        *primitive.ObjectID  `bson:"album,omitempty" json:"album,omitempty"`
	Genre        *primitive.ObjectID  `bson:"genre,omitempty" json:"genre,omitempty"`
	Artists      []primitive.ObjectID `bson:"artists,omitempty" json:"artists,omitempty"`
	Version      *int                 `bson:"__v,omitempty" json:"__v,omitempty"`
}

// Album describes a document in the albums collection. The album routes
// serve the stored Document, so fields outside this schema are kept.
type Album struct {
	ID               primitive.ObjectID `bson:"_id" json:"_id"`
	Code             string             `bson:"code" json:"code"`
	Title            string             `bson:"title" json:"title"`
	Year             int                `bson:"year" json:"year"`
	Thumbnail300x300 string             `bson:"thumbnail300x300,omitempty" json:"thumbnail300x300,omitempty"`
	Thumbnail        string             `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Version          *int               `bson:"__v,omitempty" json:"__v,omitempty"`
}

// Genre describes a document in the genres collection.
type Genre struct {
	ID      primitive.ObjectID `bson:"_id" json:"_id"`
	Name    string             `bson:"name" json:"name"`
	Version *int               `bson:"__v,omitempty" json:"__v,omitempty"`
}

// Artist describes a document in the artists collection.
type Artist struct {
	ID               primitive.ObjectID `bson:"_id" json:"_id"`
	Name             string             `bson:"name" json:"name"`
	Thumbnail300x300 string             `bson:"artists_thumbnail300x300,omitempty" json:"artists_thumbnail300x300,omitempty"`
	Thumbnail        string             `bson:"artists_thumbnail,omitempty" json:"artists_thumbnail,omitempty"`
	Version          *int               `bson:"__v,omitempty" json:"__v,omitempty"`
}

// SongView is a song with its references replaced by the referenced
// documents, loaded with the fields listed for song expansion and kept as
// stored. A missing or dangling album or genre is null; dangling artist
// references are left out, and the remaining artists keep the song's order.
//
// Example:
//
//	{
//	  "_id": "65a1f0c2e4b0a1b2c3d4e5f6",
//	  "original_name": "Blue in Green",
//	  "album": {"_id": "...", "code": "KOB", "title": "Kind of Blue", "year": 1959, ...},
//	  "genre": {"_id": "...", "name": "Jazz"},
//	  "artists": [{"_id": "...", "name": "Miles Davis", ...}]
//	}
type SongView struct {
	ID           primitive.ObjectID `json:"_id"`
	OriginalName string             `json:"original_name"`
	Title        string             `json:"title,omitempty"`
	URL          string             `json:"url,omitempty"`
	Lyrics       string             `json:"lyrics,omitempty"`
	Album        *Document          `json:"album"`
	Genre        *Document          `json:"genre"`
	Artists      []Document         `json:"artists"`
	Version      *int               `json:"__v,omitempty"`
}

// NewSongView copies the song's scalar fields into a view with no
// references resolved. Artists starts empty, never nil, so it encodes as [].
func NewSongView(s *Song) SongView {
	return SongView{
		ID:           s.ID,
		OriginalName: s.OriginalName,
		Title:        s.Title,
		URL:          s.URL,
		Lyrics:       s.Lyrics,
		Artists:      make([]Document, 0, len(s.Artists)),
		Version:      s.Version,
	}
}
