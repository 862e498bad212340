// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

//go:build integration

package testinfra

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tomtom215/cadence/internal/models"
)

// CatalogFixture holds the ids of the documents inserted by SeedCatalog.
//
// The catalog contains:
//
//	albums:  "Kind of Blue" (KOB, 1959), "Kind of Magic" (KOB2, "1986"), "Blue Train" (BT, 1957)
//	genres:  "Jazz", "Rock"
//	artists: "Miles Davis", "John Coltrane", "Queen"
//
// Queen and Kind of Magic are stored off-schema: Queen has a country and no
// thumbnails, Kind of Magic has a label, a string year and no thumbnails.
//	songs:   "So What"        KOB  Jazz  [Miles Davis, John Coltrane]
//	         "Blue in Green"  KOB  Jazz  [Miles Davis, <dangling>]
//	         "Blue Train"     BT   Jazz  [John Coltrane]
//	         "Princes (a.k.a)" KOB2 Rock [Queen]
//	         "Orphan"         <dangling album>, no genre, no artists
type CatalogFixture struct {
	KindOfBlue, KindOfMagic, BlueTrainAlbum primitive.ObjectID
	Jazz, Rock                              primitive.ObjectID
	Miles, Coltrane, Queen                  primitive.ObjectID

	SoWhat, BlueInGreen, BlueTrain, Princes, Orphan primitive.ObjectID

	// Missing is an id that exists in no collection.
	Missing primitive.ObjectID
}

// SeedCatalog inserts the fixture catalog into db. Songs are inserted last,
// in the order listed on CatalogFixture, which is their natural order.
func SeedCatalog(ctx context.Context, db *mongo.Database) (*CatalogFixture, error) {
	fx := &CatalogFixture{
		KindOfBlue:     primitive.NewObjectID(),
		KindOfMagic:    primitive.NewObjectID(),
		BlueTrainAlbum: primitive.NewObjectID(),
		Jazz:           primitive.NewObjectID(),
		Rock:           primitive.NewObjectID(),
		Miles:          primitive.NewObjectID(),
		Coltrane:       primitive.NewObjectID(),
		Queen:          primitive.NewObjectID(),
		SoWhat:         primitive.NewObjectID(),
		BlueInGreen:    primitive.NewObjectID(),
		BlueTrain:      primitive.NewObjectID(),
		Princes:        primitive.NewObjectID(),
		Orphan:         primitive.NewObjectID(),
		Missing:        primitive.NewObjectID(),
	}
	version := 0

	albums := []any{
		models.Album{ID: fx.KindOfBlue, Code: "KOB", Title: "Kind of Blue", Year: 1959,
			Thumbnail300x300: "kob-300.jpg", Thumbnail: "kob.jpg", Version: &version},
		bson.D{
			{Key: "_id", Value: fx.KindOfMagic}, {Key: "code", Value: "KOB2"}, {Key: "title", Value: "Kind of Magic"},
			{Key: "year", Value: "1986"}, {Key: "label", Value: "EMI"},
		},
		models.Album{ID: fx.BlueTrainAlbum, Code: "BT", Title: "Blue Train", Year: 1957,
			Thumbnail300x300: "bt-300.jpg", Thumbnail: "bt.jpg", Version: &version},
	}
	genres := []any{
		models.Genre{ID: fx.Jazz, Name: "Jazz", Version: &version},
		models.Genre{ID: fx.Rock, Name: "Rock", Version: &version},
	}
	artists := []any{
		models.Artist{ID: fx.Miles, Name: "Miles Davis", Thumbnail300x300: "md-300.jpg", Thumbnail: "md.jpg"},
		models.Artist{ID: fx.Coltrane, Name: "John Coltrane", Thumbnail300x300: "jc-300.jpg", Thumbnail: "jc.jpg"},
		bson.D{{Key: "_id", Value: fx.Queen}, {Key: "name", Value: "Queen"}, {Key: "country", Value: "UK"}},
	}

	ref := func(id primitive.ObjectID) *primitive.ObjectID { return &id }
	songs := []any{
		models.Song{ID: fx.SoWhat, OriginalName: "So What", Album: ref(fx.KindOfBlue), Genre: ref(fx.Jazz),
			Artists: []primitive.ObjectID{fx.Miles, fx.Coltrane}, Version: &version},
		models.Song{ID: fx.BlueInGreen, OriginalName: "Blue in Green", Album: ref(fx.KindOfBlue), Genre: ref(fx.Jazz),
			Artists: []primitive.ObjectID{fx.Miles, fx.Missing}},
		models.Song{ID: fx.BlueTrain, OriginalName: "Blue Train", Album: ref(fx.BlueTrainAlbum), Genre: ref(fx.Jazz),
			Artists: []primitive.ObjectID{fx.Coltrane}},
		models.Song{ID: fx.Princes, OriginalName: "Princes (a.k.a)", Album: ref(fx.KindOfMagic), Genre: ref(fx.Rock),
			Artists: []primitive.ObjectID{fx.Queen}},
		models.Song{ID: fx.Orphan, OriginalName: "Orphan", Album: ref(fx.Missing)},
	}

	for _, batch := range []struct {
		coll string
		docs []any
	}{
		{models.CollectionAlbums, albums},
		{models.CollectionGenres, genres},
		{models.CollectionArtists, artists},
		{models.CollectionSongs, songs},
	} {
		if _, err := db.Collection(batch.coll).InsertMany(ctx, batch.docs); err != nil {
			return nil, fmt.Errorf("seed %s: %w", batch.coll, err)
		}
	}
	return fx, nil
}
