// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package database provides read-only access to the music catalog in MongoDB.

# Overview

The Catalog interface is the query surface used by the HTTP layer:

  - ListSongs / GetSong: songs with album, genre and artists expanded
  - ListArtists / GetArtist
  - ListAlbums / GetAlbum
  - ListGenres / GetGenre
  - Ping

Store implements Catalog with the official Go driver
(go.mongodb.org/mongo-driver). BreakerCatalog decorates any Catalog with a
sony/gobreaker circuit breaker.

# Connection

Connect builds a client from config.DatabaseConfig, then pings the primary
within MONGO_CONNECT_TIMEOUT. The caller owns the client and injects it:

	client, err := database.Connect(ctx, &cfg.Database)
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer database.Disconnect(context.Background(), client)

	var catalog database.Catalog = database.New(client, &cfg.Database)
	if cfg.Database.CircuitBreaker {
	    catalog = database.NewBreakerCatalog(catalog, database.DefaultBreakerSettings())
	}

# Query Semantics

Text criteria are case-insensitive substring matches with the input matched
literally (see package query). Pagination is $skip/$limit with no sort, so
results follow the collection's natural order.

Song searches resolve album, genre and artist criteria against their own
collections first and constrain the song query with $in over the matching
ids. Expansion then loads every referenced album, genre and artist with one
projected query per collection.

# Errors

  - ErrInvalidID: the id is neither 24 hex characters nor a 12-byte string
  - *NotFoundError: no document with that id (Entity names the collection)
  - anything else: a driver or server error, wrapped with the failing collection

# Observability

Every operation records mongo_query_duration_seconds and, on failure,
mongo_query_errors_total. Queries are logged at debug level with the request
and correlation ids from the context.
*/
package database
