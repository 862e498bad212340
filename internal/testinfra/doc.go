// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

// Package testinfra provides container-backed infrastructure for integration tests.
//
// It uses testcontainers-go and its MongoDB module to start a disposable
// mongod, so store tests run real aggregation pipelines, regex filters and
// $in lookups instead of mocks.
//
// # MongoDB Container
//
//	func TestListSongs(t *testing.T) {
//	    mc := testinfra.StartMongo(t)
//	    db := mc.Client.Database("music")
//
//	    fx, err := testinfra.SeedCatalog(ctx, db)
//	    require.NoError(t, err)
//
//	    store := database.New(mc.Client, &config.DatabaseConfig{Name: "music"})
//	    songs, err := store.ListSongs(ctx, database.SongFilter{GenreName: "jazz", ...})
//	    // ...
//	}
//
// # Build Tags
//
// Everything in this package is compiled only with the integration tag:
//
//	go test -tags integration ./...
//
// Tests are skipped when Docker is unavailable or -short is set.
package testinfra
