// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package models defines the catalog documents and API response bodies.

Documents:
  - Song, Album, Genre, Artist: the schema of each MongoDB collection, with
    bson tags matching the stored field names and json tags matching the API
  - Document: a stored document passed through unchanged, used for the
    artist, album and genre routes and for the references in an expanded song
  - SongView: a song with its album, genre and artists resolved

Responses:
  - ErrorResponse: {"message": "..."} for every error status
  - HealthStatus, ProbeStatus: health endpoint bodies

Identifiers are primitive.ObjectID values and encode as 24-character hex
strings in JSON.
*/
package models
