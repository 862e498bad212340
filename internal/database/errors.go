// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tomtom215/cadence/internal/logging"
)

// ErrInvalidID is returned when an id cannot be read as an ObjectID.
var ErrInvalidID = errors.New("invalid ID format")

// NotFoundError reports that no document has the requested id.
type NotFoundError struct {
	Entity string // "Song", "Artist", "Album" or "Genre"
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// IsNotFound reports whether err is a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// parseID converts an id path segment into an ObjectID. Both the usual 24
// hex characters and any 12-byte string are accepted; the latter is taken
// as the raw ObjectID bytes.
func parseID(id string) (primitive.ObjectID, error) {
	if len(id) == len(primitive.NilObjectID) {
		var oid primitive.ObjectID
		copy(oid[:], id)
		return oid, nil
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// closeCursor closes a cursor and logs any error.
// Results have already been read when this runs, so the error is not returned.
func closeCursor(ctx context.Context, cur *mongo.Cursor, collection string) {
	if cur == nil {
		return
	}
	if err := cur.Close(ctx); err != nil {
		logging.Ctx(ctx).Warn().Str("collection", collection).Err(err).Msg("Failed to close cursor")
	}
}
