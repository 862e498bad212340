// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package models

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is a stored catalog document exactly as MongoDB returns it: every
// field, in stored order, with its stored type. Artist, album and genre
// routes serve Documents so fields outside the schema types reach the client.
//
// JSON encoding writes ObjectIDs as hex strings and dates as RFC 3339, the
// same representation the expanded song views use.
type Document bson.D

// UnmarshalBSON decodes raw into d. Embedded documents decode as bson.D and
// arrays as bson.A regardless of the registry's defaults.
func (d *Document) UnmarshalBSON(raw []byte) error {
	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return err
	}
	*d = Document(doc)
	return nil
}

// MarshalJSON encodes d as a JSON object preserving field order.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(jsonValue(e.Value))
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", e.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// jsonValue converts nested BSON containers so they keep their order.
// ObjectID, DateTime and Decimal128 carry their own MarshalJSON.
func jsonValue(v any) any {
	switch t := v.(type) {
	case bson.D:
		return Document(t)
	case bson.A:
		out := make([]any, len(t))
		for i := range t {
			out[i] = jsonValue(t[i])
		}
		return out
	default:
		return v
	}
}

// Lookup returns the value stored under key.
func (d Document) Lookup(key string) (any, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// ID returns the document's _id, or the zero ObjectID when it is missing or
// not an ObjectID.
func (d Document) ID() primitive.ObjectID {
	v, _ := d.Lookup("_id")
	id, _ := v.(primitive.ObjectID)
	return id
}

// StringField returns the string stored under key, or "".
func (d Document) StringField(key string) string {
	v, _ := d.Lookup(key)
	s, _ := v.(string)
	return s
}
