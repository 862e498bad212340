// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package models

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func decodeDocument(t *testing.T, stored bson.D) Document {
	t.Helper()
	raw, err := bson.Marshal(stored)
	if err != nil {
		t.Fatalf("bson.Marshal() error = %v", err)
	}
	var doc Document
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("bson.Unmarshal() error = %v", err)
	}
	return doc
}

func TestDocument_KeepsFieldsOutsideSchema(t *testing.T) {
	t.Parallel()

	id, _ := primitive.ObjectIDFromHex("65a1f0c2e4b0a1b2c3d4e5f6")
	doc := decodeDocument(t, bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: "Queen"},
		{Key: "country", Value: "UK"},
	})

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"_id":"65a1f0c2e4b0a1b2c3d4e5f6","name":"Queen","country":"UK"}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestDocument_KeepsStoredTypes(t *testing.T) {
	t.Parallel()

	doc := decodeDocument(t, bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "title", Value: "A Kind of Magic"},
		{Key: "year", Value: 1986.5},
		{Key: "code", Value: int32(7)},
	})

	if v, _ := doc.Lookup("year"); v != 1986.5 {
		t.Errorf("year = %v (%T), want 1986.5", v, v)
	}
	if v, _ := doc.Lookup("code"); v != int32(7) {
		t.Errorf("code = %v (%T), want int32 7", v, v)
	}
	if doc.StringField("code") != "" {
		t.Error("StringField should be empty for a non-string value")
	}
	if _, ok := doc.Lookup("thumbnail"); ok {
		t.Error("absent fields must stay absent")
	}
}

func TestDocument_NestedValuesKeepOrder(t *testing.T) {
	t.Parallel()

	ref, _ := primitive.ObjectIDFromHex("65a1f0c2e4b0a1b2c3d4e5f7")
	released := time.Date(1959, time.August, 17, 0, 0, 0, 0, time.UTC)
	doc := decodeDocument(t, bson.D{
		{Key: "z", Value: bson.D{{Key: "b", Value: int32(1)}, {Key: "a", Value: int32(2)}}},
		{Key: "refs", Value: bson.A{ref, bson.D{{Key: "y", Value: true}, {Key: "x", Value: nil}}}},
		{Key: "released", Value: primitive.NewDateTimeFromTime(released)},
	})

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"z":{"b":1,"a":2},"refs":["65a1f0c2e4b0a1b2c3d4e5f7",{"y":true,"x":null}],"released":"1959-08-17T00:00:00Z"}`
	if string(data) != want {
		t.Errorf("got %s\nwant %s", data, want)
	}
}

func TestDocument_ID(t *testing.T) {
	t.Parallel()

	id := primitive.NewObjectID()
	if got := (Document{{Key: "name", Value: "Jazz"}, {Key: "_id", Value: id}}).ID(); got != id {
		t.Errorf("ID() = %v, want %v", got, id)
	}
	if got := (Document{{Key: "_id", Value: "legacy"}}).ID(); got != primitive.NilObjectID {
		t.Errorf("ID() = %v, want NilObjectID for a string _id", got)
	}
}

func TestDocument_EmptyEncodesAsObject(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Document{})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("got %s, want {}", data)
	}
}
