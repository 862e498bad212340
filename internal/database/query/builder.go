// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package query

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FilterBuilder constructs MongoDB filter documents from optional criteria.
// Criteria with empty values are skipped; every added criterion is ANDed.
//
// Example usage:
//
//	fb := query.NewFilterBuilder()
//	fb.AddContains("title", "blue")
//	fb.AddEquals("code", "KOB")
//	filter := fb.Build()
//	// {title: {$regex: "blue", $options: "i"}, code: "KOB"}
type FilterBuilder struct {
	filter bson.D
}

// NewFilterBuilder creates a new FilterBuilder instance.
func NewFilterBuilder() *FilterBuilder {
	return &FilterBuilder{filter: bson.D{}}
}

// AddContains adds an unanchored, case-insensitive substring match on field.
// The value is matched literally; regular expression metacharacters are escaped.
//
// Generates:
//   - {field: {$regex: <escaped value>, $options: "i"}} if value is non-empty
func (fb *FilterBuilder) AddContains(field, value string) *FilterBuilder {
	if value != "" {
		fb.filter = append(fb.filter, bson.E{Key: field, Value: Contains(value)})
	}
	return fb
}

// AddEquals adds an exact string match on field.
//
// Generates:
//   - {field: value} if value is non-empty
func (fb *FilterBuilder) AddEquals(field, value string) *FilterBuilder {
	if value != "" {
		fb.filter = append(fb.filter, bson.E{Key: field, Value: value})
	}
	return fb
}

// AddInt adds an exact integer match on field when value is non-nil.
func (fb *FilterBuilder) AddInt(field string, value *int) *FilterBuilder {
	if value != nil {
		fb.filter = append(fb.filter, bson.E{Key: field, Value: *value})
	}
	return fb
}

// AddIn adds a set membership constraint. Unlike the other helpers it is
// never skipped: an empty ids slice matches no documents.
//
// Generates:
//   - {field: {$in: [ids...]}}
func (fb *FilterBuilder) AddIn(field string, ids []primitive.ObjectID) *FilterBuilder {
	if ids == nil {
		ids = []primitive.ObjectID{}
	}
	fb.filter = append(fb.filter, bson.E{Key: field, Value: bson.D{{Key: "$in", Value: ids}}})
	return fb
}

// Build returns the filter document. An empty builder yields an empty
// document, which matches every document in the collection.
func (fb *FilterBuilder) Build() bson.D {
	out := make(bson.D, len(fb.filter))
	copy(out, fb.filter)
	return out
}

// Count returns the number of criteria added.
func (fb *FilterBuilder) Count() int {
	return len(fb.filter)
}

// IsEmpty reports whether no criteria were added.
func (fb *FilterBuilder) IsEmpty() bool {
	return len(fb.filter) == 0
}

// Contains returns a case-insensitive regex that matches value literally anywhere in a string.
func Contains(value string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}
}

// Pipeline builds a paginated aggregation pipeline: a $match stage when
// filter has criteria, then $skip and $limit. No $sort stage is added, so
// documents come back in natural store order.
func Pipeline(filter bson.D, offset, limit int) mongo.Pipeline {
	pipeline := make(mongo.Pipeline, 0, 3)
	if len(filter) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: filter}})
	}
	return append(pipeline,
		bson.D{{Key: "$skip", Value: int64(offset)}},
		bson.D{{Key: "$limit", Value: int64(limit)}},
	)
}

// IDProjection selects only the _id field.
func IDProjection() bson.D {
	return bson.D{{Key: "_id", Value: 1}}
}

// Projection includes the named fields (and _id, which MongoDB always returns unless excluded).
func Projection(fields ...string) bson.D {
	proj := make(bson.D, 0, len(fields))
	for _, f := range fields {
		proj = append(proj, bson.E{Key: f, Value: 1})
	}
	return proj
}
