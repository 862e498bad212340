// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

// Package query provides MongoDB filter and pipeline construction for the database package.
//
// # Overview
//
// FilterBuilder collects optional criteria into a bson.D filter. Empty values
// are skipped so callers can pass request parameters straight through:
//
//	fb := query.NewFilterBuilder()
//	fb.AddContains("name", req.Name) // skipped when req.Name == ""
//	pipeline := query.Pipeline(fb.Build(), req.Offset, req.Limit)
//
// # Substring Matching
//
// AddContains and Contains escape their input with regexp.QuoteMeta, so a
// search for "a.b" matches the literal text "a.b" and not "axb". Matching is
// case-insensitive and unanchored.
//
// # Membership
//
// AddIn always adds its constraint. An empty id list produces {$in: []},
// which matches nothing; it is never treated as "no filter".
package query
