// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package validation provides struct validation using go-playground/validator v10.

A single validator instance is created lazily and shared; it caches struct
metadata, so request types are cheap to validate after the first call.

# Field Names

Struct fields may carry a `query` tag naming the query string parameter they
were read from. Error messages use that name:

	type ListRequest struct {
	    Limit  int `query:"limit" validate:"min=1,max=1000"`
	    Offset int `query:"offset" validate:"min=0"`
	}

	// limit=0 produces: "limit must be at least 1"

# Errors

ValidateStruct returns *RequestValidationError, whose Error() joins every
field message with "; ". The HTTP layer turns it into a 400 response with
that text as the message.
*/
package validation
