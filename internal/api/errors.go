// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/cadence/internal/database"
	"github.com/tomtom215/cadence/internal/logging"
	"github.com/tomtom215/cadence/internal/models"
	"github.com/tomtom215/cadence/internal/validation"
)

// Client-facing messages.
const (
	msgInvalidID        = "Invalid ID format"
	msgRouteNotFound    = "Route not found"
	msgMethodNotAllowed = "Method not allowed"
)

// badRequestError is a 400 whose message is shown to the client as is.
type badRequestError struct {
	msg string
}

func (e *badRequestError) Error() string { return e.msg }

// statusFor maps a handler error to its HTTP status and client message.
// This is the only place errors become responses.
func statusFor(err error) (int, string) {
	var (
		notFound *database.NotFoundError
		invalid  *validation.RequestValidationError
		badReq   *badRequestError
	)

	switch {
	case errors.Is(err, database.ErrInvalidID):
		return http.StatusBadRequest, msgInvalidID
	case errors.As(err, &notFound):
		return http.StatusNotFound, notFound.Error()
	case errors.As(err, &invalid):
		return http.StatusBadRequest, invalid.Error()
	case errors.As(err, &badReq):
		return http.StatusBadRequest, badReq.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

// writeError sends the {"message": ...} body for err.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFor(err)

	logger := logging.Ctx(r.Context())
	switch {
	case status >= http.StatusInternalServerError && errors.Is(err, context.Canceled):
		logger.Debug().Str("path", sanitizeLogValue(r.URL.Path)).Msg("Request canceled by client")
	case status >= http.StatusInternalServerError:
		logger.Error().
			Str("method", r.Method).
			Str("path", sanitizeLogValue(r.URL.Path)).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API Error")
	default:
		logger.Debug().
			Int("status", status).
			Str("path", sanitizeLogValue(r.URL.Path)).
			Str("message", sanitizeLogValue(message)).
			Msg("Request rejected")
	}

	writeJSON(w, status, models.ErrorResponse{Message: message})
}

// notFoundHandler answers requests no route matched.
func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, models.ErrorResponse{Message: msgRouteNotFound})
}

// methodNotAllowedHandler answers requests whose path matched with another method.
func methodNotAllowedHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, models.ErrorResponse{Message: msgMethodNotAllowed})
}
