// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/cadence/internal/logging"
	"github.com/tomtom215/cadence/internal/metrics"
	"github.com/tomtom215/cadence/internal/models"
)

// BreakerName labels the store circuit breaker in metrics and logs.
const BreakerName = "mongo"

// BreakerSettings tunes the store circuit breaker.
type BreakerSettings struct {
	MaxRequests  uint32        // requests allowed through while half-open
	Interval     time.Duration // closed-state window after which counts reset
	Timeout      time.Duration // time spent open before trying half-open
	MinRequests  uint32        // requests in the window before the ratio is considered
	FailureRatio float64       // failure ratio at which the breaker opens
}

// DefaultBreakerSettings returns the production breaker tuning.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      30 * time.Second,
		MinRequests:  10,
		FailureRatio: 0.6,
	}
}

// BreakerCatalog wraps a Catalog with a circuit breaker. While the breaker
// is open, calls fail immediately with gobreaker.ErrOpenState.
//
// Invalid ids, missing documents and callers that went away are outcomes
// of the request, not of the store, and count as successes.
type BreakerCatalog struct {
	inner Catalog
	cb    *gobreaker.CircuitBreaker[any]
	name  string
}

// NewBreakerCatalog wraps inner using the given settings.
func NewBreakerCatalog(inner Catalog, settings BreakerSettings) *BreakerCatalog {
	name := BreakerName

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < settings.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= settings.FailureRatio
			if shouldTrip {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		IsSuccessful: isStoreSuccess,

		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &BreakerCatalog{inner: inner, cb: cb, name: name}
}

// isStoreSuccess classifies errors for the breaker.
func isStoreSuccess(err error) bool {
	return err == nil ||
		errors.Is(err, ErrInvalidID) ||
		IsNotFound(err) ||
		errors.Is(err, context.Canceled)
}

// State returns the breaker state: "closed", "half-open" or "open".
func (b *BreakerCatalog) State() string {
	return b.cb.State().String()
}

func (b *BreakerCatalog) execute(fn func() (any, error)) (any, error) {
	result, err := b.cb.Execute(fn)

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
		logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
	case !isStoreSuccess(err):
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(b.cb.Counts().ConsecutiveFailures))
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	}

	return result, err
}

// castResult type-asserts the breaker result, passing errors through.
func castResult[T any](result any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func (b *BreakerCatalog) ListSongs(ctx context.Context, f SongFilter) ([]models.SongView, error) {
	return castResult[[]models.SongView](b.execute(func() (any, error) {
		return b.inner.ListSongs(ctx, f)
	}))
}

func (b *BreakerCatalog) GetSong(ctx context.Context, id string) (*models.SongView, error) {
	return castResult[*models.SongView](b.execute(func() (any, error) {
		return b.inner.GetSong(ctx, id)
	}))
}

func (b *BreakerCatalog) ListArtists(ctx context.Context, f NameFilter) ([]models.Document, error) {
	return castResult[[]models.Document](b.execute(func() (any, error) {
		return b.inner.ListArtists(ctx, f)
	}))
}

func (b *BreakerCatalog) GetArtist(ctx context.Context, id string) (*models.Document, error) {
	return castResult[*models.Document](b.execute(func() (any, error) {
		return b.inner.GetArtist(ctx, id)
	}))
}

func (b *BreakerCatalog) ListAlbums(ctx context.Context, f AlbumFilter) ([]models.Document, error) {
	return castResult[[]models.Document](b.execute(func() (any, error) {
		return b.inner.ListAlbums(ctx, f)
	}))
}

func (b *BreakerCatalog) GetAlbum(ctx context.Context, id string) (*models.Document, error) {
	return castResult[*models.Document](b.execute(func() (any, error) {
		return b.inner.GetAlbum(ctx, id)
	}))
}

func (b *BreakerCatalog) ListGenres(ctx context.Context, f NameFilter) ([]models.Document, error) {
	return castResult[[]models.Document](b.execute(func() (any, error) {
		return b.inner.ListGenres(ctx, f)
	}))
}

func (b *BreakerCatalog) GetGenre(ctx context.Context, id string) (*models.Document, error) {
	return castResult[*models.Document](b.execute(func() (any, error) {
		return b.inner.GetGenre(ctx, id)
	}))
}

// Ping bypasses the breaker so health checks observe the store directly.
func (b *BreakerCatalog) Ping(ctx context.Context) error {
	return b.inner.Ping(ctx)
}
