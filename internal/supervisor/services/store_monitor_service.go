// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cadence/internal/metrics"
)

// Pinger is the store dependency of the monitor. database.Catalog satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreMonitorConfig holds configuration for the store monitor.
type StoreMonitorConfig struct {
	// Interval between pings. Default: 30s
	Interval time.Duration

	// Timeout bounds each ping. Default: 5s
	Timeout time.Duration

	// StartTime is the process start, used for app_uptime_seconds.
	StartTime time.Time
}

// StoreMonitorService pings MongoDB on a fixed interval so mongo_up and the
// ping histogram stay current between requests. It logs when the store goes
// down and when it comes back; a failing ping never stops the service.
type StoreMonitorService struct {
	store   Pinger
	config  StoreMonitorConfig
	logger  zerolog.Logger
	name    string
	healthy atomic.Bool
}

// NewStoreMonitorService creates a monitor for store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStoreMonitorService(store Pinger, cfg StoreMonitorConfig, logger zerolog.Logger) *StoreMonitorService {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.StartTime.IsZero() {
		cfg.StartTime = time.Now()
	}
	s := &StoreMonitorService{
		store:  store,
		config: cfg,
		logger: logger.With().Str("service", "store-monitor").Logger(),
		name:   "store-monitor",
	}
	// The server only starts after a successful connect.
	s.healthy.Store(true)
	return s
}

// Serve implements the suture.Service interface.
func (s *StoreMonitorService) Serve(ctx context.Context) error {
	s.logger.Debug().Dur("interval", s.config.Interval).Msg("store monitor starting")

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	s.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.check(ctx)
		}
	}
}

// check runs one ping and records the outcome.
func (s *StoreMonitorService) check(ctx context.Context) {
	metrics.UpdateUptime(s.config.StartTime)

	pingCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	err := s.store.Ping(pingCtx)
	if ctx.Err() != nil {
		return
	}

	wasHealthy := s.healthy.Swap(err == nil)
	switch {
	case err != nil && wasHealthy:
		s.logger.Error().Err(err).Msg("MongoDB became unreachable")
	case err != nil:
		s.logger.Debug().Err(err).Msg("MongoDB still unreachable")
	case !wasHealthy:
		s.logger.Info().Msg("MongoDB reachable again")
	}
}

// Healthy reports the outcome of the most recent ping.
func (s *StoreMonitorService) Healthy() bool {
	return s.healthy.Load()
}

// String returns the service name for logging.
func (s *StoreMonitorService) String() string {
	return s.name
}
