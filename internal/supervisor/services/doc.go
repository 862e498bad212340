// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package services provides suture.Service wrappers for Cadence's long-running
components.

  - HTTPServerService: runs an *http.Server and shuts it down gracefully when
    its context is canceled.
  - StoreMonitorService: pings MongoDB on an interval, keeping the mongo_up
    gauge and app_uptime_seconds current and logging outages.

Both return ctx.Err() on cancellation and name themselves through String so
supervisor events identify them.
*/
package services
