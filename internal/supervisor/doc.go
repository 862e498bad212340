// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package supervisor runs Cadence's services under a suture v4 supervisor tree.

	cadence (root)
	├── data-layer
	│   └── store-monitor
	└── api-layer
	    └── http-server

A service that returns an error is restarted; repeated failures put its
layer into backoff (FailureThreshold, FailureDecay, FailureBackoff) without
touching the other layer. Supervisor events are logged through sutureslog,
which main points at the zerolog-backed slog adapter from the logging
package.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewStoreMonitorService(catalog, monitorCfg, logging.Logger()))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	errCh := tree.ServeBackground(ctx)
*/
package supervisor
