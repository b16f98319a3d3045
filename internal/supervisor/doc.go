// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

/*
Package supervisor runs the addon's long-lived services under a suture tree.

The tree has two layers so that a crashing background job never takes the
HTTP listener down with it:

	seedrio (root)
	├── cache-layer   periodic link cache reconciliation
	└── api-layer     HTTP server

Supervisor events (restarts, backoff, stop timeouts) are logged through
sutureslog, which writes to the zerolog adapter from internal/logging.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	tree.AddCacheService(services.NewReconcileService(resolver, cfg.Sync.Interval))
	err = tree.Serve(ctx)
*/
package supervisor
