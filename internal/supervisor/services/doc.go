// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

// Package services adapts the addon's long-running components to
// suture.Service so they can be placed in the supervisor tree.
//
//   - HTTPServerService: ListenAndServe/Shutdown of an *http.Server
//   - ReconcileService: runs link cache reconciliation on a fixed interval
//
// Every service returns ctx.Err() after a requested shutdown and a wrapped
// error when it fails, which makes suture restart it with backoff.
package services
