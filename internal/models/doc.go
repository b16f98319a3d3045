// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

// Package models holds the data types shared across packages.
//
//   - remote.go: Seedr.cc folder listings, links, device codes and settings
//   - cache.go: the persisted link cache record and reconciliation results
//   - stremio.go: Stremio addon protocol payloads (manifest, catalog, meta, streams)
//   - api_responses.go: the envelope used by the operational endpoints
//
// JSON tags follow the wire format of the system each type comes from, so
// Seedr types use snake_case while Stremio types use camelCase.
package models
