// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

// Package logging provides the process-wide zerolog logger.
//
// Initialize once at startup:
//
//	logging.Init(logging.Config{Level: "info", Format: "json", Timestamp: true})
//
// Then log with structured fields, always terminating the chain with Msg or Send:
//
//	logging.Info().Str("backend", "badger").Msg("cache store opened")
//	logging.Ctx(ctx).Debug().Str("key", key).Msg("link cache hit")
//
// Ctx attaches the request_id placed in the context by the HTTP request ID
// middleware. NewSlogLogger bridges log/slog consumers such as sutureslog.
package logging
