// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

// Package metrics defines the Prometheus collectors exported on /metrics.
//
// Collectors are registered on the default registry through promauto:
// link cache lookups, reconciliation passes, stream resolutions, outbound
// Seedr/Cinemeta calls, circuit breaker state and HTTP API traffic.
package metrics
