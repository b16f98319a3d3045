// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

// Package cache provides the key-value stores backing the link cache.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get and Expire when the key is absent or expired.
var ErrNotFound = errors.New("cache: key not found")

// Store is a byte-oriented key-value store with optional TTL and prefix scan.
// Implementations take no locks across calls; concurrent writers to the same
// key resolve as last write wins.
type Store interface {
	// Get returns the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key. ttl <= 0 stores without expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Expire resets the remaining lifetime of an existing key to ttl.
	Expire(ctx context.Context, key string, ttl time.Duration) error

	// Keys returns every live key beginning with prefix, in no particular order.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
	BackendRedis  = "redis"
)
