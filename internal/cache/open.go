// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package cache

import (
	"context"
	"fmt"

	"github.com/tomtom215/seedrio/internal/config"
	"github.com/tomtom215/seedrio/internal/logging"
)

// Open builds the Store selected by cfg.Backend.
func Open(ctx context.Context, cfg *config.CacheConfig) (Store, error) {
	switch cfg.Backend {
	case BackendMemory, "":
		logging.Info().Str("backend", BackendMemory).Msg("cache store opened")
		return NewMemoryStore(cfg.CleanupInterval), nil

	case BackendBadger:
		s, err := OpenBadgerStore(cfg.BadgerPath)
		if err != nil {
			return nil, err
		}
		logging.Info().Str("backend", BackendBadger).Str("path", cfg.BadgerPath).Msg("cache store opened")
		return s, nil

	case BackendRedis:
		s, err := OpenRedisStore(ctx, RedisOptions{
			URL:      cfg.RedisURL,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		logging.Info().Str("backend", BackendRedis).Msg("cache store opened")
		return s, nil

	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
