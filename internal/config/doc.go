// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

/*
Package config loads Seedrio configuration with koanf.

Sources, lowest precedence first:
  - built-in defaults (defaultConfig)
  - a YAML file from CONFIG_PATH, ./config.yaml or /etc/seedrio/config.yaml
  - environment variables (see envMappings)

# Environment Variables

Seedr:
  - SEEDR_DEVICE_CODE: device code from /authorize (required for any Seedr call)
  - SEEDR_BASE_URL: API host (default: https://www.seedr.cc)
  - SEEDR_ROOT_FOLDER_ID: folder to walk (default: 0, account root)
  - SEEDR_TIMEOUT: per-request timeout (default: 30s)

Cache:
  - CACHE_BACKEND: memory, badger or redis (default: memory)
  - CACHE_POLICY: permanent, fixed_ttl or hot_path (default: fixed_ttl)
  - CACHE_TTL: record lifetime (default: 24h)
  - CACHE_HOT_TTL: lifetime granted on a hot_path hit (default: 168h)
  - BADGER_PATH, REDIS_URL, REDIS_PASSWORD, REDIS_DB

Resolver:
  - REQUIRE_YEAR: IMDb matches must also contain the release year (default: false)
  - RECONCILE_BEFORE_RESOLVE: prune stale cache entries before resolving (default: true)
  - CATALOG_SHORTCUT: answer catalog ids from the cache, fixed_ttl only (default: true)
  - RECONCILE_INTERVAL: background reconciliation period, 0 disables (default: 0)

Server and logging:
  - HTTP_HOST, HTTP_PORT (or PORT), CORS_ORIGINS, RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Example:

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
*/
package config
