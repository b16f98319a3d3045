// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrMissingDeviceCode is the configuration error returned by any operation
// that needs a Seedr session while SEEDR_DEVICE_CODE is unset.
var ErrMissingDeviceCode = errors.New("SEEDR_DEVICE_CODE environment variable is missing")

// Cache policies.
const (
	PolicyPermanent = "permanent"
	PolicyFixedTTL  = "fixed_ttl"
	PolicyHotPath   = "hot_path"
)

// Config holds all application configuration.
type Config struct {
	Seedr    SeedrConfig    `koanf:"seedr"`
	Cinemeta CinemetaConfig `koanf:"cinemeta"`
	Cache    CacheConfig    `koanf:"cache"`
	Resolver ResolverConfig `koanf:"resolver"`
	Sync     SyncConfig     `koanf:"sync"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// SeedrConfig configures the Seedr.cc client.
type SeedrConfig struct {
	DeviceCode   string        `koanf:"device_code"`
	BaseURL      string        `koanf:"base_url" validate:"required"`
	ClientID     string        `koanf:"client_id" validate:"required"`
	RootFolderID int64         `koanf:"root_folder_id" validate:"min=0"`
	Timeout      time.Duration `koanf:"timeout" validate:"gt=0"`

	// Outbound request budget shared by all Seedr calls.
	RequestsPerSecond float64 `koanf:"requests_per_second" validate:"gt=0"`
	Burst             int     `koanf:"burst" validate:"min=1"`
}

// HasDeviceCode reports whether Seedr calls can be authenticated.
func (s *SeedrConfig) HasDeviceCode() bool {
	return s.DeviceCode != ""
}

// CinemetaConfig configures the metadata lookup client.
type CinemetaConfig struct {
	BaseURL  string        `koanf:"base_url" validate:"required"`
	Timeout  time.Duration `koanf:"timeout" validate:"gt=0"`
	MemoSize int           `koanf:"memo_size" validate:"min=1"`
	MemoTTL  time.Duration `koanf:"memo_ttl" validate:"gt=0"`
}

// CacheConfig configures the link cache and its backing store.
type CacheConfig struct {
	Backend         string        `koanf:"backend" validate:"oneof=memory badger redis"`
	BadgerPath      string        `koanf:"badger_path"`
	RedisURL        string        `koanf:"redis_url"`
	RedisPassword   string        `koanf:"redis_password"`
	RedisDB         int           `koanf:"redis_db" validate:"min=0"`
	Prefix          string        `koanf:"prefix"`
	Policy          string        `koanf:"policy" validate:"oneof=permanent fixed_ttl hot_path"`
	TTL             time.Duration `koanf:"ttl" validate:"gt=0"`
	HotTTL          time.Duration `koanf:"hot_ttl" validate:"gt=0"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// ResolverConfig tunes stream resolution.
type ResolverConfig struct {
	SourceLabel string `koanf:"source_label" validate:"required"`

	// RequireYear makes IMDb matches also require the release year in the filename.
	RequireYear bool `koanf:"require_year"`

	// ReconcileBeforeResolve prunes stale cache entries before each remote resolution.
	ReconcileBeforeResolve bool `koanf:"reconcile_before_resolve"`

	// CatalogShortcut answers catalog ids from cached records. FixedTTL policy only.
	CatalogShortcut bool `koanf:"catalog_shortcut"`

	// EnrichCatalog fills catalog posters from Cinemeta search.
	EnrichCatalog bool `koanf:"enrich_catalog"`
}

// SyncConfig controls background reconciliation. Zero interval disables it.
type SyncConfig struct {
	Interval time.Duration `koanf:"interval" validate:"min=0"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// Addr returns host:port for http.Server.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gt=0"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// CatalogShortcutActive reports whether the catalog shortcut may run. It only
// applies under the fixed TTL policy.
func (c *Config) CatalogShortcutActive() bool {
	return c.Resolver.CatalogShortcut && c.Cache.Policy == PolicyFixedTTL
}

// Load loads configuration from defaults, an optional YAML file and the environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
