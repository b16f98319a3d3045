// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/seedrio/config.yaml",
	"/etc/seedrio/config.yml",
}

// ConfigPathEnvVar names the environment variable holding an explicit config file.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Seedr: SeedrConfig{
			DeviceCode:        "",
			BaseURL:           "https://www.seedr.cc",
			ClientID:          "seedr_xbmc",
			RootFolderID:      0,
			Timeout:           30 * time.Second,
			RequestsPerSecond: 5,
			Burst:             10,
		},
		Cinemeta: CinemetaConfig{
			BaseURL:  "https://v3-cinemeta.strem.io",
			Timeout:  10 * time.Second,
			MemoSize: 512,
			MemoTTL:  6 * time.Hour,
		},
		Cache: CacheConfig{
			Backend:         "memory",
			BadgerPath:      "/data/seedrio",
			Prefix:          "seedr:",
			Policy:          PolicyFixedTTL,
			TTL:             24 * time.Hour,
			HotTTL:          7 * 24 * time.Hour,
			CleanupInterval: 5 * time.Minute,
		},
		Resolver: ResolverConfig{
			SourceLabel:            "Seedr.cc",
			RequireYear:            false,
			ReconcileBeforeResolve: true,
			CatalogShortcut:        true,
			EnrichCatalog:          false,
		},
		Sync: SyncConfig{
			Interval: 0,
		},
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            7000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf layers defaults, the config file and environment variables,
// then validates the result.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths accept comma-separated strings from the environment.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variables to koanf paths. Unlisted variables
// are ignored.
var envMappings = map[string]string{
	"seedr_device_code":         "seedr.device_code",
	"seedr_base_url":            "seedr.base_url",
	"seedr_client_id":           "seedr.client_id",
	"seedr_root_folder_id":      "seedr.root_folder_id",
	"seedr_timeout":             "seedr.timeout",
	"seedr_requests_per_second": "seedr.requests_per_second",
	"seedr_burst":               "seedr.burst",

	"cinemeta_url":       "cinemeta.base_url",
	"cinemeta_timeout":   "cinemeta.timeout",
	"cinemeta_memo_size": "cinemeta.memo_size",
	"cinemeta_memo_ttl":  "cinemeta.memo_ttl",

	"cache_backend":          "cache.backend",
	"badger_path":            "cache.badger_path",
	"redis_url":              "cache.redis_url",
	"redis_password":         "cache.redis_password",
	"redis_db":               "cache.redis_db",
	"cache_prefix":           "cache.prefix",
	"cache_policy":           "cache.policy",
	"cache_ttl":              "cache.ttl",
	"cache_hot_ttl":          "cache.hot_ttl",
	"cache_cleanup_interval": "cache.cleanup_interval",

	"source_label":             "resolver.source_label",
	"require_year":             "resolver.require_year",
	"reconcile_before_resolve": "resolver.reconcile_before_resolve",
	"catalog_shortcut":         "resolver.catalog_shortcut",
	"enrich_catalog":           "resolver.enrich_catalog",

	"reconcile_interval": "sync.interval",

	"http_host":             "server.host",
	"http_port":             "server.port",
	"port":                  "server.port",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_idle_timeout":     "server.idle_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",

	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"rate_limit_disabled": "security.rate_limit_disabled",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
