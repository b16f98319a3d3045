// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

// Package main is the entry point for the Seedrio addon server.
//
// Seedrio is a personal Stremio addon backed by a Seedr.cc account. It lists
// the account's video files as a Stremio catalog and resolves Stremio stream
// requests (IMDb ids, catalog ids or filename fragments) to playable Seedr
// links, caching each link in a key-value store.
//
// # Startup order
//
//  1. Configuration: defaults, optional YAML file, environment (koanf)
//  2. Logging: zerolog with the configured level and format
//  3. Link cache store: memory, BadgerDB or Redis
//  4. Seedr and Cinemeta clients, each behind a circuit breaker
//  5. Link cache and resolver
//  6. Supervisor tree: HTTP server, optional periodic reconciliation
//
// # First run
//
// Without SEEDR_DEVICE_CODE the server still starts. Open /authorize, enter
// the returned user_code at the verification URL, then restart with
// SEEDR_DEVICE_CODE set to the returned device_code. /auth/status confirms
// the account is reachable.
//
// # Example
//
//	export SEEDR_DEVICE_CODE=your-device-code
//	export CACHE_BACKEND=badger BADGER_PATH=/data/seedrio
//	./seedrio
//
// Then install http://host:7000/manifest.json in Stremio.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/seedrio/internal/api"
	"github.com/tomtom215/seedrio/internal/cache"
	"github.com/tomtom215/seedrio/internal/cinemeta"
	"github.com/tomtom215/seedrio/internal/config"
	"github.com/tomtom215/seedrio/internal/linkcache"
	"github.com/tomtom215/seedrio/internal/logging"
	"github.com/tomtom215/seedrio/internal/resolver"
	"github.com/tomtom215/seedrio/internal/seedr"
	"github.com/tomtom215/seedrio/internal/supervisor"
	"github.com/tomtom215/seedrio/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().
		Str("cache_backend", cfg.Cache.Backend).
		Str("cache_policy", cfg.Cache.Policy).
		Dur("cache_ttl", cfg.Cache.TTL).
		Int64("root_folder_id", cfg.Seedr.RootFolderID).
		Msg("Starting Seedrio")

	if !cfg.Seedr.HasDeviceCode() {
		logging.Warn().Msg("SEEDR_DEVICE_CODE is not set; open /authorize to obtain one, streams will fail until it is configured")
	}
	if cfg.Resolver.CatalogShortcut && !cfg.CatalogShortcutActive() {
		logging.Warn().
			Str("cache_policy", cfg.Cache.Policy).
			Msg("Catalog shortcut only applies to the fixed_ttl policy; disabled")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := cache.Open(ctx, &cfg.Cache)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open link cache store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing link cache store")
		}
	}()

	linkOpts, err := linkcache.OptionsFromConfig(&cfg.Cache)
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid link cache configuration")
	}

	seedrClient := seedr.NewCircuitBreakerClient(&cfg.Seedr)
	metaClient := cinemeta.NewClient(&cfg.Cinemeta)
	links := linkcache.New(store, seedrClient, linkOpts)
	res := resolver.New(seedrClient, links, metaClient, resolver.OptionsFromConfig(cfg))

	handler := api.NewHandler(res, seedrClient, store, cfg)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	if cfg.Sync.Interval > 0 {
		tree.AddCacheService(services.NewReconcileService(res, cfg.Sync.Interval))
	} else {
		logging.Info().Msg("Periodic reconciliation disabled (RECONCILE_INTERVAL=0)")
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", server.Addr).Msg("Listening")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Seedrio stopped")
}
