// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package api

import (
	"context"
	"time"

	"github.com/tomtom215/seedrio/internal/config"
	"github.com/tomtom215/seedrio/internal/models"
)

// StreamService is the resolution core the Stremio and debug routes call.
// *resolver.Resolver implements it.
type StreamService interface {
	Streams(ctx context.Context, mediaType, id string) models.StreamResponse
	Catalog(ctx context.Context) (*models.CatalogResponse, error)
	Meta(ctx context.Context, mediaType, id string) models.MetaResponse
	Files(ctx context.Context) ([]models.DebugFile, error)
	Sync(ctx context.Context) (*models.SyncResult, error)
}

// AccountService covers the Seedr account calls behind /authorize and
// /auth/status.
type AccountService interface {
	DeviceCode(ctx context.Context) (*models.DeviceCode, error)
	Settings(ctx context.Context) (*models.AccountSettings, error)
}

// Pinger is satisfied by cache.Store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves every addon route.
type Handler struct {
	streams   StreamService
	account   AccountService
	store     Pinger
	cfg       *config.Config
	startTime time.Time
}

// NewHandler creates a Handler. store may be nil, in which case readiness
// only reports the process as up.
func NewHandler(streams StreamService, account AccountService, store Pinger, cfg *config.Config) *Handler {
	return &Handler{
		streams:   streams,
		account:   account,
		store:     store,
		cfg:       cfg,
		startTime: time.Now(),
	}
}
