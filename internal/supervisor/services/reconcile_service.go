// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package services

import (
	"context"
	"time"

	"github.com/tomtom215/seedrio/internal/logging"
	"github.com/tomtom215/seedrio/internal/models"
)

// Reconciler is satisfied by *resolver.Resolver.
type Reconciler interface {
	Sync(ctx context.Context) (*models.SyncResult, error)
}

// ReconcileService prunes link cache entries whose Seedr file is gone, once
// per interval. A failed pass is logged and retried on the next tick rather
// than restarting the service.
type ReconcileService struct {
	reconciler Reconciler
	interval   time.Duration
	name       string
}

// NewReconcileService creates the service. interval must be positive.
func NewReconcileService(reconciler Reconciler, interval time.Duration) *ReconcileService {
	return &ReconcileService{
		reconciler: reconciler,
		interval:   interval,
		name:       "cache-reconciler",
	}
}

// Serve implements suture.Service.
func (s *ReconcileService) Serve(ctx context.Context) error {
	logger := logging.WithComponent(s.name)
	logger.Info().Dur("interval", s.interval).Msg("Periodic reconciliation started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			result, err := s.reconciler.Sync(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				logger.Warn().Err(err).Msg("Reconciliation failed")
				continue
			}
			logger.Debug().
				Int("total_keys", result.TotalKeys).
				Int("deleted", len(result.Deleted)).
				Int("remaining", result.Remaining).
				Msg("Reconciliation finished")
		}
	}
}

// String implements fmt.Stringer.
func (s *ReconcileService) String() string {
	return s.name
}
