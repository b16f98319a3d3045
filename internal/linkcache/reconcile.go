// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package linkcache

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tomtom215/seedrio/internal/logging"
	"github.com/tomtom215/seedrio/internal/metrics"
	"github.com/tomtom215/seedrio/internal/models"
	"github.com/tomtom215/seedrio/internal/walker"
)

// Reconcile walks the account from root and deletes every link record whose
// file is no longer present. Overlapping calls share one pass.
//
// Files added after the walk are not considered until the next pass. A record
// written by an in-flight Resolve may be deleted; the next request recreates it.
func (c *Cache) Reconcile(ctx context.Context, lister walker.Lister, root int64) (*models.SyncResult, error) {
	v, _, err := c.share(ctx, "reconcile", func(fctx context.Context) (interface{}, error) {
		start := time.Now()
		result, err := c.reconcile(fctx, lister, root)

		deleted := 0
		if result != nil {
			deleted = len(result.Deleted)
		}
		metrics.RecordReconcile(time.Since(start), deleted, err)
		return result, err
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.SyncResult), nil
}

func (c *Cache) reconcile(ctx context.Context, lister walker.Lister, root int64) (*models.SyncResult, error) {
	live, err := walker.LiveIDs(ctx, lister, root)
	if err != nil {
		return nil, fmt.Errorf("walk account: %w", err)
	}

	keys, err := c.store.Keys(ctx, c.Namespace())
	if err != nil {
		return nil, fmt.Errorf("list link records: %w", err)
	}
	sort.Strings(keys)

	result := &models.SyncResult{
		TotalKeys: len(keys),
		Deleted:   []string{},
	}
	for _, key := range keys {
		id := key[strings.LastIndex(key, ":")+1:]
		if _, ok := live[id]; ok {
			continue
		}
		if err := c.store.Delete(ctx, key); err != nil {
			return nil, fmt.Errorf("delete %s: %w", key, err)
		}
		logging.Ctx(ctx).Debug().Str("key", key).Msg("Deleted stale link record")
		result.Deleted = append(result.Deleted, key)
	}
	result.Remaining = result.TotalKeys - len(result.Deleted)

	logging.Ctx(ctx).Info().
		Int("total_keys", result.TotalKeys).
		Int("deleted", len(result.Deleted)).
		Int("remaining", result.Remaining).
		Msg("Link cache reconciled")
	return result, nil
}
