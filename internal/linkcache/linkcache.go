// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package linkcache

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/seedrio/internal/cache"
	"github.com/tomtom215/seedrio/internal/config"
	"github.com/tomtom215/seedrio/internal/logging"
	"github.com/tomtom215/seedrio/internal/media"
	"github.com/tomtom215/seedrio/internal/metrics"
	"github.com/tomtom215/seedrio/internal/models"
)

// flightTimeout bounds a shared fetch or reconcile pass once it no longer
// follows any single caller's context.
const flightTimeout = 2 * time.Minute

// Fetcher obtains a fresh playable link for a file. *seedr.Client satisfies it.
type Fetcher interface {
	FetchLink(ctx context.Context, folderFileID int64) (*models.FileLink, error)
}

// Options configures a Cache.
type Options struct {
	Policy Policy
	TTL    time.Duration
	HotTTL time.Duration
	Prefix string
}

// OptionsFromConfig converts the cache section of the configuration.
func OptionsFromConfig(cfg *config.CacheConfig) (Options, error) {
	policy, err := ParsePolicy(cfg.Policy)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Policy: policy,
		TTL:    cfg.TTL,
		HotTTL: cfg.HotTTL,
		Prefix: cfg.Prefix,
	}, nil
}

// Cache resolves file links through a Store.
type Cache struct {
	store   cache.Store
	fetcher Fetcher
	opts    Options
	group   singleflight.Group
	now     func() time.Time
}

// New creates a Cache. A HotTTL shorter than TTL is raised to TTL.
func New(store cache.Store, fetcher Fetcher, opts Options) *Cache {
	if opts.HotTTL < opts.TTL {
		opts.HotTTL = opts.TTL
	}
	return &Cache{
		store:   store,
		fetcher: fetcher,
		opts:    opts,
		now:     time.Now,
	}
}

// SetClock replaces the time source used for expires_at. Intended for tests.
func (c *Cache) SetClock(now func() time.Time) {
	c.now = now
}

// Policy returns the active expiry policy.
func (c *Cache) Policy() Policy {
	return c.opts.Policy
}

// Namespace is the key prefix shared by every link record.
func (c *Cache) Namespace() string {
	return c.opts.Prefix + "stream:"
}

// Key returns the store key for a folder_file_id.
func (c *Cache) Key(folderFileID int64) string {
	return c.Namespace() + strconv.FormatInt(folderFileID, 10)
}

// Resolve returns the cached record for file, fetching and storing a new one
// on a miss. Under HotPathTTL a hit extends the record's store TTL.
func (c *Cache) Resolve(ctx context.Context, file models.RemoteFile) (*models.CacheRecord, error) {
	key := c.Key(file.FolderFileID)
	policy := c.opts.Policy.String()

	rec, err := c.lookup(ctx, key)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		metrics.LinkCacheLookups.WithLabelValues(policy, "hit").Inc()
		if c.opts.Policy == HotPathTTL {
			c.extend(ctx, key)
		}
		return rec, nil
	}
	metrics.LinkCacheLookups.WithLabelValues(policy, "miss").Inc()

	v, shared, err := c.share(ctx, key, func(fctx context.Context) (interface{}, error) {
		return c.populate(fctx, key, file)
	})
	if shared {
		metrics.LinkCacheCoalesced.Inc()
	}
	if err != nil {
		return nil, err
	}
	out := *v.(*models.CacheRecord)
	return &out, nil
}

// share runs fn once for all concurrent callers of key. The shared call keeps
// the first caller's context values but not its cancellation, and is bounded
// by flightTimeout. Each caller stops waiting when its own ctx is done.
func (c *Cache) share(ctx context.Context, key string, fn func(context.Context) (interface{}, error)) (interface{}, bool, error) {
	ch := c.group.DoChan(key, func() (interface{}, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flightTimeout)
		defer cancel()
		return fn(fctx)
	})

	select {
	case res := <-ch:
		return res.Val, res.Shared, res.Err
	case <-ctx.Done():
		return nil, false, ctx.Err()
	}
}

// lookup returns nil without error when key is absent, unreadable or expired.
func (c *Cache) lookup(ctx context.Context, key string) (*models.CacheRecord, error) {
	data, err := c.store.Get(ctx, key)
	if errors.Is(err, cache.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}

	var rec models.CacheRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("Discarding unreadable link record")
		return nil, nil
	}

	// HotPathTTL relies on the store TTL, which hits keep pushing past expires_at.
	if c.opts.Policy == FixedTTL && rec.Expired(c.now()) {
		logging.Ctx(ctx).Debug().Str("key", key).Time("expires_at", *rec.ExpiresAt).Msg("Link record expired")
		return nil, nil
	}
	return &rec, nil
}

func (c *Cache) extend(ctx context.Context, key string) {
	err := c.store.Expire(ctx, key, c.opts.HotTTL)
	if err != nil && !errors.Is(err, cache.ErrNotFound) {
		logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("Failed to extend link record TTL")
		return
	}
	if err == nil {
		metrics.LinkCacheExtensions.Inc()
	}
}

func (c *Cache) populate(ctx context.Context, key string, file models.RemoteFile) (*models.CacheRecord, error) {
	link, err := c.fetcher.FetchLink(ctx, file.FolderFileID)
	if err != nil {
		return nil, fmt.Errorf("fetch link for %d: %w", file.FolderFileID, err)
	}

	rec := c.newRecord(file, link)
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", key, err)
	}

	var ttl time.Duration
	if c.opts.Policy.expires() {
		ttl = c.opts.TTL
	}
	if err := c.store.Set(ctx, key, data, ttl); err != nil {
		// The link is still good for this request.
		logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("Failed to store link record")
	} else {
		logging.Ctx(ctx).Debug().Str("key", key).Str("meta_id", rec.MetaID).Msg("Stored link record")
	}
	return rec, nil
}

func (c *Cache) newRecord(file models.RemoteFile, link *models.FileLink) *models.CacheRecord {
	title, year := media.ExtractTitleYear(file.Name)
	name := link.Name
	if name == "" {
		name = file.Name
	}

	now := c.now()
	rec := &models.CacheRecord{
		URL:       link.URL,
		Name:      name,
		Title:     title,
		Year:      year,
		MetaID:    media.MetaID(title, year),
		CreatedAt: now.UTC(),
	}
	if c.opts.Policy.expires() {
		exp := now.Add(c.opts.TTL).UTC()
		rec.ExpiresAt = &exp
	}
	return rec
}

// Records returns every live record in key order.
func (c *Cache) Records(ctx context.Context) ([]models.CacheRecord, error) {
	keys, err := c.store.Keys(ctx, c.Namespace())
	if err != nil {
		return nil, fmt.Errorf("list link records: %w", err)
	}
	sort.Strings(keys)

	records := make([]models.CacheRecord, 0, len(keys))
	for _, key := range keys {
		rec, err := c.lookup(ctx, key)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			records = append(records, *rec)
		}
	}
	return records, nil
}

// FindByMetaID returns the live records whose meta_id equals id.
func (c *Cache) FindByMetaID(ctx context.Context, id string) ([]models.CacheRecord, error) {
	records, err := c.Records(ctx)
	if err != nil {
		return nil, err
	}

	var matches []models.CacheRecord
	for _, rec := range records {
		if rec.MetaID == id {
			matches = append(matches, rec)
		}
	}
	return matches, nil
}
