// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

/*
Package linkcache caches resolved Seedr playable links.

A Cache wraps a cache.Store and stores one JSON CacheRecord per Seedr file
under "<prefix>stream:<folder_file_id>". Records are written on the first
resolution of a file and removed by TTL expiry in the store or by Reconcile
once the file disappears from the account.

# Policies

  - Permanent: no expiry is written or checked. Only Reconcile removes records.
  - FixedTTL: records carry expires_at = now + TTL and are refetched once it passes.
  - HotPathTTL: as FixedTTL on a miss; every hit extends the store TTL to the hot
    duration, so frequently played files outlive the base TTL.

Concurrent misses for the same file share one remote fetch.

# Usage

	links := linkcache.New(store, client, linkcache.Options{
	    Policy: linkcache.FixedTTL,
	    TTL:    24 * time.Hour,
	    Prefix: "seedr:",
	})

	rec, err := links.Resolve(ctx, file)

	// Drop records for files no longer in the account.
	result, err := links.Reconcile(ctx, client, walker.RootFolder)
*/
package linkcache
