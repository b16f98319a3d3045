// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package models

import "time"

// CacheRecord is the persisted value for one resolved link, stored under
// "stream:<folder_file_id>". ExpiresAt is nil under the permanent policy.
type CacheRecord struct {
	URL       string     `json:"url"`
	Name      string     `json:"name"`
	Title     string     `json:"title"`
	Year      string     `json:"year"`
	MetaID    string     `json:"meta_id"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Expired reports whether the record carries an expiry that has passed at now.
func (r *CacheRecord) Expired(now time.Time) bool {
	return r.ExpiresAt != nil && now.After(*r.ExpiresAt)
}

// SyncResult summarizes one reconciliation pass between cache keys and the
// live Seedr file set.
type SyncResult struct {
	TotalKeys int      `json:"total_keys"`
	Deleted   []string `json:"deleted"`
	Remaining int      `json:"remaining"`
}
