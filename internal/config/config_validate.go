// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package config

import (
	"fmt"

	"github.com/tomtom215/seedrio/internal/validation"
)

// Validate checks field constraints and cross-field rules. A missing device
// code is not an error here; the /authorize flow must work without one.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}

	validators := []func() error{
		c.validateURLs,
		c.validateCache,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateURLs() error {
	if err := validateHTTPURL(c.Seedr.BaseURL, "SEEDR_BASE_URL"); err != nil {
		return err
	}
	return validateHTTPURL(c.Cinemeta.BaseURL, "CINEMETA_URL")
}

func (c *Config) validateCache() error {
	switch c.Cache.Backend {
	case "badger":
		if c.Cache.BadgerPath == "" {
			return fmt.Errorf("BADGER_PATH is required when CACHE_BACKEND=badger")
		}
	case "redis":
		if c.Cache.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when CACHE_BACKEND=redis")
		}
		if err := validateRedisURL(c.Cache.RedisURL); err != nil {
			return fmt.Errorf("REDIS_URL is invalid: %w", err)
		}
	}

	if c.Cache.Policy == PolicyHotPath && c.Cache.HotTTL < c.Cache.TTL {
		return fmt.Errorf("CACHE_HOT_TTL (%s) must not be shorter than CACHE_TTL (%s) when CACHE_POLICY=hot_path",
			c.Cache.HotTTL, c.Cache.TTL)
	}
	return nil
}
