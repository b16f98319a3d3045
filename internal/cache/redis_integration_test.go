// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tomtom215/seedrio/internal/testinfra"
)

func TestRedisStore_Contract(t *testing.T) {
	testinfra.SkipIfNoDocker(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testinfra.NewRedisContainer(ctx)
	if err != nil {
		t.Fatalf("start redis: %v", err)
	}
	defer testinfra.CleanupContainer(t, ctx, container.Container)

	s, err := OpenRedisStore(ctx, RedisOptions{URL: container.URL})
	if err != nil {
		t.Fatalf("OpenRedisStore() error = %v", err)
	}
	defer s.Close()

	storeContract(t, s)

	// Native expiry.
	if err := s.Set(ctx, "seedr:stream:ttl", []byte("v"), time.Second); err != nil {
		t.Fatal(err)
	}
	time.Sleep(1500 * time.Millisecond)
	if _, err := s.Get(ctx, "seedr:stream:ttl"); err != ErrNotFound {
		t.Errorf("Get() after ttl error = %v, want ErrNotFound", err)
	}
}

func TestRedisStore_WrapsExistingClient(t *testing.T) {
	testinfra.SkipIfNoDocker(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testinfra.NewRedisContainer(ctx)
	if err != nil {
		t.Fatalf("start redis: %v", err)
	}
	defer testinfra.CleanupContainer(t, ctx, container.Container)

	opts, err := redis.ParseURL(container.URL)
	if err != nil {
		t.Fatalf("ParseURL() error = %v", err)
	}
	opts.DB = 3
	client := redis.NewClient(opts)

	s := NewRedisStore(client)
	defer s.Close()

	if err := s.Ping(ctx); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
	if err := s.Set(ctx, "seedr:stream:9", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}

	// The store writes through the caller's client, including its DB.
	got, err := client.Get(ctx, "seedr:stream:9").Result()
	if err != nil || got != "v" {
		t.Errorf("client.Get() = %q, %v", got, err)
	}
}
