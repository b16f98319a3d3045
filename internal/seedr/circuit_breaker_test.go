// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package seedr

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/seedrio/internal/breaker"
	"github.com/tomtom215/seedrio/internal/config"
)

func TestCircuitBreakerClient_PassesThrough(t *testing.T) {
	client, _ := newTestClient(t, "dev-1")
	cbc := WrapCircuitBreaker(client, "seedr-test-pass")

	contents, err := cbc.ListContents(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListContents() error = %v", err)
	}
	if len(contents.Files) != 1 {
		t.Errorf("files = %d, want 1", len(contents.Files))
	}
	if cbc.State() != gobreaker.StateClosed {
		t.Errorf("state = %s, want closed", breaker.StateString(cbc.State()))
	}
}

func TestCircuitBreakerClient_OpensOnFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer server.Close()

	cbc := WrapCircuitBreaker(NewClient(&config.SeedrConfig{
		DeviceCode:        "dev-1",
		BaseURL:           server.URL,
		ClientID:          "seedr_xbmc",
		Timeout:           time.Second,
		RequestsPerSecond: 1000,
		Burst:             100,
	}), "seedr-test-open")

	for i := 0; i < 10; i++ {
		_, _ = cbc.FetchLink(context.Background(), 1)
	}
	if cbc.State() != gobreaker.StateOpen {
		t.Fatalf("state = %s, want open", breaker.StateString(cbc.State()))
	}

	_, err := cbc.FetchLink(context.Background(), 1)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("error = %v, want ErrOpenState", err)
	}

	// Device authorization stays reachable while the breaker is open.
	if _, err := cbc.DeviceCode(context.Background()); errors.Is(err, gobreaker.ErrOpenState) {
		t.Error("DeviceCode() rejected by open breaker")
	}
}

func TestCircuitBreakerClient_MissingDeviceCodeDoesNotTrip(t *testing.T) {
	client, _ := newTestClient(t, "")
	cbc := WrapCircuitBreaker(client, "seedr-test-config")

	for i := 0; i < 20; i++ {
		if _, err := cbc.ListContents(context.Background(), 0); !errors.Is(err, config.ErrMissingDeviceCode) {
			t.Fatalf("error = %v, want ErrMissingDeviceCode", err)
		}
	}
	if cbc.State() != gobreaker.StateClosed {
		t.Errorf("state = %s, want closed", breaker.StateString(cbc.State()))
	}
}
