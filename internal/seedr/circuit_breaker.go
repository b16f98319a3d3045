// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package seedr

import (
	"context"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/seedrio/internal/breaker"
	"github.com/tomtom215/seedrio/internal/config"
	"github.com/tomtom215/seedrio/internal/models"
)

var _ ClientInterface = (*CircuitBreakerClient)(nil)

// CircuitBreakerClient wraps Client with a circuit breaker so a failing Seedr
// API is not hammered by every incoming stream request. A missing device code
// does not count as a failure.
type CircuitBreakerClient struct {
	client *Client
	cb     *breaker.CircuitBreaker
}

// NewCircuitBreakerClient creates a Seedr client with circuit breaker.
func NewCircuitBreakerClient(cfg *config.SeedrConfig) *CircuitBreakerClient {
	return WrapCircuitBreaker(NewClient(cfg), "seedr-api")
}

// WrapCircuitBreaker wraps an existing client under the breaker name.
func WrapCircuitBreaker(client *Client, name string) *CircuitBreakerClient {
	return &CircuitBreakerClient{
		client: client,
		cb:     breaker.New(name, config.ErrMissingDeviceCode),
	}
}

// State returns the current breaker state.
func (cbc *CircuitBreakerClient) State() gobreaker.State {
	return cbc.cb.State()
}

// ListContents lists a folder with circuit breaker protection.
func (cbc *CircuitBreakerClient) ListContents(ctx context.Context, folderID int64) (*models.FolderContents, error) {
	return breaker.CastResult[models.FolderContents](breaker.Execute(cbc.cb, func() (interface{}, error) {
		return cbc.client.ListContents(ctx, folderID)
	}))
}

// FetchLink resolves a playable link with circuit breaker protection.
func (cbc *CircuitBreakerClient) FetchLink(ctx context.Context, folderFileID int64) (*models.FileLink, error) {
	return breaker.CastResult[models.FileLink](breaker.Execute(cbc.cb, func() (interface{}, error) {
		return cbc.client.FetchLink(ctx, folderFileID)
	}))
}

// Settings fetches account settings with circuit breaker protection.
func (cbc *CircuitBreakerClient) Settings(ctx context.Context) (*models.AccountSettings, error) {
	return breaker.CastResult[models.AccountSettings](breaker.Execute(cbc.cb, func() (interface{}, error) {
		return cbc.client.Settings(ctx)
	}))
}

// DeviceCode starts device authorization. It bypasses the breaker so the
// user can always begin authorizing.
func (cbc *CircuitBreakerClient) DeviceCode(ctx context.Context) (*models.DeviceCode, error) {
	return cbc.client.DeviceCode(ctx)
}
