// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package seedr

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tomtom215/seedrio/internal/config"
	"github.com/tomtom215/seedrio/internal/logging"
	"github.com/tomtom215/seedrio/internal/models"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	Error       string `json:"error"`
}

// DeviceCode starts the device authorization flow. The returned device code
// is what SEEDR_DEVICE_CODE must be set to once the user has entered the
// user code at the verification URL.
func (c *Client) DeviceCode(ctx context.Context) (*models.DeviceCode, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/device/code", url.Values{"client_id": {c.clientID}}, nil)
	if err != nil {
		return nil, err
	}

	var code models.DeviceCode
	if err := c.do(req, "device_code", &code); err != nil {
		return nil, err
	}
	if code.DeviceCode == "" || code.UserCode == "" {
		return nil, fmt.Errorf("seedr device_code: incomplete response")
	}
	return &code, nil
}

// accessToken returns the cached token, exchanging the device code for a new
// one when none is held.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	if c.deviceCode == "" {
		return "", config.ErrMissingDeviceCode
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != "" {
		return c.token, nil
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/api/device/authorize", url.Values{
		"device_code": {c.deviceCode},
		"client_id":   {c.clientID},
	}, nil)
	if err != nil {
		return "", err
	}

	var tok tokenResponse
	if err := c.do(req, "authorize", &tok); err != nil {
		return "", err
	}
	if tok.AccessToken == "" {
		if tok.Error != "" {
			return "", fmt.Errorf("seedr authorize: %s: %w", tok.Error, ErrUnauthorized)
		}
		return "", fmt.Errorf("seedr authorize: no access token: %w", ErrUnauthorized)
	}

	logging.Debug().Msg("Obtained Seedr access token")
	c.token = tok.AccessToken
	return c.token, nil
}

// clearToken drops token if it is still the cached one.
func (c *Client) clearToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token == token {
		c.token = ""
		logging.Debug().Msg("Seedr access token rejected, will re-authorize")
	}
}
