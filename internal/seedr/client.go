// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package seedr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/seedrio/internal/config"
	"github.com/tomtom215/seedrio/internal/metrics"
	"github.com/tomtom215/seedrio/internal/models"
)

// ErrUnauthorized is returned when Seedr rejects the session.
var ErrUnauthorized = errors.New("seedr: unauthorized")

// APIError is a non-success response from Seedr.
type APIError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("seedr %s returned status %d: %s", e.Operation, e.StatusCode, e.Body)
}

// ClientInterface is the set of Seedr operations used by the addon.
// Both Client and CircuitBreakerClient implement it.
type ClientInterface interface {
	ListContents(ctx context.Context, folderID int64) (*models.FolderContents, error)
	FetchLink(ctx context.Context, folderFileID int64) (*models.FileLink, error)
	DeviceCode(ctx context.Context) (*models.DeviceCode, error)
	Settings(ctx context.Context) (*models.AccountSettings, error)
}

var _ ClientInterface = (*Client)(nil)

// Client talks to the Seedr API.
type Client struct {
	baseURL    string
	clientID   string
	deviceCode string
	httpClient *http.Client
	limiter    *rate.Limiter

	mu    sync.Mutex
	token string
}

// NewClient creates a Seedr client from configuration.
func NewClient(cfg *config.SeedrConfig) *Client {
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		clientID:   cfg.ClientID,
		deviceCode: cfg.DeviceCode,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, burst),
	}
}

// ListContents lists the files and sub-folders of folderID. Zero is the root.
func (c *Client) ListContents(ctx context.Context, folderID int64) (*models.FolderContents, error) {
	path := "/api/folder"
	if folderID != 0 {
		path = fmt.Sprintf("/api/folder/%d", folderID)
	}

	var contents models.FolderContents
	if err := c.authorized(ctx, "list_contents", func(token string) (*http.Request, error) {
		return c.newRequest(ctx, http.MethodGet, path, url.Values{"access_token": {token}}, nil)
	}, &contents); err != nil {
		return nil, err
	}
	contents.FolderID = folderID
	for i := range contents.Files {
		contents.Files[i].FolderID = folderID
	}
	return &contents, nil
}

// FetchLink returns a playable URL for a file.
func (c *Client) FetchLink(ctx context.Context, folderFileID int64) (*models.FileLink, error) {
	var link models.FileLink
	err := c.authorized(ctx, "fetch_file", func(token string) (*http.Request, error) {
		form := url.Values{
			"func":           {"fetch_file"},
			"folder_file_id": {fmt.Sprint(folderFileID)},
		}
		return c.newRequest(ctx, http.MethodPost, "/oauth_test/resource.php", url.Values{"access_token": {token}}, form)
	}, &link)
	if err != nil {
		return nil, err
	}
	if link.URL == "" {
		return nil, fmt.Errorf("seedr fetch_file: empty url for %d", folderFileID)
	}
	return &link, nil
}

// Settings returns the account settings of the authorized user.
func (c *Client) Settings(ctx context.Context) (*models.AccountSettings, error) {
	var settings models.AccountSettings
	if err := c.authorized(ctx, "get_settings", func(token string) (*http.Request, error) {
		form := url.Values{"func": {"get_settings"}}
		return c.newRequest(ctx, http.MethodPost, "/oauth_test/resource.php", url.Values{"access_token": {token}}, form)
	}, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// authorized runs a token-bearing request. A rejected token is dropped and
// the request retried once with a fresh one.
func (c *Client) authorized(ctx context.Context, op string, build func(token string) (*http.Request, error), out interface{}) error {
	for attempt := 0; ; attempt++ {
		token, err := c.accessToken(ctx)
		if err != nil {
			return err
		}
		req, err := build(token)
		if err != nil {
			return err
		}

		err = c.do(req, op, out)
		if errors.Is(err, ErrUnauthorized) && attempt == 0 {
			c.clearToken(token)
			continue
		}
		return err
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, query, form url.Values) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// do sends req under the rate limiter and decodes a JSON body into out.
func (c *Client) do(req *http.Request, op string, out interface{}) (err error) {
	start := time.Now()
	defer func() { metrics.RecordRemoteCall("seedr", op, time.Since(start), err) }()

	if err := c.limiter.Wait(req.Context()); err != nil {
		return fmt.Errorf("seedr %s: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("seedr %s request failed: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("seedr %s: %w", op, ErrUnauthorized)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &APIError{Operation: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode seedr %s: %w", op, err)
	}
	return nil
}
