// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

// Package cinemeta looks up movie metadata from a Stremio Cinemeta instance.
package cinemeta

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/tomtom215/seedrio/internal/breaker"
	"github.com/tomtom215/seedrio/internal/config"
	"github.com/tomtom215/seedrio/internal/media"
	"github.com/tomtom215/seedrio/internal/metrics"
)

// ErrNotFound is returned when Cinemeta has no entry for an id.
var ErrNotFound = errors.New("cinemeta: not found")

// Meta is the subset of a Cinemeta meta object the addon uses.
type Meta struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Year        string `json:"year"`
	Poster      string `json:"poster,omitempty"`
	Description string `json:"description,omitempty"`
}

// wireMeta accepts year and releaseInfo as either strings or numbers.
type wireMeta struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Year        json.RawMessage `json:"year"`
	ReleaseInfo json.RawMessage `json:"releaseInfo"`
	Poster      string          `json:"poster"`
	Description string          `json:"description"`
}

func (w wireMeta) meta() Meta {
	year := rawString(w.Year)
	if year == "" {
		year = rawString(w.ReleaseInfo)
	}
	// "1999-2003" style ranges keep the first year.
	if len(year) > 4 {
		year = year[:4]
	}
	return Meta{
		ID:          w.ID,
		Name:        w.Name,
		Year:        year,
		Poster:      w.Poster,
		Description: w.Description,
	}
}

func rawString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// Client queries Cinemeta. Results are memoized in an expiring LRU.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cb         *breaker.CircuitBreaker

	metas    *expirable.LRU[string, Meta]
	searches *expirable.LRU[string, *Meta]
}

// NewClient creates a Cinemeta client from configuration.
func NewClient(cfg *config.CinemetaConfig) *Client {
	size := cfg.MemoSize
	if size < 1 {
		size = 512
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		cb:         breaker.New("cinemeta-api", ErrNotFound),
		metas:      expirable.NewLRU[string, Meta](size, nil, cfg.MemoTTL),
		searches:   expirable.NewLRU[string, *Meta](size, nil, cfg.MemoTTL),
	}
}

// TitleYear returns the movie title and release year for an IMDb id.
func (c *Client) TitleYear(ctx context.Context, imdbID string) (title, year string, err error) {
	meta, err := c.Meta(ctx, imdbID)
	if err != nil {
		return "", "", err
	}
	return meta.Name, meta.Year, nil
}

// Meta fetches the movie meta object for an IMDb id.
func (c *Client) Meta(ctx context.Context, imdbID string) (*Meta, error) {
	if m, ok := c.metas.Get(imdbID); ok {
		metrics.MetadataMemo.WithLabelValues("hit").Inc()
		return &m, nil
	}
	metrics.MetadataMemo.WithLabelValues("miss").Inc()

	var body struct {
		Meta *wireMeta `json:"meta"`
	}
	endpoint := fmt.Sprintf("/meta/movie/%s.json", url.PathEscape(imdbID))
	if err := c.get(ctx, "meta", endpoint, &body); err != nil {
		return nil, err
	}
	if body.Meta == nil || body.Meta.Name == "" {
		return nil, fmt.Errorf("%s: %w", imdbID, ErrNotFound)
	}

	m := body.Meta.meta()
	if m.ID == "" {
		m.ID = imdbID
	}
	c.metas.Add(imdbID, m)
	return &m, nil
}

// Search returns the best match for title and year, or nil when nothing
// plausible is found. Callers treat errors as "no match".
func (c *Client) Search(ctx context.Context, title, year string) (*Meta, error) {
	key := media.MetaID(title, year)
	if m, ok := c.searches.Get(key); ok {
		metrics.MetadataMemo.WithLabelValues("hit").Inc()
		return m, nil
	}
	metrics.MetadataMemo.WithLabelValues("miss").Inc()

	var body struct {
		Metas []wireMeta `json:"metas"`
	}
	endpoint := "/catalog/movie/top/search=" + url.PathEscape(title) + ".json"
	if err := c.get(ctx, "search", endpoint, &body); err != nil {
		return nil, err
	}

	best := bestMatch(body.Metas, title, year)
	c.searches.Add(key, best)
	return best, nil
}

// bestMatch prefers an exact normalized title with the same year, then an
// exact title, then the first result sharing the year.
func bestMatch(candidates []wireMeta, title, year string) *Meta {
	want := media.Normalize(title)
	var titleOnly, yearOnly *Meta
	for _, w := range candidates {
		m := w.meta()
		sameTitle := media.Normalize(m.Name) == want
		sameYear := year != "" && m.Year == year
		switch {
		case sameTitle && (sameYear || year == ""):
			return &m
		case sameTitle && titleOnly == nil:
			titleOnly = &m
		case sameYear && yearOnly == nil:
			yearOnly = &m
		}
	}
	if titleOnly != nil {
		return titleOnly
	}
	return yearOnly
}

func (c *Client) get(ctx context.Context, op, endpoint string, out interface{}) error {
	_, err := breaker.Execute(c.cb, func() (interface{}, error) {
		return nil, c.fetch(ctx, op, endpoint, out)
	})
	return err
}

func (c *Client) fetch(ctx context.Context, op, endpoint string, out interface{}) (err error) {
	start := time.Now()
	defer func() { metrics.RecordRemoteCall("cinemeta", op, time.Since(start), err) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cinemeta %s request failed: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("cinemeta %s returned status %d: %s", op, resp.StatusCode, strconv.Quote(strings.TrimSpace(string(body))))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode cinemeta %s: %w", op, err)
	}
	return nil
}
