// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package api

import (
	"context"
	"net/http"
	"time"
)

const (
	serviceName  = "Seedr Stremio Addon"
	readyTimeout = 2 * time.Second
)

// StatusResponse is the plain status payload of / and /health.
type StatusResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service,omitempty"`
	Message  string `json:"message,omitempty"`
	Manifest string `json:"manifest,omitempty"`
}

// HealthStatus is the data of the live and ready probes.
type HealthStatus struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	CachePolicy   string  `json:"cache_policy,omitempty"`
	CacheBackend  string  `json:"cache_backend,omitempty"`
	Authenticated bool    `json:"authenticated"`
}

// Root handles GET /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, &StatusResponse{
		Status:   "ok",
		Message:  AddonName + " is running",
		Manifest: "/manifest.json",
	})
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, &StatusResponse{Status: "ok", Service: serviceName})
}

// HealthLive is the liveness probe. It never touches dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, h.healthStatus("alive"))
}

// HealthReady is the readiness probe. It fails while the link cache store is
// unreachable.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()
		if err := h.store.Ping(ctx); err != nil {
			respondError(w, r, http.StatusServiceUnavailable, ErrCodeUnavailable, "Link cache store unavailable", err)
			return
		}
	}
	respondJSON(w, r, http.StatusOK, h.healthStatus("ready"))
}

func (h *Handler) healthStatus(status string) *HealthStatus {
	hs := &HealthStatus{
		Status:        status,
		Version:       AddonVersion,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}
	if h.cfg != nil {
		hs.CachePolicy = h.cfg.Cache.Policy
		hs.CacheBackend = h.cfg.Cache.Backend
		hs.Authenticated = h.cfg.Seedr.HasDeviceCode()
	}
	return hs
}
