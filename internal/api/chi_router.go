// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/seedrio/internal/middleware"
)

// Router wires the handler and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router. A nil mw uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Applied to all routes in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // must be global to answer OPTIONS preflight
	r.Use(middleware.PrometheusMetrics)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
	})

	// Probes and scraping are not rate limited
	r.Get("/health", router.handler.Health)
	r.Get("/health/live", router.handler.HealthLive)
	r.Get("/health/ready", router.handler.HealthReady)
	r.Handle("/metrics", promhttp.Handler())

	// Stremio addon protocol
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.Compression)

		r.Get("/", router.handler.Root)
		r.Get("/manifest.json", router.handler.StremioManifest)
		r.Get("/catalog/{type}/{catalog}", router.handler.StremioCatalog)
		r.Get("/catalog/{type}/{catalog}/{extra}", router.handler.StremioCatalog)
		r.Get("/meta/{type}/{id}", router.handler.StremioMeta)
		r.Get("/stream/{type}/{id}", router.handler.StremioStream)
	})

	// Routes that reach Seedr on every call
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitDebug())
		r.Use(APISecurityHeaders())

		r.Get("/authorize", router.handler.Authorize)
		r.Get("/auth/status", router.handler.AuthStatus)
		r.Get("/debug/files", router.handler.DebugFiles)
		r.Get("/debug/sync", router.handler.DebugSync)
	})

	return r
}
