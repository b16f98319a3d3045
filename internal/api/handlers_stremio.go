// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package api

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/seedrio/internal/logging"
	"github.com/tomtom215/seedrio/internal/models"
	"github.com/tomtom215/seedrio/internal/validation"
)

// Addon identity advertised in the manifest.
const (
	AddonID          = "org.seedrcc.stremio"
	AddonVersion     = "1.7.2"
	AddonName        = "Seedr.cc Personal Addon"
	AddonDescription = "Stream and browse your Seedr.cc files in Stremio (KV-first, 24h cache, auto cleanup)"
	CatalogID        = "seedr"
	CatalogName      = "My Seedr Files"
	movieType        = "movie"
)

// stremioRequest holds the path parameters shared by meta and stream routes.
type stremioRequest struct {
	Type string `json:"type" validate:"required,max=32"`
	ID   string `json:"id" validate:"required,max=512"`
}

// Manifest returns the addon manifest.
func Manifest() models.Manifest {
	return models.Manifest{
		ID:          AddonID,
		Version:     AddonVersion,
		Name:        AddonName,
		Description: AddonDescription,
		Resources:   []string{"stream", "catalog", "meta"},
		Types:       []string{movieType},
		Catalogs: []models.ManifestCatalog{
			{Type: movieType, ID: CatalogID, Name: CatalogName},
		},
	}
}

// StremioManifest handles GET /manifest.json.
func (h *Handler) StremioManifest(w http.ResponseWriter, r *http.Request) {
	writeCacheableJSON(w, r, Manifest())
}

// StremioCatalog handles GET /catalog/{type}/{catalog}.json and the variant
// with an extra segment. Only the movie/seedr catalog has content.
func (h *Handler) StremioCatalog(w http.ResponseWriter, r *http.Request) {
	mediaType := pathParam(r, "type")
	catalogID := trimJSON(pathParam(r, "catalog"))

	if mediaType != movieType || catalogID != CatalogID {
		writeJSON(w, r, http.StatusOK, &models.CatalogResponse{Metas: []models.MetaPreview{}})
		return
	}

	catalog, err := h.streams.Catalog(r.Context())
	if err != nil {
		respondError(w, r, http.StatusBadGateway, ErrCodeRemote, "Failed to list Seedr files", err)
		return
	}
	writeCacheableJSON(w, r, catalog)
}

// StremioMeta handles GET /meta/{type}/{id}.json.
func (h *Handler) StremioMeta(w http.ResponseWriter, r *http.Request) {
	req := stremioRequest{
		Type: pathParam(r, "type"),
		ID:   trimJSON(pathParam(r, "id")),
	}
	if !validateRequest(w, r, &req) {
		return
	}

	writeJSON(w, r, http.StatusOK, h.streams.Meta(r.Context(), req.Type, req.ID))
}

// StremioStream handles GET /stream/{type}/{id}.json. Resolution failures
// are reported in the body with status 200.
func (h *Handler) StremioStream(w http.ResponseWriter, r *http.Request) {
	req := stremioRequest{
		Type: pathParam(r, "type"),
		ID:   trimJSON(pathParam(r, "id")),
	}
	// Malformed ids answer with an empty stream list, never an error status.
	if err := validation.ValidateStruct(&req); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Rejected stream request")
		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, r, http.StatusOK, &models.StreamResponse{Streams: []models.Stream{}})
		return
	}

	resp := h.streams.Streams(r.Context(), req.Type, req.ID)
	if resp.Error != "" {
		logging.Ctx(r.Context()).Warn().
			Str("type", sanitizeLogValue(req.Type)).
			Str("id", sanitizeLogValue(req.ID)).
			Str("error", resp.Error).
			Msg("Stream resolution failed")
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, &resp)
}

// pathParam returns the decoded chi URL parameter. chi routes on RawPath when
// it is set, so only then is the parameter still escaped.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return raw
	}
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func trimJSON(s string) string {
	return strings.TrimSuffix(s, ".json")
}
