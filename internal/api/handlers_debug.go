// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package api

import (
	"net/http"

	"github.com/tomtom215/seedrio/internal/models"
)

// syncMessage is reported after a successful manual reconciliation.
const syncMessage = "KV synced with Seedr cloud"

// SyncResponse is returned by GET /debug/sync.
type SyncResponse struct {
	Status  string             `json:"status"`
	Message string             `json:"message"`
	Result  *models.SyncResult `json:"result"`
}

// DebugFiles handles GET /debug/files.
func (h *Handler) DebugFiles(w http.ResponseWriter, r *http.Request) {
	files, err := h.streams.Files(r.Context())
	if err != nil {
		respondError(w, r, http.StatusBadGateway, ErrCodeRemote, "Failed to list Seedr files", err)
		return
	}
	writeJSON(w, r, http.StatusOK, files)
}

// DebugSync handles GET /debug/sync by running one reconciliation pass.
func (h *Handler) DebugSync(w http.ResponseWriter, r *http.Request) {
	result, err := h.streams.Sync(r.Context())
	if err != nil {
		respondError(w, r, http.StatusBadGateway, ErrCodeRemote, "Failed to sync link cache", err)
		return
	}
	writeJSON(w, r, http.StatusOK, &SyncResponse{
		Status:  "ok",
		Message: syncMessage,
		Result:  result,
	})
}
