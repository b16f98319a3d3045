// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package api

import (
	"net/http"

	"github.com/tomtom215/seedrio/internal/logging"
)

// authorizeMessage tells the user what to do with the returned codes.
const authorizeMessage = "Open verification_url and enter user_code to authorize"

// AuthorizeResponse is returned by GET /authorize. The device_code has to be
// configured as SEEDR_DEVICE_CODE once the user approved it.
type AuthorizeResponse struct {
	DeviceCode      string `json:"device_code"`
	UserCode        string `json:"user_code"`
	VerificationURL string `json:"verification_url"`
	Message         string `json:"message"`
}

// AuthStatusResponse is returned by GET /auth/status.
type AuthStatusResponse struct {
	Authorized bool   `json:"authorized"`
	Username   string `json:"username,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Authorize handles GET /authorize by requesting a new device code.
func (h *Handler) Authorize(w http.ResponseWriter, r *http.Request) {
	code, err := h.account.DeviceCode(r.Context())
	if err != nil {
		respondError(w, r, http.StatusBadGateway, ErrCodeRemote, "Failed to request device code", err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("user_code", code.UserCode).
		Str("verification_url", code.VerificationURL).
		Msg("Device authorization started")

	writeJSON(w, r, http.StatusOK, &AuthorizeResponse{
		DeviceCode:      code.DeviceCode,
		UserCode:        code.UserCode,
		VerificationURL: code.VerificationURL,
		Message:         authorizeMessage,
	})
}

// AuthStatus handles GET /auth/status. Failures are part of the answer, so
// the status code is always 200.
func (h *Handler) AuthStatus(w http.ResponseWriter, r *http.Request) {
	settings, err := h.account.Settings(r.Context())
	if err != nil {
		writeJSON(w, r, http.StatusOK, &AuthStatusResponse{Authorized: false, Error: err.Error()})
		return
	}
	writeJSON(w, r, http.StatusOK, &AuthStatusResponse{
		Authorized: true,
		Username:   settings.Account.Username,
	})
}
