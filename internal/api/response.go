// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package api

import (
	"fmt"
	"hash/fnv"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/seedrio/internal/logging"
	"github.com/tomtom215/seedrio/internal/models"
	"github.com/tomtom215/seedrio/internal/validation"
)

// Error codes carried in the APIResponse envelope.
const (
	ErrCodeBadRequest  = "BAD_REQUEST"
	ErrCodeValidation  = "VALIDATION_ERROR"
	ErrCodeNotFound    = "NOT_FOUND"
	ErrCodeRemote      = "REMOTE_ERROR"
	ErrCodeUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeRateLimited = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternal    = "INTERNAL_ERROR"
)

const (
	statusSuccess   = "success"
	statusError     = "error"
	contentTypeJSON = "application/json; charset=utf-8"
)

// writeJSON writes v unwrapped. Used for Stremio protocol objects and the
// small status payloads whose shape is fixed by existing clients.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to encode JSON response")
		http.Error(w, `{"error":"encoding failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write response")
	}
}

// writeCacheableJSON writes v with an ETag and answers If-None-Match with 304.
func writeCacheableJSON(w http.ResponseWriter, r *http.Request, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to encode JSON response")
		http.Error(w, `{"error":"encoding failed"}`, http.StatusInternalServerError)
		return
	}

	etag := computeETag(body)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if match := r.Header.Get("If-None-Match"); match != "" && strings.Contains(match, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write response")
	}
}

// computeETag returns a weak ETag from the FNV-1a hash of body.
func computeETag(body []byte) string {
	h := fnv.New64a()
	_, _ = h.Write(body) // never fails
	return fmt.Sprintf(`W/"%x"`, h.Sum64())
}

// respondJSON wraps data in the success envelope.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	writeJSON(w, r, status, &models.APIResponse{
		Status:   statusSuccess,
		Data:     data,
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
	})
}

// respondError writes the error envelope and logs the underlying cause.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	event := logging.Ctx(r.Context()).Warn()
	if status >= http.StatusInternalServerError {
		event = logging.Ctx(r.Context()).Error()
	}
	event.Err(err).
		Str("code", code).
		Int("status", status).
		Msg(message)

	apiErr := &models.APIError{Code: code, Message: message}
	if err != nil {
		apiErr.Details = map[string]interface{}{"cause": err.Error()}
	}
	writeJSON(w, r, status, &models.APIResponse{
		Status:   statusError,
		Error:    apiErr,
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
	})
}

// validateRequest runs struct validation and writes a 400 on failure.
// It reports whether the handler may continue.
func validateRequest(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := validation.ValidateStruct(req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return false
	}
	return true
}

// sanitizeLogValue strips control characters from request supplied values
// before they are logged.
func sanitizeLogValue(s string) string {
	const maxLen = 200
	if len(s) > maxLen {
		s = s[:maxLen] + "..."
	}
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
