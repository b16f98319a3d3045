// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

// Package validation wraps go-playground/validator v10 with a shared instance
// and readable messages keyed by koanf/json field names.
//
//	type StreamRequest struct {
//	    Type string `json:"type" validate:"required,max=32"`
//	}
//	if err := validation.ValidateStruct(&req); err != nil { ... }
package validation
