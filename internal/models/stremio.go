// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package models

// Stream is one playable entry returned to Stremio.
type Stream struct {
	Name          string        `json:"name"`  // Source label, e.g. "Seedr.cc"
	Title         string        `json:"title"` // Display string
	URL           string        `json:"url"`
	BehaviorHints BehaviorHints `json:"behaviorHints"`
}

type BehaviorHints struct {
	NotWebReady bool `json:"notWebReady"`
}

// StreamResponse is the /stream payload. Error is set when resolution failed;
// Streams is then empty but never null.
type StreamResponse struct {
	Streams []Stream `json:"streams"`
	Error   string   `json:"error,omitempty"`
}

// MetaPreview is one catalog item.
type MetaPreview struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Year        string  `json:"year"`
	Poster      *string `json:"poster"`
	Description string  `json:"description"`
}

type CatalogResponse struct {
	Metas []MetaPreview `json:"metas"`
}

// Meta is the minimal meta object returned for catalog ids.
type Meta struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
}

type MetaResponse struct {
	Meta Meta `json:"meta"`
}

// Manifest describes the addon to Stremio.
type Manifest struct {
	ID          string            `json:"id"`
	Version     string            `json:"version"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Resources   []string          `json:"resources"`
	Types       []string          `json:"types"`
	Catalogs    []ManifestCatalog `json:"catalogs"`
	IDPrefixes  []string          `json:"idPrefixes,omitempty"`
}

type ManifestCatalog struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}
