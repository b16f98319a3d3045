// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package media

import "regexp"

var externalIDPattern = regexp.MustCompile(`^tt\d+`)

// IdentifierKind tells the resolver which matching strategy applies.
type IdentifierKind int

const (
	// OpaqueID is a catalog id (MetaID) or a free filename fragment.
	OpaqueID IdentifierKind = iota
	// ExternalID is an IMDb id such as tt0133093.
	ExternalID
)

func (k IdentifierKind) String() string {
	if k == ExternalID {
		return "external"
	}
	return "opaque"
}

// Identifier is an incoming Stremio id after classification.
type Identifier struct {
	Kind  IdentifierKind
	Value string
}

// ParseIdentifier classifies raw. Anything not starting with tt<digits> is opaque.
func ParseIdentifier(raw string) Identifier {
	if externalIDPattern.MatchString(raw) {
		return Identifier{Kind: ExternalID, Value: raw}
	}
	return Identifier{Kind: OpaqueID, Value: raw}
}

// IsExternal reports whether the identifier is an IMDb id.
func (id Identifier) IsExternal() bool {
	return id.Kind == ExternalID
}
