// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package media

import "strings"

// Normalize lowercases text and drops every character outside [a-z0-9].
//
//	Normalize("The.Matrix (1999)") == "thematrix1999"
func Normalize(text string) string {
	lower := strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(lower))
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// MetaID is the catalog id emitted for a file: Normalize(title + year).
func MetaID(title, year string) string {
	return Normalize(title + year)
}
