// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package resolver

import (
	"strings"

	"github.com/tomtom215/seedrio/internal/media"
	"github.com/tomtom215/seedrio/internal/models"
)

// matcher decides whether a playable file is a candidate for one request.
type matcher func(models.RemoteFile) bool

// externalMatcher matches files whose normalized name contains the
// normalized title. With requireYear the raw name must also contain year;
// an unknown year is not enforced.
func externalMatcher(title, year string, requireYear bool) matcher {
	want := media.Normalize(title)
	return func(f models.RemoteFile) bool {
		if want == "" || !strings.Contains(media.Normalize(f.Name), want) {
			return false
		}
		return !requireYear || year == "" || strings.Contains(f.Name, year)
	}
}

// opaqueMatcher matches by catalog id, normalized filename or substring of it.
func opaqueMatcher(id string) matcher {
	want := media.Normalize(id)
	return func(f models.RemoteFile) bool {
		title, year := media.ExtractTitleYear(f.Name)
		if media.MetaID(title, year) == id {
			return true
		}
		if want == "" {
			return false
		}
		name := media.Normalize(f.Name)
		return name == want || strings.Contains(name, want)
	}
}
