// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

/*
Package media turns raw Seedr filenames and Stremio identifiers into the
comparison keys the resolver matches on.

  - Normalize: lowercase ASCII alphanumeric key for free text
  - ExtractTitleYear / Parse: title, release year and quality tags from a filename
  - ParseQuality: table-driven quality descriptor ("4K WEB-DL HEVC DDP 5.1")
  - MetaID: catalog id derived from title and year
  - ParseIdentifier: classify an incoming id as external (IMDb) or opaque

All functions are pure and total. Filename parsing is a deterministic
heuristic: the first 19xx/20xx run is the year, even when it is not.
*/
package media
