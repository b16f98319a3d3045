// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package media

import (
	"regexp"
	"strings"
)

var (
	// First 19xx/20xx run anywhere in the name, no delimiter required.
	yearPattern = regexp.MustCompile(`(19|20)\d{2}`)

	// Known video extension token and everything after it. The boundary keeps
	// ".Movie" and ".Aviator" from reading as ".mov" and ".avi".
	extensionPattern = regexp.MustCompile(`(?i)\.(mkv|mp4|avi|mov|webm|wmv)\b.*`)

	separatorReplacer = strings.NewReplacer(".", " ", "_", " ")
)

// ParsedName is derived from a filename on every request and never stored on its own.
type ParsedName struct {
	Title   string
	Year    string
	Quality string
}

// Parse extracts title, year and quality from a raw filename.
func Parse(filename string) ParsedName {
	title, year := ExtractTitleYear(filename)
	return ParsedName{Title: title, Year: year, Quality: ParseQuality(filename)}
}

// ExtractTitleYear returns the release title and year of a filename.
//
// The year is the first (19|20)\d\d run. The title is what precedes it, with
// the extension suffix removed and '.' / '_' turned into spaces:
//
//	ExtractTitleYear("Some.Movie.1999.1080p.mkv") == ("Some Movie", "1999")
//	ExtractTitleYear("NoYearHere.mkv")            == ("NoYearHere", "")
//
// Title may be empty for degenerate names; callers display the raw filename then.
func ExtractTitleYear(filename string) (title, year string) {
	stripped := extensionPattern.ReplaceAllString(filename, "")

	if loc := yearPattern.FindStringIndex(filename); loc != nil {
		year = filename[loc[0]:loc[1]]
	}

	// Release tags follow the year, so the title ends at the first year token.
	if loc := yearPattern.FindStringIndex(stripped); loc != nil {
		stripped = stripped[:loc[0]]
	}

	title = strings.TrimSpace(separatorReplacer.Replace(stripped))
	title = strings.TrimSpace(strings.TrimRight(title, "([-"))
	return title, year
}
