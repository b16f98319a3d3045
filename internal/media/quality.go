// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package media

import "strings"

// UnknownQuality is returned when no tag in the table matches.
const UnknownQuality = "Unknown"

type qualityTag struct {
	label    string
	patterns []string // lowercase substrings
}

type qualityCategory struct {
	name string
	tags []qualityTag // priority order, first match wins
}

// qualityTable is scanned in order; output tags follow category order.
var qualityTable = []qualityCategory{
	{name: "resolution", tags: []qualityTag{
		{label: "4K", patterns: []string{"2160p", "4k"}},
		{label: "1080p", patterns: []string{"1080p"}},
		{label: "720p", patterns: []string{"720p"}},
	}},
	{name: "source", tags: []qualityTag{
		{label: "WEB-DL", patterns: []string{"web-dl", "webdl"}},
		{label: "WEBRip", patterns: []string{"webrip"}},
		{label: "BluRay", patterns: []string{"bluray", "blu-ray", "brrip"}},
		{label: "HDRip", patterns: []string{"hdrip"}},
	}},
	{name: "video", tags: []qualityTag{
		{label: "HEVC", patterns: []string{"hevc", "x265", "h265", "h.265"}},
		{label: "x264", patterns: []string{"x264", "h264", "h.264"}},
		{label: "AVC", patterns: []string{"avc"}},
	}},
	{name: "audio", tags: []qualityTag{
		{label: "DDP", patterns: []string{"ddp", "eac3", "dd+"}},
		{label: "AAC", patterns: []string{"aac"}},
		{label: "DTS", patterns: []string{"dts"}},
	}},
	{name: "channels", tags: []qualityTag{
		{label: "5.1", patterns: []string{"5.1"}},
		{label: "7.1", patterns: []string{"7.1"}},
	}},
}

// ParseQuality scans filename case-insensitively and returns at most one tag
// per category joined by spaces, or UnknownQuality.
//
//	ParseQuality("Movie.2160p.WEB-DL.x265.DDP5.1.mkv") == "4K WEB-DL HEVC DDP 5.1"
func ParseQuality(filename string) string {
	lower := strings.ToLower(filename)

	tags := make([]string, 0, len(qualityTable))
	for _, category := range qualityTable {
		if label, ok := matchCategory(lower, category); ok {
			tags = append(tags, label)
		}
	}

	if len(tags) == 0 {
		return UnknownQuality
	}
	return strings.Join(tags, " ")
}

func matchCategory(lower string, category qualityCategory) (string, bool) {
	for _, tag := range category.tags {
		for _, p := range tag.patterns {
			if strings.Contains(lower, p) {
				return tag.label, true
			}
		}
	}
	return "", false
}
