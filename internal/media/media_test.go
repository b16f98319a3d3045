// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package media

import (
	"regexp"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"The.Matrix (1999)", "thematrix1999"},
		{"Some_Movie-2020.MKV", "somemovie2020mkv"},
		{"ÀB-c_1", "bc1"},
		{"", ""},
		{"!!!", ""},
		{"already123", "already123"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMetaID(t *testing.T) {
	t.Parallel()

	if got := MetaID("The Matrix", "1999"); got != "thematrix1999" {
		t.Errorf("MetaID() = %q, want thematrix1999", got)
	}
	if got := MetaID("", ""); got != "" {
		t.Errorf("MetaID(empty) = %q, want empty", got)
	}
}

func TestExtractTitleYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		title    string
		year     string
	}{
		{"Some.Movie.1999.1080p.mkv", "Some Movie", "1999"},
		{"NoYearHere.mkv", "NoYearHere", ""},
		{"Scary.Movie.2000.mkv", "Scary Movie", "2000"},
		{"The.Aviator.2004.mkv", "The Aviator", "2004"},
		{"The.Movie.Night.2004.720p.mkv", "The Movie Night", "2004"},
		{"Webmaster.1998.avi", "Webmaster", "1998"},
		{"The_Dark_Knight_2008_BluRay.mp4", "The Dark Knight", "2008"},
		{"Movie (2010).MKV", "Movie", "2010"},
		{"Film.Name.2020.mkv.part", "Film Name", "2020"},
		{"Blade.Runner.2049.2017.mkv", "Blade Runner", "2049"},
		{".mkv", "", ""},
		{"", "", ""},
		{"plain title", "plain title", ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			t.Parallel()
			title, year := ExtractTitleYear(tt.filename)
			if title != tt.title || year != tt.year {
				t.Errorf("ExtractTitleYear(%q) = (%q, %q), want (%q, %q)",
					tt.filename, title, year, tt.title, tt.year)
			}
		})
	}
}

func TestParseQuality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		expected string
	}{
		{"Movie.2160p.x265.mkv", "4K HEVC"},
		{"Movie.1080p.WEBRip.x264.AAC.mkv", "1080p WEBRip x264 AAC"},
		{"Movie.720p.BRRip.XviD.mkv", "720p BluRay"},
		{"Movie.1080p.BluRay.DTS.7.1.mkv", "1080p BluRay DTS 7.1"},
		{"Movie.2160p.WEB-DL.DDP5.1.Atmos.H.265.mkv", "4K WEB-DL HEVC DDP 5.1"},
		{"Movie.4K.HEVC.x264.mkv", "4K HEVC"},
		{"Movie.mkv", UnknownQuality},
		{"", UnknownQuality},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			t.Parallel()
			if got := ParseQuality(tt.filename); got != tt.expected {
				t.Errorf("ParseQuality(%q) = %q, want %q", tt.filename, got, tt.expected)
			}
		})
	}
}

func TestParseQuality_OneTagPerCategory(t *testing.T) {
	t.Parallel()

	got := ParseQuality("Movie.2160p.1080p.720p.x265.x264.AVC.mkv")
	if got != "4K HEVC" {
		t.Errorf("ParseQuality() = %q, want %q", got, "4K HEVC")
	}
	if strings.Contains(got, "x264") {
		t.Errorf("lower priority codec leaked into %q", got)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	p := Parse("The.Matrix.1999.1080p.BluRay.x264.mkv")
	if p.Title != "The Matrix" || p.Year != "1999" || p.Quality != "1080p BluRay x264" {
		t.Errorf("Parse() = %+v", p)
	}
}

func TestParseIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		kind IdentifierKind
	}{
		{"tt0133093", ExternalID},
		{"tt0133093:1:2", ExternalID},
		{"tt", OpaqueID},
		{"ttabc", OpaqueID},
		{"thematrix1999", OpaqueID},
		{"", OpaqueID},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			id := ParseIdentifier(tt.raw)
			if id.Kind != tt.kind {
				t.Errorf("ParseIdentifier(%q).Kind = %v, want %v", tt.raw, id.Kind, tt.kind)
			}
			if id.Value != tt.raw {
				t.Errorf("ParseIdentifier(%q).Value = %q", tt.raw, id.Value)
			}
		})
	}
}

var normalizedPattern = regexp.MustCompile(`^[a-z0-9]*$`)

// FuzzNormalize checks idempotence and the output alphabet.
func FuzzNormalize(f *testing.F) {
	f.Add("The.Matrix.1999.1080p.mkv")
	f.Add("")
	f.Add("ÀÉÎõü")
	f.Add("\x00\xff")
	f.Add("İstanbul")

	f.Fuzz(func(t *testing.T, input string) {
		once := Normalize(input)
		if !normalizedPattern.MatchString(once) {
			t.Errorf("Normalize(%q) = %q contains characters outside [a-z0-9]", input, once)
		}
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent: %q -> %q -> %q", input, once, twice)
		}
	})
}

// FuzzFilenameParsing checks that the heuristics never fail on arbitrary names.
func FuzzFilenameParsing(f *testing.F) {
	f.Add("Some.Movie.1999.1080p.mkv")
	f.Add(".mkv")
	f.Add("2001.2002.2003")

	f.Fuzz(func(t *testing.T, name string) {
		_, year := ExtractTitleYear(name)
		if year != "" && len(year) != 4 {
			t.Errorf("year %q is not four digits", year)
		}
		if ParseQuality(name) == "" {
			t.Error("ParseQuality returned empty string")
		}
	})
}
