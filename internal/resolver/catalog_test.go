// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/seedrio/internal/cinemeta"
	"github.com/tomtom215/seedrio/internal/linkcache"
	"github.com/tomtom215/seedrio/internal/models"
	"github.com/tomtom215/seedrio/internal/seedr/seedrtest"
)

func TestCatalog(t *testing.T) {
	e := newEnv(t, linkcache.FixedTTL, Options{})
	e.account.AddFile(0, seedrtest.Video(6, "The Matrix (1999) 720p.mp4"))
	e.account.AddFile(0, seedrtest.Video(7, ".mkv"))

	resp, err := e.res.Catalog(context.Background())
	if err != nil {
		t.Fatalf("Catalog() error = %v", err)
	}

	want := []struct{ id, name, year string }{
		{"thematrix1999", "The Matrix", "1999"},
		{"mkv", ".mkv", ""},
		{"heat1995", "Heat", "1995"},
		{"thematrixreloaded2003", "The Matrix Reloaded", "2003"},
		{"heat1986", "Heat", "1986"},
	}
	if len(resp.Metas) != len(want) {
		t.Fatalf("metas = %+v, want %d items", resp.Metas, len(want))
	}
	for i, w := range want {
		m := resp.Metas[i]
		if m.ID != w.id || m.Name != w.name || m.Year != w.year {
			t.Errorf("metas[%d] = %+v, want %+v", i, m, w)
		}
		if m.Type != MovieType || m.Poster != nil || m.Description != CatalogDescription {
			t.Errorf("metas[%d] defaults = %+v", i, m)
		}
	}
	if e.meta.searches != 0 {
		t.Error("search called with enrichment disabled")
	}
}

func TestCatalog_TitlesContainingExtensionWords(t *testing.T) {
	e := newEnv(t, linkcache.FixedTTL, Options{})
	e.account.AddFile(0, seedrtest.Video(20, "The.Aviator.2004.1080p.mkv"))
	e.account.AddFile(0, seedrtest.Video(21, "The.Movie.Night.2004.720p.mkv"))

	resp, err := e.res.Catalog(context.Background())
	if err != nil {
		t.Fatalf("Catalog() error = %v", err)
	}

	byID := make(map[string]models.MetaPreview, len(resp.Metas))
	for _, m := range resp.Metas {
		byID[m.ID] = m
	}
	for id, name := range map[string]string{
		"theaviator2004":    "The Aviator",
		"themovienight2004": "The Movie Night",
	} {
		m, ok := byID[id]
		if !ok {
			t.Errorf("catalog missing %s: %+v", id, resp.Metas)
			continue
		}
		if m.Name != name {
			t.Errorf("%s name = %q, want %q", id, m.Name, name)
		}
	}
	if _, ok := byID["the2004"]; ok {
		t.Error("files collapsed into a truncated id")
	}
}

func TestCatalog_Enrichment(t *testing.T) {
	e := newEnv(t, linkcache.FixedTTL, Options{EnrichCatalog: true})
	e.meta.search = map[string]*cinemeta.Meta{
		"Heat1995": {ID: "tt0113277", Name: "Heat", Poster: "https://img/heat.jpg", Description: "A heist."},
	}

	resp, err := e.res.Catalog(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	var heat *models.MetaPreview
	for i := range resp.Metas {
		if resp.Metas[i].ID == "heat1995" {
			heat = &resp.Metas[i]
		}
	}
	if heat == nil || heat.Poster == nil || *heat.Poster != "https://img/heat.jpg" || heat.Description != "A heist." {
		t.Errorf("heat = %+v", heat)
	}
	if resp.Metas[0].Poster != nil {
		t.Errorf("unmatched item got a poster: %+v", resp.Metas[0])
	}
}

func TestCatalog_EnrichmentFailureIgnored(t *testing.T) {
	e := newEnv(t, linkcache.FixedTTL, Options{EnrichCatalog: true})
	e.meta.err = errors.New("down")

	resp, err := e.res.Catalog(context.Background())
	if err != nil || len(resp.Metas) == 0 {
		t.Fatalf("Catalog() = %+v, %v", resp, err)
	}
}

func TestCatalog_ListingErrorPropagates(t *testing.T) {
	e := newEnv(t, linkcache.FixedTTL, Options{})
	e.account.FailList(10, seedrtest.ErrInjected)

	if _, err := e.res.Catalog(context.Background()); !errors.Is(err, seedrtest.ErrInjected) {
		t.Errorf("Catalog() error = %v, want ErrInjected", err)
	}
}

func TestMeta(t *testing.T) {
	e := newEnv(t, linkcache.FixedTTL, Options{})
	ctx := context.Background()

	resp := e.res.Meta(ctx, MovieType, "heat1995")
	if resp.Meta.ID != "heat1995" || resp.Meta.Type != MovieType || resp.Meta.Name != "heat1995" {
		t.Errorf("Meta() before resolve = %+v", resp.Meta)
	}

	e.res.Streams(ctx, MovieType, "heat1995")
	resp = e.res.Meta(ctx, MovieType, "heat1995")
	if resp.Meta.Name != "Heat" {
		t.Errorf("Meta().Name after resolve = %q, want Heat", resp.Meta.Name)
	}
}

func TestFiles(t *testing.T) {
	e := newEnv(t, linkcache.FixedTTL, Options{})

	files, err := e.res.Files(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 5 {
		t.Fatalf("files = %d, want 5 (including non-playable)", len(files))
	}
	if files[0].SizeHuman != "1.1 GB" || files[1].SizeHuman != "10 B" {
		t.Errorf("sizes = %q, %q", files[0].SizeHuman, files[1].SizeHuman)
	}
}

func TestSync(t *testing.T) {
	e := newEnv(t, linkcache.Permanent, Options{})
	ctx := context.Background()

	e.res.Streams(ctx, MovieType, "heat")
	e.account.RemoveFile(5)

	result, err := e.res.Sync(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if result.TotalKeys != 2 || len(result.Deleted) != 1 || result.Remaining != 1 {
		t.Errorf("Sync() = %+v", result)
	}
}
