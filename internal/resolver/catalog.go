// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package resolver

import (
	"context"

	"github.com/dustin/go-humanize"

	"github.com/tomtom215/seedrio/internal/logging"
	"github.com/tomtom215/seedrio/internal/media"
	"github.com/tomtom215/seedrio/internal/models"
	"github.com/tomtom215/seedrio/internal/walker"
)

// Catalog lists one item per distinct movie among the playable files, in
// walk order. Items sharing a catalog id are listed once.
func (r *Resolver) Catalog(ctx context.Context) (*models.CatalogResponse, error) {
	files, err := walker.Collect(ctx, r.lister, r.opts.RootFolder)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	metas := make([]models.MetaPreview, 0, len(files))
	for _, f := range files {
		if !f.IsPlayable {
			continue
		}
		item := catalogItem(f)
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}

		if r.opts.EnrichCatalog && r.meta != nil {
			r.enrich(ctx, &item)
		}
		metas = append(metas, item)
	}
	return &models.CatalogResponse{Metas: metas}, nil
}

func catalogItem(f models.RemoteFile) models.MetaPreview {
	title, year := media.ExtractTitleYear(f.Name)
	name := title
	if name == "" {
		name = f.Name
	}
	id := media.MetaID(title, year)
	if title == "" {
		id = media.Normalize(f.Name)
	}
	return models.MetaPreview{
		ID:          id,
		Type:        MovieType,
		Name:        name,
		Year:        year,
		Description: CatalogDescription,
	}
}

// enrich fills poster and description from a metadata search. Failures
// leave the item unchanged.
func (r *Resolver) enrich(ctx context.Context, item *models.MetaPreview) {
	found, err := r.meta.Search(ctx, item.Name, item.Year)
	if err != nil {
		logging.Ctx(ctx).Debug().Err(err).Str("title", item.Name).Msg("Catalog enrichment failed")
		return
	}
	if found == nil {
		return
	}
	if found.Poster != "" {
		poster := found.Poster
		item.Poster = &poster
	}
	if found.Description != "" {
		item.Description = found.Description
	}
}

// Meta returns the minimal meta object for a catalog id, named after the
// cached record title when one exists.
func (r *Resolver) Meta(ctx context.Context, mediaType, id string) models.MetaResponse {
	name := id
	if records, err := r.links.FindByMetaID(ctx, id); err == nil && len(records) > 0 && records[0].Title != "" {
		name = records[0].Title
	}
	return models.MetaResponse{Meta: models.Meta{ID: id, Type: mediaType, Name: name}}
}

// Files lists every file in the account with a human readable size.
func (r *Resolver) Files(ctx context.Context) ([]models.DebugFile, error) {
	files, err := walker.Collect(ctx, r.lister, r.opts.RootFolder)
	if err != nil {
		return nil, err
	}
	out := make([]models.DebugFile, 0, len(files))
	for _, f := range files {
		out = append(out, models.DebugFile{RemoteFile: f, SizeHuman: humanize.Bytes(uint64(f.Size))})
	}
	return out, nil
}

// Sync reconciles the link cache with the account.
func (r *Resolver) Sync(ctx context.Context) (*models.SyncResult, error) {
	return r.links.Reconcile(ctx, r.lister, r.opts.RootFolder)
}
