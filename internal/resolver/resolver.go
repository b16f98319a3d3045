// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package resolver

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/tomtom215/seedrio/internal/cinemeta"
	"github.com/tomtom215/seedrio/internal/config"
	"github.com/tomtom215/seedrio/internal/linkcache"
	"github.com/tomtom215/seedrio/internal/logging"
	"github.com/tomtom215/seedrio/internal/media"
	"github.com/tomtom215/seedrio/internal/metrics"
	"github.com/tomtom215/seedrio/internal/models"
	"github.com/tomtom215/seedrio/internal/walker"
)

// MovieType is the only Stremio type the addon serves.
const MovieType = "movie"

// CatalogDescription is the description of every catalog item.
const CatalogDescription = "From your Seedr.cc account"

// MetadataLookup resolves IMDb ids and searches by title. *cinemeta.Client
// satisfies it.
type MetadataLookup interface {
	TitleYear(ctx context.Context, imdbID string) (title, year string, err error)
	Search(ctx context.Context, title, year string) (*cinemeta.Meta, error)
}

// Options tunes a Resolver.
type Options struct {
	SourceLabel            string
	RootFolder             int64
	RequireYear            bool
	ReconcileBeforeResolve bool
	CatalogShortcut        bool
	EnrichCatalog          bool
}

// OptionsFromConfig derives resolver options. The catalog shortcut is only
// enabled under the fixed TTL policy.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		SourceLabel:            cfg.Resolver.SourceLabel,
		RootFolder:             cfg.Seedr.RootFolderID,
		RequireYear:            cfg.Resolver.RequireYear,
		ReconcileBeforeResolve: cfg.Resolver.ReconcileBeforeResolve,
		CatalogShortcut:        cfg.CatalogShortcutActive(),
		EnrichCatalog:          cfg.Resolver.EnrichCatalog,
	}
}

// Resolver answers stream, catalog and sync requests for one Seedr account.
type Resolver struct {
	lister walker.Lister
	links  *linkcache.Cache
	meta   MetadataLookup
	opts   Options
}

// New creates a Resolver.
func New(lister walker.Lister, links *linkcache.Cache, meta MetadataLookup, opts Options) *Resolver {
	if opts.SourceLabel == "" {
		opts.SourceLabel = "Seedr.cc"
	}
	return &Resolver{
		lister: lister,
		links:  links,
		meta:   meta,
		opts:   opts,
	}
}

// Streams resolves id to playable streams. Unknown types and unmatched ids
// yield an empty list; failures are reported in the Error field.
func (r *Resolver) Streams(ctx context.Context, mediaType, id string) models.StreamResponse {
	if mediaType != MovieType {
		metrics.RecordResolution("unsupported", "empty", 0)
		return models.StreamResponse{Streams: []models.Stream{}}
	}

	ident := media.ParseIdentifier(id)
	kind := ident.Kind.String()
	log := logging.Ctx(ctx).With().Str("id", id).Str("kind", kind).Logger()

	if !ident.IsExternal() && r.opts.CatalogShortcut {
		streams, err := r.shortcut(ctx, id)
		if err != nil {
			log.Warn().Err(err).Msg("Catalog shortcut failed, walking account")
		} else if len(streams) > 0 {
			metrics.CatalogShortcutHits.Inc()
			metrics.RecordResolution("shortcut", "matched", len(streams))
			log.Debug().Int("streams", len(streams)).Msg("Answered from cached records")
			return models.StreamResponse{Streams: streams}
		}
	}

	streams, err := r.resolve(ctx, ident)
	if err != nil {
		metrics.RecordResolution(kind, "error", 0)
		log.Error().Err(err).Msg("Stream resolution failed")
		return models.StreamResponse{Streams: []models.Stream{}, Error: err.Error()}
	}

	outcome := "matched"
	if len(streams) == 0 {
		outcome = "empty"
	}
	metrics.RecordResolution(kind, outcome, len(streams))
	log.Debug().Int("streams", len(streams)).Msg("Stream resolution finished")
	return models.StreamResponse{Streams: streams}
}

func (r *Resolver) shortcut(ctx context.Context, id string) ([]models.Stream, error) {
	records, err := r.links.FindByMetaID(ctx, id)
	if err != nil {
		return nil, err
	}
	streams := make([]models.Stream, 0, len(records))
	for _, rec := range records {
		streams = append(streams, r.stream(rec.Name, 0, rec.URL))
	}
	return streams, nil
}

func (r *Resolver) resolve(ctx context.Context, ident media.Identifier) ([]models.Stream, error) {
	if r.opts.ReconcileBeforeResolve {
		if _, err := r.links.Reconcile(ctx, r.lister, r.opts.RootFolder); err != nil {
			return nil, fmt.Errorf("reconcile: %w", err)
		}
	}

	var match matcher
	if ident.IsExternal() {
		if r.meta == nil {
			return nil, errors.New("metadata lookup not configured")
		}
		title, year, err := r.meta.TitleYear(ctx, ident.Value)
		if errors.Is(err, cinemeta.ErrNotFound) {
			logging.Ctx(ctx).Info().Str("id", ident.Value).Msg("No metadata for id")
			return []models.Stream{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("metadata lookup: %w", err)
		}
		match = externalMatcher(title, year, r.opts.RequireYear)
	} else {
		match = opaqueMatcher(ident.Value)
	}

	candidates, err := r.candidates(ctx, match)
	if err != nil {
		return nil, err
	}

	streams := make([]models.Stream, 0, len(candidates))
	for _, f := range candidates {
		rec, err := r.links.Resolve(ctx, f)
		if err != nil {
			return nil, err
		}
		streams = append(streams, r.stream(f.Name, f.Size, rec.URL))
	}
	return streams, nil
}

// candidates walks the account and returns the playable files accepted by match.
func (r *Resolver) candidates(ctx context.Context, match matcher) ([]models.RemoteFile, error) {
	var out []models.RemoteFile
	for f, err := range walker.Walk(ctx, r.lister, r.opts.RootFolder) {
		if err != nil {
			return nil, err
		}
		if f.IsPlayable && match(f) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *Resolver) stream(name string, size int64, url string) models.Stream {
	return models.Stream{
		Name:          r.opts.SourceLabel,
		Title:         DisplayTitle(name, size),
		URL:           url,
		BehaviorHints: models.BehaviorHints{NotWebReady: false},
	}
}

// DisplayTitle is the filename followed by its quality tags and, when known,
// its size.
//
//	The.Matrix.1999.1080p.mkv
//	1080p · 1.1 GB
func DisplayTitle(name string, size int64) string {
	detail := media.ParseQuality(name)
	if size > 0 {
		detail += " · " + humanize.Bytes(uint64(size))
	}
	return name + "\n" + detail
}
