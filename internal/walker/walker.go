// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

// Package walker enumerates every file in a Seedr folder tree.
package walker

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/tomtom215/seedrio/internal/models"
)

// RootFolder lists the account root.
const RootFolder int64 = 0

// Lister lists a single folder. *seedr.Client satisfies it.
type Lister interface {
	ListContents(ctx context.Context, folderID int64) (*models.FolderContents, error)
}

// Walk returns a lazy depth-first sequence of the files under root. Each
// folder's files are yielded before descending into its sub-folders, and a
// sub-folder is fully walked before its next sibling.
//
// Ranging over the sequence again re-lists the tree. The first listing error
// is yielded once with a zero file and ends the sequence; callers must not
// treat files seen before it as a complete result.
//
//	for file, err := range walker.Walk(ctx, client, walker.RootFolder) {
//		if err != nil {
//			return err
//		}
//		...
//	}
func Walk(ctx context.Context, lister Lister, root int64) iter.Seq2[models.RemoteFile, error] {
	return func(yield func(models.RemoteFile, error) bool) {
		if err := walkInto(ctx, lister, root, yield); err != nil && !errors.Is(err, errStopped) {
			yield(models.RemoteFile{}, err)
		}
	}
}

// errStopped signals that the consumer stopped ranging early.
var errStopped = errors.New("walk stopped")

func walkInto(ctx context.Context, lister Lister, folderID int64, yield func(models.RemoteFile, error) bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	contents, err := lister.ListContents(ctx, folderID)
	if err != nil {
		return fmt.Errorf("list folder %d: %w", folderID, err)
	}

	for _, f := range contents.Files {
		if !yield(f, nil) {
			return errStopped
		}
	}

	for _, sub := range contents.Folders {
		if err := walkInto(ctx, lister, sub.ID, yield); err != nil {
			return err
		}
	}
	return nil
}

// Collect drains Walk into a slice, returning no files on error.
func Collect(ctx context.Context, lister Lister, root int64) ([]models.RemoteFile, error) {
	var files []models.RemoteFile
	for f, err := range Walk(ctx, lister, root) {
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// LiveIDs returns the set of folder file ids currently present under root,
// in the string form used by cache keys. Playable and non-playable files are
// both included.
func LiveIDs(ctx context.Context, lister Lister, root int64) (map[string]struct{}, error) {
	ids := make(map[string]struct{})
	for f, err := range Walk(ctx, lister, root) {
		if err != nil {
			return nil, err
		}
		ids[f.Key()] = struct{}{}
	}
	return ids, nil
}
