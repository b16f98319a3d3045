// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

// Package seedrtest provides an in-memory Seedr account for tests.
package seedrtest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/tomtom215/seedrio/internal/models"
)

// ErrInjected is returned by calls configured to fail.
var ErrInjected = errors.New("seedrtest: injected failure")

// Account is a fake folder tree. Folder 0 is the root.
type Account struct {
	mu       sync.Mutex
	folders  map[int64]*models.FolderContents
	failList map[int64]error
	failLink error

	ListCalls  atomic.Int32
	FetchCalls atomic.Int32
}

// NewAccount creates an account with an empty root folder.
func NewAccount() *Account {
	return &Account{
		folders:  map[int64]*models.FolderContents{0: {FolderID: 0, Name: "root"}},
		failList: make(map[int64]error),
	}
}

// AddFolder creates folder id under parent.
func (a *Account) AddFolder(parent, id int64, name string) *Account {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.folders[id] = &models.FolderContents{FolderID: id, Name: name}
	p := a.folders[parent]
	p.Folders = append(p.Folders, models.Folder{ID: id, Name: name})
	return a
}

// AddFile places a file in folder. FileID defaults to FolderFileID+1000.
func (a *Account) AddFile(folder int64, f models.RemoteFile) *Account {
	a.mu.Lock()
	defer a.mu.Unlock()
	if f.FileID == 0 {
		f.FileID = f.FolderFileID + 1000
	}
	f.FolderID = folder
	c := a.folders[folder]
	c.Files = append(c.Files, f)
	return a
}

// Video is shorthand for a playable file.
func Video(folderFileID int64, name string) models.RemoteFile {
	return models.RemoteFile{FolderFileID: folderFileID, Name: name, Size: 1 << 30, IsPlayable: true}
}

// RemoveFile deletes a file from whichever folder holds it.
func (a *Account) RemoveFile(folderFileID int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, c := range a.folders {
		for i, f := range c.Files {
			if f.FolderFileID == folderFileID {
				c.Files = append(c.Files[:i], c.Files[i+1:]...)
				return
			}
		}
	}
}

// FailList makes listing folder return err. A nil err clears the failure.
func (a *Account) FailList(folder int64, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err == nil {
		delete(a.failList, folder)
		return
	}
	a.failList[folder] = err
}

// FailLinks makes every FetchLink return err.
func (a *Account) FailLinks(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failLink = err
}

// ListContents implements walker.Lister.
func (a *Account) ListContents(_ context.Context, folderID int64) (*models.FolderContents, error) {
	a.ListCalls.Add(1)
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.failList[folderID]; err != nil {
		return nil, err
	}
	c, ok := a.folders[folderID]
	if !ok {
		return nil, fmt.Errorf("folder %d not found", folderID)
	}
	out := &models.FolderContents{
		FolderID: c.FolderID,
		Name:     c.Name,
		Files:    append([]models.RemoteFile(nil), c.Files...),
		Folders:  append([]models.Folder(nil), c.Folders...),
	}
	return out, nil
}

// FetchLink returns a deterministic URL for the file.
func (a *Account) FetchLink(_ context.Context, folderFileID int64) (*models.FileLink, error) {
	a.FetchCalls.Add(1)
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.failLink != nil {
		return nil, a.failLink
	}
	return &models.FileLink{URL: LinkFor(folderFileID)}, nil
}

// LinkFor is the URL FetchLink returns for a file.
func LinkFor(folderFileID int64) string {
	return fmt.Sprintf("https://cdn.seedr.test/ff/%d/video", folderFileID)
}
