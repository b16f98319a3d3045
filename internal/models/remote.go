// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package models

import "strconv"

// RemoteFile is one file entry in the Seedr.cc folder tree. It is a read-only
// snapshot; Seedr is always authoritative.
type RemoteFile struct {
	FileID       int64  `json:"file_id"`
	FolderFileID int64  `json:"folder_file_id"` // Stable across folder moves, used as the cache key
	FolderID     int64  `json:"folder_id,omitempty"`
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	IsPlayable   bool   `json:"play_video"` // Video file eligible for streaming
}

// Key returns the folder file id in the string form used by cache keys.
func (f RemoteFile) Key() string {
	return strconv.FormatInt(f.FolderFileID, 10)
}

// Folder is a sub-folder reference inside a listing.
type Folder struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Size int64  `json:"size,omitempty"`
}

// FolderContents is the result of listing one folder.
type FolderContents struct {
	FolderID int64        `json:"folder_id"`
	Name     string       `json:"name"`
	Files    []RemoteFile `json:"files"`
	Folders  []Folder     `json:"folders"`
}

// FileLink is a resolved playable link for a single file.
type FileLink struct {
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
}

// DeviceCode is issued by Seedr when starting the device authorization flow.
type DeviceCode struct {
	DeviceCode      string `json:"device_code"`
	UserCode        string `json:"user_code"`
	VerificationURL string `json:"verification_url"`
	ExpiresIn       int    `json:"expires_in,omitempty"`
	Interval        int    `json:"interval,omitempty"`
}

// AccountSettings is the subset of the Seedr settings payload the addon uses.
type AccountSettings struct {
	Account struct {
		Username  string `json:"username"`
		UserID    int64  `json:"user_id"`
		SpaceMax  int64  `json:"space_max"`
		SpaceUsed int64  `json:"space_used"`
		Premium   int    `json:"premium"`
	} `json:"account"`
}

// DebugFile is a RemoteFile with a human readable size, as listed by /debug/files.
type DebugFile struct {
	RemoteFile
	SizeHuman string `json:"size_human"`
}
