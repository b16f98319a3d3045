// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package models

import (
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestCacheRecord_Expired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Second)
	future := now.Add(time.Hour)

	tests := []struct {
		name      string
		expiresAt *time.Time
		want      bool
	}{
		{"no expiry", nil, false},
		{"in the past", &past, true},
		{"in the future", &future, false},
		{"exactly now", &now, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &CacheRecord{ExpiresAt: tt.expiresAt}
			if got := r.Expired(now); got != tt.want {
				t.Errorf("Expired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCacheRecord_PermanentOmitsExpiry(t *testing.T) {
	data, err := json.Marshal(&CacheRecord{URL: "https://cdn.seedr.test/1", Name: "a.mkv"})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "expires_at") {
		t.Errorf("permanent record should not carry expires_at: %s", data)
	}
}

func TestRemoteFile_Key(t *testing.T) {
	f := RemoteFile{FileID: 1, FolderFileID: 987654321}
	if got := f.Key(); got != "987654321" {
		t.Errorf("Key() = %q", got)
	}
}

func TestRemoteFile_DecodesSeedrListing(t *testing.T) {
	raw := `{"folder_id":0,"name":"root","files":[{"file_id":7,"folder_file_id":42,"name":"Heat.1995.mkv","size":1024,"play_video":true}],"folders":[{"id":5,"name":"Movies","size":0}]}`

	var fc FolderContents
	if err := json.Unmarshal([]byte(raw), &fc); err != nil {
		t.Fatal(err)
	}
	if len(fc.Files) != 1 || !fc.Files[0].IsPlayable || fc.Files[0].FolderFileID != 42 {
		t.Errorf("files = %+v", fc.Files)
	}
	if len(fc.Folders) != 1 || fc.Folders[0].ID != 5 {
		t.Errorf("folders = %+v", fc.Folders)
	}
}

func TestStreamResponse_EmptyStreamsNotNull(t *testing.T) {
	data, err := json.Marshal(StreamResponse{Streams: []Stream{}, Error: "boom"})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"streams":[],"error":"boom"}` {
		t.Errorf("got %s", data)
	}
}
