// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package walker

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/seedrio/internal/models"
	"github.com/tomtom215/seedrio/internal/seedr/seedrtest"
)

func names(files []models.RemoteFile) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Name
	}
	return out
}

func nestedAccount() *seedrtest.Account {
	a := seedrtest.NewAccount()
	a.AddFolder(0, 10, "movies").
		AddFolder(10, 11, "deep").
		AddFolder(0, 20, "other")
	a.AddFile(0, seedrtest.Video(1, "rootA.mkv"))
	a.AddFile(10, seedrtest.Video(2, "moviesB.mkv"))
	a.AddFile(11, seedrtest.Video(3, "deepC.mkv"))
	a.AddFile(20, seedrtest.Video(4, "otherD.mkv"))
	a.AddFile(0, models.RemoteFile{FolderFileID: 5, Name: "readme.txt"})
	return a
}

func TestWalk_DepthFirstOrder(t *testing.T) {
	t.Parallel()

	files, err := Collect(context.Background(), nestedAccount(), RootFolder)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	want := []string{"rootA.mkv", "readme.txt", "moviesB.mkv", "deepC.mkv", "otherD.mkv"}
	got := names(files)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %s, want %s (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestWalk_RootAndSubfolder(t *testing.T) {
	t.Parallel()

	a := seedrtest.NewAccount().AddFolder(0, 7, "sub")
	a.AddFile(0, seedrtest.Video(1, "fileA.mkv"))
	a.AddFile(7, seedrtest.Video(2, "fileB.mkv"))

	files, err := Collect(context.Background(), a, RootFolder)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(files) != 2 || files[0].Name != "fileA.mkv" || files[1].Name != "fileB.mkv" {
		t.Errorf("got %v, want [fileA.mkv fileB.mkv]", names(files))
	}
}

func TestWalk_Restartable(t *testing.T) {
	t.Parallel()

	a := nestedAccount()
	seq := Walk(context.Background(), a, RootFolder)

	count := func() int {
		n := 0
		for _, err := range seq {
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			n++
		}
		return n
	}

	if first, second := count(), count(); first != 5 || second != 5 {
		t.Errorf("counts = %d, %d; want 5, 5", first, second)
	}
	// Four folders listed per traversal.
	if calls := a.ListCalls.Load(); calls != 8 {
		t.Errorf("ListCalls = %d, want 8", calls)
	}
}

func TestWalk_Lazy(t *testing.T) {
	t.Parallel()

	a := nestedAccount()
	for range Walk(context.Background(), a, RootFolder) {
		break
	}
	if calls := a.ListCalls.Load(); calls != 1 {
		t.Errorf("ListCalls after early break = %d, want 1", calls)
	}
}

func TestWalk_ErrorAbortsTraversal(t *testing.T) {
	t.Parallel()

	a := nestedAccount()
	a.FailList(11, seedrtest.ErrInjected)

	var seen []string
	var walkErr error
	errCount := 0
	for f, err := range Walk(context.Background(), a, RootFolder) {
		if err != nil {
			walkErr = err
			errCount++
			continue
		}
		seen = append(seen, f.Name)
	}

	if !errors.Is(walkErr, seedrtest.ErrInjected) {
		t.Fatalf("error = %v, want ErrInjected", walkErr)
	}
	if errCount != 1 {
		t.Errorf("error yielded %d times, want 1", errCount)
	}
	for _, n := range seen {
		if n == "otherD.mkv" {
			t.Error("traversal continued past the failing folder")
		}
	}

	if _, err := Collect(context.Background(), a, RootFolder); err == nil {
		t.Error("Collect() should fail when a listing fails")
	}
}

func TestWalk_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Collect(ctx, nestedAccount(), RootFolder)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestLiveIDs(t *testing.T) {
	t.Parallel()

	ids, err := LiveIDs(context.Background(), nestedAccount(), RootFolder)
	if err != nil {
		t.Fatalf("LiveIDs() error = %v", err)
	}
	for _, want := range []string{"1", "2", "3", "4", "5"} {
		if _, ok := ids[want]; !ok {
			t.Errorf("LiveIDs missing %s", want)
		}
	}
	if len(ids) != 5 {
		t.Errorf("len(LiveIDs) = %d, want 5", len(ids))
	}
}
