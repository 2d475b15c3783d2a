package preview

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/thatboisuss/ytmp3/internal/model"
)

// fakeFetcher resolves lookups on demand so tests control completion order
type fakeFetcher struct {
	mutex    sync.Mutex
	requests []chan fetchResult
	started  chan struct{}
}

type fetchResult struct {
	meta *model.VideoMetadata
	err  error
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{started: make(chan struct{}, 16)}
}

func (f *fakeFetcher) Fetch(ctx context.Context, videoID string) (*model.VideoMetadata, error) {
	ch := make(chan fetchResult, 1)
	f.mutex.Lock()
	f.requests = append(f.requests, ch)
	f.mutex.Unlock()
	f.started <- struct{}{}

	res := <-ch
	return res.meta, res.err
}

// resolve completes the i-th launched fetch
func (f *fakeFetcher) resolve(i int, meta *model.VideoMetadata, err error) {
	f.mutex.Lock()
	ch := f.requests[i]
	f.mutex.Unlock()
	ch <- fetchResult{meta: meta, err: err}
}

// recorder collects snapshots delivered through the change callback
type recorder struct {
	mutex     sync.Mutex
	snapshots []Snapshot
	changed   chan struct{}
}

func newRecorder() *recorder {
	return &recorder{changed: make(chan struct{}, 64)}
}

func (r *recorder) record(s Snapshot) {
	r.mutex.Lock()
	r.snapshots = append(r.snapshots, s)
	r.mutex.Unlock()
	r.changed <- struct{}{}
}

func (r *recorder) waitForChange(t *testing.T) {
	t.Helper()
	select {
	case <-r.changed:
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for a state change")
	}
}

func TestCoordinator_NonMatchingInputStaysIdle(t *testing.T) {
	fetcher := newFakeFetcher()
	coord := NewCoordinator(fetcher)

	coord.SetURL("not a url")

	snap := coord.Snapshot()
	if snap.Status != model.FetchStatusIdle {
		t.Errorf("Expected status Idle, got %s", snap.Status)
	}
	if snap.HasMetadata() {
		t.Error("Expected no metadata for non-matching input")
	}
	if len(fetcher.requests) != 0 {
		t.Errorf("Expected no fetch for non-matching input, got %d", len(fetcher.requests))
	}
}

func TestCoordinator_MatchingInputFetchesMetadata(t *testing.T) {
	fetcher := newFakeFetcher()
	coord := NewCoordinator(fetcher)
	rec := newRecorder()
	coord.SetChangeCallback(rec.record)

	coord.SetURL("https://www.youtu.be/dQw4w9WgXcQ")
	rec.waitForChange(t) // Loading

	if snap := coord.Snapshot(); snap.Status != model.FetchStatusLoading {
		t.Fatalf("Expected status Loading, got %s", snap.Status)
	}

	<-fetcher.started
	fetcher.resolve(0, &model.VideoMetadata{Title: "Never Gonna Give You Up", Author: "Rick Astley"}, nil)
	rec.waitForChange(t) // Ready

	snap := coord.Snapshot()
	if snap.Status != model.FetchStatusReady {
		t.Errorf("Expected status Ready, got %s", snap.Status)
	}
	if snap.VideoID != "dQw4w9WgXcQ" {
		t.Errorf("Expected video ID dQw4w9WgXcQ, got %q", snap.VideoID)
	}
	if !snap.HasMetadata() || snap.Metadata.Title != "Never Gonna Give You Up" {
		t.Errorf("Expected fetched metadata, got %+v", snap.Metadata)
	}
}

func TestCoordinator_FetchFailureClearsMetadata(t *testing.T) {
	fetcher := newFakeFetcher()
	coord := NewCoordinator(fetcher)
	rec := newRecorder()
	coord.SetChangeCallback(rec.record)

	coord.SetURL("https://www.youtu.be/dQw4w9WgXcQ")
	rec.waitForChange(t)
	<-fetcher.started
	fetcher.resolve(0, nil, errors.New("network down"))
	rec.waitForChange(t)

	snap := coord.Snapshot()
	if snap.Status != model.FetchStatusIdle {
		t.Errorf("Expected status Idle after failed fetch, got %s", snap.Status)
	}
	if snap.HasMetadata() {
		t.Error("Expected metadata cleared after failed fetch")
	}
}

func TestCoordinator_StaleFetchIsDiscarded(t *testing.T) {
	fetcher := newFakeFetcher()
	coord := NewCoordinator(fetcher)
	rec := newRecorder()
	coord.SetChangeCallback(rec.record)

	// First keystroke launches fetch 0, second launches fetch 1.
	coord.SetURL("https://www.youtu.be/aaaaaaaaaaa")
	rec.waitForChange(t)
	<-fetcher.started
	coord.SetURL("https://www.youtu.be/bbbbbbbbbbb")
	rec.waitForChange(t)
	<-fetcher.started

	// Fetch 1 (the newer one) completes first.
	fetcher.resolve(1, &model.VideoMetadata{Title: "Newer"}, nil)
	rec.waitForChange(t)

	// Fetch 0 completes late; its result must not overwrite current state.
	fetcher.resolve(0, &model.VideoMetadata{Title: "Stale"}, nil)
	time.Sleep(50 * time.Millisecond)

	snap := coord.Snapshot()
	if snap.Status != model.FetchStatusReady {
		t.Errorf("Expected status Ready, got %s", snap.Status)
	}
	if snap.Metadata == nil || snap.Metadata.Title != "Newer" {
		t.Errorf("Expected the newest result to win, got %+v", snap.Metadata)
	}
}

func TestCoordinator_ClearedFieldSupersedesInFlightFetch(t *testing.T) {
	fetcher := newFakeFetcher()
	coord := NewCoordinator(fetcher)
	rec := newRecorder()
	coord.SetChangeCallback(rec.record)

	coord.SetURL("https://www.youtu.be/dQw4w9WgXcQ")
	rec.waitForChange(t)
	<-fetcher.started

	// Field cleared while the fetch is outstanding.
	coord.SetURL("")
	rec.waitForChange(t)

	fetcher.resolve(0, &model.VideoMetadata{Title: "Late"}, nil)
	time.Sleep(50 * time.Millisecond)

	snap := coord.Snapshot()
	if snap.Status != model.FetchStatusIdle {
		t.Errorf("Expected status Idle after clearing the field, got %s", snap.Status)
	}
	if snap.HasMetadata() {
		t.Errorf("Expected no metadata after clearing the field, got %+v", snap.Metadata)
	}
}

func TestCoordinator_SnapshotReturnsMetadataCopy(t *testing.T) {
	fetcher := newFakeFetcher()
	coord := NewCoordinator(fetcher)
	rec := newRecorder()
	coord.SetChangeCallback(rec.record)

	coord.SetURL("https://www.youtu.be/dQw4w9WgXcQ")
	rec.waitForChange(t)
	<-fetcher.started
	fetcher.resolve(0, &model.VideoMetadata{Title: "Original"}, nil)
	rec.waitForChange(t)

	snap := coord.Snapshot()
	snap.Metadata.Title = "Mutated"

	if coord.Snapshot().Metadata.Title != "Original" {
		t.Error("Mutating a snapshot must not affect coordinator state")
	}
}
