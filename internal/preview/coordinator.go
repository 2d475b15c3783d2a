package preview

import (
	"context"
	"log"
	"sync"

	"github.com/thatboisuss/ytmp3/internal/metadata"
	"github.com/thatboisuss/ytmp3/internal/model"
	"github.com/thatboisuss/ytmp3/internal/platform"
)

// Snapshot is a read-only view of the coordinator state handed to the UI
type Snapshot struct {
	URL      string
	VideoID  string
	Status   model.FetchStatus
	Metadata *model.VideoMetadata
}

// HasMetadata returns true when a download submission is allowed
func (s Snapshot) HasMetadata() bool {
	return s.Metadata != nil
}

// Coordinator owns the preview state: the entered URL, the extracted
// identifier, the fetch status and the current metadata. All mutation goes
// through SetURL and the fetch completion path; presentation code only ever
// sees snapshots.
type Coordinator struct {
	fetcher metadata.Fetcher

	mutex    sync.Mutex
	url      string
	videoID  string
	status   model.FetchStatus
	meta     *model.VideoMetadata
	token    uint64 // increases with every launched or superseded fetch
	onChange func(Snapshot) // callback for UI updates
}

// NewCoordinator creates a coordinator backed by the given fetcher
func NewCoordinator(fetcher metadata.Fetcher) *Coordinator {
	return &Coordinator{
		fetcher: fetcher,
		status:  model.FetchStatusIdle,
	}
}

// SetChangeCallback sets the callback invoked after every state change
func (c *Coordinator) SetChangeCallback(callback func(Snapshot)) {
	c.mutex.Lock()
	c.onChange = callback
	c.mutex.Unlock()
}

// SetURL reacts to an edit of the URL field. A non-matching input clears
// metadata and returns to idle immediately, superseding any in-flight
// fetch. A matching input launches a new fetch; a stale fetch completing
// after a newer one was launched is discarded.
func (c *Coordinator) SetURL(text string) {
	c.mutex.Lock()
	c.url = text

	videoID, ok := platform.ExtractVideoID(text)
	if !ok {
		c.token++ // any outstanding result is now stale
		c.videoID = ""
		c.meta = nil
		c.status = model.FetchStatusIdle
		snapshot := c.snapshotLocked()
		callback := c.onChange
		c.mutex.Unlock()

		notify(callback, snapshot)
		return
	}

	c.videoID = videoID
	c.status = model.FetchStatusLoading
	c.token++
	requestToken := c.token
	snapshot := c.snapshotLocked()
	callback := c.onChange
	c.mutex.Unlock()

	notify(callback, snapshot)

	go c.fetch(videoID, requestToken)
}

// fetch runs the lookup and applies the result if it is still current
func (c *Coordinator) fetch(videoID string, requestToken uint64) {
	meta, err := c.fetcher.Fetch(context.Background(), videoID)

	c.mutex.Lock()
	if requestToken != c.token {
		c.mutex.Unlock()
		log.Printf("Discarding stale metadata result for %s", videoID)
		return
	}

	if err != nil {
		// Fetch failures behave exactly like extraction failures: metadata
		// cleared, nothing surfaced in the UI.
		c.meta = nil
		c.status = model.FetchStatusIdle
		log.Printf("Metadata lookup failed for %s: %v", videoID, err)
	} else {
		c.meta = meta
		c.status = model.FetchStatusReady
	}
	snapshot := c.snapshotLocked()
	callback := c.onChange
	c.mutex.Unlock()

	notify(callback, snapshot)
}

// Snapshot returns the current coordinator state
func (c *Coordinator) Snapshot() Snapshot {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.snapshotLocked()
}

// snapshotLocked builds a snapshot; the caller must hold the mutex
func (c *Coordinator) snapshotLocked() Snapshot {
	return Snapshot{
		URL:      c.url,
		VideoID:  c.videoID,
		Status:   c.status,
		Metadata: c.meta.Clone(),
	}
}

// notify calls the change callback if set
func notify(callback func(Snapshot), snapshot Snapshot) {
	if callback != nil {
		callback(snapshot)
	}
}
