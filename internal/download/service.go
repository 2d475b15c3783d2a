package download

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/thatboisuss/ytmp3/internal/history"
	"github.com/thatboisuss/ytmp3/internal/model"
)

// Progress simulation constants
const (
	DefaultTickInterval = 500 * time.Millisecond
	ProgressStep        = 10
	ProgressComplete    = 100
)

var (
	// ErrBusy means a simulation is already running
	ErrBusy = errors.New("download already in progress")
	// ErrNoMetadata means submission was attempted without loaded metadata
	ErrNoMetadata = errors.New("no metadata loaded")
)

// Progress reports the simulator state to the UI
type Progress struct {
	Status  model.DownloadStatus
	Percent int // 0 to 100
}

// Service runs download simulations and records completions in history
type Service struct {
	store    *history.Store
	interval time.Duration

	mutex    sync.Mutex
	status   model.DownloadStatus
	percent  int
	quit     chan struct{}
	quitOnce sync.Once
	onUpdate func(Progress) // callback for UI updates
}

// NewService creates a new download service backed by the given history store
func NewService(store *history.Store) *Service {
	return &Service{
		store:    store,
		interval: DefaultTickInterval,
		status:   model.DownloadStatusIdle,
		quit:     make(chan struct{}),
	}
}

// SetUpdateCallback sets the callback function for progress updates
func (s *Service) SetUpdateCallback(callback func(Progress)) {
	s.mutex.Lock()
	s.onUpdate = callback
	s.mutex.Unlock()
}

// SetTickInterval overrides the progress tick interval. It only takes
// effect while no simulation is running.
func (s *Service) SetTickInterval(interval time.Duration) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if interval > 0 && !s.status.IsActive() {
		s.interval = interval
	}
}

// Status returns the current simulator status
func (s *Service) Status() model.DownloadStatus {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.status
}

// Start begins a simulated download. Submission is disallowed while a
// simulation is running or when no metadata is present; the metadata is
// snapshotted here so later preview edits do not alter the history record.
func (s *Service) Start(url string, format model.Format, quality string, metadata *model.VideoMetadata) error {
	if !format.IsValid() {
		return fmt.Errorf("unknown format: %s", format)
	}

	s.mutex.Lock()
	if s.status.IsActive() {
		s.mutex.Unlock()
		return ErrBusy
	}
	if metadata == nil {
		s.mutex.Unlock()
		return ErrNoMetadata
	}

	s.status = model.DownloadStatusRunning
	s.percent = 0
	interval := s.interval
	s.mutex.Unlock()

	s.notifyUpdate(Progress{Status: model.DownloadStatusRunning, Percent: 0})

	go s.run(interval, url, format, quality, metadata.Clone())

	return nil
}

// Close releases the progress timer on component teardown
func (s *Service) Close() {
	s.quitOnce.Do(func() {
		close(s.quit)
	})
}

// run advances progress until completion. There is no user-triggered
// cancellation path; the ticker is released on completion or teardown.
func (s *Service) run(interval time.Duration, url string, format model.Format, quality string, metadata *model.VideoMetadata) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.quit:
			return
		case <-ticker.C:
			s.mutex.Lock()
			s.percent += ProgressStep
			percent := s.percent
			s.mutex.Unlock()

			s.notifyUpdate(Progress{Status: model.DownloadStatusRunning, Percent: percent})

			if percent >= ProgressComplete {
				s.complete(url, format, quality, metadata)
				return
			}
		}
	}
}

// complete appends exactly one history entry and folds back to idle
func (s *Service) complete(url string, format model.Format, quality string, metadata *model.VideoMetadata) {
	entry := model.NewHistoryEntry(url, format, quality, metadata)
	s.store.Prepend(entry)
	log.Printf("Simulated download completed: %s (%s)", url, entry.GetFormatLabel())

	s.mutex.Lock()
	s.percent = 0
	s.status = model.DownloadStatusIdle
	s.mutex.Unlock()

	s.notifyUpdate(Progress{Status: model.DownloadStatusIdle, Percent: 0})
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(progress Progress) {
	s.mutex.Lock()
	callback := s.onUpdate
	s.mutex.Unlock()

	if callback != nil {
		callback(progress)
	}
}
