package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Format represents the output format chosen for a download
type Format string

const (
	// FormatMP3 means audio-only output
	FormatMP3 Format = "mp3"

	// FormatMP4 means video output with a selectable quality
	FormatMP4 Format = "mp4"
)

// String returns the string representation of Format
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is one of the known values
func (f Format) IsValid() bool {
	return f == FormatMP3 || f == FormatMP4
}

// Qualities available for mp4 downloads, in display order
var Qualities = []string{"1080p", "720p", "480p", "360p"}

// IsValidQuality returns true if q is one of the known mp4 qualities
func IsValidQuality(q string) bool {
	for _, known := range Qualities {
		if q == known {
			return true
		}
	}
	return false
}

// HistoryEntry records a single completed download. Entries are immutable
// after creation and removed only by a full history clear.
//
// Quality is set if and only if Format is mp4.
type HistoryEntry struct {
	ID        string
	URL       string
	Format    Format
	Quality   string
	Timestamp time.Time
	Metadata  *VideoMetadata // snapshot taken at submission time
}

// NewHistoryEntry creates a history entry for a completed download.
// The quality argument is ignored for mp3 so the entry always holds the
// format/quality invariant. Metadata is cloned, not referenced.
func NewHistoryEntry(url string, format Format, quality string, metadata *VideoMetadata) *HistoryEntry {
	if format != FormatMP4 {
		quality = ""
	}
	return &HistoryEntry{
		ID:        generateEntryID(),
		URL:       url,
		Format:    format,
		Quality:   quality,
		Timestamp: time.Now(),
		Metadata:  metadata.Clone(),
	}
}

// GetDisplayTitle returns the metadata title when available, the URL otherwise
func (he *HistoryEntry) GetDisplayTitle() string {
	if he.Metadata != nil && he.Metadata.Title != "" {
		return he.Metadata.Title
	}
	return he.URL
}

// GetFormatLabel returns "mp4 · 1080p" style text for list rows
func (he *HistoryEntry) GetFormatLabel() string {
	if he.Quality != "" {
		return fmt.Sprintf("%s · %s", he.Format, he.Quality)
	}
	return he.Format.String()
}

// generateEntryID generates a unique history entry ID
func generateEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("entry-%d", time.Now().UnixNano())
	}
	return id.String()
}
