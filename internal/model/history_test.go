package model

import (
	"testing"
)

func TestNewHistoryEntry_QualityInvariant(t *testing.T) {
	tests := []struct {
		format   Format
		quality  string
		expected string
	}{
		{FormatMP4, "1080p", "1080p"},
		{FormatMP4, "360p", "360p"},
		{FormatMP3, "1080p", ""},
		{FormatMP3, "", ""},
	}

	for _, test := range tests {
		entry := NewHistoryEntry("https://youtu.be/dQw4w9WgXcQ", test.format, test.quality, nil)
		if entry.Quality != test.expected {
			t.Errorf("NewHistoryEntry(%s, %q) quality = %q, expected %q",
				test.format, test.quality, entry.Quality, test.expected)
		}
	}
}

func TestNewHistoryEntry_SnapshotsMetadata(t *testing.T) {
	meta := &VideoMetadata{Title: "Original", Author: "Author"}
	entry := NewHistoryEntry("https://youtu.be/dQw4w9WgXcQ", FormatMP3, "", meta)

	// Mutating the live metadata must not change the recorded snapshot
	meta.Title = "Edited"

	if entry.Metadata == nil {
		t.Fatal("Expected entry metadata to be set")
	}
	if entry.Metadata.Title != "Original" {
		t.Errorf("Entry metadata title = %q, expected snapshot %q", entry.Metadata.Title, "Original")
	}
}

func TestNewHistoryEntry_NilMetadata(t *testing.T) {
	entry := NewHistoryEntry("https://youtu.be/dQw4w9WgXcQ", FormatMP3, "", nil)
	if entry.Metadata != nil {
		t.Errorf("Expected nil metadata, got %+v", entry.Metadata)
	}
	if entry.ID == "" {
		t.Error("Expected entry ID to be generated")
	}
	if entry.Timestamp.IsZero() {
		t.Error("Expected entry timestamp to be set")
	}
}

func TestHistoryEntry_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		metadata *VideoMetadata
		url      string
		expected string
	}{
		{&VideoMetadata{Title: "Video Title"}, "https://youtu.be/abc", "Video Title"},
		{&VideoMetadata{}, "https://youtu.be/abc", "https://youtu.be/abc"},
		{nil, "https://youtu.be/abc", "https://youtu.be/abc"},
	}

	for _, test := range tests {
		entry := &HistoryEntry{URL: test.url, Metadata: test.metadata}
		result := entry.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with metadata=%+v = %q, expected %q",
				test.metadata, result, test.expected)
		}
	}
}

func TestHistoryEntry_GetFormatLabel(t *testing.T) {
	tests := []struct {
		format   Format
		quality  string
		expected string
	}{
		{FormatMP4, "720p", "mp4 · 720p"},
		{FormatMP3, "", "mp3"},
	}

	for _, test := range tests {
		entry := &HistoryEntry{Format: test.format, Quality: test.quality}
		result := entry.GetFormatLabel()
		if result != test.expected {
			t.Errorf("GetFormatLabel() with format=%s quality=%q = %q, expected %q",
				test.format, test.quality, result, test.expected)
		}
	}
}

func TestIsValidQuality(t *testing.T) {
	tests := []struct {
		quality  string
		expected bool
	}{
		{"1080p", true},
		{"720p", true},
		{"480p", true},
		{"360p", true},
		{"240p", false},
		{"", false},
	}

	for _, test := range tests {
		result := IsValidQuality(test.quality)
		if result != test.expected {
			t.Errorf("IsValidQuality(%q) = %v, expected %v", test.quality, result, test.expected)
		}
	}
}
