package platform

import (
	"fmt"
	"regexp"
)

// Recognized URL shapes carrying a video identifier
const (
	VideoIDLength = 11

	WatchURLTemplate     = "https://www.youtube.com/watch?v=%s"
	ThumbnailURLTemplate = "https://img.youtube.com/vi/%s/0.jpg"
)

// videoIDPattern captures the segment following any of the recognized URL
// shapes: youtu.be/, v/, u/<digit>/, embed/, watch?v= or &v=. The capture
// runs until a #, & or ? so extra query parameters are ignored.
var videoIDPattern = regexp.MustCompile(`(?:youtu\.be/|v/|u/[0-9]/|embed/|watch\?v=|&v=)([^#&?]*)`)

// ExtractVideoID returns the 11-character video identifier embedded in raw,
// or false when the string matches no recognized URL shape. A match whose
// captured segment is not exactly 11 characters is rejected.
func ExtractVideoID(raw string) (string, bool) {
	m := videoIDPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	if len(m[1]) != VideoIDLength {
		return "", false
	}
	return m[1], true
}

// WatchURL returns the canonical watch page URL for a video identifier
func WatchURL(videoID string) string {
	return fmt.Sprintf(WatchURLTemplate, videoID)
}

// ThumbnailURL returns the thumbnail image URL for a video identifier.
// The URL is derived from the identifier alone; no check is made that the
// image actually exists.
func ThumbnailURL(videoID string) string {
	return fmt.Sprintf(ThumbnailURLTemplate, videoID)
}
