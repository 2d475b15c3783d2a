package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/thatboisuss/ytmp3/internal/model"
	"github.com/thatboisuss/ytmp3/internal/platform"
)

// Lookup constants
const (
	DefaultEndpoint     = "https://www.youtube.com/oembed"
	DefaultFetchTimeout = 10 * time.Second

	responseFormat = "json"
)

// oembedResponse is the subset of the oEmbed payload the app consumes
type oembedResponse struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

// Service performs metadata lookups over HTTP
type Service struct {
	endpoint string
	client   *http.Client
}

// NewService creates a new metadata service. An empty endpoint selects the
// default public oEmbed endpoint.
func NewService(endpoint string) *Service {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Service{
		endpoint: endpoint,
		client:   &http.Client{Timeout: DefaultFetchTimeout},
	}
}

// SetTimeout sets the timeout for lookup requests
func (s *Service) SetTimeout(timeout time.Duration) {
	s.client.Timeout = timeout
}

// Fetch performs a single lookup for the given video identifier. The lookup
// is keyed by the canonical watch URL; the description falls back to the
// title since the source provides none, and the thumbnail URL is derived
// from the identifier alone.
func (s *Service) Fetch(ctx context.Context, videoID string) (*model.VideoMetadata, error) {
	u, err := url.Parse(s.endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("url", platform.WatchURL(videoID))
	q.Set("format", responseFormat)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lookup request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("lookup returned status %d", resp.StatusCode)
	}

	var payload oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &model.VideoMetadata{
		Title:        payload.Title,
		Description:  payload.Title,
		Author:       payload.AuthorName,
		ThumbnailURL: platform.ThumbnailURL(videoID),
	}, nil
}
