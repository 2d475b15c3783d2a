package metadata

import (
	"context"

	"github.com/thatboisuss/ytmp3/internal/model"
)

// Fetcher defines the interface for the metadata lookup service.
type Fetcher interface {
	Fetch(ctx context.Context, videoID string) (*model.VideoMetadata, error)
}
