package download

import (
	"github.com/thatboisuss/ytmp3/internal/model"
)

// Simulator defines the interface for the download service.
type Simulator interface {
	SetUpdateCallback(func(Progress))
	Start(url string, format model.Format, quality string, metadata *model.VideoMetadata) error
	Status() model.DownloadStatus
	Close()
}
