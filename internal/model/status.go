package model

// FetchStatus represents the status of the metadata preview
type FetchStatus string

const (
	// FetchStatusIdle means no identifier is entered and no metadata is shown
	FetchStatusIdle FetchStatus = "Idle"

	// FetchStatusLoading means a metadata lookup is in flight
	FetchStatusLoading FetchStatus = "Loading"

	// FetchStatusReady means metadata is present and a download can start
	FetchStatusReady FetchStatus = "Ready"
)

// String returns the string representation of FetchStatus
func (fs FetchStatus) String() string {
	return string(fs)
}

// IsLoading returns true while a lookup is outstanding
func (fs FetchStatus) IsLoading() bool {
	return fs == FetchStatusLoading
}

// DownloadStatus represents the status of the download simulator
type DownloadStatus string

const (
	// DownloadStatusIdle means no download is running
	DownloadStatusIdle DownloadStatus = "Idle"

	// DownloadStatusRunning means the progress ticker is active
	DownloadStatusRunning DownloadStatus = "Running"
)

// String returns the string representation of DownloadStatus
func (ds DownloadStatus) String() string {
	return string(ds)
}

// IsActive returns true while a download is in progress
func (ds DownloadStatus) IsActive() bool {
	return ds == DownloadStatusRunning
}
