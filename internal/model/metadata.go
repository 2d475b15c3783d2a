package model

// VideoMetadata describes a video as returned by the metadata lookup.
// It is ephemeral: replaced wholesale on each successful fetch and cleared
// whenever the entered URL stops matching a recognized shape.
type VideoMetadata struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Author       string `json:"author"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// Clone returns an independent copy of the metadata, or nil for nil input.
// History entries keep clones so later edits to the live preview state
// cannot mutate what was recorded at submission time.
func (vm *VideoMetadata) Clone() *VideoMetadata {
	if vm == nil {
		return nil
	}
	c := *vm
	return &c
}
