package preview

// Package preview coordinates the URL input field with the metadata lookup.
// Every edit re-runs identifier extraction; matching input launches a fetch
// and only the most recently launched fetch may update the shown metadata.
