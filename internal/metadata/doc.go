package metadata

// Package metadata fetches video metadata from the public oEmbed endpoint
// keyed by the canonical watch URL. Lookup failures are returned as errors;
// callers treat any failure as "no metadata" and keep the UI interactive.
