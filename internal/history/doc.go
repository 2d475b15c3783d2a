package history

// Package history keeps the in-memory list of completed downloads for the
// lifetime of the session. Newest entries come first; the list is unbounded
// and cleared only by an explicit user action.
