package platform

// Package platform contains outside-world glue: YouTube URL recognition,
// canonical watch/thumbnail URL templates, and OS open helpers.
