package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user input to the preview coordinator and download simulator and
// renders the metadata preview, progress, and download history. All UI strings
// are localized via Localization.
