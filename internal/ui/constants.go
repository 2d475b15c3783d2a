package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconClose    = "×"
	IconDark     = "🌙"
	IconLight    = "☀"
	IconOpen     = "🔗"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	ProgressLabelFormat = "%d%%"
)

// Layout sizing (HistoryRow / lists)
const (
	RowMinWidth  float32 = 360
	RowMinHeight float32 = 56

	DetailLabelWidth float32 = 220
)
