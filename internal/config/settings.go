package config

import (
	"fyne.io/fyne/v2"

	"github.com/thatboisuss/ytmp3/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyDefaultFormat    = "default_format"
	KeyDefaultQuality   = "default_quality"
	KeyLanguage         = "app_language"
	KeyMetadataEndpoint = "metadata_endpoint"
)

// Default values
const (
	DefaultFormat   = model.FormatMP3
	DefaultQuality  = "1080p"
	DefaultLanguage = "system"
)

// Settings manages application configuration.
// The theme variant is deliberately not stored here: the theme toggle is
// process-local and resets on every launch.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDefaultFormat returns the format preselected on startup
func (s *Settings) GetDefaultFormat() model.Format {
	format := model.Format(s.app.Preferences().String(KeyDefaultFormat))
	if !format.IsValid() {
		s.SetDefaultFormat(DefaultFormat)
		return DefaultFormat
	}
	return format
}

// SetDefaultFormat sets the format preselected on startup
func (s *Settings) SetDefaultFormat(format model.Format) {
	if !format.IsValid() {
		format = DefaultFormat
	}
	s.app.Preferences().SetString(KeyDefaultFormat, string(format))
}

// GetDefaultQuality returns the mp4 quality preselected on startup
func (s *Settings) GetDefaultQuality() string {
	quality := s.app.Preferences().String(KeyDefaultQuality)
	if !model.IsValidQuality(quality) {
		s.SetDefaultQuality(DefaultQuality)
		return DefaultQuality
	}
	return quality
}

// SetDefaultQuality sets the mp4 quality preselected on startup
func (s *Settings) SetDefaultQuality(quality string) {
	if !model.IsValidQuality(quality) {
		quality = DefaultQuality
	}
	s.app.Preferences().SetString(KeyDefaultQuality, quality)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetMetadataEndpoint returns the metadata lookup endpoint override.
// Empty means the built-in public endpoint.
func (s *Settings) GetMetadataEndpoint() string {
	return s.app.Preferences().String(KeyMetadataEndpoint)
}

// SetMetadataEndpoint sets the metadata lookup endpoint override
func (s *Settings) SetMetadataEndpoint(endpoint string) {
	s.app.Preferences().SetString(KeyMetadataEndpoint, endpoint)
}

// GetQualityOptions returns available mp4 quality options
func (s *Settings) GetQualityOptions() []string {
	return model.Qualities
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
