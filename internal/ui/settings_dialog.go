package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/thatboisuss/ytmp3/internal/config"
	"github.com/thatboisuss/ytmp3/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// UI components
	formatSelect   *widget.Select
	qualitySelect  *widget.Select
	endpointEntry  *widget.Entry
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Default format selection
	sd.formatSelect = widget.NewSelect([]string{
		string(model.FormatMP3),
		string(model.FormatMP4),
	}, nil)

	// Default quality selection
	sd.qualitySelect = widget.NewSelect(sd.settings.GetQualityOptions(), nil)

	// Metadata endpoint override
	sd.endpointEntry = widget.NewEntry()
	sd.endpointEntry.SetPlaceHolder("https://www.youtube.com/oembed")

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	// Create form
	form := container.NewVBox(
		widget.NewLabel("Download Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Default Format:"),
		sd.formatSelect,

		widget.NewLabel("Default Quality (mp4):"),
		sd.qualitySelect,

		widget.NewLabel("Metadata Endpoint (leave empty for default):"),
		sd.endpointEntry,

		widget.NewSeparator(),
		widget.NewLabel("Interface Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Language:"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(460, 360))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.formatSelect.SetSelected(string(sd.settings.GetDefaultFormat()))
	sd.qualitySelect.SetSelected(sd.settings.GetDefaultQuality())
	sd.endpointEntry.SetText(sd.settings.GetMetadataEndpoint())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.formatSelect.Selected != "" {
		sd.settings.SetDefaultFormat(model.Format(sd.formatSelect.Selected))
	}

	if sd.qualitySelect.Selected != "" {
		sd.settings.SetDefaultQuality(sd.qualitySelect.Selected)
	}

	sd.settings.SetMetadataEndpoint(sd.endpointEntry.Text)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	dialog.ShowInformation("Settings", "Settings saved successfully!", sd.window)
}
