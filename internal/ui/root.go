package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/thatboisuss/ytmp3/internal/config"
	"github.com/thatboisuss/ytmp3/internal/download"
	"github.com/thatboisuss/ytmp3/internal/history"
	"github.com/thatboisuss/ytmp3/internal/model"
	"github.com/thatboisuss/ytmp3/internal/platform"
	"github.com/thatboisuss/ytmp3/internal/preview"
)

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window
	app    fyne.App

	urlEntry      *widget.Entry
	formatRadio   *widget.RadioGroup
	qualitySelect *widget.Select
	downloadBtn   *widget.Button
	themeBtn      *widget.Button
	progressBar   *widget.ProgressBar
	progressLabel *widget.Label

	// Metadata preview
	previewTitle  *widget.Label
	previewAuthor *widget.Label
	thumbnailLink *widget.Hyperlink

	// History panel
	historyList *widget.List
	clearBtn    *widget.Button
	entries     []*model.HistoryEntry

	coordinator  *preview.Coordinator
	downloadSvc  download.Simulator
	store        *history.Store
	settings     *config.Settings
	localization *Localization

	darkTheme       bool
	downloadRunning bool
	lastSnapshot    preview.Snapshot
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, coordinator *preview.Coordinator, downloadSvc download.Simulator, store *history.Store) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		coordinator:  coordinator,
		downloadSvc:  downloadSvc,
		store:        store,
		settings:     settings,
		localization: localization,
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Wire service callbacks
	ui.coordinator.SetChangeCallback(ui.onPreviewChange)
	ui.downloadSvc.SetUpdateCallback(ui.onProgressUpdate)
	ui.store.SetUpdateCallback(ui.onHistoryChange)

	ui.setupUI()
	return ui
}

// SetDarkTheme switches the initial theme variant before the window shows
func (ui *RootUI) SetDarkTheme(dark bool) {
	ui.darkTheme = dark
	ui.applyTheme()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create URL entry; every keystroke re-evaluates the identifier
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.OnChanged = ui.onURLChanged
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	// Format toggle and quality selector
	ui.formatRadio = widget.NewRadioGroup([]string{
		string(model.FormatMP3),
		string(model.FormatMP4),
	}, ui.onFormatChanged)
	ui.formatRadio.Horizontal = true

	ui.qualitySelect = widget.NewSelect(ui.settings.GetQualityOptions(), nil)
	ui.qualitySelect.SetSelected(ui.settings.GetDefaultQuality())

	// Select default format after both controls exist; the callback adjusts
	// quality selector visibility.
	ui.formatRadio.SetSelected(string(ui.settings.GetDefaultFormat()))

	// Create download button, disabled until metadata is loaded
	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.downloadBtn.Disable()

	// Theme toggle, process-local only
	ui.themeBtn = widget.NewButton(IconDark, ui.onToggleTheme)
	ui.themeBtn.Importance = widget.LowImportance

	// Settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Metadata preview
	ui.previewTitle = widget.NewLabel(ui.localization.GetText(KeyNoMetadata))
	ui.previewTitle.TextStyle = fyne.TextStyle{Bold: true}
	ui.previewTitle.Truncation = fyne.TextTruncateEllipsis
	ui.previewAuthor = widget.NewLabel("")
	ui.thumbnailLink = widget.NewHyperlink(ui.localization.GetText(KeyThumbnail), nil)
	ui.thumbnailLink.Hide()

	// Progress indicators
	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Max = float64(download.ProgressComplete)
	ui.progressLabel = widget.NewLabel("")

	// History panel
	ui.historyList = widget.NewList(
		func() int { return len(ui.entries) },
		func() fyne.CanvasObject { return ui.createHistoryItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateHistoryItem(id, obj) },
	)
	ui.clearBtn = widget.NewButton(ui.localization.GetText(KeyClearHistory), ui.onClearHistory)

	// Top panel: URL row with controls
	topPanel := container.NewBorder(nil, nil, container.NewHBox(settingsBtn, ui.themeBtn), ui.downloadBtn, ui.urlEntry)
	optionsRow := container.NewHBox(
		widget.NewLabel(ui.localization.GetText(KeyFormat)+":"),
		ui.formatRadio,
		widget.NewLabel(ui.localization.GetText(KeyQuality)+":"),
		ui.qualitySelect,
	)
	previewBox := container.NewVBox(
		ui.previewTitle,
		container.NewHBox(ui.previewAuthor, ui.thumbnailLink),
	)
	progressRow := container.NewBorder(nil, nil, nil, ui.progressLabel, ui.progressBar)

	topCombined := container.NewVBox(topPanel, optionsRow, previewBox, progressRow, widget.NewSeparator())

	historyHeader := container.NewBorder(nil, nil,
		widget.NewLabel(ui.localization.GetText(KeyHistory)), ui.clearBtn)

	content := container.NewBorder(
		container.NewVBox(topCombined, historyHeader), // top
		nil,            // bottom
		nil,            // left
		nil,            // right
		ui.historyList, // center
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.clearBtn.SetText(ui.localization.GetText(KeyClearHistory))
	ui.historyList.Refresh()
}

// onURLChanged handles every edit of the URL field
func (ui *RootUI) onURLChanged(text string) {
	ui.coordinator.SetURL(text)
}

// onPreviewChange handles coordinator state changes
func (ui *RootUI) onPreviewChange(snapshot preview.Snapshot) {
	fyne.Do(func() {
		ui.lastSnapshot = snapshot

		switch snapshot.Status {
		case model.FetchStatusLoading:
			ui.previewTitle.SetText(ui.localization.GetText(KeyLoading))
			ui.previewAuthor.SetText("")
			ui.thumbnailLink.Hide()
		case model.FetchStatusReady:
			ui.previewTitle.SetText(snapshot.Metadata.Title)
			ui.previewAuthor.SetText(snapshot.Metadata.Author)
			if err := ui.thumbnailLink.SetURLFromString(snapshot.Metadata.ThumbnailURL); err == nil {
				ui.thumbnailLink.Show()
			}
		default:
			ui.previewTitle.SetText(ui.localization.GetText(KeyNoMetadata))
			ui.previewAuthor.SetText("")
			ui.thumbnailLink.Hide()
		}

		ui.updateDownloadButton()
	})
}

// onFormatChanged handles the mp3/mp4 toggle; the quality selector is only
// shown for mp4
func (ui *RootUI) onFormatChanged(selected string) {
	if selected == string(model.FormatMP4) {
		ui.qualitySelect.Show()
	} else {
		ui.qualitySelect.Hide()
	}
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	snapshot := ui.coordinator.Snapshot()
	if !snapshot.HasMetadata() {
		// The button is disabled in this state; guard against Enter submits.
		return
	}

	format := model.Format(ui.formatRadio.Selected)
	quality := ""
	if format == model.FormatMP4 {
		quality = ui.qualitySelect.Selected
	}

	log.Printf("Starting simulated download: url=%s format=%s quality=%s", snapshot.URL, format, quality)

	if err := ui.downloadSvc.Start(snapshot.URL, format, quality, snapshot.Metadata); err != nil {
		log.Printf("Could not start download: %v", err)
		return
	}
}

// onProgressUpdate handles simulator progress updates
func (ui *RootUI) onProgressUpdate(progress download.Progress) {
	fyne.Do(func() {
		ui.downloadRunning = progress.Status.IsActive()
		ui.progressBar.SetValue(float64(progress.Percent))
		if ui.downloadRunning {
			ui.progressLabel.SetText(fmt.Sprintf(ProgressLabelFormat, progress.Percent))
		} else {
			ui.progressLabel.SetText("")
		}
		ui.updateDownloadButton()
	})
}

// updateDownloadButton enables submission only when metadata is present and
// no simulation is running
func (ui *RootUI) updateDownloadButton() {
	if ui.lastSnapshot.HasMetadata() && !ui.downloadRunning {
		ui.downloadBtn.Enable()
	} else {
		ui.downloadBtn.Disable()
	}
}

// onHistoryChange handles history store mutations
func (ui *RootUI) onHistoryChange() {
	fyne.Do(func() {
		ui.entries = ui.store.Entries()
		ui.historyList.Refresh()
	})
}

// createHistoryItem creates a new history item widget
func (ui *RootUI) createHistoryItem() fyne.CanvasObject {
	placeholder := &model.HistoryEntry{Format: model.FormatMP3}
	row := NewHistoryRow(placeholder, ui.localization)
	row.SetCallbacks(ui.onOpenEntry)
	return row
}

// updateHistoryItem updates a history item with current data
func (ui *RootUI) updateHistoryItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.entries) {
		return
	}

	entry := ui.entries[id]
	if entry == nil {
		return
	}

	if row, ok := item.(*HistoryRow); ok {
		row.SetCallbacks(ui.onOpenEntry)
		row.UpdateEntry(entry)
	}
}

// onOpenEntry opens a recorded watch page in the system browser
func (ui *RootUI) onOpenEntry(url string) {
	if url == "" {
		return
	}
	if err := platform.OpenInBrowser(url); err != nil {
		log.Printf("Error opening %s in browser: %v", url, err)
	}
}

// onClearHistory empties the history store
func (ui *RootUI) onClearHistory() {
	ui.store.Clear()
}

// onToggleTheme switches between the light and dark variants. The choice is
// process-local and not persisted.
func (ui *RootUI) onToggleTheme() {
	ui.darkTheme = !ui.darkTheme
	ui.applyTheme()
}

// applyTheme applies the current variant and updates the toggle icon
func (ui *RootUI) applyTheme() {
	variant := theme.VariantLight
	icon := IconDark
	if ui.darkTheme {
		variant = theme.VariantDark
		icon = IconLight
	}
	ui.app.Settings().SetTheme(NewAppTheme(variant))
	ui.themeBtn.SetText(icon)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window).Show()
}
