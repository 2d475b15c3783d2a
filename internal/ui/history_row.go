package ui

import (
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/dustin/go-humanize"

	"github.com/thatboisuss/ytmp3/internal/model"
)

// HistoryRow represents a compact history entry row widget
type HistoryRow struct {
	widget.BaseWidget

	entry        *model.HistoryEntry
	localization *Localization

	// UI components
	titleLabel  *widget.Label
	detailLabel *widget.Label

	// Action buttons
	openBtn *widget.Button

	// Callbacks
	onOpen func(url string)
}

// NewHistoryRow creates a new history row widget
func NewHistoryRow(entry *model.HistoryEntry, localization *Localization) *HistoryRow {
	if entry == nil {
		log.Printf("Warning: NewHistoryRow called with nil entry")
		entry = &model.HistoryEntry{Format: model.FormatMP3}
	}

	hr := &HistoryRow{
		entry:        entry,
		localization: localization,
	}
	hr.ExtendBaseWidget(hr)
	hr.createUI()
	hr.updateFromEntry()
	return hr
}

// SetCallbacks sets the action callbacks
func (hr *HistoryRow) SetCallbacks(onOpen func(url string)) {
	hr.onOpen = onOpen
}

// UpdateEntry updates the row with new entry data
func (hr *HistoryRow) UpdateEntry(entry *model.HistoryEntry) {
	if entry == nil {
		return
	}

	hr.entry = entry
	hr.updateFromEntry()
	hr.Refresh()
}

// createUI creates the UI components
func (hr *HistoryRow) createUI() {
	hr.titleLabel = widget.NewLabel("")
	hr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	hr.titleLabel.Truncation = fyne.TextTruncateEllipsis
	hr.titleLabel.Alignment = fyne.TextAlignLeading

	hr.detailLabel = widget.NewLabel("")
	hr.detailLabel.Alignment = fyne.TextAlignTrailing

	hr.openBtn = widget.NewButton(IconOpen, func() {
		currentEntry := hr.entry
		if hr.onOpen == nil {
			log.Printf("onOpen callback is nil for entry %s", currentEntry.ID)
			return
		}
		hr.onOpen(currentEntry.URL)
	})
	hr.openBtn.Importance = widget.MediumImportance
}

// updateFromEntry updates UI components based on entry data
func (hr *HistoryRow) updateFromEntry() {
	if hr.entry == nil {
		return
	}

	title := strings.TrimSpace(hr.entry.GetDisplayTitle())
	hr.titleLabel.SetText(title)

	detail := hr.entry.GetFormatLabel()
	if hr.entry.Metadata != nil && hr.entry.Metadata.Author != "" {
		detail += MiddleDotSeparator + hr.entry.Metadata.Author
	}
	if !hr.entry.Timestamp.IsZero() {
		detail += MiddleDotSeparator + humanize.Time(hr.entry.Timestamp)
	}
	hr.detailLabel.SetText(detail)
}

// CreateRenderer creates the widget renderer
func (hr *HistoryRow) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(
		nil, widget.NewSeparator(), nil,
		container.NewHBox(hr.detailLabel, hr.openBtn),
		hr.titleLabel,
	)
	return widget.NewSimpleRenderer(content)
}
