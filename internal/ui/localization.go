package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle      = "app_title"
	KeyDownload      = "download"
	KeyEnterURL      = "enter_url"
	KeyFormat        = "format"
	KeyQuality       = "quality"
	KeyHistory       = "history"
	KeyClearHistory  = "clear_history"
	KeyLoading       = "loading"
	KeyOpenInBrowser = "open_in_browser"
	KeySettings      = "settings"
	KeyFile          = "file"
	KeyLanguage      = "language"
	KeySave          = "save"
	KeyCancel        = "cancel"
	KeySettingsSaved = "settings_saved"
	KeyThumbnail     = "thumbnail"
	KeyNoMetadata    = "no_metadata"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:      "YT MP3",
		KeyDownload:      "Download",
		KeyEnterURL:      "Enter YouTube URL (https://youtube.com/watch?v=...)",
		KeyFormat:        "Format",
		KeyQuality:       "Quality",
		KeyHistory:       "History",
		KeyClearHistory:  "Clear history",
		KeyLoading:       "Loading metadata...",
		KeyOpenInBrowser: "Open in browser",
		KeySettings:      "Settings",
		KeyFile:          "File",
		KeyLanguage:      "Language",
		KeySave:          "Save",
		KeyCancel:        "Cancel",
		KeySettingsSaved: "Settings saved successfully!",
		KeyThumbnail:     "Thumbnail",
		KeyNoMetadata:    "Paste a video link to see its details",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:      "YT MP3",
		KeyDownload:      "Скачать",
		KeyEnterURL:      "Введите URL YouTube (https://youtube.com/watch?v=...)",
		KeyFormat:        "Формат",
		KeyQuality:       "Качество",
		KeyHistory:       "История",
		KeyClearHistory:  "Очистить историю",
		KeyLoading:       "Загрузка метаданных...",
		KeyOpenInBrowser: "Открыть в браузере",
		KeySettings:      "Настройки",
		KeyFile:          "Файл",
		KeyLanguage:      "Язык",
		KeySave:          "Сохранить",
		KeyCancel:        "Отмена",
		KeySettingsSaved: "Настройки успешно сохранены!",
		KeyThumbnail:     "Миниатюра",
		KeyNoMetadata:    "Вставьте ссылку на видео, чтобы увидеть детали",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:      "YT MP3",
		KeyDownload:      "Baixar",
		KeyEnterURL:      "Digite URL do YouTube (https://youtube.com/watch?v=...)",
		KeyFormat:        "Formato",
		KeyQuality:       "Qualidade",
		KeyHistory:       "Histórico",
		KeyClearHistory:  "Limpar histórico",
		KeyLoading:       "Carregando metadados...",
		KeyOpenInBrowser: "Abrir no navegador",
		KeySettings:      "Configurações",
		KeyFile:          "Arquivo",
		KeyLanguage:      "Idioma",
		KeySave:          "Salvar",
		KeyCancel:        "Cancelar",
		KeySettingsSaved: "Configurações salvas com sucesso!",
		KeyThumbnail:     "Miniatura",
		KeyNoMetadata:    "Cole um link de vídeo para ver os detalhes",
	}
}
