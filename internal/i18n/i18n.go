// Package i18n provides internationalization support.
package i18n

import (
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"
)

// Language represents a UI language.
type Language string

const (
	RU Language = "ru"
	EN Language = "en"
)

var (
	mu      sync.RWMutex
	current = RU // Default language
)

// Translations for all supported languages.
var translations = map[Language]map[string]string{
	RU: {
		// App
		"app_name":    "Vitrina",
		"app_tooltip": "Vitrina - быстрый доступ к окну",

		// Tray menu
		"tray_show":      "Показать окно",
		"tray_show_hint": "Вернуть окно на экран",
		"tray_hide":      "Скрыть окно",
		"tray_hide_hint": "Убрать окно, оставив приложение в трее",
		"tray_quit":      "Выход",
		"tray_quit_hint": "Закрыть приложение",

		// Notifications
		"notify_ready":           "Vitrina готова к работе",
		"notify_background":      "Приложение продолжает работать",
		"notify_background_hint": "Значок в трее вернёт окно на экран",

		// Errors
		"error_title":           "Ошибка",
		"error_config":          "Не удалось прочитать настройки",
		"error_hotkey_register": "Не удалось зарегистрировать горячую клавишу",
	},

	EN: {
		// App
		"app_name":    "Vitrina",
		"app_tooltip": "Vitrina - quick window access",

		// Tray menu
		"tray_show":      "Show window",
		"tray_show_hint": "Bring the window back on screen",
		"tray_hide":      "Hide window",
		"tray_hide_hint": "Hide the window, keep the app in the tray",
		"tray_quit":      "Quit",
		"tray_quit_hint": "Close application",

		// Notifications
		"notify_ready":           "Vitrina is ready",
		"notify_background":      "Still running",
		"notify_background_hint": "Use the tray icon to bring the window back",

		// Errors
		"error_title":           "Error",
		"error_config":          "Could not read settings",
		"error_hotkey_register": "Could not register hotkey",
	},
}

// T returns the translation for the given key.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if strings, ok := translations[current]; ok {
		if s, ok := strings[key]; ok {
			return s
		}
	}
	// Fallback to key itself
	return key
}

// SetLanguage sets the current UI language.
func SetLanguage(lang Language) {
	mu.Lock()
	defer mu.Unlock()
	current = lang
}

// GetLanguage returns the current UI language.
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Parse maps a config value to a supported language.
func Parse(s string) (Language, bool) {
	switch Language(strings.ToLower(s)) {
	case RU:
		return RU, true
	case EN:
		return EN, true
	}
	return "", false
}

// Detect returns the language matching the system locale, falling back to
// English for anything the table does not cover.
func Detect() Language {
	loc, err := locale.GetLocale()
	if err != nil {
		return EN
	}
	if strings.HasPrefix(strings.ToLower(loc), "ru") {
		return RU
	}
	return EN
}
