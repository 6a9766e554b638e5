// Package dialog предоставляет GUI диалоги приложения.
package dialog

import (
	"github.com/ncruces/zenity"
)

// ShowInfo показывает информационное сообщение.
func ShowInfo(title, message string) {
	// Ошибки диалогов некритичны: нет zenity - нет диалога
	_ = zenity.Info(message, zenity.Title(title))
}

// ShowError показывает сообщение об ошибке. Используется для фатальных
// ошибок запуска, когда окно приложения ещё не существует.
func ShowError(title, message string) {
	_ = zenity.Error(message, zenity.Title(title))
}
