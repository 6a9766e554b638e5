// Package tray предоставляет системный трей с меню.
package tray

import (
	"github.com/getlantern/systray"

	"vitrina/embedded"
	"vitrina/internal/i18n"
)

// Callbacks содержит обработчики событий меню.
type Callbacks struct {
	OnShow func()
	OnHide func()
	OnQuit func()
}

// Tray управляет иконкой в системном трее.
type Tray struct {
	callbacks Callbacks
	showBtn   *systray.MenuItem
	hideBtn   *systray.MenuItem
	quitBtn   *systray.MenuItem
}

// New создаёт новый Tray.
func New(callbacks Callbacks) *Tray {
	return &Tray{
		callbacks: callbacks,
	}
}

// Run запускает системный трей. Блокирующая функция.
func (t *Tray) Run(onReady func()) {
	systray.Run(func() {
		t.onReady()
		if onReady != nil {
			onReady()
		}
	}, t.onExit)
}

func (t *Tray) onReady() {
	systray.SetIcon(embedded.IconTray)
	systray.SetTitle(i18n.T("app_name"))
	systray.SetTooltip(i18n.T("app_tooltip"))

	// Показать/скрыть окно
	t.showBtn = systray.AddMenuItem(i18n.T("tray_show"), i18n.T("tray_show_hint"))
	t.hideBtn = systray.AddMenuItem(i18n.T("tray_hide"), i18n.T("tray_hide_hint"))

	systray.AddSeparator()

	// Выход
	t.quitBtn = systray.AddMenuItem(i18n.T("tray_quit"), i18n.T("tray_quit_hint"))

	// Обработка событий меню
	go t.handleMenuEvents()
}

func (t *Tray) handleMenuEvents() {
	for {
		select {
		case <-t.showBtn.ClickedCh:
			if t.callbacks.OnShow != nil {
				t.callbacks.OnShow()
			}

		case <-t.hideBtn.ClickedCh:
			if t.callbacks.OnHide != nil {
				t.callbacks.OnHide()
			}

		case <-t.quitBtn.ClickedCh:
			if t.callbacks.OnQuit != nil {
				t.callbacks.OnQuit()
			}
			systray.Quit()
		}
	}
}

func (t *Tray) onExit() {
	// Cleanup при выходе
}

// Quit закрывает системный трей.
func (t *Tray) Quit() {
	systray.Quit()
}

// RefreshUI обновляет все тексты меню на текущем языке.
func (t *Tray) RefreshUI() {
	systray.SetTooltip(i18n.T("app_tooltip"))

	if t.showBtn != nil {
		t.showBtn.SetTitle(i18n.T("tray_show"))
		t.showBtn.SetTooltip(i18n.T("tray_show_hint"))
	}
	if t.hideBtn != nil {
		t.hideBtn.SetTitle(i18n.T("tray_hide"))
		t.hideBtn.SetTooltip(i18n.T("tray_hide_hint"))
	}
	if t.quitBtn != nil {
		t.quitBtn.SetTitle(i18n.T("tray_quit"))
		t.quitBtn.SetTooltip(i18n.T("tray_quit_hint"))
	}
}
