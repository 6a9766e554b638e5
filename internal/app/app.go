// Package app содержит основную логику приложения.
package app

import (
	"context"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"
	"go.uber.org/zap"

	"vitrina/internal/config"
	"vitrina/internal/display"
	"vitrina/internal/hotkey"
	"vitrina/internal/i18n"
	"vitrina/internal/notify"
	"vitrina/internal/startup"
	"vitrina/internal/tray"
)

// windowLabel — логический идентификатор главного окна у хоста.
const windowLabel = "main"

// App представляет главное приложение. Экспортированные методы привязаны
// к веб-интерфейсу через механизм Bind хоста.
type App struct {
	mu      sync.Mutex
	ctx     context.Context
	cfg     config.Config
	log     *zap.Logger
	version string

	monitors startup.Monitors
	notifier *notify.Notifier
	tray     *tray.Tray
	hotkeys  *hotkey.Handler
	hidden   bool

	backgroundHint sync.Once
}

// New создаёт новое приложение.
func New(cfg config.Config, log *zap.Logger, version string) *App {
	a := &App{
		cfg:      cfg,
		log:      log,
		version:  version,
		monitors: display.NewLocator(display.Sources()...),
		notifier: notify.New(cfg.Notifications),
	}

	a.hotkeys = hotkey.New(a.toggleWindow)

	a.tray = tray.New(tray.Callbacks{
		OnShow: func() { a.setHidden(false) },
		OnHide: func() { a.setHidden(true) },
		OnQuit: a.quit,
	})

	return a
}

// Startup вызывается хостом после создания окна, но до его показа.
// Здесь происходит единственное размещение окна по рабочей области монитора.
func (a *App) Startup(ctx context.Context) {
	a.mu.Lock()
	a.ctx = ctx
	a.mu.Unlock()

	monitors := a.monitors
	if !a.cfg.Placement.FillWorkArea {
		monitors = nil // окно остаётся на месте, но всё равно показывается
	}
	startup.Place(a.lookupWindow(ctx, a.cfg.Window.Label), monitors)

	if a.cfg.Tray.Enabled {
		go a.tray.Run(nil)
	}

	if a.cfg.Hotkey.Enabled {
		if err := a.hotkeys.Register(a.cfg.Hotkey); err != nil {
			a.log.Warn("Горячая клавиша не зарегистрирована", zap.Error(err))
			a.notifier.Error(i18n.T("error_hotkey_register"))
		}
	}

	// Следим за файлом настроек: смена горячей клавиши и языка применяется
	// без перезапуска. Без файла следить не за чем.
	if err := config.Watch(a.applyConfig); err != nil {
		a.log.Debug("Файл настроек не отслеживается", zap.Error(err))
	}

	a.log.Info("Приложение запущено", zap.String("version", a.version))
	a.notifier.Ready()
}

// DomReady вызывается, когда веб-интерфейс загружен.
func (a *App) DomReady(ctx context.Context) {
	a.log.Debug("Интерфейс загружен")
}

// BeforeClose вызывается при попытке закрыть окно. При активном трее окно
// прячется вместо выхода, и приложение продолжает работать в фоне.
func (a *App) BeforeClose(ctx context.Context) bool {
	a.mu.Lock()
	trayEnabled := a.cfg.Tray.Enabled
	a.mu.Unlock()
	if !trayEnabled {
		return false
	}
	runtime.WindowHide(ctx)
	a.mu.Lock()
	a.hidden = true
	a.mu.Unlock()
	a.backgroundHint.Do(a.notifier.Background)
	return true
}

// Shutdown вызывается хостом при завершении приложения.
func (a *App) Shutdown(ctx context.Context) {
	_ = a.hotkeys.Unregister()
	a.tray.Quit()
	a.log.Info("Приложение завершено")
}

// Greet возвращает приветствие для переданного имени.
func (a *App) Greet(name string) string {
	return "Hello, " + name + "! You've been greeted from Rust!"
}

// OpenExternal открывает адрес в системном браузере.
func (a *App) OpenExternal(url string) {
	a.mu.Lock()
	ctx := a.ctx
	a.mu.Unlock()
	if ctx == nil {
		return
	}
	runtime.BrowserOpenURL(ctx, url)
}

// Version возвращает версию сборки.
func (a *App) Version() string {
	return a.version
}

// applyConfig применяет новый снимок настроек.
func (a *App) applyConfig(cfg config.Config) {
	a.mu.Lock()
	old := a.cfg
	a.cfg = cfg
	a.mu.Unlock()

	a.notifier.SetEnabled(cfg.Notifications)

	if cfg.UILanguage != old.UILanguage {
		if lang, ok := i18n.Parse(cfg.UILanguage); ok {
			i18n.SetLanguage(lang)
			a.tray.RefreshUI()
		}
	}

	if cfg.Hotkey.Enabled != old.Hotkey.Enabled ||
		cfg.Hotkey.String() != old.Hotkey.String() {
		if !cfg.Hotkey.Enabled {
			_ = a.hotkeys.Unregister()
			return
		}
		if err := a.hotkeys.Register(cfg.Hotkey); err != nil {
			a.log.Warn("Горячая клавиша не перерегистрирована", zap.Error(err))
			a.notifier.Error(i18n.T("error_hotkey_register"))
		}
	}
}

// toggleWindow прячет или возвращает окно по горячей клавише.
func (a *App) toggleWindow() {
	a.mu.Lock()
	hidden := a.hidden
	a.mu.Unlock()
	a.setHidden(!hidden)
}

// setHidden прячет или показывает окно.
func (a *App) setHidden(hidden bool) {
	a.mu.Lock()
	ctx := a.ctx
	a.hidden = hidden
	a.mu.Unlock()
	if ctx == nil {
		return
	}
	if hidden {
		runtime.WindowHide(ctx)
		a.backgroundHint.Do(a.notifier.Background)
	} else {
		runtime.WindowShow(ctx)
	}
}

// quit завершает приложение из меню трея.
func (a *App) quit() {
	a.mu.Lock()
	ctx := a.ctx
	a.mu.Unlock()
	if ctx == nil {
		return
	}
	runtime.Quit(ctx)
}
