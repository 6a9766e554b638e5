// Vitrina - нативный бэкенд настольного приложения с веб-интерфейсом.
//
// Окно создаётся скрытым, при старте растягивается на рабочую область
// текущего монитора и только затем показывается. Приложение живёт в
// системном трее и отвечает на запросы веб-интерфейса.
package main

import (
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"go.uber.org/zap"

	"vitrina/embedded"
	"vitrina/internal/app"
	"vitrina/internal/config"
	"vitrina/internal/dialog"
	"vitrina/internal/i18n"
	"vitrina/internal/logging"
)

// Version устанавливается при сборке через -ldflags.
var Version = "dev"

func main() {
	cfg, cfgErr := config.Load()

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		log = zap.NewNop()
	}
	defer func() { _ = log.Sync() }()

	if cfgErr != nil {
		log.Warn("Настройки не прочитаны, действуют умолчания", zap.Error(cfgErr))
	}
	if _, err := config.EnsureFile(); err != nil {
		log.Debug("Файл настроек не создан", zap.Error(err))
	}

	if lang, ok := i18n.Parse(cfg.UILanguage); ok {
		i18n.SetLanguage(lang)
	} else {
		i18n.SetLanguage(i18n.Detect())
	}

	log.Info("Vitrina запускается...", zap.String("version", Version))

	application := app.New(cfg, log, Version)

	r, g, b, ok := cfg.Window.RGBA()
	if !ok {
		r, g, b = 27, 38, 54
	}

	err = wails.Run(&options.App{
		Title:       cfg.Window.Title,
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		MinWidth:    400,
		MinHeight:   300,
		StartHidden: true, // окно покажет процедура размещения
		AssetServer: &assetserver.Options{
			Assets: embedded.Frontend,
		},
		BackgroundColour: &options.RGBA{R: r, G: g, B: b, A: 1},
		OnStartup:        application.Startup,
		OnDomReady:       application.DomReady,
		OnBeforeClose:    application.BeforeClose,
		OnShutdown:       application.Shutdown,
		Bind: []interface{}{
			application,
		},
	})
	if err != nil {
		log.Error("Приложение не запустилось", zap.Error(err))
		dialog.ShowError(i18n.T("error_title"), err.Error())
		os.Exit(1)
	}
}
