// Package config загружает настройки приложения из TOML-файла с
// переопределением через переменные окружения.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix — префикс переменных окружения: VITRINA_WINDOW_TITLE и т.п.
const envPrefix = "VITRINA"

// envConfigPath указывает явный путь к файлу конфигурации.
const envConfigPath = "VITRINA_CONFIG"

// Modifier представляет модификатор горячей клавиши.
type Modifier string

const (
	ModCtrl  Modifier = "ctrl"
	ModShift Modifier = "shift"
	ModAlt   Modifier = "alt"
	ModSuper Modifier = "super" // Win/Cmd
)

// Key представляет клавишу.
type Key string

const (
	KeySpace  Key = "space"
	KeyReturn Key = "return"
	KeyTab    Key = "tab"
	KeyA      Key = "a"
	KeyB      Key = "b"
	KeyC      Key = "c"
	KeyD      Key = "d"
	KeyE      Key = "e"
	KeyF      Key = "f"
	KeyG      Key = "g"
	KeyH      Key = "h"
	KeyI      Key = "i"
	KeyJ      Key = "j"
	KeyK      Key = "k"
	KeyL      Key = "l"
	KeyM      Key = "m"
	KeyN      Key = "n"
	KeyO      Key = "o"
	KeyP      Key = "p"
	KeyQ      Key = "q"
	KeyR      Key = "r"
	KeyS      Key = "s"
	KeyT      Key = "t"
	KeyU      Key = "u"
	KeyV      Key = "v"
	KeyW      Key = "w"
	KeyX      Key = "x"
	KeyY      Key = "y"
	KeyZ      Key = "z"
	KeyF1     Key = "f1"
	KeyF2     Key = "f2"
	KeyF3     Key = "f3"
	KeyF4     Key = "f4"
	KeyF5     Key = "f5"
	KeyF6     Key = "f6"
	KeyF7     Key = "f7"
	KeyF8     Key = "f8"
	KeyF9     Key = "f9"
	KeyF10    Key = "f10"
	KeyF11    Key = "f11"
	KeyF12    Key = "f12"
)

// HotkeyConfig хранит настройки горячей клавиши показа/скрытия окна.
type HotkeyConfig struct {
	Enabled   bool       `mapstructure:"enabled"`
	Modifiers []Modifier `mapstructure:"modifiers"`
	Key       Key        `mapstructure:"key"`
}

// String возвращает строковое представление горячей клавиши.
func (h HotkeyConfig) String() string {
	result := ""
	for _, m := range h.Modifiers {
		if result != "" {
			result += "+"
		}
		result += string(m)
	}
	if result != "" {
		result += "+"
	}
	result += string(h.Key)
	return result
}

// WindowConfig описывает главное окно приложения.
type WindowConfig struct {
	Label      string `mapstructure:"label"`
	Title      string `mapstructure:"title"`
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Background string `mapstructure:"background"`
}

// RGBA разбирает цвет фона формата "#RRGGBB".
func (w WindowConfig) RGBA() (r, g, b uint8, ok bool) {
	hex := strings.TrimPrefix(w.Background, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		n, err := parseHexByte(hex[i*2 : i*2+2])
		if err != nil {
			return 0, 0, 0, false
		}
		rgb[i] = n
	}
	return rgb[0], rgb[1], rgb[2], true
}

func parseHexByte(s string) (uint8, error) {
	var n uint8
	for i := 0; i < 2; i++ {
		c := s[i]
		var d uint8
		switch {
		case c >= '0' && c <= '9':
			d = c - '0'
		case c >= 'a' && c <= 'f':
			d = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			d = c - 'A' + 10
		default:
			return 0, errors.New("not a hex digit")
		}
		n = n<<4 | d
	}
	return n, nil
}

// PlacementConfig управляет размещением окна при старте.
type PlacementConfig struct {
	FillWorkArea bool `mapstructure:"fill_work_area"`
}

// TrayConfig управляет значком в системном трее.
type TrayConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Config хранит все настройки приложения. Значение — снимок: изменения
// файла приходят новым снимком через Watch.
type Config struct {
	Window        WindowConfig    `mapstructure:"window"`
	Placement     PlacementConfig `mapstructure:"placement"`
	Tray          TrayConfig      `mapstructure:"tray"`
	Hotkey        HotkeyConfig    `mapstructure:"hotkey"`
	Notifications bool            `mapstructure:"notifications"`
	UILanguage    string          `mapstructure:"ui_language"`
	LogLevel      string          `mapstructure:"log_level"`
}

// Default возвращает настройки по умолчанию.
func Default() Config {
	var cfg Config
	// Ошибки невозможны: раскладываются только собственные умолчания.
	_ = newViper().Unmarshal(&cfg)
	return cfg
}

// Load читает конфигурацию из файла (если он есть) и окружения.
// Отсутствующий файл не ошибка: действуют умолчания.
func Load() (Config, error) {
	v := newViper()
	if err := readIn(v); err != nil {
		return Default(), err
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Watch следит за файлом конфигурации и после каждого изменения вызывает
// onChange с новым снимком настроек. Без файла следить не за чем.
func Watch(onChange func(Config)) error {
	v := newViper()
	if err := readIn(v); err != nil {
		return err
	}
	if v.ConfigFileUsed() == "" {
		return errors.New("no config file to watch")
	}
	v.OnConfigChange(func(fsnotify.Event) {
		var cfg Config
		if err := v.Unmarshal(&cfg); err != nil {
			return // повреждённый файл не перекрывает рабочие настройки
		}
		onChange(cfg)
	})
	v.WatchConfig()
	return nil
}

// EnsureFile записывает файл с настройками по умолчанию, если его ещё нет,
// и возвращает путь к нему.
func EnsureFile() (string, error) {
	path := os.Getenv(envConfigPath)
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(dir, "vitrina", "config.toml")
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := newViper().WriteConfigAs(path); err != nil {
		return "", err
	}
	return path, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	setDefaults(v)
	if path := os.Getenv(envConfigPath); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "vitrina"))
		}
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.label", "main")
	v.SetDefault("window.title", "Vitrina")
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.background", "#1b2636")
	v.SetDefault("placement.fill_work_area", true)
	v.SetDefault("tray.enabled", true)
	v.SetDefault("hotkey.enabled", true)
	v.SetDefault("hotkey.modifiers", []string{"ctrl", "shift"})
	v.SetDefault("hotkey.key", "space")
	v.SetDefault("notifications", true)
	v.SetDefault("ui_language", "") // пусто — определить по системной локали
	v.SetDefault("log_level", "info")
}

// readIn читает файл конфигурации, не считая его отсутствие ошибкой.
func readIn(v *viper.Viper) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
