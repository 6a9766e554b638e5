package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(envConfigPath, filepath.Join(t.TempDir(), "absent.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "main", cfg.Window.Label)
	require.Equal(t, "Vitrina", cfg.Window.Title)
	require.Equal(t, 800, cfg.Window.Width)
	require.Equal(t, 600, cfg.Window.Height)
	require.True(t, cfg.Placement.FillWorkArea)
	require.True(t, cfg.Tray.Enabled)
	require.True(t, cfg.Notifications)
	require.Equal(t, "ctrl+shift+space", cfg.Hotkey.String())
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
notifications = false
ui_language = "en"

[window]
title = "Showcase"
width = 1024

[placement]
fill_work_area = false

[hotkey]
modifiers = ["alt"]
key = "v"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv(envConfigPath, path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Showcase", cfg.Window.Title)
	require.Equal(t, 1024, cfg.Window.Width)
	require.Equal(t, 600, cfg.Window.Height, "незаданные ключи остаются на умолчаниях")
	require.False(t, cfg.Notifications)
	require.False(t, cfg.Placement.FillWorkArea)
	require.Equal(t, []Modifier{ModAlt}, cfg.Hotkey.Modifiers)
	require.Equal(t, KeyV, cfg.Hotkey.Key)
	require.Equal(t, "en", cfg.UILanguage)
}

func TestLoadBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window\ntitle ="), 0o644))
	t.Setenv(envConfigPath, path)

	cfg, err := Load()
	require.Error(t, err)
	require.Equal(t, Default(), cfg, "при ошибке возвращаются умолчания")
}

func TestEnvOverride(t *testing.T) {
	t.Setenv(envConfigPath, filepath.Join(t.TempDir(), "absent.toml"))
	t.Setenv("VITRINA_WINDOW_TITLE", "Из окружения")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Из окружения", cfg.Window.Title)
}

func TestHotkeyString(t *testing.T) {
	tests := []struct {
		hk   HotkeyConfig
		want string
	}{
		{HotkeyConfig{Modifiers: []Modifier{ModCtrl, ModShift}, Key: KeySpace}, "ctrl+shift+space"},
		{HotkeyConfig{Modifiers: []Modifier{ModSuper}, Key: KeyV}, "super+v"},
		{HotkeyConfig{Key: KeyF7}, "f7"},
	}
	for _, tt := range tests {
		if got := tt.hk.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestWindowRGBA(t *testing.T) {
	r, g, b, ok := WindowConfig{Background: "#1b2636"}.RGBA()
	require.True(t, ok)
	require.Equal(t, []uint8{0x1b, 0x26, 0x36}, []uint8{r, g, b})

	for _, bad := range []string{"", "#fff", "#12345g", "#1b26360"} {
		_, _, _, ok := WindowConfig{Background: bad}.RGBA()
		require.False(t, ok, "значение %q должно быть отвергнуто", bad)
	}
}

func TestEnsureFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	t.Setenv(envConfigPath, path)

	got, err := EnsureFile()
	require.NoError(t, err)
	require.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "fill_work_area")

	// Повторный вызов не перетирает правки пользователя.
	require.NoError(t, os.WriteFile(path, []byte("notifications = false\n"), 0o644))
	_, err = EnsureFile()
	require.NoError(t, err)

	cfg, err := Load()
	require.NoError(t, err)
	require.False(t, cfg.Notifications)
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\ntitle = \"до\"\n"), 0o644))
	t.Setenv(envConfigPath, path)

	var mu sync.Mutex
	var last Config
	require.NoError(t, Watch(func(cfg Config) {
		mu.Lock()
		last = cfg
		mu.Unlock()
	}))

	require.NoError(t, os.WriteFile(path, []byte("[window]\ntitle = \"после\"\n"), 0o644))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return last.Window.Title == "после"
	}, 3*time.Second, 50*time.Millisecond)
}
