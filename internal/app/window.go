package app

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"vitrina/internal/startup"
)

// lookupWindow находит окно хоста по его логическому идентификатору.
// У хоста ровно одно окно; любой другой идентификатор означает отсутствие
// окна, и размещение превращается в no-op.
func (a *App) lookupWindow(ctx context.Context, label string) startup.Window {
	if ctx == nil || label != windowLabel {
		return nil
	}
	return wailsWindow{ctx: ctx}
}

// wailsWindow адаптирует рантайм хоста к интерфейсу startup.Window.
// Рантайм не возвращает ошибок по этим вызовам, так что здесь они всегда nil.
type wailsWindow struct {
	ctx context.Context
}

func (w wailsWindow) Position() (x, y int, err error) {
	x, y = runtime.WindowGetPosition(w.ctx)
	return x, y, nil
}

func (w wailsWindow) SetPosition(x, y int) error {
	runtime.WindowSetPosition(w.ctx, x, y)
	return nil
}

func (w wailsWindow) SetSize(width, height int) error {
	runtime.WindowSetSize(w.ctx, width, height)
	return nil
}

func (w wailsWindow) Show() error {
	runtime.WindowShow(w.ctx)
	return nil
}
