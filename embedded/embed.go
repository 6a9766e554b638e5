// Package embedded содержит встроенные ресурсы приложения.
package embedded

import (
	"embed"
	"io/fs"
)

// IconTray - иконка приложения в системном трее.
//
//go:embed icon_tray.png
var IconTray []byte

//go:embed all:frontend/dist
var frontend embed.FS

// Frontend - корень статики веб-интерфейса (index.html и прочее).
var Frontend = mustSub(frontend, "frontend/dist")

func mustSub(fsys embed.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
