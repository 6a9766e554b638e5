//go:build ignore

// Скрипт для генерации иконки трея.
// Запуск: go run scripts/generate_icons.go
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

func main() {
	dir := "embedded"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Не удалось создать директорию %s: %v", dir, err)
	}

	path := filepath.Join(dir, "icon_tray.png")
	if err := generateIcon(path); err != nil {
		log.Fatalf("Ошибка генерации %s: %v", path, err)
	}
	log.Printf("Создан: %s", path)
}

func generateIcon(path string) error {
	const size = 64
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	frame := color.RGBA{60, 130, 220, 255} // Синяя рамка
	bar := color.RGBA{30, 70, 130, 255}    // Тёмная полоса заголовка
	fill := color.RGBA{235, 240, 248, 255} // Светлое содержимое

	// Рисуем стилизованное окно: заголовок сверху, рамка вокруг
	for y := 14; y < 50; y++ {
		for x := 10; x < 54; x++ {
			switch {
			case y < 22:
				img.Set(x, y, bar)
			case x < 13 || x >= 51 || y >= 47:
				img.Set(x, y, frame)
			default:
				img.Set(x, y, fill)
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
