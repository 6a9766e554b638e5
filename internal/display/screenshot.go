package display

import (
	"errors"
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

// screenshotSource reads display geometry through the screenshot library,
// which talks to the platform directly (GDI, X11, CoreGraphics). It knows
// nothing about reserved areas, so each work area equals the full bounds.
type screenshotSource struct{}

func (screenshotSource) Name() string { return "screenshot" }

func (screenshotSource) Monitors() ([]Monitor, error) {
	n := screenshot.NumActiveDisplays()
	if n <= 0 {
		return nil, errors.New("no active displays")
	}
	mons := make([]Monitor, 0, n)
	for i := 0; i < n; i++ {
		b := fromImageRect(screenshot.GetDisplayBounds(i))
		mons = append(mons, Monitor{
			Name:     fmt.Sprintf("display-%d", i),
			Bounds:   b,
			WorkArea: b,
			Primary:  i == 0, // display 0 carries the virtual-screen origin
		})
	}
	return mons, nil
}

func fromImageRect(r image.Rectangle) Rect {
	return Rect{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}
