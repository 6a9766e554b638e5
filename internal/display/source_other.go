//go:build !linux && !windows

package display

// Sources returns the monitor sources for this platform. Reserved areas
// (the macOS menu bar, the Dock) are not subtracted here; the screenshot
// library reports full bounds only.
func Sources() []Source {
	return []Source{screenshotSource{}}
}
