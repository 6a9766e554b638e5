// Package startup places the main window when the application boots.
//
// The window is moved and resized to fill the work area of the monitor it is
// currently on; when that monitor cannot be determined the primary monitor
// stands in, and when even that is unknown the window stays where the host
// created it. The window is then revealed. All of it is best effort: a window
// that cannot be measured or moved is still shown, and no step reports back.
package startup

import "vitrina/internal/display"

// Window is the handle the routine manipulates. The concrete implementation
// adapts the host windowing runtime; tests substitute fakes.
type Window interface {
	Position() (x, y int, err error)
	SetPosition(x, y int) error
	SetSize(width, height int) error
	Show() error
}

// Monitors answers the two lookups placement needs. *display.Locator
// satisfies it.
type Monitors interface {
	Current(x, y int) (display.Monitor, bool)
	Primary() (display.Monitor, bool)
}

// Place fills the work area of the window's monitor and shows the window.
//
// A nil win means the main window was not found; nothing happens at all.
// A nil monitors skips the move and only shows the window. Position and size
// are two independent mutations: one failing does not stop the other. The
// window is shown exactly once, whatever became of the steps before, and
// every error on this path is discarded.
func Place(win Window, monitors Monitors) {
	if win == nil {
		return
	}
	if monitors != nil {
		mon, ok := current(win, monitors)
		if !ok {
			mon, ok = monitors.Primary()
		}
		if ok {
			wa := mon.WorkArea
			_ = win.SetPosition(wa.X, wa.Y)
			_ = win.SetSize(wa.Width, wa.Height)
		}
	}
	_ = win.Show()
}

// current resolves the monitor under the window's top-left corner.
func current(win Window, monitors Monitors) (display.Monitor, bool) {
	x, y, err := win.Position()
	if err != nil {
		return display.Monitor{}, false
	}
	return monitors.Current(x, y)
}
