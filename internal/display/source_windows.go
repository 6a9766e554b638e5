//go:build windows

package display

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfoW     = user32.NewProc("GetMonitorInfoW")
)

const monitorinfofPrimary = 0x1

type win32Rect struct {
	Left, Top, Right, Bottom int32
}

type monitorInfoEx struct {
	Size    uint32
	Monitor win32Rect
	Work    win32Rect
	Flags   uint32
	Device  [32]uint16
}

// win32Source enumerates monitors through the user32 display API. The Work
// rectangle already excludes the taskbar, so no extra work-area math is
// needed here.
type win32Source struct{}

func (win32Source) Name() string { return "user32" }

func (win32Source) Monitors() ([]Monitor, error) {
	var mons []Monitor
	cb := windows.NewCallback(func(hMonitor, hdc, rect, lparam uintptr) uintptr {
		var info monitorInfoEx
		info.Size = uint32(unsafe.Sizeof(info))
		ret, _, _ := procGetMonitorInfoW.Call(hMonitor, uintptr(unsafe.Pointer(&info)))
		if ret != 0 {
			mons = append(mons, Monitor{
				Name:     windows.UTF16ToString(info.Device[:]),
				Bounds:   fromWin32Rect(info.Monitor),
				WorkArea: fromWin32Rect(info.Work),
				Primary:  info.Flags&monitorinfofPrimary != 0,
			})
		}
		return 1 // keep enumerating
	})
	ret, _, _ := procEnumDisplayMonitors.Call(0, 0, cb, 0)
	if ret == 0 {
		return nil, errors.New("EnumDisplayMonitors failed")
	}
	return mons, nil
}

func fromWin32Rect(r win32Rect) Rect {
	return Rect{
		X:      int(r.Left),
		Y:      int(r.Top),
		Width:  int(r.Right - r.Left),
		Height: int(r.Bottom - r.Top),
	}
}

// Sources returns the monitor sources for this platform, most capable first.
func Sources() []Source {
	return []Source{win32Source{}, screenshotSource{}}
}
