//go:build linux

package display

import (
	"errors"
	"os/exec"
	"strconv"
	"strings"
)

// xrandrSource reads the monitor layout from the xrandr utility and narrows
// each monitor by the desktop work area published on the X root window.
// Either command may be missing on a given box; any failure simply hands the
// query over to the next source.
type xrandrSource struct{}

func (xrandrSource) Name() string { return "xrandr" }

func (xrandrSource) Monitors() ([]Monitor, error) {
	out, err := exec.Command("xrandr", "--query").Output()
	if err != nil {
		return nil, err
	}
	mons := parseXrandr(string(out))
	if len(mons) == 0 {
		return nil, errors.New("xrandr reported no connected outputs")
	}
	if wa, ok := rootWorkArea(); ok {
		clampToWorkArea(mons, wa)
	}
	return mons, nil
}

// rootWorkArea asks xprop for _NET_WORKAREA, the hint window managers use to
// publish the desktop minus panels. The hint covers the whole virtual screen,
// not a single monitor.
func rootWorkArea() (Rect, bool) {
	out, err := exec.Command("xprop", "-root", "_NET_WORKAREA").Output()
	if err != nil {
		return Rect{}, false
	}
	return parseWorkArea(string(out))
}

// clampToWorkArea intersects every monitor with the desktop work area so a
// panel pinned to one monitor is carved out of that monitor only.
func clampToWorkArea(mons []Monitor, wa Rect) {
	for i := range mons {
		if r := mons[i].Bounds.Intersect(wa); !r.Empty() {
			mons[i].WorkArea = r
		}
	}
}

// parseXrandr extracts connected outputs from `xrandr --query` output.
// Lines of interest look like:
//
//	eDP-1 connected primary 1920x1080+0+0 (normal left inverted ...) 344mm x 194mm
//	HDMI-1 connected 2560x1440+1920+0 (normal left inverted ...) 597mm x 336mm
//
// Outputs that are connected but switched off carry no geometry token and are
// skipped.
func parseXrandr(out string) []Monitor {
	var mons []Monitor
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 || fields[1] != "connected" {
			continue
		}
		rest := fields[2:]
		primary := false
		if rest[0] == "primary" {
			primary = true
			rest = rest[1:]
		}
		if len(rest) == 0 {
			continue
		}
		bounds, ok := parseGeometry(rest[0])
		if !ok {
			continue
		}
		mons = append(mons, Monitor{
			Name:     fields[0],
			Bounds:   bounds,
			WorkArea: bounds,
			Primary:  primary,
		})
	}
	return mons
}

// parseGeometry parses an X geometry token such as "1920x1080+0+0". Offsets
// of monitors left of or above the origin come out negative after the plus
// sign ("1920x1080+-1920+0"), which splitting on '+' handles for free.
func parseGeometry(tok string) (Rect, bool) {
	parts := strings.Split(tok, "+")
	if len(parts) != 3 {
		return Rect{}, false
	}
	wh := strings.Split(parts[0], "x")
	if len(wh) != 2 {
		return Rect{}, false
	}
	w, err := strconv.Atoi(wh[0])
	if err != nil || w <= 0 {
		return Rect{}, false
	}
	h, err := strconv.Atoi(wh[1])
	if err != nil || h <= 0 {
		return Rect{}, false
	}
	x, err := strconv.Atoi(parts[1])
	if err != nil {
		return Rect{}, false
	}
	y, err := strconv.Atoi(parts[2])
	if err != nil {
		return Rect{}, false
	}
	return Rect{X: x, Y: y, Width: w, Height: h}, true
}

// parseWorkArea parses the xprop reply, e.g.
//
//	_NET_WORKAREA(CARDINAL) = 0, 27, 1920, 1053, 0, 27, 1920, 1053
//
// The values repeat once per virtual desktop; the first quadruple is taken.
func parseWorkArea(out string) (Rect, bool) {
	_, values, ok := strings.Cut(out, "=")
	if !ok {
		return Rect{}, false
	}
	fields := strings.Split(values, ",")
	if len(fields) < 4 {
		return Rect{}, false
	}
	var nums [4]int
	for i := 0; i < 4; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(fields[i]))
		if err != nil {
			return Rect{}, false
		}
		nums[i] = n
	}
	r := Rect{X: nums[0], Y: nums[1], Width: nums[2], Height: nums[3]}
	if r.Empty() {
		return Rect{}, false
	}
	return r, true
}

// Sources returns the monitor sources for this platform, most capable first.
func Sources() []Source {
	return []Source{xrandrSource{}, screenshotSource{}}
}
