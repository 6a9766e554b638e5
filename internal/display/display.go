// Package display enumerates attached monitors and answers which monitor a
// given point falls on. Descriptors are transient: the platform is queried on
// first use and the answer is never persisted.
//
// Coordinates are virtual-screen pixels. A monitor placed to the left of the
// primary one has a negative X, so callers must not assume the origin is the
// top-left corner of the layout.
package display

import "sync"

// Rect is an axis-aligned rectangle in virtual-screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// ContainsPoint reports whether the point lies inside the rectangle. The
// right and bottom edges are exclusive, so two touching monitors never both
// claim the shared border.
func (r Rect) ContainsPoint(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersect returns the overlap of two rectangles, or a zero Rect when they
// do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.X+r.Width, o.X+o.Width)
	y2 := min(r.Y+r.Height, o.Y+o.Height)
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Monitor describes one attached display.
type Monitor struct {
	Name     string
	Bounds   Rect // full panel area
	WorkArea Rect // Bounds minus taskbars, docks and panels
	Primary  bool
}

// Source yields monitor descriptors from one platform facility. A source
// that cannot answer returns an error or an empty slice; the caller moves on.
type Source interface {
	Name() string
	Monitors() ([]Monitor, error)
}

// Locator answers monitor queries from the first source that produces at
// least one monitor. The sources are consulted once per process and both
// lookups share that snapshot, so a flaky source cannot give the two queries
// different views of the layout.
type Locator struct {
	once    sync.Once
	sources []Source
	cached  []Monitor
}

// NewLocator builds a locator over the given sources, most capable first.
func NewLocator(sources ...Source) *Locator {
	return &Locator{sources: sources}
}

func (l *Locator) snapshot() []Monitor {
	l.once.Do(func() {
		for _, s := range l.sources {
			mons, err := s.Monitors()
			if err != nil || len(mons) == 0 {
				continue
			}
			l.cached = mons
			return
		}
	})
	return l.cached
}

// Current returns the monitor whose bounds contain the point.
func (l *Locator) Current(x, y int) (Monitor, bool) {
	for _, m := range l.snapshot() {
		if m.Bounds.ContainsPoint(x, y) {
			return m, true
		}
	}
	return Monitor{}, false
}

// Primary returns the monitor the platform flags as primary. When no monitor
// carries the flag the first one stands in, which matches how X11 treats an
// output that lost its primary mark.
func (l *Locator) Primary() (Monitor, bool) {
	mons := l.snapshot()
	for _, m := range mons {
		if m.Primary {
			return m, true
		}
	}
	if len(mons) > 0 {
		return mons[0], true
	}
	return Monitor{}, false
}
