package display

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRectContainsPoint(t *testing.T) {
	r := Rect{X: -1920, Y: 0, Width: 1920, Height: 1080}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", -960, 540, true},
		{"top-left corner", -1920, 0, true},
		{"right edge exclusive", 0, 540, false},
		{"bottom edge exclusive", -960, 1080, false},
		{"left of monitor", -1921, 540, false},
		{"above monitor", -960, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ContainsPoint(tt.x, tt.y); got != tt.want {
				t.Errorf("ContainsPoint(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{
			name: "partial overlap",
			a:    Rect{X: 0, Y: 0, Width: 1920, Height: 1080},
			b:    Rect{X: 0, Y: 27, Width: 4480, Height: 1413},
			want: Rect{X: 0, Y: 27, Width: 1920, Height: 1053},
		},
		{
			name: "contained",
			a:    Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:    Rect{X: 10, Y: 10, Width: 20, Height: 20},
			want: Rect{X: 10, Y: 10, Width: 20, Height: 20},
		},
		{
			name: "disjoint",
			a:    Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:    Rect{X: 200, Y: 0, Width: 100, Height: 100},
			want: Rect{},
		},
		{
			name: "touching edge has no area",
			a:    Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:    Rect{X: 100, Y: 0, Width: 100, Height: 100},
			want: Rect{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

type fakeSource struct {
	name  string
	mons  []Monitor
	err   error
	calls int
}

func (s *fakeSource) Name() string { return s.name }

func (s *fakeSource) Monitors() ([]Monitor, error) {
	s.calls++
	return s.mons, s.err
}

func twoMonitors() []Monitor {
	return []Monitor{
		{
			Name:     "eDP-1",
			Bounds:   Rect{X: 0, Y: 0, Width: 1920, Height: 1080},
			WorkArea: Rect{X: 0, Y: 27, Width: 1920, Height: 1053},
			Primary:  true,
		},
		{
			Name:     "HDMI-1",
			Bounds:   Rect{X: 1920, Y: 0, Width: 2560, Height: 1440},
			WorkArea: Rect{X: 1920, Y: 0, Width: 2560, Height: 1440},
		},
	}
}

func TestLocatorFirstSourceWins(t *testing.T) {
	first := &fakeSource{name: "first", mons: twoMonitors()}
	second := &fakeSource{name: "second", mons: []Monitor{{Name: "other"}}}
	loc := NewLocator(first, second)

	m, ok := loc.Primary()
	require.True(t, ok)
	require.Equal(t, "eDP-1", m.Name)
	require.Equal(t, 0, second.calls, "second source must not be consulted")
}

func TestLocatorSkipsFailingSources(t *testing.T) {
	broken := &fakeSource{name: "broken", err: errors.New("no display server")}
	empty := &fakeSource{name: "empty"}
	good := &fakeSource{name: "good", mons: twoMonitors()}
	loc := NewLocator(broken, empty, good)

	m, ok := loc.Primary()
	require.True(t, ok)
	require.Equal(t, "eDP-1", m.Name)
}

func TestLocatorQueriesPlatformOnce(t *testing.T) {
	src := &fakeSource{name: "once", mons: twoMonitors()}
	loc := NewLocator(src)

	loc.Primary()
	loc.Current(100, 100)
	loc.Current(5000, 5000)

	require.Equal(t, 1, src.calls)
}

func TestLocatorCurrent(t *testing.T) {
	loc := NewLocator(&fakeSource{mons: twoMonitors()})

	m, ok := loc.Current(2000, 500)
	require.True(t, ok)
	require.Equal(t, "HDMI-1", m.Name)

	// The shared border belongs to the right monitor only.
	m, ok = loc.Current(1920, 500)
	require.True(t, ok)
	require.Equal(t, "HDMI-1", m.Name)

	_, ok = loc.Current(-10, 500)
	require.False(t, ok)
}

func TestLocatorPrimaryFallsBackToFirst(t *testing.T) {
	mons := twoMonitors()
	mons[0].Primary = false
	loc := NewLocator(&fakeSource{mons: mons})

	m, ok := loc.Primary()
	require.True(t, ok)
	require.Equal(t, "eDP-1", m.Name)
}

func TestLocatorNoMonitors(t *testing.T) {
	loc := NewLocator(&fakeSource{err: errors.New("headless")})

	_, ok := loc.Primary()
	require.False(t, ok)
	_, ok = loc.Current(0, 0)
	require.False(t, ok)
}
