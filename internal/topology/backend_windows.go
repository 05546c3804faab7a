//go:build windows

package topology

import (
	"github.com/cursorwarp/cursorwarp/internal/geometry"
	"github.com/cursorwarp/cursorwarp/internal/winapi"
)

type winBackend struct{}

// NewWindowsBackend returns a Backend that enumerates monitors via
// EnumDisplayMonitors/GetMonitorInfoW.
func NewWindowsBackend() (Backend, error) {
	return winBackend{}, nil
}

func (winBackend) EnumerateMonitors() ([]Monitor, error) {
	raw, err := winapi.EnumDisplayMonitors()
	if err != nil {
		return nil, err
	}

	monitors := make([]Monitor, 0, len(raw))
	for _, m := range raw {
		monitors = append(monitors, Monitor{
			Handle: m.Handle,
			Rect: geometry.Rect{
				Left:   m.Rect.Left,
				Top:    m.Rect.Top,
				Right:  m.Rect.Right,
				Bottom: m.Rect.Bottom,
			},
			Primary:    m.Primary,
			DeviceName: m.DeviceName,
		})
	}
	return monitors, nil
}
