//go:build windows

package hook

import (
	"github.com/cursorwarp/cursorwarp/internal/geometry"
	"github.com/cursorwarp/cursorwarp/internal/winapi"
)

// WindowsLocator resolves the monitor under a point via MonitorFromPoint.
type WindowsLocator struct{}

// MonitorUnderPoint implements Locator.
func (WindowsLocator) MonitorUnderPoint(p geometry.Point) (uintptr, bool) {
	h := winapi.MonitorFromPoint(winapi.POINT{X: p.X, Y: p.Y})
	if h == 0 {
		return 0, false
	}
	return h, true
}

// WindowsMover issues the synthetic cursor move via SetCursorPos.
type WindowsMover struct{}

// MoveCursor implements Mover.
func (WindowsMover) MoveCursor(p geometry.Point) error {
	return winapi.SetCursorPos(p.X, p.Y)
}
