//go:build windows

package topology

import "github.com/cursorwarp/cursorwarp/internal/winapi"

// DeclarePerMonitorDPIAware must be called once, before the first
// Refresh, so monitor rectangles come back in physical pixels on the
// virtual desktop rather than DPI-virtualized coordinates.
func DeclarePerMonitorDPIAware() error {
	return winapi.SetProcessDpiAwarenessContext()
}
