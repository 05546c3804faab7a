//go:build !windows

package topology

import "fmt"

// winBackend stub for non-Windows builds: the virtual-desktop monitor
// model this package enumerates only exists on Windows. Keeping this
// stub lets the rest of the module and its tests build and run on any
// host.
type winBackend struct{}

// NewWindowsBackend is unavailable outside Windows builds.
func NewWindowsBackend() (Backend, error) {
	return nil, fmt.Errorf("topology: windows monitor backend not available on this platform")
}

func (winBackend) EnumerateMonitors() ([]Monitor, error) {
	return nil, fmt.Errorf("topology: windows monitor backend not available on this platform")
}
