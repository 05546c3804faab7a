//go:build !windows

package topology

import "fmt"

// DeclarePerMonitorDPIAware is unavailable outside Windows builds.
func DeclarePerMonitorDPIAware() error {
	return fmt.Errorf("topology: DPI awareness declaration not available on this platform")
}
