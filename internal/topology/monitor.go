// Package topology enumerates monitors, maintains a canonical signature
// of the current arrangement, and detects when that arrangement
// changes. It is the sole owner of the monitor set: readers only ever
// see immutable snapshots.
package topology

import "github.com/cursorwarp/cursorwarp/internal/geometry"

// Monitor is a value object describing one physical display on the
// virtual desktop.
type Monitor struct {
	// Handle is the opaque OS monitor handle (an HMONITOR on Windows).
	Handle uintptr
	Rect   geometry.Rect
	// Primary marks the monitor the OS considers primary.
	Primary bool
	// DeviceName is a stable identifier (e.g. "\\.\DISPLAY1").
	DeviceName string
}

// Snapshot is an immutable view of the monitor set at one point in
// time, paired with its canonical Signature.
type Snapshot struct {
	Monitors  []Monitor
	Signature string
}

// Find returns the monitor with the given handle, if any is present.
func (s Snapshot) Find(handle uintptr) (Monitor, bool) {
	for _, m := range s.Monitors {
		if m.Handle == handle {
			return m, true
		}
	}
	return Monitor{}, false
}

// At returns the monitor whose rectangle contains p, if any.
func (s Snapshot) At(p geometry.Point) (Monitor, bool) {
	for _, m := range s.Monitors {
		if m.Rect.Contains(p) {
			return m, true
		}
	}
	return Monitor{}, false
}
