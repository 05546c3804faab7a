package topology

import (
	"fmt"

	"github.com/cursorwarp/cursorwarp/internal/geometry"
)

// Model owns the current Snapshot and is the exclusive mutator of the
// monitor set. It is safe for use only from the single dispatcher
// thread; it holds no lock.
type Model struct {
	backend Backend
	current Snapshot

	// onChange is invoked, on the same goroutine as Refresh, whenever
	// the signature actually changes. The hook pipeline wires this to
	// invalidate its Cursor Trace.
	onChange func(Snapshot)
}

// NewModel creates a Model around the given backend. The model holds
// no monitors until Refresh is called.
func NewModel(backend Backend) *Model {
	return &Model{backend: backend}
}

// OnChange registers a callback invoked after every Refresh that
// changes the signature. Only one callback is supported; a later call
// replaces the previous one.
func (m *Model) OnChange(fn func(Snapshot)) {
	m.onChange = fn
}

// Refresh enumerates monitors and, if the signature differs from the
// currently held one, atomically replaces the snapshot. It returns
// whether the topology changed.
func (m *Model) Refresh() (bool, error) {
	monitors, err := m.backend.EnumerateMonitors()
	if err != nil {
		return false, fmt.Errorf("enumerate monitors: %w", err)
	}
	if len(monitors) == 0 {
		return false, fmt.Errorf("enumerate monitors: no monitors detected")
	}

	sig := Signature(monitors)
	if sig == m.current.Signature {
		return false, nil
	}

	next := Snapshot{Monitors: monitors, Signature: sig}
	m.current = next
	if m.onChange != nil {
		m.onChange(next)
	}
	return true, nil
}

// Current returns the most recently published snapshot. Safe to call
// at any point after at least one successful Refresh.
func (m *Model) Current() Snapshot {
	return m.current
}

// Find looks up a monitor by handle in the current snapshot.
func (m *Model) Find(handle uintptr) (Monitor, bool) {
	return m.current.Find(handle)
}

// At looks up the monitor containing p in the current snapshot.
func (m *Model) At(p geometry.Point) (Monitor, bool) {
	return m.current.At(p)
}
