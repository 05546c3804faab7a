package hook

import "github.com/cursorwarp/cursorwarp/internal/geometry"

// CursorTrace is the Hook Pipeline's last-known cursor state: a
// monitor handle and a position, jointly present or jointly absent
// (the sentinel zero value). It is invalidated whenever the topology
// changes and rewritten on every observed non-suppressed motion.
type CursorTrace struct {
	Present bool
	Monitor uintptr
	Point   geometry.Point
}

// Clear resets the trace to its absent sentinel state.
func (t *CursorTrace) Clear() {
	*t = CursorTrace{}
}

// Set records a jointly-present monitor/point pair.
func (t *CursorTrace) Set(monitor uintptr, p geometry.Point) {
	t.Present = true
	t.Monitor = monitor
	t.Point = p
}
