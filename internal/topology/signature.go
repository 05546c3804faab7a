package topology

import (
	"fmt"
	"sort"
	"strings"
)

// Signature produces a canonical string identifying a monitor
// arrangement, independent of OS enumeration order. Two arrangements
// compare equal (as multisets of rectangle, primary flag, device name)
// iff their signatures are equal.
func Signature(monitors []Monitor) string {
	sorted := make([]Monitor, len(monitors))
	copy(sorted, monitors)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.DeviceName != b.DeviceName {
			return a.DeviceName < b.DeviceName
		}
		if a.Rect.Left != b.Rect.Left {
			return a.Rect.Left < b.Rect.Left
		}
		return a.Rect.Top < b.Rect.Top
	})

	var b strings.Builder
	for _, m := range sorted {
		fmt.Fprintf(&b, "%d,%d,%d,%d,%t;%s;", m.Rect.Left, m.Rect.Top, m.Rect.Right, m.Rect.Bottom, m.Primary, m.DeviceName)
	}
	return b.String()
}
