package geometry

import "math"

// Remap computes the destination-interior point that preserves the
// percentage along the shared edge between src and dst, for a crossing
// that exited src through edge at coordinate along (the y for
// Left/Right, the x for Top/Bottom).
//
// ok is false when src and dst are not adjacent on the cross-edge axis
// (zero or negative overlap, or zero extent on that axis); the caller
// must let the original event pass through unmodified in that case.
func Remap(src, dst Rect, edge Edge, along float64) (pt Point, ok bool) {
	var s0, s1, d0, d1 int32
	vertical := edge == EdgeLeft || edge == EdgeRight
	if vertical {
		s0, s1 = src.Top, src.Bottom
		d0, d1 = dst.Top, dst.Bottom
	} else {
		s0, s1 = src.Left, src.Right
		d0, d1 = dst.Left, dst.Right
	}

	if s1 <= s0 || d1 <= d0 {
		return Point{}, false
	}

	overlapLo := maxInt32(s0, d0)
	overlapHi := minInt32(s1, d1)
	if overlapHi-overlapLo <= 0 {
		return Point{}, false
	}

	pct := (along - float64(s0)) / float64(s1-s0)
	if pct < 0 {
		pct = 0
	} else if pct > 1 {
		pct = 1
	}

	mapped := d0 + roundAwayFromZero(pct*float64(d1-d0))

	lo := d0 + 1
	hi := d1 - 2
	if hi < lo {
		hi = lo
	}
	if mapped < lo {
		mapped = lo
	} else if mapped > hi {
		mapped = hi
	}

	switch edge {
	case EdgeRight:
		return Point{X: dst.Left + 1, Y: mapped}, true
	case EdgeLeft:
		return Point{X: dst.Right - 2, Y: mapped}, true
	case EdgeBottom:
		return Point{X: mapped, Y: dst.Top + 1}, true
	case EdgeTop:
		return Point{X: mapped, Y: dst.Bottom - 2}, true
	default:
		return Point{}, false
	}
}

func roundAwayFromZero(v float64) int32 {
	if v >= 0 {
		return int32(math.Floor(v + 0.5))
	}
	return int32(math.Ceil(v - 0.5))
}

func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func minInt32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
