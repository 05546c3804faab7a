package geometry

import "math"

// tolerance on the segment parameter t, absorbing floating-point rounding
// around the endpoints and edge boundaries of a crossing.
const epsilon = 1e-9

type candidate struct {
	edge  Edge
	t     float64
	along float64
}

// ExitEdge finds the edge of r through which the segment p0->p1 first
// leaves r. p0 is assumed inside or on the boundary of r; p1 outside.
// It returns EdgeNone if the segment never leaves r.
//
// along is the coordinate of the intersection on the crossed edge: the
// y for Left/Right, the x for Top/Bottom. t is the segment parameter
// at which the crossing occurs, in [0,1].
func ExitEdge(p0, p1 Point, r Rect) (edge Edge, t float64, along float64) {
	dx := float64(p1.X - p0.X)
	dy := float64(p1.Y - p0.Y)

	var candidates []candidate

	tryVertical := func(e Edge, x int32, outward func(dx float64) bool) {
		if dx == 0 {
			return
		}
		ct := (float64(x) - float64(p0.X)) / dx
		if ct < -epsilon || ct > 1+epsilon {
			return
		}
		if math.Abs(ct) <= epsilon && !outward(dx) {
			return
		}
		y := float64(p0.Y) + ct*dy
		if y < float64(r.Top)-epsilon || y > float64(r.Bottom)+epsilon {
			return
		}
		candidates = append(candidates, candidate{e, ct, y})
	}

	tryHorizontal := func(e Edge, y int32, outward func(dy float64) bool) {
		if dy == 0 {
			return
		}
		ct := (float64(y) - float64(p0.Y)) / dy
		if ct < -epsilon || ct > 1+epsilon {
			return
		}
		if math.Abs(ct) <= epsilon && !outward(dy) {
			return
		}
		x := float64(p0.X) + ct*dx
		if x < float64(r.Left)-epsilon || x > float64(r.Right)+epsilon {
			return
		}
		candidates = append(candidates, candidate{e, ct, x})
	}

	tryVertical(EdgeLeft, r.Left, func(dx float64) bool { return dx < 0 })
	tryVertical(EdgeRight, r.Right, func(dx float64) bool { return dx > 0 })
	tryHorizontal(EdgeTop, r.Top, func(dy float64) bool { return dy < 0 })
	tryHorizontal(EdgeBottom, r.Bottom, func(dy float64) bool { return dy > 0 })

	if len(candidates) == 0 {
		return EdgeNone, 0, 0
	}

	minT := candidates[0].t
	for _, c := range candidates[1:] {
		if c.t < minT {
			minT = c.t
		}
	}

	var tied []candidate
	for _, c := range candidates {
		if math.Abs(c.t-minT) <= epsilon {
			tied = append(tied, c)
		}
	}

	winner := tied[0]
	if len(tied) > 1 {
		// Dominant axis of travel breaks corner ties: |dx| >= |dy| favors
		// the Left/Right exit, otherwise Top/Bottom.
		wantLeftRight := math.Abs(dx) >= math.Abs(dy)
		for _, c := range tied {
			isLeftRight := c.edge == EdgeLeft || c.edge == EdgeRight
			if wantLeftRight == isLeftRight {
				winner = c
				break
			}
		}
	}

	return winner.edge, winner.t, winner.along
}
