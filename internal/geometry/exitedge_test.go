package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitEdge_Scenario1_EqualHeightHorizontalPair(t *testing.T) {
	a := Rect{0, 0, 1920, 1080}
	edge, _, along := ExitEdge(Point{1900, 864}, Point{1940, 864}, a)
	assert.Equal(t, EdgeRight, edge)
	assert.InDelta(t, 864, along, 1e-6)
}

func TestExitEdge_Scenario3_CornerTieBreakHorizontalDominant(t *testing.T) {
	a := Rect{0, 0, 1000, 1000}
	edge, tVal, along := ExitEdge(Point{500, 500}, Point{1600, 1600}, a)
	assert.Equal(t, EdgeRight, edge)
	assert.InDelta(t, 0.4545454545, tVal, 1e-6)
	assert.InDelta(t, 1000, along, 1e-6)
}

func TestExitEdge_Scenario4_CornerTieBreakVerticalDominant(t *testing.T) {
	a := Rect{0, 0, 1000, 1000}
	edge, _, _ := ExitEdge(Point{500, 500}, Point{1500, 1600}, a)
	assert.Equal(t, EdgeBottom, edge)
}

func TestExitEdge_NoExit(t *testing.T) {
	a := Rect{0, 0, 1920, 1080}
	edge, _, _ := ExitEdge(Point{100, 100}, Point{200, 200}, a)
	assert.Equal(t, EdgeNone, edge)
}

func TestExitEdge_StartingOnEdgeMovingInwardIsNotAnExit(t *testing.T) {
	a := Rect{0, 0, 1000, 1000}
	// p0 sits exactly on the left edge, moving rightward (into the rect).
	edge, _, _ := ExitEdge(Point{0, 500}, Point{500, 600}, a)
	assert.Equal(t, EdgeNone, edge)
}

func TestExitEdge_StartingOnEdgeMovingOutwardIsAnExit(t *testing.T) {
	a := Rect{0, 0, 1000, 1000}
	edge, tVal, along := ExitEdge(Point{0, 500}, Point{-50, 520}, a)
	assert.Equal(t, EdgeLeft, edge)
	assert.InDelta(t, 0, tVal, 1e-9)
	assert.InDelta(t, 500, along, 1e-6)
}

func TestExitEdge_ZeroMotionAxisSkipsPerpendicularEdges(t *testing.T) {
	a := Rect{0, 0, 1920, 1080}
	// Pure horizontal motion: top/bottom edges must never be considered,
	// even though their line equation would otherwise divide by zero.
	edge, _, _ := ExitEdge(Point{1900, 0}, Point{1940, 0}, a)
	assert.Equal(t, EdgeRight, edge)
}

func TestExitEdge_SmallestTWins(t *testing.T) {
	a := Rect{0, 0, 100, 100}
	// Reaches the bottom edge at t~0.053, well before the right edge's
	// line at t=0.5 (where y=525 is outside the rect anyway).
	edge, tVal, _ := ExitEdge(Point{50, 50}, Point{150, 1000}, a)
	assert.Equal(t, EdgeBottom, edge)
	assert.True(t, tVal < 0.2)
}

func TestExitEdge_PropertyExitIsOnRectBoundary(t *testing.T) {
	a := Rect{0, 0, 500, 300}
	cases := []struct{ p0, p1 Point }{
		{Point{250, 150}, Point{600, 150}},
		{Point{250, 150}, Point{250, -50}},
		{Point{250, 150}, Point{-100, 150}},
		{Point{250, 150}, Point{250, 500}},
	}
	for _, c := range cases {
		edge, tVal, along := ExitEdge(c.p0, c.p1, a)
		assert.NotEqual(t, EdgeNone, edge)
		assert.True(t, tVal >= 0 && tVal <= 1)
		switch edge {
		case EdgeLeft, EdgeRight:
			assert.True(t, along >= float64(a.Top) && along <= float64(a.Bottom))
		case EdgeTop, EdgeBottom:
			assert.True(t, along >= float64(a.Left) && along <= float64(a.Right))
		}
	}
}

func TestExitEdge_CornerWithEqualMagnitude(t *testing.T) {
	a := Rect{0, 0, 1000, 1000}
	// |dx| == |dy| exactly: horizontal dominant rule (>=) must pick Right.
	edge, _, _ := ExitEdge(Point{0, 0}, Point{2000, 2000}, a)
	assert.Equal(t, EdgeRight, edge)
}
