package core

import (
	"math"
	"testing"
)

func TestCircleIntersectsRect(t *testing.T) {
	rect := NewRect(10, 10, 20, 10)

	tests := []struct {
		name     string
		center   Vec2
		radius   float64
		expected bool
	}{
		{
			name:     "center inside rect",
			center:   Vec2{20, 15},
			radius:   1,
			expected: true,
		},
		{
			name:     "overlapping left edge",
			center:   Vec2{9, 15},
			radius:   2,
			expected: true,
		},
		{
			name:     "clearly outside",
			center:   Vec2{0, 0},
			radius:   3,
			expected: false,
		},
		{
			name:     "touching edge exactly (tangent, non-colliding)",
			center:   Vec2{10 - 2, 15},
			radius:   2,
			expected: false,
		},
		{
			name:     "just past tangency",
			center:   Vec2{10 - 2 + 0.001, 15},
			radius:   2,
			expected: true,
		},
		{
			name:     "above top edge, touching",
			center:   Vec2{20, 10 - 1.5},
			radius:   1.5,
			expected: false,
		},
		{
			name:     "below bottom edge, overlapping",
			center:   Vec2{20, 20.5},
			radius:   1,
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := CircleIntersectsRect(tc.center, tc.radius, rect)
			if result != tc.expected {
				t.Errorf("CircleIntersectsRect(%v, %v, %v) = %v, expected %v",
					tc.center, tc.radius, rect, result, tc.expected)
			}
		})
	}
}

// Reflecting both shapes across an axis must not change the result.
func TestCircleIntersectsRectMirrorSymmetry(t *testing.T) {
	cases := []struct {
		center Vec2
		radius float64
		rect   Rect
	}{
		{Vec2{5, 5}, 2, NewRect(3, 2, 6, 4)},
		{Vec2{-1, 7}, 1.5, NewRect(0, 6, 4, 3)},
		{Vec2{10, 0}, 0.5, NewRect(9, -1, 2, 2)},
		{Vec2{2.5, 2.5}, 3, NewRect(10, 10, 5, 5)},
	}

	mirrorX := func(c Vec2, r Rect) (Vec2, Rect) {
		return Vec2{-c.X, c.Y}, NewRect(-r.Right(), r.Y, r.W, r.H)
	}
	mirrorY := func(c Vec2, r Rect) (Vec2, Rect) {
		return Vec2{c.X, -c.Y}, NewRect(r.X, -r.Bottom(), r.W, r.H)
	}

	for _, tc := range cases {
		orig := CircleIntersectsRect(tc.center, tc.radius, tc.rect)

		cx, rx := mirrorX(tc.center, tc.rect)
		if got := CircleIntersectsRect(cx, tc.radius, rx); got != orig {
			t.Errorf("x-mirror changed result for %v r=%v %v: %v != %v",
				tc.center, tc.radius, tc.rect, got, orig)
		}

		cy, ry := mirrorY(tc.center, tc.rect)
		if got := CircleIntersectsRect(cy, tc.radius, ry); got != orig {
			t.Errorf("y-mirror changed result for %v r=%v %v: %v != %v",
				tc.center, tc.radius, tc.rect, got, orig)
		}
	}
}

// A circle centered diagonally off a rectangle corner collides iff its
// distance to the corner is strictly less than its radius.
func TestCircleIntersectsRectCornerBoundary(t *testing.T) {
	rect := NewRect(0, 0, 10, 10)
	radius := 2.0

	// Unit diagonal away from the top-left corner.
	dx, dy := -1/math.Sqrt2, -1/math.Sqrt2

	tests := []struct {
		name     string
		distance float64
		expected bool
	}{
		{"exactly at radius", radius, false},
		{"just inside radius", radius * 0.999, true},
		{"well inside radius", radius / 2, true},
		{"beyond radius", radius * 1.5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			center := Vec2{dx * tc.distance, dy * tc.distance}
			result := CircleIntersectsRect(center, radius, rect)
			if result != tc.expected {
				t.Errorf("distance %v: got %v, expected %v", tc.distance, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}

	c := r.Center()
	if c.X != 15 || c.Y != 17.5 {
		t.Errorf("Center() = %v, expected (15, 17.5)", c)
	}
}

func TestVec2(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, -2}

	if got := a.Add(b); got != (Vec2{4, 2}) {
		t.Errorf("Add = %v, expected (4, 2)", got)
	}
	if got := a.Sub(b); got != (Vec2{2, 6}) {
		t.Errorf("Sub = %v, expected (2, 6)", got)
	}
	if got := a.Scale(2); got != (Vec2{6, 8}) {
		t.Errorf("Scale = %v, expected (6, 8)", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len = %v, expected 5", got)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{0.0, 0.0, 10.0, 0.0},
		{10.0, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Clamp(15, 0, 10) != 10 {
		t.Error("Clamp(15, 0, 10) should be 10")
	}
}
