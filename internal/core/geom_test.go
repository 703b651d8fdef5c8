package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent edges do not overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "sub-pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVecNorm(t *testing.T) {
	tests := []struct {
		name string
		in   Vec
		want Vec
	}{
		{"zero stays zero", Vec{}, Vec{}},
		{"axial unchanged", Vec{X: 1}, Vec{X: 1}},
		{"diagonal normalized", Vec{X: 1, Y: 1}, Vec{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2}},
		{"negative diagonal", Vec{X: -1, Y: 1}, Vec{X: -math.Sqrt2 / 2, Y: math.Sqrt2 / 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Norm()
			if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
				t.Errorf("Norm() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestNearestIndex(t *testing.T) {
	anchors := []Vec{
		{X: 100, Y: 0},
		{X: 30, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 0}, // exact duplicate of the previous anchor
	}

	t.Run("closest within radius", func(t *testing.T) {
		if got := NearestIndex(anchors, Vec{}, 50); got != 2 {
			t.Errorf("NearestIndex() = %d, expected 2", got)
		}
	})

	t.Run("first-seen wins on exact tie", func(t *testing.T) {
		got := NearestIndex([]Vec{{X: 10}, {X: 10}}, Vec{}, 50)
		if got != 0 {
			t.Errorf("NearestIndex() = %d, expected 0", got)
		}
	})

	t.Run("none within radius", func(t *testing.T) {
		if got := NearestIndex(anchors, Vec{}, 5); got != -1 {
			t.Errorf("NearestIndex() = %d, expected -1", got)
		}
	})

	t.Run("empty candidates", func(t *testing.T) {
		if got := NearestIndex(nil, Vec{}, 50); got != -1 {
			t.Errorf("NearestIndex() = %d, expected -1", got)
		}
	})
}

func TestInputFrameVector(t *testing.T) {
	f := NewInputFrame()
	if !f.Vector().IsZero() {
		t.Fatal("empty frame should produce zero vector")
	}

	f.Press(KeyUp)
	f.Press(KeyRight)
	v := f.Vector()
	if math.Abs(math.Hypot(v.X, v.Y)-1) > 1e-9 {
		t.Errorf("diagonal vector length = %f, expected 1", math.Hypot(v.X, v.Y))
	}
	if v.X <= 0 || v.Y >= 0 {
		t.Errorf("up+right should move +x/-y, got %+v", v)
	}

	f.Press(KeyDown)
	v = f.Vector()
	if v.Y != 0 {
		t.Errorf("opposite keys should cancel, got y=%f", v.Y)
	}

	f.Clear()
	if !f.Vector().IsZero() {
		t.Error("Clear should release all keys")
	}
}
