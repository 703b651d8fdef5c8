// Package core provides fundamental types and utilities for the simulation.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec is a 2D point or direction in world space.
type Vec struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

// Dist returns the Euclidean distance to another point.
func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Norm returns the unit-length vector pointing in the same direction.
// The zero vector normalizes to itself, so diagonal and axial inputs
// produce equal movement speed once scaled.
func (v Vec) Norm() Vec {
	if v.IsZero() {
		return v
	}
	mag := math.Hypot(v.X, v.Y)
	return Vec{X: v.X / mag, Y: v.Y / mag}
}

// Rect is an axis-aligned bounding box in world space.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects reports whether this rectangle overlaps another.
// Half-open intervals: rectangles that merely share an edge do not overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Contains reports whether the point is inside this rectangle.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Translate returns the rectangle shifted by the given offset.
func (r Rect) Translate(by Vec) Rect {
	return Rect{X: r.X + by.X, Y: r.Y + by.Y, W: r.W, H: r.H}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// NearestIndex returns the index of the anchor closest to from, restricted to
// anchors within maxRadius. Returns -1 when no anchor qualifies. Exact ties
// resolve to the first-seen candidate; with floating positions exact ties do
// not occur in practice.
func NearestIndex(anchors []Vec, from Vec, maxRadius float64) int {
	best := -1
	bestDist := maxRadius
	for i, a := range anchors {
		d := from.Dist(a)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
