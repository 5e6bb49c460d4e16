// Package vmath holds planar helpers over mgl64 for a Y-up world
// Gameplay happens on the XZ plane; Y is elevation only
package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the length below which a direction is treated as degenerate
const Epsilon = 1e-9

// Up is the world vertical axis
var Up = mgl64.Vec3{0, 1, 0}

// Flatten drops the elevation component
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], 0, v[2]}
}

// PlanarDistance returns the XZ distance between a and b
func PlanarDistance(a, b mgl64.Vec3) float64 {
	dx := b[0] - a[0]
	dz := b[2] - a[2]
	return math.Sqrt(dx*dx + dz*dz)
}

// PlanarDirection returns the unit XZ direction from a to b
// ok is false when the points coincide on the plane
func PlanarDirection(from, to mgl64.Vec3) (dir mgl64.Vec3, ok bool) {
	return SafeNormalize(Flatten(to.Sub(from)))
}

// SafeNormalize returns v scaled to unit length
// ok is false for degenerate vectors, which are returned as zero
func SafeNormalize(v mgl64.Vec3) (mgl64.Vec3, bool) {
	l := v.Len()
	if l < Epsilon {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// ClampAxes normalizes a movement input so diagonals are not faster
// Inputs are clamped to [-1, 1] first
func ClampAxes(x, z float64) (float64, float64) {
	x = mgl64.Clamp(x, -1, 1)
	z = mgl64.Clamp(z, -1, 1)
	l := math.Sqrt(x*x + z*z)
	if l < Epsilon {
		return 0, 0
	}
	return x / l, z / l
}
