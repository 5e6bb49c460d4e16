package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// WrapAngle maps a into (-π, π]
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// Heading returns the yaw that turns +Z onto dir, atan2(x, z)
func Heading(dir mgl64.Vec3) float64 {
	return math.Atan2(dir[0], dir[2])
}

// HeadingQuat returns the Y-axis rotation for a heading
func HeadingQuat(heading float64) mgl64.Quat {
	return mgl64.QuatRotate(heading, Up)
}

// QuatHeading extracts the heading of a Y-axis rotation
func QuatHeading(q mgl64.Quat) float64 {
	return Heading(q.Rotate(mgl64.Vec3{0, 0, 1}))
}

// HeadingDirection returns the unit XZ direction for a heading
func HeadingDirection(heading float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Sin(heading), 0, math.Cos(heading)}
}

// RotateToward moves current toward target by at most maxStep radians
// Takes the shorter arc and never overshoots; result is wrapped
func RotateToward(current, target, maxStep float64) float64 {
	diff := WrapAngle(target - current)
	if math.Abs(diff) <= maxStep {
		return WrapAngle(target)
	}
	if diff > 0 {
		return WrapAngle(current + maxStep)
	}
	return WrapAngle(current - maxStep)
}
