package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ClosestPointOnSegment returns the point of segment ab nearest to p and its parameter t in [0, 1]
// A zero-length segment yields a with t = 0
func ClosestPointOnSegment(a, b, p mgl64.Vec3) (mgl64.Vec3, float64) {
	ab := b.Sub(a)
	lenSq := ab.LenSqr()
	if lenSq < Epsilon*Epsilon {
		return a, 0
	}
	t := mgl64.Clamp(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	return a.Add(ab.Mul(t)), t
}

// SegmentSphereHit reports whether segment ab passes within radius of center
// t is the segment parameter where ab first enters the sphere, 0 when a starts inside
func SegmentSphereHit(a, b, center mgl64.Vec3, radius float64) (t float64, hit bool) {
	closest, tc := ClosestPointOnSegment(a, b, center)
	r2 := radius * radius
	if closest.Sub(center).LenSqr() >= r2 {
		return tc, false
	}

	ac := center.Sub(a)
	if ac.LenSqr() < r2 {
		return 0, true
	}

	ab := b.Sub(a)
	length := ab.Len()
	along := ac.Dot(ab) / length
	perp2 := ac.LenSqr() - along*along
	entry := (along - math.Sqrt(max(r2-perp2, 0))) / length
	return mgl64.Clamp(entry, 0, 1), true
}
