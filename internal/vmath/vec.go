package vmath

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Normalize returns the unit vector of v, or zero when v has no length.
func Normalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < 1e-12 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// ClampMagnitude shortens v to at most max.
func ClampMagnitude(v mgl64.Vec3, max float64) mgl64.Vec3 {
	l := v.Len()
	if l <= max || l < 1e-12 {
		return v
	}
	return v.Mul(max / l)
}

// MoveTowards moves from current toward target by at most maxDelta.
func MoveTowards(current, target mgl64.Vec3, maxDelta float64) mgl64.Vec3 {
	d := target.Sub(current)
	dist := d.Len()
	if dist <= maxDelta || dist < 1e-12 {
		return target
	}
	return current.Add(d.Mul(maxDelta / dist))
}

// Project returns the component of v along axis.
func Project(v, axis mgl64.Vec3) mgl64.Vec3 {
	sq := axis.Dot(axis)
	if sq < 1e-24 {
		return mgl64.Vec3{}
	}
	return axis.Mul(v.Dot(axis) / sq)
}

// InsideUnitCircle samples a uniformly distributed point in the unit disc.
func InsideUnitCircle(rng *rand.Rand) (x, y float64) {
	r := math.Sqrt(rng.Float64())
	theta := rng.Float64() * 2 * math.Pi
	return r * math.Cos(theta), r * math.Sin(theta)
}

// InverseLerp returns where v sits between a and b, unclamped.
func InverseLerp(a, b, v float64) float64 {
	if a == b {
		if v >= b {
			return 1
		}
		return 0
	}
	return (v - a) / (b - a)
}

// Clamp01 clamps t into [0, 1].
func Clamp01(t float64) float64 {
	return mgl64.Clamp(t, 0, 1)
}

// LerpFloat linearly blends a toward b.
func LerpFloat(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec linearly blends a toward b without clamping t.
func LerpVec(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
