package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Local axes. Forward is +Z, up is +Y, right is +X.
var (
	AxisForward = mgl64.Vec3{0, 0, 1}
	AxisUp      = mgl64.Vec3{0, 1, 0}
	AxisRight   = mgl64.Vec3{1, 0, 0}
)

// Pose is a rigid transform: rotation followed by translation.
type Pose struct {
	Pos mgl64.Vec3
	Rot mgl64.Quat
}

// Identity returns the pose at the origin with no rotation.
func Identity() Pose {
	return Pose{Rot: mgl64.QuatIdent()}
}

// At returns an unrotated pose at p.
func At(p mgl64.Vec3) Pose {
	return Pose{Pos: p, Rot: mgl64.QuatIdent()}
}

func (p Pose) Forward() mgl64.Vec3 { return p.rot().Rotate(AxisForward) }
func (p Pose) Up() mgl64.Vec3      { return p.rot().Rotate(AxisUp) }
func (p Pose) Right() mgl64.Vec3   { return p.rot().Rotate(AxisRight) }

// Mul composes p with a child pose expressed in p's local space.
func (p Pose) Mul(local Pose) Pose {
	r := p.rot()
	return Pose{
		Pos: p.Pos.Add(r.Rotate(local.Pos)),
		Rot: r.Mul(local.rot()).Normalize(),
	}
}

// TransformPoint maps a local point into world space.
func (p Pose) TransformPoint(v mgl64.Vec3) mgl64.Vec3 {
	return p.Pos.Add(p.rot().Rotate(v))
}

// InverseTransformPoint maps a world point into p's local space.
func (p Pose) InverseTransformPoint(v mgl64.Vec3) mgl64.Vec3 {
	return p.rot().Inverse().Rotate(v.Sub(p.Pos))
}

// TransformDirection rotates a local direction into world space.
func (p Pose) TransformDirection(v mgl64.Vec3) mgl64.Vec3 {
	return p.rot().Rotate(v)
}

// InverseTransformDirection maps a world direction into p's local space.
func (p Pose) InverseTransformDirection(v mgl64.Vec3) mgl64.Vec3 {
	return p.rot().Inverse().Rotate(v)
}

// Lerp blends two poses; rotation uses normalized lerp.
func Lerp(a, b Pose, t float64) Pose {
	return Pose{
		Pos: a.Pos.Add(b.Pos.Sub(a.Pos).Mul(t)),
		Rot: mgl64.QuatNlerp(a.rot(), b.rot(), t),
	}
}

// zero-value quaternions are treated as identity so literal poses stay usable.
func (p Pose) rot() mgl64.Quat {
	if p.Rot.W == 0 && p.Rot.V == (mgl64.Vec3{}) {
		return mgl64.QuatIdent()
	}
	return p.Rot
}

// LookRotation returns the rotation whose forward axis points along dir,
// keeping up as close to the given up vector as possible.
func LookRotation(dir, up mgl64.Vec3) mgl64.Quat {
	if dir.Len() < 1e-12 {
		return mgl64.QuatIdent()
	}
	z := dir.Normalize()
	x := up.Cross(z)
	if x.Len() < 1e-9 {
		// dir parallel to up; pick any perpendicular
		x = AxisRight.Cross(z)
		if x.Len() < 1e-9 {
			x = AxisForward.Cross(z)
		}
	}
	x = x.Normalize()
	y := z.Cross(x)
	m := mgl64.Mat3FromCols(x, y, z)
	return mgl64.Mat4ToQuat(m.Mat4()).Normalize()
}

// Euler builds a local rotation from pitch (about X) then yaw (about Y),
// both in degrees. Roll is never applied.
func Euler(pitchDeg, yawDeg float64) mgl64.Quat {
	yaw := mgl64.QuatRotate(mgl64.DegToRad(yawDeg), AxisUp)
	pitch := mgl64.QuatRotate(mgl64.DegToRad(pitchDeg), AxisRight)
	return yaw.Mul(pitch)
}

// AngleDeg returns the unsigned angle between a and b in degrees.
func AngleDeg(a, b mgl64.Vec3) float64 {
	la, lb := a.Len(), b.Len()
	if la < 1e-12 || lb < 1e-12 {
		return 0
	}
	c := mgl64.Clamp(a.Dot(b)/(la*lb), -1, 1)
	return mgl64.RadToDeg(math.Acos(c))
}
