// Package physics declares the world-query and rigid-body collaborators the
// weapon simulation consumes. The reference in-memory implementation lives
// in physics/scene.
package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/skyshot/armory/internal/vmath"
)

//go:generate go tool mockgen -destination=./mocks/physics_mock.go -package=mocks . Query,Bodies

// Layer is a collision category.
type Layer uint8

const (
	LayerDefault Layer = iota
	LayerLevel         // coarse level structure, skipped by radius sweeps
	LayerProjectile
	LayerWeapon
	LayerPlayer
	LayerShell
	LayerTarget
)

var layerNames = [...]string{"default", "level", "projectile", "weapon", "player", "shell", "target"}

func (l Layer) String() string {
	if int(l) < len(layerNames) {
		return layerNames[l]
	}
	return "unknown"
}

// ParseLayer maps a layer name back to its Layer.
func ParseLayer(name string) (Layer, bool) {
	for i, n := range layerNames {
		if n == name {
			return Layer(i), true
		}
	}
	return 0, false
}

// LayerMask is a set of layers.
type LayerMask uint32

// MaskOf builds a mask from layers.
func MaskOf(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		m |= 1 << l
	}
	return m
}

func (m LayerMask) Has(l Layer) bool            { return m&(1<<l) != 0 }
func (m LayerMask) With(l Layer) LayerMask      { return m | 1<<l }
func (m LayerMask) Union(o LayerMask) LayerMask { return m | o }

// BodyID identifies a rigid body. Zero means no body.
type BodyID uint32

// Hit is the nearest contact returned by a sweep.
type Hit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
	Body     BodyID
	Layer    Layer
	Entity   any
}

// Query answers swept collision tests against the world.
type Query interface {
	// Raycast sweeps a zero-radius segment from -> to.
	Raycast(from, to mgl64.Vec3, exclude LayerMask) (Hit, bool)
	// SphereCast sweeps a sphere from origin along dir for maxDist.
	SphereCast(origin mgl64.Vec3, radius float64, dir mgl64.Vec3, maxDist float64, exclude LayerMask) (Hit, bool)
	Gravity() mgl64.Vec3
}

// BodySpec describes a body to create.
type BodySpec struct {
	Pose      vmath.Pose
	Mass      float64
	Radius    float64 // sphere collider; 0 = no collider
	Layer     Layer
	Kinematic bool
	Entity    any
}

// Bodies manipulates rigid bodies.
type Bodies interface {
	CreateBody(spec BodySpec) BodyID
	RemoveBody(id BodyID)
	Pose(id BodyID) vmath.Pose
	SetPose(id BodyID, p vmath.Pose)
	Velocity(id BodyID) mgl64.Vec3
	SetVelocity(id BodyID, v mgl64.Vec3)
	ApplyImpulseAt(id BodyID, impulse, point mgl64.Vec3)
	ApplyTorqueImpulse(id BodyID, torque mgl64.Vec3)
	AddAcceleration(id BodyID, a mgl64.Vec3)
	SetGravityScale(id BodyID, scale float64)
	SetKinematic(id BodyID, kinematic bool)
	SetColliderEnabled(id BodyID, enabled bool)
	SetMaxAngularSpeed(id BodyID, radPerSec float64)
	IgnoreCollision(a, b BodyID, ignore bool)
}

// World is the full physics collaborator.
type World interface {
	Query
	Bodies
}
