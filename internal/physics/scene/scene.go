// Package scene is a small in-memory physics world: static spheres and boxes
// plus point-mass rigid bodies with sphere colliders. It answers the sweeps the
// projectile simulator needs and integrates ejected shells and weapon bodies.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/skyshot/armory/internal/physics"
	"github.com/skyshot/armory/internal/vmath"
)

// Shape is a static collider primitive.
type Shape uint8

const (
	ShapeSphere Shape = iota
	ShapeBox
)

// Collider is a static piece of geometry.
type Collider struct {
	Shape  Shape
	Center mgl64.Vec3 // sphere
	Radius float64    // sphere
	Min    mgl64.Vec3 // box
	Max    mgl64.Vec3 // box
	Layer  physics.Layer
	Entity any
}

type body struct {
	id           physics.BodyID
	pose         vmath.Pose
	vel          mgl64.Vec3
	angVel       mgl64.Vec3
	accel        mgl64.Vec3
	mass         float64
	radius       float64
	layer        physics.Layer
	kinematic    bool
	colliderOn   bool
	gravityScale float64
	maxAngSpeed  float64
	entity       any
}

func (b *body) inertia() float64 {
	i := 0.4 * b.mass * b.radius * b.radius
	if i < 1e-3 {
		i = 1e-3
	}
	return i
}

// World implements physics.World.
type World struct {
	gravity mgl64.Vec3
	statics []Collider
	bodies  map[physics.BodyID]*body
	order   []physics.BodyID
	ignored map[[2]physics.BodyID]struct{}
	next    physics.BodyID
	log     *zap.Logger
}

// New creates an empty world.
func New(gravity mgl64.Vec3, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	return &World{
		gravity: gravity,
		bodies:  make(map[physics.BodyID]*body, 64),
		ignored: make(map[[2]physics.BodyID]struct{}),
		log:     log,
	}
}

// AddSphere adds a static sphere collider.
func (w *World) AddSphere(center mgl64.Vec3, radius float64, layer physics.Layer, entity any) {
	w.statics = append(w.statics, Collider{Shape: ShapeSphere, Center: center, Radius: radius, Layer: layer, Entity: entity})
}

// AddBox adds a static axis-aligned box collider.
func (w *World) AddBox(min, max mgl64.Vec3, layer physics.Layer, entity any) {
	w.statics = append(w.statics, Collider{Shape: ShapeBox, Min: min, Max: max, Layer: layer, Entity: entity})
}

// Colliders returns the static geometry.
func (w *World) Colliders() []Collider { return w.statics }

// BodyCount returns the number of live bodies.
func (w *World) BodyCount() int { return len(w.bodies) }

// EachBody visits live bodies in creation order.
func (w *World) EachBody(fn func(id physics.BodyID, pose vmath.Pose, radius float64, layer physics.Layer)) {
	for _, id := range w.order {
		b := w.bodies[id]
		fn(id, b.pose, b.radius, b.layer)
	}
}

func (w *World) Gravity() mgl64.Vec3 { return w.gravity }

func (w *World) CreateBody(spec physics.BodySpec) physics.BodyID {
	w.next++
	mass := spec.Mass
	if mass <= 0 {
		mass = 1
	}
	b := &body{
		id:           w.next,
		pose:         spec.Pose,
		mass:         mass,
		radius:       spec.Radius,
		layer:        spec.Layer,
		kinematic:    spec.Kinematic,
		colliderOn:   spec.Radius > 0,
		gravityScale: 1,
		entity:       spec.Entity,
	}
	w.bodies[b.id] = b
	w.order = append(w.order, b.id)
	return b.id
}

func (w *World) RemoveBody(id physics.BodyID) {
	if _, ok := w.bodies[id]; !ok {
		return
	}
	delete(w.bodies, id)
	for i, o := range w.order {
		if o == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	for k := range w.ignored {
		if k[0] == id || k[1] == id {
			delete(w.ignored, k)
		}
	}
}

func (w *World) Pose(id physics.BodyID) vmath.Pose {
	if b, ok := w.bodies[id]; ok {
		return b.pose
	}
	return vmath.Identity()
}

func (w *World) SetPose(id physics.BodyID, p vmath.Pose) {
	if b, ok := w.bodies[id]; ok {
		b.pose = p
	}
}

func (w *World) Velocity(id physics.BodyID) mgl64.Vec3 {
	if b, ok := w.bodies[id]; ok {
		return b.vel
	}
	return mgl64.Vec3{}
}

func (w *World) SetVelocity(id physics.BodyID, v mgl64.Vec3) {
	if b, ok := w.bodies[id]; ok {
		b.vel = v
	}
}

func (w *World) ApplyImpulseAt(id physics.BodyID, impulse, point mgl64.Vec3) {
	b, ok := w.bodies[id]
	if !ok || b.kinematic {
		return
	}
	b.vel = b.vel.Add(impulse.Mul(1 / b.mass))
	arm := point.Sub(b.pose.Pos)
	b.angVel = b.clampSpin(b.angVel.Add(arm.Cross(impulse).Mul(1 / b.inertia())))
}

func (w *World) ApplyTorqueImpulse(id physics.BodyID, torque mgl64.Vec3) {
	b, ok := w.bodies[id]
	if !ok || b.kinematic {
		return
	}
	b.angVel = b.clampSpin(b.angVel.Add(torque.Mul(1 / b.inertia())))
}

func (w *World) AddAcceleration(id physics.BodyID, a mgl64.Vec3) {
	if b, ok := w.bodies[id]; ok {
		b.accel = b.accel.Add(a)
	}
}

func (w *World) SetGravityScale(id physics.BodyID, scale float64) {
	if b, ok := w.bodies[id]; ok {
		b.gravityScale = scale
	}
}

func (w *World) SetKinematic(id physics.BodyID, kinematic bool) {
	if b, ok := w.bodies[id]; ok {
		b.kinematic = kinematic
		if kinematic {
			b.vel, b.angVel = mgl64.Vec3{}, mgl64.Vec3{}
		}
	}
}

func (w *World) SetColliderEnabled(id physics.BodyID, enabled bool) {
	if b, ok := w.bodies[id]; ok {
		b.colliderOn = enabled && b.radius > 0
	}
}

func (w *World) SetMaxAngularSpeed(id physics.BodyID, radPerSec float64) {
	if b, ok := w.bodies[id]; ok {
		b.maxAngSpeed = radPerSec
		b.angVel = b.clampSpin(b.angVel)
	}
}

func (w *World) IgnoreCollision(a, b physics.BodyID, ignore bool) {
	key := pairKey(a, b)
	if ignore {
		w.ignored[key] = struct{}{}
	} else {
		delete(w.ignored, key)
	}
}

// Ignoring reports whether collisions between a and b are suppressed.
func (w *World) Ignoring(a, b physics.BodyID) bool {
	_, ok := w.ignored[pairKey(a, b)]
	return ok
}

func pairKey(a, b physics.BodyID) [2]physics.BodyID {
	if a > b {
		a, b = b, a
	}
	return [2]physics.BodyID{a, b}
}

func (b *body) clampSpin(v mgl64.Vec3) mgl64.Vec3 {
	if b.maxAngSpeed <= 0 {
		return v
	}
	return vmath.ClampMagnitude(v, b.maxAngSpeed)
}

// Step integrates every dynamic body by dt seconds and resolves contacts
// against static geometry.
func (w *World) Step(dt float64) {
	for _, id := range w.order {
		b := w.bodies[id]
		if b.kinematic {
			b.accel = mgl64.Vec3{}
			continue
		}
		acc := w.gravity.Mul(b.gravityScale).Add(b.accel)
		b.accel = mgl64.Vec3{}
		b.vel = b.vel.Add(acc.Mul(dt))
		b.pose.Pos = b.pose.Pos.Add(b.vel.Mul(dt))

		if spin := b.angVel.Len(); spin > 1e-12 {
			step := mgl64.QuatRotate(spin*dt, b.angVel.Mul(1/spin))
			b.pose.Rot = step.Mul(b.currentRot()).Normalize()
		}
		if b.colliderOn {
			w.resolveStatics(b)
		}
	}
}

func (b *body) currentRot() mgl64.Quat {
	if b.pose.Rot.W == 0 && b.pose.Rot.V == (mgl64.Vec3{}) {
		return mgl64.QuatIdent()
	}
	return b.pose.Rot
}

// resolveStatics pushes a body out of overlapping static geometry and
// removes the velocity component into the surface.
func (w *World) resolveStatics(b *body) {
	for _, c := range w.statics {
		var closest mgl64.Vec3
		switch c.Shape {
		case ShapeSphere:
			d := b.pose.Pos.Sub(c.Center)
			l := d.Len()
			if l < 1e-12 {
				continue
			}
			closest = c.Center.Add(d.Mul(c.Radius / l))
		case ShapeBox:
			closest = clampToBox(b.pose.Pos, c.Min, c.Max)
		}
		delta := b.pose.Pos.Sub(closest)
		dist := delta.Len()
		if dist >= b.radius || dist < 1e-12 {
			continue
		}
		n := delta.Mul(1 / dist)
		b.pose.Pos = closest.Add(n.Mul(b.radius))
		if into := b.vel.Dot(n); into < 0 {
			b.vel = b.vel.Sub(n.Mul(into))
		}
	}
}

func clampToBox(p, min, max mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		mgl64.Clamp(p[0], min[0], max[0]),
		mgl64.Clamp(p[1], min[1], max[1]),
		mgl64.Clamp(p[2], min[2], max[2]),
	}
}

var _ physics.World = (*World)(nil)

// infinity for slab tests
var inf = math.Inf(1)
