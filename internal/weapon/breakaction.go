package weapon

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/skyshot/armory/internal/core/event"
	"github.com/skyshot/armory/internal/physics"
	"github.com/skyshot/armory/internal/vmath"
)

// BreakConfig tunes the hinge of a break-action weapon. Angles are in
// degrees, measured as the barrels tip down about the pivot's X axis.
type BreakConfig struct {
	Pivot         mgl64.Vec3 // hinge point in the weapon frame
	BreakAngle    float64    // rest angle while open
	EjectAngle    float64    // extraction fires when opening past this
	LockAngle     float64    // closing below this locks the breach
	MaxAngle      float64
	EjectStrength float64
	Spring        float64 // pull toward the target angle, 1/s^2
	Damping       float64 // 1/s
	BarrelRadius  float64 // collider of the barrel assembly, 0 = none
}

// BreakAction is a weapon whose barrels hinge open to extract and reload.
type BreakAction struct {
	*Weapon
	bc BreakConfig

	barrel physics.BodyID

	locked   bool
	angle    float64
	angVel   float64
	target   float64
	torque   float64
	ejected  bool
	extracts int
}

// NewBreakAction creates a break-action weapon. Its barrel assembly gets a
// kinematic body that follows the hinge.
func NewBreakAction(cfg Config, bc BreakConfig, deps Deps) *BreakAction {
	if bc.MaxAngle <= 0 {
		bc.MaxAngle = 90
	}
	b := &BreakAction{Weapon: build(cfg, deps), bc: bc, locked: true}
	b.variant = b
	if !b.disabled && bc.BarrelRadius > 0 {
		b.barrel = b.bodies.CreateBody(physics.BodySpec{
			Pose:      b.Pose().Mul(b.frame()),
			Radius:    bc.BarrelRadius,
			Layer:     physics.LayerWeapon,
			Kinematic: true,
			Entity:    b,
		})
		b.bodies.IgnoreCollision(b.barrel, b.body, true)
	}
	return b
}

func (b *BreakAction) Angle() float64             { return b.angle }
func (b *BreakAction) Locked() bool               { return b.locked }
func (b *BreakAction) AmmoEjected() bool          { return b.ejected }
func (b *BreakAction) BarrelBody() physics.BodyID { return b.barrel }

// Extractions counts EjectAmmo calls that actually removed rounds.
func (b *BreakAction) Extractions() int { return b.extracts }

// ApplyHingeTorque adds angular acceleration to the hinge for the next
// tick. Negative values close the barrels.
func (b *BreakAction) ApplyHingeTorque(t float64) {
	if b.locked {
		return
	}
	b.torque += t
}

// ChamberLeftEjectZone fires extraction.
func (b *BreakAction) ChamberLeftEjectZone() { b.EjectAmmo() }

// ChamberEnteredLockZone closes the breach.
func (b *BreakAction) ChamberEnteredLockZone() { b.CloseBreach() }

// EjectAmmo extracts every loaded round once per open cycle.
func (b *BreakAction) EjectAmmo() {
	if b.disabled || !b.breachOpen || b.ejected {
		return
	}
	vel := b.bodies.Velocity(b.body)
	for i, r := range b.loaded {
		slot := r.Chamber()
		if slot < 0 {
			slot = i
		}
		cp := b.ChamberPose(slot)
		pivot := cp.Pos
		force := cp.Up().Mul(-b.bc.EjectStrength)
		if ex := b.cfg.Chambers[slot].Extractor; ex != nil {
			ep := cp.Mul(*ex)
			pivot = ep.Pos
			force = ep.Forward().Mul(b.bc.EjectStrength)
		}
		force = force.Add(vel)

		if b.barrel != 0 && r.Body != 0 {
			b.bodies.IgnoreCollision(r.Body, b.barrel, true)
		}
		r.Eject(force, pivot)
		event.Emit(b.bus, event.RoundEjected{Weapon: b.cfg.Name, Round: r.ID, Spent: r.Spent})
	}
	if len(b.loaded) > 0 {
		b.extracts++
		b.log.Debug("rounds extracted", zap.Int("count", len(b.loaded)))
	}
	b.loaded = b.loaded[:0]
	b.ejected = true
}

func (b *BreakAction) acceptsTrigger() bool { return true }
func (b *BreakAction) acceptsEject() bool   { return true }

func (b *BreakAction) onEject() {
	b.locked = false
	b.target = b.bc.BreakAngle
	if len(b.loaded) == 0 {
		b.ejected = true
	}
}

func (b *BreakAction) onCloseBreach() bool {
	b.locked = true
	b.target = 0
	b.angle, b.angVel, b.torque = 0, 0, 0
	b.ejected = false
	b.syncBarrel()
	return true
}

func (b *BreakAction) afterFire(Shot, bool) {}

// tick drives the hinge and raises the zone crossings.
func (b *BreakAction) tick(dt float64) {
	if b.locked {
		b.torque = 0
		b.syncBarrel()
		return
	}
	prev := b.angle
	acc := b.bc.Spring*(b.target-b.angle) - b.bc.Damping*b.angVel + b.torque
	b.torque = 0
	b.angVel += acc * dt
	b.angle += b.angVel * dt
	if b.angle < 0 {
		b.angle, b.angVel = 0, 0
	} else if b.angle > b.bc.MaxAngle {
		b.angle, b.angVel = b.bc.MaxAngle, 0
	}
	b.syncBarrel()

	if prev < b.bc.EjectAngle && b.angle >= b.bc.EjectAngle {
		b.ChamberLeftEjectZone()
	}
	if prev >= b.bc.LockAngle && b.angle < b.bc.LockAngle {
		b.ChamberEnteredLockZone()
	}
}

// frame rotates the barrel assembly about the pivot by the hinge angle.
func (b *BreakAction) frame() vmath.Pose {
	if b.angle == 0 {
		return vmath.Identity()
	}
	rot := mgl64.QuatRotate(mgl64.DegToRad(b.angle), vmath.AxisRight)
	return vmath.Pose{Pos: b.bc.Pivot.Sub(rot.Rotate(b.bc.Pivot)), Rot: rot}
}

func (b *BreakAction) syncBarrel() {
	if b.barrel == 0 {
		return
	}
	b.bodies.SetPose(b.barrel, b.Pose().Mul(b.frame()))
}
