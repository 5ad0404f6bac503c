// Package player holds the explicit firer context handed to weapons and
// modifiers: tracking origin, head and hand poses, wing axes and the body
// that receives knockback.
package player

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/skyshot/armory/internal/feedback"
	"github.com/skyshot/armory/internal/physics"
	"github.com/skyshot/armory/internal/vmath"
)

// PoseSource reports tracked hand poses in world space.
type PoseSource interface {
	HandPose(h feedback.Hand) vmath.Pose
}

// Player is the firer.
type Player struct {
	Body physics.BodyID

	origin vmath.Pose
	head   vmath.Pose
	hands  [2]vmath.Pose
	wings  [2]float64

	mass   float64
	bodies physics.Bodies
	shaker feedback.Shaker
	log    *zap.Logger
}

// New creates a player. A zero body disables knockback.
func New(body physics.BodyID, mass float64, bodies physics.Bodies, shaker feedback.Shaker, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	if shaker == nil {
		shaker = feedback.Nop{}
	}
	if mass <= 0 {
		mass = 1
	}
	if body == 0 || bodies == nil {
		log.Warn("player has no physics body, knockback disabled")
	}
	return &Player{
		Body:   body,
		origin: vmath.Identity(),
		head:   vmath.Identity(),
		hands:  [2]vmath.Pose{vmath.Identity(), vmath.Identity()},
		mass:   mass,
		bodies: bodies,
		shaker: shaker,
		log:    log,
	}
}

// Origin is the tracking-space origin in world space.
func (p *Player) Origin() vmath.Pose     { return p.origin }
func (p *Player) SetOrigin(o vmath.Pose) { p.origin = o }

func (p *Player) Head() vmath.Pose     { return p.head }
func (p *Player) SetHead(h vmath.Pose) { p.head = h }

func (p *Player) HandPose(h feedback.Hand) vmath.Pose       { return p.hands[h&1] }
func (p *Player) SetHandPose(h feedback.Hand, v vmath.Pose) { p.hands[h&1] = v }

// Wing returns the wing control axis for a hand, in [0,1].
func (p *Player) Wing(h feedback.Hand) float64 { return p.wings[h&1] }

func (p *Player) SetWing(h feedback.Hand, v float64) { p.wings[h&1] = vmath.Clamp01(v) }

// AimDirection is the direction the player is looking.
func (p *Player) AimDirection() mgl64.Vec3 { return p.head.Forward() }

// ToLocal maps a world point into tracking space.
func (p *Player) ToLocal(world mgl64.Vec3) mgl64.Vec3 {
	return p.origin.InverseTransformPoint(world)
}

// ApplyKnockback adds force/mass to the player's velocity.
func (p *Player) ApplyKnockback(force mgl64.Vec3) {
	if p.Body == 0 || p.bodies == nil {
		return
	}
	v := p.bodies.Velocity(p.Body)
	p.bodies.SetVelocity(p.Body, v.Add(force.Mul(1/p.mass)))
}

// ShakeScreen forwards to the camera shaker.
func (p *Player) ShakeScreen(intensity float64, d time.Duration) {
	if intensity <= 0 || d <= 0 {
		return
	}
	p.shaker.Shake(intensity, d)
}

var _ PoseSource = (*Player)(nil)
