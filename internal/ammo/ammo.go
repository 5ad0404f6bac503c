// Package ammo implements loadable rounds: spawning a volley of projectiles
// with spread and split damage, firer knockback, and the ejected-shell
// countdown once a round leaves its chamber.
package ammo

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/skyshot/armory/internal/core/ecs"
	"github.com/skyshot/armory/internal/feedback"
	"github.com/skyshot/armory/internal/physics"
	"github.com/skyshot/armory/internal/player"
	"github.com/skyshot/armory/internal/projectile"
	"github.com/skyshot/armory/internal/vmath"
)

//go:generate go tool mockgen -destination=./mocks/ammo_mock.go -package=mocks . Launcher

// wingSuppressThreshold is the wing axis value at or above which firing
// knockback is not applied.
const wingSuppressThreshold = 0.5

// State is where a round is in its lifecycle.
type State uint8

const (
	Loose State = iota
	Chambered
	Ejected
	Removed
)

func (s State) String() string {
	switch s {
	case Chambered:
		return "chambered"
	case Ejected:
		return "ejected"
	case Removed:
		return "removed"
	}
	return "loose"
}

// Profile is the tuning shared by every round of one kind.
type Profile struct {
	Name string

	Quantity  int
	MaxSpread float64 // degrees
	Speed     float64
	Range     float64 // 0 = unbounded
	Lifetime  float64 // seconds, 0 = unbounded
	Radius    float64
	BarrelGap float64
	Ignore    physics.LayerMask

	TotalDamage float64
	TotalKick   float64

	KickStrength     float64
	RecoilMultiplier float64

	ShellGravity    float64
	EjectedLifetime float64 // seconds
	MaxAngularSpeed float64 // rad/s
	Mass            float64
	ShellRadius     float64

	LoadCue  string
	FireCues []string

	// Modifiers build fresh projectile modifiers for every spawned projectile.
	Modifiers []func() projectile.Modifier
}

// Launcher is the weapon side of a shot.
type Launcher interface {
	Name() string
	Spawn(l projectile.Launch) *projectile.Projectile
	Operator() *player.Player
	Hand() feedback.Hand
	StartRecoil(power float64)
	InfiniteAmmo() bool
	PlayCue(cue string)
	Rand() *rand.Rand
}

// Round is one piece of ammunition.
type Round struct {
	ID    ecs.EntityID
	Body  physics.BodyID
	Spent bool

	profile *Profile
	state   State
	chamber int
	ejected float64 // seconds since ejection
	factory *Factory
}

func (r *Round) Profile() *Profile { return r.profile }
func (r *Round) State() State      { return r.state }
func (r *Round) Name() string      { return r.profile.Name }

// Chamber is the slot index the round was loaded into, or -1.
func (r *Round) Chamber() int {
	if r.state != Chambered {
		return -1
	}
	return r.chamber
}

// Fire spawns the round's volley from muzzle. A spent round fires nothing.
func (r *Round) Fire(l Launcher, muzzle vmath.Pose) []*projectile.Projectile {
	if r.Spent || r.state == Ejected || r.state == Removed {
		return nil
	}
	pr := r.profile
	volley := uuid.New()
	rng := l.Rand()

	out := make([]*projectile.Projectile, 0, pr.Quantity)
	for i := 0; i < pr.Quantity; i++ {
		x, y := vmath.InsideUnitCircle(rng)
		rot := muzzle.Rot.Mul(vmath.Euler(x*pr.MaxSpread, y*pr.MaxSpread))
		dir := vmath.Pose{Rot: rot}.Forward()

		p := l.Spawn(projectile.Launch{
			Origin:      muzzle.Pos,
			Velocity:    dir.Mul(pr.Speed),
			MaxDistance: pr.Range,
			Lifetime:    pr.Lifetime,
			HitDamage:   pr.TotalDamage / float64(pr.Quantity),
			HitKick:     pr.TotalKick / float64(pr.Quantity),
			Radius:      pr.Radius,
			BarrelGap:   pr.BarrelGap,
			Ignore:      pr.Ignore,
			Volley:      volley,
			Source:      l.Name(),
		})
		if p == nil {
			continue
		}
		for _, build := range pr.Modifiers {
			p.AddModifier(build())
		}
		out = append(out, p)
	}

	if op := l.Operator(); op != nil && op.Wing(l.Hand()) < wingSuppressThreshold {
		op.ApplyKnockback(muzzle.Forward().Mul(-pr.KickStrength))
	}
	l.StartRecoil(pr.RecoilMultiplier)
	if n := len(pr.FireCues); n > 0 {
		l.PlayCue(pr.FireCues[rng.Intn(n)])
	}
	if !l.InfiniteAmmo() {
		r.Spent = true
	}
	return out
}

// Load hands the round to a chamber: physics off, collider off, placed at pose.
func (r *Round) Load(slot int, pose vmath.Pose) {
	if r.state == Ejected || r.state == Removed {
		return
	}
	r.state = Chambered
	r.chamber = slot
	if b := r.bodies(); b != nil {
		b.SetKinematic(r.Body, true)
		b.SetColliderEnabled(r.Body, false)
		b.SetPose(r.Body, pose)
	}
}

// Follow keeps a chambered round on its chamber as the weapon moves.
func (r *Round) Follow(pose vmath.Pose) {
	if r.state != Chambered {
		return
	}
	if b := r.bodies(); b != nil {
		b.SetPose(r.Body, pose)
	}
}

// Pose is the round's body pose, or identity when it has no body.
func (r *Round) Pose() vmath.Pose {
	if b := r.bodies(); b != nil {
		return b.Pose(r.Body)
	}
	return vmath.Identity()
}

// Eject turns a chambered round into a free body: spin cap, collider on,
// dynamic, impulse at pivot, then the shell countdown starts.
func (r *Round) Eject(force, pivot mgl64.Vec3) {
	if r.state != Chambered {
		return
	}
	r.state = Ejected
	r.chamber = -1
	r.ejected = 0
	if b := r.bodies(); b != nil {
		b.SetMaxAngularSpeed(r.Body, r.profile.MaxAngularSpeed)
		b.SetColliderEnabled(r.Body, true)
		b.SetKinematic(r.Body, false)
		b.SetGravityScale(r.Body, 0)
		b.ApplyImpulseAt(r.Body, force, pivot)
	}
	if r.factory != nil {
		r.factory.shells.track(r)
	}
}

// Discard removes a round without ejecting it.
func (r *Round) Discard() {
	if r.factory != nil {
		r.factory.remove(r)
		return
	}
	r.state = Removed
}

// Clone makes a new loose round of the same profile at the same pose.
func (r *Round) Clone() *Round {
	if r.factory == nil {
		return &Round{profile: r.profile, chamber: -1}
	}
	return r.factory.New(r.profile, r.Pose())
}

func (r *Round) bodies() physics.Bodies {
	if r.Body == 0 || r.factory == nil {
		return nil
	}
	return r.factory.world
}
