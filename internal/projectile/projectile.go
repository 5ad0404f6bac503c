// Package projectile integrates projectiles tick by tick: swept collision,
// exact range backtracking, lifetime burnout, and the modifier hooks that
// rewrite ballistics in flight.
package projectile

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/skyshot/armory/internal/core/ecs"
	"github.com/skyshot/armory/internal/physics"
	"github.com/skyshot/armory/internal/vmath"
)

// Outcome is a projectile's terminal state.
type Outcome uint8

const (
	Flying Outcome = iota
	Hit
	BurnedOut
)

func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case BurnedOut:
		return "burnout"
	}
	return "flying"
}

// Event is a lifecycle notification delivered to modifiers.
type Event uint8

const (
	EventStarted Event = iota // before the first tick, or on attach after it
	EventHit
	EventBurnout
)

// Modifier is a behavior attached to one projectile for its whole flight.
type Modifier interface {
	OnTick(p *Projectile, dt float64)
	OnEvent(p *Projectile, ev Event)
}

// Shootable is implemented by entities that react to being struck.
type Shootable interface {
	IsHit(p *Projectile)
}

// Projectile is the simulated state. Fields other than the ones documented
// as read-only may be changed by modifiers between ticks.
type Projectile struct {
	ID     ecs.EntityID
	Volley uuid.UUID
	Source string

	Pos      mgl64.Vec3
	Rot      mgl64.Quat
	Velocity mgl64.Vec3

	// read-only, maintained by the simulator
	PrevPos      mgl64.Vec3
	PrevRot      mgl64.Quat
	TimeAlive    float64
	TotalTravel  float64
	CurrentSpeed float64

	MaxDistance float64 // 0 = unbounded
	Lifetime    float64 // 0 = unbounded
	HitDamage   float64
	HitKick     float64
	Radius      float64 // 0 = ray only
	Ignore      physics.LayerMask

	outcome   Outcome
	impact    physics.Hit
	started   bool
	modifiers []Modifier
}

// AddModifier attaches m. A modifier attached after flight began receives
// EventStarted immediately so it can capture its baseline.
func (p *Projectile) AddModifier(m Modifier) {
	if m == nil || p.outcome != Flying {
		return
	}
	p.modifiers = append(p.modifiers, m)
	if p.started {
		m.OnEvent(p, EventStarted)
	}
}

func (p *Projectile) Modifiers() int        { return len(p.modifiers) }
func (p *Projectile) Outcome() Outcome      { return p.outcome }
func (p *Projectile) Terminated() bool      { return p.outcome != Flying }
func (p *Projectile) Pose() vmath.Pose      { return vmath.Pose{Pos: p.Pos, Rot: p.Rot} }
func (p *Projectile) Direction() mgl64.Vec3 { return vmath.Normalize(p.Velocity) }

// Impact returns the contact that ended the flight, if any.
func (p *Projectile) Impact() (physics.Hit, bool) {
	return p.impact, p.outcome == Hit
}

// InterpolatedPose blends the previous and current tick poses for display.
func (p *Projectile) InterpolatedPose(alpha float64) vmath.Pose {
	return vmath.Lerp(vmath.Pose{Pos: p.PrevPos, Rot: p.PrevRot}, p.Pose(), vmath.Clamp01(alpha))
}

func (p *Projectile) start() {
	if p.started {
		return
	}
	p.started = true
	for _, m := range p.modifiers {
		m.OnEvent(p, EventStarted)
	}
}

func (p *Projectile) notify(ev Event) {
	for _, m := range p.modifiers {
		m.OnEvent(p, ev)
	}
}

func (p *Projectile) orient() {
	if p.Velocity.Len() > 1e-12 {
		p.Rot = vmath.LookRotation(p.Velocity, vmath.AxisUp)
	}
}
