package modifier

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/skyshot/armory/internal/projectile"
	"github.com/skyshot/armory/internal/vmath"
)

// Target reports where a homing projectile should steer. ok is false once
// the target is gone.
type Target func() (pos mgl64.Vec3, ok bool)

// Fixed is a Target that never moves.
func Fixed(pos mgl64.Vec3) Target {
	return func() (mgl64.Vec3, bool) { return pos, true }
}

// Homing turns a projectile toward Target. The velocity change per second
// is capped at MaxAccel and the projectile keeps its speed. Steering starts
// after Delay seconds of flight and only while the target lies within
// Range, when Range is set.
type Homing struct {
	Target   Target
	MaxAccel float64
	Delay    float64
	Range    float64

	lost bool
}

func (m *Homing) OnEvent(*projectile.Projectile, projectile.Event) {}

func (m *Homing) OnTick(p *projectile.Projectile, dt float64) {
	if m.Target == nil || m.lost || p.TimeAlive < m.Delay {
		return
	}
	pos, ok := m.Target()
	if !ok {
		m.lost = true
		return
	}
	to := pos.Sub(p.Pos)
	if m.Range > 0 && to.Len() > m.Range {
		return
	}
	speed := p.Velocity.Len()
	if speed < 1e-9 {
		return
	}
	want := vmath.Normalize(to).Mul(speed)
	steer := vmath.ClampMagnitude(want.Sub(p.Velocity), m.MaxAccel*dt)
	p.Velocity = vmath.Normalize(p.Velocity.Add(steer)).Mul(speed)
}

// Lost reports whether the target disappeared mid-flight.
func (m *Homing) Lost() bool { return m.lost }
