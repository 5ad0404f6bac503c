// Package modifier holds the stock projectile and weapon modifiers.
package modifier

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/skyshot/armory/internal/curve"
	"github.com/skyshot/armory/internal/projectile"
	"github.com/skyshot/armory/internal/vmath"
)

// ForceOverLifetime accelerates a projectile by Force scaled by Curve at the
// current flight progress.
type ForceOverLifetime struct {
	Force    mgl64.Vec3
	Curve    curve.Curve
	Progress projectile.Normalizer
}

func (m *ForceOverLifetime) OnEvent(p *projectile.Projectile, ev projectile.Event) {
	if ev == projectile.EventStarted {
		m.Progress.Capture(p)
	}
}

func (m *ForceOverLifetime) OnTick(p *projectile.Projectile, dt float64) {
	k := m.Curve.Evaluate(m.Progress.Value(p))
	p.Velocity = p.Velocity.Add(m.Force.Mul(k * dt))
}

// SpeedOverLifetime sets a projectile's speed to Curve times its launch
// speed, keeping its heading.
type SpeedOverLifetime struct {
	Curve    curve.Curve
	Progress projectile.Normalizer

	initial float64
}

func (m *SpeedOverLifetime) OnEvent(p *projectile.Projectile, ev projectile.Event) {
	if ev == projectile.EventStarted {
		m.initial = p.CurrentSpeed
		m.Progress.Capture(p)
	}
}

func (m *SpeedOverLifetime) OnTick(p *projectile.Projectile, dt float64) {
	speed := m.Curve.Evaluate(m.Progress.Value(p)) * m.initial
	p.Velocity = vmath.Normalize(p.Velocity).Mul(speed)
}

// InitialSpeed is the speed captured when flight started.
func (m *SpeedOverLifetime) InitialSpeed() float64 { return m.initial }
