package modifier

import (
	"go.uber.org/zap"

	"github.com/skyshot/armory/internal/curve"
	"github.com/skyshot/armory/internal/projectile"
	"github.com/skyshot/armory/internal/vmath"
	"github.com/skyshot/armory/internal/weapon"
)

// SwingShot lets the player curve and boost a volley by swinging the
// weapon as it fires. Swing power ramps from MinSwingSpeed up to the speed
// whose force reaches MaxSpinForce.
type SwingShot struct {
	ForceMultiplier float64
	ForceCurve      curve.Curve
	MinSwingSpeed   float64
	MaxSpinForce    float64
	MaxRangeBoost   float64
	MaxDamageBoost  float64

	Tracker MuzzleTracker
	Log     *zap.Logger
}

func (m *SwingShot) OnTick(w *weapon.Weapon, dt float64) { m.Tracker.Sample(w, dt) }

// Power maps a swing speed onto [0,1].
func (m *SwingShot) Power(speed float64) float64 {
	if m.ForceMultiplier <= 0 {
		return 0
	}
	return vmath.Clamp01(vmath.InverseLerp(m.MinSwingSpeed, m.MaxSpinForce/m.ForceMultiplier, speed))
}

func (m *SwingShot) OnProjectilesSpawned(w *weapon.Weapon, shot weapon.Shot) {
	if len(shot.Projectiles) == 0 {
		return
	}
	v := m.Tracker.Velocity(w)
	power := m.Power(v.Len())
	if power <= 0 {
		return
	}
	spin := vmath.ClampMagnitude(v.Mul(m.ForceMultiplier), m.MaxSpinForce)
	if op := w.Operator(); op != nil {
		spin = op.Origin().TransformDirection(spin)
	}

	addRange := m.MaxRangeBoost * power
	addDamage := m.MaxDamageBoost * power / float64(len(shot.Projectiles))
	for _, p := range shot.Projectiles {
		p.AddModifier(&ForceOverLifetime{
			Force:    spin,
			Curve:    m.ForceCurve,
			Progress: projectile.Normalizer{Basis: projectile.ByLifetime},
		})
		if p.MaxDistance > 0 {
			p.MaxDistance += addRange
		}
		p.HitDamage += addDamage
	}
	if m.Log != nil {
		m.Log.Debug("swing shot",
			zap.Float64("power", power),
			zap.Float64("spin", spin.Len()),
		)
	}
}
