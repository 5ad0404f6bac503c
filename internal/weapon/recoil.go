package weapon

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/skyshot/armory/internal/vmath"
)

// Presentation is the cosmetic offset and scale the renderer applies on
// top of the tracked hand pose.
type Presentation struct {
	Offset mgl64.Vec3
	Scale  float64
}

type recoilPhase struct {
	active   bool
	elapsed  float64
	duration float64
	power    float64
}

func (w *Weapon) Presentation() Presentation { return w.pres }

// Recoiling reports whether the recoil phase is running. It never blocks
// firing.
func (w *Weapon) Recoiling() bool { return w.recoil.active }

// StartRecoil kicks the barrel and (re)starts the recoil phase at power.
func (w *Weapon) StartRecoil(power float64) {
	if w.disabled {
		return
	}
	rc := w.cfg.Recoil
	w.ApplyBarrelTorque(rc.Torque * power)

	d := math.Max(rc.Duration, rc.ScaleDuration)
	if d <= 0 {
		return
	}
	if rc.AngularSpeed > 0 {
		w.bodies.SetMaxAngularSpeed(w.body, rc.AngularSpeed)
	}
	w.recoil = recoilPhase{active: true, duration: d, power: power}
}

// CancelRecoil ends the phase and puts the presentation back at rest.
func (w *Weapon) CancelRecoil() {
	if !w.recoil.active {
		return
	}
	w.finishRecoil()
}

func (w *Weapon) tickRecoil(dt float64) {
	ph := &w.recoil
	if !ph.active {
		return
	}
	rc := w.cfg.Recoil
	t := ph.elapsed

	if rc.AngularSpeed > 0 && rc.MaxAngularSpeed > 0 {
		w.bodies.SetMaxAngularSpeed(w.body, vmath.LerpFloat(rc.AngularSpeed, rc.MaxAngularSpeed, t/ph.duration))
	}
	if rc.Duration > 0 {
		k := rc.PositionCurve.Evaluate(math.Min(t/rc.Duration, 1))
		back := vmath.AxisForward.Mul(-rc.Distance * ph.power)
		w.pres.Offset = w.cfg.BaseOffset.Add(back.Mul(k))
	}
	if rc.ScaleDuration > 0 && rc.MaxScale > 0 {
		k := rc.ScaleCurve.Evaluate(math.Min(t/rc.ScaleDuration, 1))
		w.pres.Scale = vmath.LerpFloat(1, rc.MaxScale, k)
	}

	ph.elapsed += dt
	if ph.elapsed >= ph.duration {
		w.finishRecoil()
	}
}

func (w *Weapon) finishRecoil() {
	w.recoil = recoilPhase{}
	w.pres = Presentation{Offset: w.cfg.BaseOffset, Scale: 1}
	if w.cfg.Recoil.MaxAngularSpeed > 0 && !w.disabled {
		w.bodies.SetMaxAngularSpeed(w.body, w.cfg.Recoil.MaxAngularSpeed)
	}
}
