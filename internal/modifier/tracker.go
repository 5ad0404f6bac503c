package modifier

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/skyshot/armory/internal/weapon"
)

// MuzzleTracker remembers the active muzzle's position over the last Memory
// ticks, in the operator's tracking space, and averages a velocity from it.
// Walking or turning the whole rig therefore does not read as a swing.
type MuzzleTracker struct {
	Memory int
	// Rigid samples the muzzle where it sits on the closed weapon, ignoring
	// hinge motion.
	Rigid bool

	history []mgl64.Vec3 // oldest first
	dt      float64
}

// Sample records the current muzzle position. Call once per tick.
func (t *MuzzleTracker) Sample(w *weapon.Weapon, dt float64) {
	if t.Memory <= 0 {
		return
	}
	t.dt = dt
	t.history = append(t.history, t.muzzlePos(w))
	if over := len(t.history) - t.Memory; over > 0 {
		t.history = append(t.history[:0], t.history[over:]...)
	}
}

// Velocity is the average muzzle velocity across the remembered window,
// zero until something has been sampled.
func (t *MuzzleTracker) Velocity(w *weapon.Weapon) mgl64.Vec3 {
	if t.Memory <= 0 || len(t.history) == 0 || t.dt <= 0 {
		return mgl64.Vec3{}
	}
	d := t.muzzlePos(w).Sub(t.history[0])
	return d.Mul(1 / (t.dt * float64(len(t.history))))
}

// Reset forgets the history.
func (t *MuzzleTracker) Reset() { t.history = t.history[:0] }

func (t *MuzzleTracker) muzzlePos(w *weapon.Weapon) mgl64.Vec3 {
	i := w.ActiveMuzzle()
	pos := w.MuzzlePose(i).Pos
	if muzzles := w.Config().Muzzles; t.Rigid && i < len(muzzles) {
		pos = w.Pose().TransformPoint(muzzles[i].Pos)
	}
	if op := w.Operator(); op != nil {
		return op.ToLocal(pos)
	}
	return pos
}
