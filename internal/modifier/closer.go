package modifier

import (
	"github.com/skyshot/armory/internal/vmath"
	"github.com/skyshot/armory/internal/weapon"
)

// VelociCloser snaps a break-action shut when the open weapon is swung
// along the barrels' vertical axis. It refuses any other weapon kind. The
// swing is measured on the weapon body so the hinge's own travel does not
// feed back into it.
type VelociCloser struct {
	ForceMultiplier float64
	Tracker         MuzzleTracker

	gun *weapon.BreakAction
}

func (m *VelociCloser) Bind(w *weapon.Weapon) error {
	b, ok := w.BreakAction()
	if !ok {
		return weapon.ErrNotBreakAction
	}
	m.gun = b
	m.Tracker.Rigid = true
	return nil
}

func (m *VelociCloser) OnTick(w *weapon.Weapon, dt float64) {
	m.Tracker.Sample(w, dt)
	if m.gun == nil || !w.BreachOpen() {
		return
	}
	up := w.MuzzlePose(w.ActiveMuzzle()).Up()
	if op := w.Operator(); op != nil {
		up = op.Origin().InverseTransformDirection(up)
	}
	swing := vmath.Project(m.Tracker.Velocity(w), up).Len()
	if swing > 0 {
		m.gun.ApplyHingeTorque(-swing * m.ForceMultiplier)
	}
}

func (m *VelociCloser) OnProjectilesSpawned(*weapon.Weapon, weapon.Shot) {}
